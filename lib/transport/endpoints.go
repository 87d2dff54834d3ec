package transport

import (
	"github.com/labelops/royhub/controllers"
	"github.com/labelops/royhub/lib/service"
	"github.com/labstack/echo/v4"
)

func RegisterEndpoints(svc *service.Service, e *echo.Echo, admin *echo.Group, adminWithStrictRateLimit *echo.Group) {
	e.GET("/health", controllers.NewHealthController(svc).Health)

	brandCtrl := controllers.NewBrandController(svc)
	admin.POST("/v1/brands", brandCtrl.CreateBrand)
	admin.PUT("/v1/brands/:brand_id", brandCtrl.UpdateBrand)

	artistCtrl := controllers.NewArtistController(svc)
	admin.POST("/v1/artists", artistCtrl.CreateArtist)
	admin.PUT("/v1/artists/:artist_id", artistCtrl.UpdateArtist)
	admin.GET("/v1/artists/:artist_id/balance", controllers.NewBalanceController(svc).Balance)
	admin.POST("/v1/artists/:artist_id/payment-methods", artistCtrl.AddPaymentMethod)
	admin.GET("/v1/artists/:artist_id/statement", controllers.NewStatementController(svc).Statement)
	admin.POST("/v1/artists/:artist_id/payments", controllers.NewPaymentController(svc).RecordManualPayment)

	releaseCtrl := controllers.NewReleaseController(svc)
	admin.POST("/v1/releases", releaseCtrl.CreateRelease)
	admin.PUT("/v1/releases/:release_id", releaseCtrl.UpdateRelease)
	admin.POST("/v1/releases/:release_id/expenses", releaseCtrl.AddExpense)
	admin.GET("/v1/releases/:release_id/recoupment", releaseCtrl.RecoupmentBalance)
	admin.PUT("/v1/releases/:release_id/splits", releaseCtrl.UpsertSplit)
	admin.GET("/v1/releases/:release_id/earnings", controllers.NewEarningController(svc).ListEarnings)

	admin.POST("/v1/earnings", controllers.NewEarningController(svc).RecordEarning)

	payoutCtrl := controllers.NewPayoutController(svc)
	adminWithStrictRateLimit.POST("/v1/brands/:brand_id/payouts", payoutCtrl.RunBatch)
	adminWithStrictRateLimit.POST("/v1/artists/:artist_id/payouts", payoutCtrl.PayArtist)
	admin.GET("/v1/wallet", controllers.NewWalletController(svc).Balance)
}
