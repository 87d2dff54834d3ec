package controllers

import (
	"net/http"

	"github.com/labelops/royhub/lib/responses"
	"github.com/labelops/royhub/lib/service"
	"github.com/labstack/echo/v4"
)

// WalletController : WalletController struct
type WalletController struct {
	svc *service.Service
}

func NewWalletController(svc *service.Service) *WalletController {
	return &WalletController{svc: svc}
}

type WalletBalanceResponse struct {
	AvailableBalance int64 `json:"available_balance"`
}

// Balance godoc
// @Summary      Rail wallet balance
// @Description  Advisory pre-check for operators before launching a payout run
// @Produce      json
// @Tags         Payout
// @Success      200  {object}  WalletBalanceResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v1/wallet [get]
// @Security     AdminToken
func (controller *WalletController) Balance(c echo.Context) error {
	balance, err := controller.svc.RailClient.GetWalletBalance(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Error fetching wallet balance: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &WalletBalanceResponse{AvailableBalance: balance})
}
