package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labelops/royhub/lib/responses"
	"github.com/labelops/royhub/lib/service"
	"github.com/labstack/echo/v4"
)

// PayoutController : PayoutController struct
type PayoutController struct {
	svc *service.Service
}

func NewPayoutController(svc *service.Service) *PayoutController {
	return &PayoutController{svc: svc}
}

// RunBatch godoc
// @Summary      Run a payout batch for a brand
// @Description  Pays every eligible artist of the brand. Always completes and reports paid/failed counts, one artist's failure never aborts the batch
// @Produce      json
// @Tags         Payout
// @Param        brand_id  path  int  true  "Brand ID"
// @Success      200  {object}  service.BatchResult
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v1/brands/{brand_id}/payouts [post]
// @Security     AdminToken
func (controller *PayoutController) RunBatch(c echo.Context) error {
	brandId, err := strconv.ParseInt(c.Param("brand_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	result, err := controller.svc.RunPayoutBatch(c.Request().Context(), brandId)
	if err != nil {
		c.Logger().Errorf("Error running payout batch for brand_id:%v error: %v", brandId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, result)
}

type PayArtistResponse struct {
	PaymentID       int64  `json:"payment_id"`
	Amount          int64  `json:"amount"`
	ProcessingFee   int64  `json:"payment_processing_fee"`
	ReferenceNumber string `json:"reference_number"`
}

// PayArtist godoc
// @Summary      Pay out a single artist
// @Description  Manual targeted payout, same eligibility rules as the batch
// @Produce      json
// @Tags         Payout
// @Param        artist_id  path  int  true  "Artist ID"
// @Success      200  {object}  PayArtistResponse
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v1/artists/{artist_id}/payouts [post]
// @Security     AdminToken
func (controller *PayoutController) PayArtist(c echo.Context) error {
	artistId, err := strconv.ParseInt(c.Param("artist_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	payment, err := controller.svc.PayArtist(c.Request().Context(), artistId)
	if err != nil {
		if errors.Is(err, service.ErrPayoutsOnHold) || errors.Is(err, service.ErrBelowPayoutPoint) || errors.Is(err, service.ErrNoPaymentMethod) {
			return c.JSON(http.StatusBadRequest, responses.ErrorResponse{
				Error:          true,
				Code:           2,
				Message:        err.Error(),
				HttpStatusCode: 400,
			})
		}
		c.Logger().Errorf("Error paying artist_id:%v error: %v", artistId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &PayArtistResponse{
		PaymentID:       payment.ID,
		Amount:          payment.Amount,
		ProcessingFee:   payment.ProcessingFee,
		ReferenceNumber: payment.ReferenceNumber,
	})
}
