package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labelops/royhub/db/models"
	"github.com/labelops/royhub/lib/responses"
	"github.com/labelops/royhub/lib/service"
	"github.com/labstack/echo/v4"
)

// PaymentController : PaymentController struct
type PaymentController struct {
	svc *service.Service
}

func NewPaymentController(svc *service.Service) *PaymentController {
	return &PaymentController{svc: svc}
}

type RecordManualPaymentRequestBody struct {
	Amount int64     `json:"amount" validate:"required,gt=0"`
	Date   time.Time `json:"date"`
}

// RecordManualPayment godoc
// @Summary      Record an off-rail payment
// @Description  Appends a payment made outside the rail (cash, legacy wire). No reference number, no processing fee
// @Accept       json
// @Produce      json
// @Tags         Payout
// @Param        artist_id  path  int  true  "Artist ID"
// @Param        RecordManualPaymentRequestBody  body      RecordManualPaymentRequestBody  true  "Payment"
// @Success      200  {object}  models.Payment
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /v1/artists/{artist_id}/payments [post]
// @Security     AdminToken
func (controller *PaymentController) RecordManualPayment(c echo.Context) error {
	artistId, err := strconv.ParseInt(c.Param("artist_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body RecordManualPaymentRequestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if body.Date.IsZero() {
		body.Date = time.Now()
	}
	if _, err := controller.svc.FindArtist(c.Request().Context(), artistId); err != nil {
		return c.JSON(http.StatusNotFound, responses.NotFoundError)
	}
	payment, err := controller.svc.RecordManualPayment(c.Request().Context(), &models.Payment{
		ArtistID: artistId,
		Amount:   body.Amount,
		DatePaid: body.Date,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
		}
		c.Logger().Errorf("Error recording manual payment for artist_id:%v error: %v", artistId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, payment)
}
