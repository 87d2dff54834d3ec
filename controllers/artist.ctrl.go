package controllers

import (
	"net/http"
	"strconv"

	"github.com/labelops/royhub/db/models"
	"github.com/labelops/royhub/lib/responses"
	"github.com/labelops/royhub/lib/service"
	"github.com/labstack/echo/v4"
)

// ArtistController : ArtistController struct
type ArtistController struct {
	svc *service.Service
}

func NewArtistController(svc *service.Service) *ArtistController {
	return &ArtistController{svc: svc}
}

type CreateArtistRequestBody struct {
	BrandID     int64  `json:"brand_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	PayoutPoint int64  `json:"payout_point" validate:"gte=0"`
	HoldPayouts bool   `json:"hold_payouts"`
}

type UpdateArtistRequestBody struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	PayoutPoint int64  `json:"payout_point" validate:"gte=0"`
	HoldPayouts bool   `json:"hold_payouts"`
}

type AddPaymentMethodRequestBody struct {
	BankCode      string `json:"bank_code" validate:"required"`
	AccountName   string `json:"account_name" validate:"required"`
	AccountNumber string `json:"account_number" validate:"required"`
	IsDefault     bool   `json:"is_default"`
}

// CreateArtist godoc
// @Summary      Create an artist
// @Accept       json
// @Produce      json
// @Tags         Artist
// @Param        CreateArtistRequestBody  body      CreateArtistRequestBody  true  "Artist"
// @Success      200  {object}  models.Artist
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /v1/artists [post]
// @Security     AdminToken
func (controller *ArtistController) CreateArtist(c echo.Context) error {
	var body CreateArtistRequestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	artist, err := controller.svc.CreateArtist(c.Request().Context(), &models.Artist{
		BrandID:     body.BrandID,
		Name:        body.Name,
		Email:       body.Email,
		PayoutPoint: body.PayoutPoint,
		HoldPayouts: body.HoldPayouts,
	})
	if err != nil {
		c.Logger().Errorf("Error creating artist: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, artist)
}

// UpdateArtist godoc
// @Summary      Update an artist's profile and payout policy
// @Accept       json
// @Produce      json
// @Tags         Artist
// @Param        artist_id  path  int  true  "Artist ID"
// @Param        UpdateArtistRequestBody  body      UpdateArtistRequestBody  true  "Artist"
// @Success      200  {object}  models.Artist
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /v1/artists/{artist_id} [put]
// @Security     AdminToken
func (controller *ArtistController) UpdateArtist(c echo.Context) error {
	artistId, err := strconv.ParseInt(c.Param("artist_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body UpdateArtistRequestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	artist, err := controller.svc.FindArtist(c.Request().Context(), artistId)
	if err != nil {
		return c.JSON(http.StatusNotFound, responses.NotFoundError)
	}
	artist.Name = body.Name
	artist.Email = body.Email
	artist.PayoutPoint = body.PayoutPoint
	artist.HoldPayouts = body.HoldPayouts
	artist, err = controller.svc.UpdateArtist(c.Request().Context(), artist)
	if err != nil {
		c.Logger().Errorf("Error updating artist_id:%v error: %v", artistId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, artist)
}

// AddPaymentMethod godoc
// @Summary      Add a payment method for an artist
// @Accept       json
// @Produce      json
// @Tags         Artist
// @Param        artist_id  path  int  true  "Artist ID"
// @Param        AddPaymentMethodRequestBody  body      AddPaymentMethodRequestBody  true  "Payment method"
// @Success      200  {object}  models.PaymentMethod
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /v1/artists/{artist_id}/payment-methods [post]
// @Security     AdminToken
func (controller *ArtistController) AddPaymentMethod(c echo.Context) error {
	artistId, err := strconv.ParseInt(c.Param("artist_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body AddPaymentMethodRequestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if _, err := controller.svc.FindArtist(c.Request().Context(), artistId); err != nil {
		return c.JSON(http.StatusNotFound, responses.NotFoundError)
	}
	method, err := controller.svc.AddPaymentMethod(c.Request().Context(), &models.PaymentMethod{
		ArtistID:      artistId,
		BankCode:      body.BankCode,
		AccountName:   body.AccountName,
		AccountNumber: body.AccountNumber,
		IsDefault:     body.IsDefault,
	})
	if err != nil {
		c.Logger().Errorf("Error adding payment method for artist_id:%v error: %v", artistId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, method)
}
