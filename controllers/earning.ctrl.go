package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labelops/royhub/lib/responses"
	"github.com/labelops/royhub/lib/service"
	"github.com/labstack/echo/v4"
)

// EarningController : EarningController struct
type EarningController struct {
	svc *service.Service
}

func NewEarningController(svc *service.Service) *EarningController {
	return &EarningController{svc: svc}
}

type RecordEarningRequestBody struct {
	ReleaseID          int64     `json:"release_id" validate:"required"`
	Category           string    `json:"category" validate:"required"`
	Amount             int64     `json:"amount" validate:"gte=0"`
	Description        string    `json:"description"`
	Date               time.Time `json:"date"`
	CalculateRoyalties *bool     `json:"calculate_royalties"`
}

// RecordEarning godoc
// @Summary      Record an earning
// @Description  Records revenue for a release, recoups outstanding expenses and distributes royalties in one atomic operation
// @Accept       json
// @Produce      json
// @Tags         Ledger
// @Param        RecordEarningRequestBody  body      RecordEarningRequestBody  true  "Earning"
// @Success      200  {object}  service.EarningResult
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      409  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v1/earnings [post]
// @Security     AdminToken
func (controller *EarningController) RecordEarning(c echo.Context) error {
	var body RecordEarningRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load record earning request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid record earning request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if body.Date.IsZero() {
		body.Date = time.Now()
	}
	calculate := true
	if body.CalculateRoyalties != nil {
		calculate = *body.CalculateRoyalties
	}

	result, err := controller.svc.RecordEarning(c.Request().Context(), body.ReleaseID, body.Category, body.Amount, body.Description, body.Date, calculate)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLockContention):
			return c.JSON(http.StatusConflict, responses.LockContentionError)
		case errors.Is(err, service.ErrUnknownCategory):
			return c.JSON(http.StatusBadRequest, responses.UnknownCategoryError)
		case errors.Is(err, service.ErrInvalidAmount):
			return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
		}
		c.Logger().Errorf("Error recording earning [release_id:%d]: %v", body.ReleaseID, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, result)
}

// ListEarnings godoc
// @Summary      List earnings for a release
// @Produce      json
// @Tags         Ledger
// @Param        release_id  path  int  true  "Release ID"
// @Success      200  {array}  models.Earning
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /v1/releases/{release_id}/earnings [get]
// @Security     AdminToken
func (controller *EarningController) ListEarnings(c echo.Context) error {
	releaseId, err := strconv.ParseInt(c.Param("release_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	earnings, err := controller.svc.EarningsForRelease(c.Request().Context(), releaseId)
	if err != nil {
		c.Logger().Errorf("Error listing earnings for release_id:%v error: %v", releaseId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, earnings)
}
