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

// ReleaseController : ReleaseController struct
type ReleaseController struct {
	svc *service.Service
}

func NewReleaseController(svc *service.Service) *ReleaseController {
	return &ReleaseController{svc: svc}
}

type CreateReleaseRequestBody struct {
	BrandID   int64  `json:"brand_id" validate:"required"`
	Title     string `json:"title" validate:"required"`
	CatalogNo string `json:"catalog_no"`
	Status    string `json:"status"`
}

type UpdateReleaseRequestBody struct {
	Title     string `json:"title" validate:"required"`
	CatalogNo string `json:"catalog_no"`
	Status    string `json:"status"`
}

type AddExpenseRequestBody struct {
	Description string    `json:"description" validate:"required"`
	Amount      int64     `json:"amount" validate:"required"`
	Date        time.Time `json:"date"`
}

type UpsertSplitRequestBody struct {
	ArtistID int64  `json:"artist_id" validate:"required"`
	Category string `json:"category" validate:"required"`
	// percent, 0-100; normalized to a fraction at this boundary
	Percentage float64 `json:"percentage" validate:"gte=0,lte=100"`
	Basis      string  `json:"basis"`
}

// CreateRelease godoc
// @Summary      Create a release
// @Accept       json
// @Produce      json
// @Tags         Release
// @Param        CreateReleaseRequestBody  body      CreateReleaseRequestBody  true  "Release"
// @Success      200  {object}  models.Release
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /v1/releases [post]
// @Security     AdminToken
func (controller *ReleaseController) CreateRelease(c echo.Context) error {
	var body CreateReleaseRequestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	release, err := controller.svc.CreateRelease(c.Request().Context(), &models.Release{
		BrandID:   body.BrandID,
		Title:     body.Title,
		CatalogNo: body.CatalogNo,
		Status:    body.Status,
	})
	if err != nil {
		c.Logger().Errorf("Error creating release: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, release)
}

// UpdateRelease godoc
// @Summary      Update a release
// @Accept       json
// @Produce      json
// @Tags         Release
// @Param        release_id  path  int  true  "Release ID"
// @Param        UpdateReleaseRequestBody  body      UpdateReleaseRequestBody  true  "Release"
// @Success      200  {object}  models.Release
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /v1/releases/{release_id} [put]
// @Security     AdminToken
func (controller *ReleaseController) UpdateRelease(c echo.Context) error {
	releaseId, err := strconv.ParseInt(c.Param("release_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body UpdateReleaseRequestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	release, err := controller.svc.FindRelease(c.Request().Context(), releaseId)
	if err != nil {
		return c.JSON(http.StatusNotFound, responses.NotFoundError)
	}
	release.Title = body.Title
	release.CatalogNo = body.CatalogNo
	release.Status = body.Status
	release, err = controller.svc.UpdateRelease(c.Request().Context(), release)
	if err != nil {
		c.Logger().Errorf("Error updating release_id:%v error: %v", releaseId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, release)
}

// AddExpense godoc
// @Summary      Record a recoupable expense
// @Description  Appends a signed expense ledger entry for the release
// @Accept       json
// @Produce      json
// @Tags         Release
// @Param        release_id  path  int  true  "Release ID"
// @Param        AddExpenseRequestBody  body      AddExpenseRequestBody  true  "Expense"
// @Success      200  {object}  models.RecoupableExpense
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /v1/releases/{release_id}/expenses [post]
// @Security     AdminToken
func (controller *ReleaseController) AddExpense(c echo.Context) error {
	releaseId, err := strconv.ParseInt(c.Param("release_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body AddExpenseRequestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if body.Date.IsZero() {
		body.Date = time.Now()
	}
	expense, err := controller.svc.AddExpense(c.Request().Context(), &models.RecoupableExpense{
		ReleaseID:    releaseId,
		Description:  body.Description,
		Amount:       body.Amount,
		DateRecorded: body.Date,
	})
	if err != nil {
		if errors.Is(err, service.ErrExpenseBalance) {
			return c.JSON(http.StatusBadRequest, responses.ExpenseBalanceError)
		}
		c.Logger().Errorf("Error adding expense for release_id:%v error: %v", releaseId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, expense)
}

// RecoupmentBalance godoc
// @Summary      Outstanding recoupment balance for a release
// @Produce      json
// @Tags         Release
// @Param        release_id  path  int  true  "Release ID"
// @Success      200  {object}  RecoupmentBalanceResponse
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /v1/releases/{release_id}/recoupment [get]
// @Security     AdminToken
func (controller *ReleaseController) RecoupmentBalance(c echo.Context) error {
	releaseId, err := strconv.ParseInt(c.Param("release_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	balance, err := controller.svc.ReleaseRecoupmentBalance(c.Request().Context(), releaseId)
	if err != nil {
		c.Logger().Errorf("Error fetching recoupment balance for release_id:%v error: %v", releaseId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &RecoupmentBalanceResponse{ReleaseID: releaseId, Balance: balance})
}

type RecoupmentBalanceResponse struct {
	ReleaseID int64 `json:"release_id"`
	Balance   int64 `json:"balance"`
}

// UpsertSplit godoc
// @Summary      Create or replace a royalty split
// @Description  Sets the artist's percentage for one revenue category. The percentages across all artists may not exceed 100%
// @Accept       json
// @Produce      json
// @Tags         Release
// @Param        release_id  path  int  true  "Release ID"
// @Param        UpsertSplitRequestBody  body      UpsertSplitRequestBody  true  "Split"
// @Success      200  {object}  models.RoyaltySplit
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /v1/releases/{release_id}/splits [put]
// @Security     AdminToken
func (controller *ReleaseController) UpsertSplit(c echo.Context) error {
	releaseId, err := strconv.ParseInt(c.Param("release_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body UpsertSplitRequestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	split, err := controller.svc.UpsertRoyaltySplit(c.Request().Context(), &models.RoyaltySplit{
		ReleaseID:  releaseId,
		ArtistID:   body.ArtistID,
		Category:   body.Category,
		Percentage: body.Percentage / 100,
		Basis:      body.Basis,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSplitSumExceeded):
			return c.JSON(http.StatusBadRequest, responses.SplitSumExceededError)
		case errors.Is(err, service.ErrUnknownCategory):
			return c.JSON(http.StatusBadRequest, responses.UnknownCategoryError)
		case errors.Is(err, service.ErrInvalidPercentage):
			return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
		}
		c.Logger().Errorf("Error upserting split for release_id:%v error: %v", releaseId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, split)
}
