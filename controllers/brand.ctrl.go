package controllers

import (
	"net/http"
	"strconv"

	"github.com/labelops/royhub/db/models"
	"github.com/labelops/royhub/lib/responses"
	"github.com/labelops/royhub/lib/service"
	"github.com/labstack/echo/v4"
)

// BrandController : BrandController struct
type BrandController struct {
	svc *service.Service
}

func NewBrandController(svc *service.Service) *BrandController {
	return &BrandController{svc: svc}
}

type CreateBrandRequestBody struct {
	Name          string `json:"name" validate:"required"`
	ProcessingFee int64  `json:"processing_fee" validate:"gte=0"`
	WebhookUrl    string `json:"webhook_url" validate:"omitempty,url"`
}

type UpdateBrandRequestBody struct {
	Name          string `json:"name" validate:"required"`
	ProcessingFee int64  `json:"processing_fee" validate:"gte=0"`
	WebhookUrl    string `json:"webhook_url" validate:"omitempty,url"`
}

// CreateBrand godoc
// @Summary      Create a brand
// @Accept       json
// @Produce      json
// @Tags         Brand
// @Param        CreateBrandRequestBody  body      CreateBrandRequestBody  true  "Brand"
// @Success      200  {object}  models.Brand
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /v1/brands [post]
// @Security     AdminToken
func (controller *BrandController) CreateBrand(c echo.Context) error {
	var body CreateBrandRequestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	brand, err := controller.svc.CreateBrand(c.Request().Context(), &models.Brand{
		Name:          body.Name,
		ProcessingFee: body.ProcessingFee,
		WebhookUrl:    body.WebhookUrl,
	})
	if err != nil {
		c.Logger().Errorf("Error creating brand: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, brand)
}

// UpdateBrand godoc
// @Summary      Update a brand's fee configuration and webhook target
// @Accept       json
// @Produce      json
// @Tags         Brand
// @Param        brand_id  path  int  true  "Brand ID"
// @Param        UpdateBrandRequestBody  body      UpdateBrandRequestBody  true  "Brand"
// @Success      200  {object}  models.Brand
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /v1/brands/{brand_id} [put]
// @Security     AdminToken
func (controller *BrandController) UpdateBrand(c echo.Context) error {
	brandId, err := strconv.ParseInt(c.Param("brand_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body UpdateBrandRequestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	brand, err := controller.svc.FindBrand(c.Request().Context(), brandId)
	if err != nil {
		return c.JSON(http.StatusNotFound, responses.NotFoundError)
	}
	brand.Name = body.Name
	brand.ProcessingFee = body.ProcessingFee
	brand.WebhookUrl = body.WebhookUrl
	brand, err = controller.svc.UpdateBrand(c.Request().Context(), brand)
	if err != nil {
		c.Logger().Errorf("Error updating brand_id:%v error: %v", brandId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, brand)
}
