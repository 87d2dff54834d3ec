package controllers

import (
	"net/http"

	"github.com/labelops/royhub/lib/service"
	"github.com/labstack/echo/v4"
)

type HealthController struct {
	svc *service.Service
}

func NewHealthController(svc *service.Service) *HealthController {
	return &HealthController{svc: svc}
}

// Health godoc
// @Summary      Health check
// @Description  Reports whether the service and its database are reachable
// @Produce      json
// @Tags         Infra
// @Success      200
// @Router       /health [get]
func (controller *HealthController) Health(c echo.Context) error {
	if err := controller.svc.DB.PingContext(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "database unreachable")
	}
	return c.NoContent(http.StatusOK)
}
