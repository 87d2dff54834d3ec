package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labelops/royhub/lib/responses"
	"github.com/labelops/royhub/lib/service"
	"github.com/labstack/echo/v4"
)

// StatementController : StatementController struct
type StatementController struct {
	svc *service.Service
}

func NewStatementController(svc *service.Service) *StatementController {
	return &StatementController{svc: svc}
}

// Statement godoc
// @Summary      Download an artist's royalty statement
// @Description  XLSX with royalty and payment lines and the resulting balance. Optional from/to date bounds (YYYY-MM-DD)
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Tags         Artist
// @Param        artist_id  path   int     true   "Artist ID"
// @Param        from       query  string  false  "Start date"
// @Param        to         query  string  false  "End date"
// @Success      200
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /v1/artists/{artist_id}/statement [get]
// @Security     AdminToken
func (controller *StatementController) Statement(c echo.Context) error {
	artistId, err := strconv.ParseInt(c.Param("artist_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var from, to time.Time
	if raw := c.QueryParam("from"); raw != "" {
		from, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
		}
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
		}
	}

	statement, err := controller.svc.RoyaltyStatement(c.Request().Context(), artistId, from, to)
	if err != nil {
		c.Logger().Errorf("Error building statement for artist_id:%v error: %v", artistId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("statement-%d.xlsx", artistId)))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return statement.Write(c.Response())
}
