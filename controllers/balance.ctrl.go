package controllers

import (
	"net/http"
	"strconv"

	"github.com/labelops/royhub/lib/responses"
	"github.com/labelops/royhub/lib/service"
	"github.com/labstack/echo/v4"
)

// BalanceController : BalanceController struct
type BalanceController struct {
	svc *service.Service
}

func NewBalanceController(svc *service.Service) *BalanceController {
	return &BalanceController{svc: svc}
}

// Balance godoc
// @Summary      Retrieve artist balance
// @Description  Total royalties, total payments and the payable balance, recomputed from the ledger
// @Produce      json
// @Tags         Artist
// @Param        artist_id  path  int  true  "Artist ID"
// @Success      200  {object}  service.BalanceSummary
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v1/artists/{artist_id}/balance [get]
// @Security     AdminToken
func (controller *BalanceController) Balance(c echo.Context) error {
	artistId, err := strconv.ParseInt(c.Param("artist_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	summary, err := controller.svc.ArtistBalance(c.Request().Context(), artistId)
	if err != nil {
		c.Logger().Errorf("Error fetching balance for artist_id:%v error: %v", artistId, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	return c.JSON(http.StatusOK, summary)
}
