package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pressroom/internal/service"
)

// DashboardHandler serves the dashboard summary.
type DashboardHandler struct {
	svc service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Summary godoc
// @Summary Dashboard entity counts
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.DashboardSummary
// @Failure 500 {object} map[string]string
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	summary, err := h.svc.Summary(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, summary)
}
