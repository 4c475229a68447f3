package handlers

import (
	"log"
	"net/http"
	response "orders_dashboard/internal/adapter/http/dto/response"
	"orders_dashboard/internal/usecase"

	"github.com/gin-gonic/gin"
)

// MetricsHandler serves the KPI cards and the weekly revenue chart.

type MetricsHandler struct {
	usecase usecase.IMetricsUseCase
}

func NewMetricsHandler(uc usecase.IMetricsUseCase) *MetricsHandler {
	return &MetricsHandler{usecase: uc}
}

// GetMetrics returns totals, revenue by status and the trailing 7-day series.
//
// @Summary Dashboard KPIs
// @Tags metrics
// @Produce json
// @Success 200 {object} response.MetricsResponse
// @Failure 500 {object} pkg.HTTPError
// @Router /metrics [get]
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	m, err := h.usecase.GetMetrics(c.Request.Context())
	if err != nil {
		log.Printf("[metrics][handler] get failed err=%v", err)
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMetrics(m))
}
