package handlers

import (
	"log"
	"net/http"
	response "orders_dashboard/internal/adapter/http/dto/response"
	"orders_dashboard/internal/usecase"
	"orders_dashboard/pkg"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type MetricsSnapshotHandler struct {
	usecase usecase.ISnapshotUseCase
}

func NewMetricsSnapshotHandler(uc usecase.ISnapshotUseCase) *MetricsSnapshotHandler {
	return &MetricsSnapshotHandler{usecase: uc}
}

// CaptureSnapshot computes the current metrics and archives them.
//
// @Summary Capture metrics snapshot
// @Tags metrics
// @Produce json
// @Success 201 {object} response.MetricsSnapshotResponse
// @Failure 500 {object} pkg.HTTPError
// @Router /metrics/snapshots [post]
func (h *MetricsSnapshotHandler) CaptureSnapshot(c *gin.Context) {
	s, err := h.usecase.Capture(c.Request.Context())
	if err != nil {
		log.Printf("[snapshot][handler] capture failed err=%v", err)
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[snapshot][handler] capture success id=%s", s.ID)

	c.JSON(http.StatusCreated, response.FromMetricsSnapshot(s))
}

// ListSnapshots returns archived snapshots, newest first.
//
// @Summary List metrics snapshots
// @Tags metrics
// @Produce json
// @Param limit query int false "Max rows (1-100, default 20)"
// @Success 200 {object} response.MetricsSnapshotListResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /metrics/snapshots [get]
func (h *MetricsSnapshotHandler) ListSnapshots(c *gin.Context) {
	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "limit must be between 1 and 100", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		limit = v
	}

	list, err := h.usecase.ListRecent(c.Request.Context(), limit)
	if err != nil {
		log.Printf("[snapshot][handler] list failed limit=%d err=%v", limit, err)
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMetricsSnapshots(list))
}
