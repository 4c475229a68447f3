package routes

import (
	"orders_dashboard/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMetrics   = "/metrics"
	PathOrders    = "/orders"
	PathSnapshots = "/metrics/snapshots"
)

func addDashboardRoutes(rg *gin.RouterGroup, metricsHandler *handlers.MetricsHandler, ordersHandler *handlers.OrdersHandler) {
	rg.GET(PathMetrics, metricsHandler.GetMetrics)
	rg.GET(PathOrders, ordersHandler.ListOrders)
}

func addSnapshotRoutes(rg *gin.RouterGroup, snapshotHandler *handlers.MetricsSnapshotHandler) {
	snapshots := rg.Group(PathSnapshots)
	{
		snapshots.POST("", snapshotHandler.CaptureSnapshot)
		snapshots.GET("", snapshotHandler.ListSnapshots)
	}
}
