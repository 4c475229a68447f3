package handlers

import (
	"log"
	"net/http"
	response "orders_dashboard/internal/adapter/http/dto/response"
	"orders_dashboard/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OrdersHandler serves the recent orders table.

type OrdersHandler struct {
	usecase usecase.IOrdersUseCase
}

func NewOrdersHandler(uc usecase.IOrdersUseCase) *OrdersHandler {
	return &OrdersHandler{usecase: uc}
}

// ListOrders returns up to 200 orders, newest first.
//
// @Summary Recent orders
// @Tags orders
// @Produce json
// @Success 200 {object} response.OrdersResponse
// @Failure 500 {object} pkg.HTTPError
// @Router /orders [get]
func (h *OrdersHandler) ListOrders(c *gin.Context) {
	page, err := h.usecase.ListOrders(c.Request.Context())
	if err != nil {
		log.Printf("[orders][handler] list failed err=%v", err)
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderPage(page))
}
