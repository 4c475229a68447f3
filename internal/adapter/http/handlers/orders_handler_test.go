package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"orders_dashboard/internal/adapter/http/handlers/mocks"
	"orders_dashboard/internal/domain/entities"
	"orders_dashboard/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestOrdersHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrdersUseCase(ctrl)
		h := NewOrdersHandler(uc)

		r := gin.New()
		r.GET("/orders", h.ListOrders)

		uc.EXPECT().ListOrders(gomock.Any()).Return(entities.OrderPage{
			Total: 42,
			Rows: []entities.OrderRow{
				{ID: "doc-2", OrderID: "ORD-2", Country: "US", Channel: "app", Category: "toys", Amount: decimal.NewFromInt(5), Status: entities.OrderStatusPaid, CreatedAt: "2026-10-16T11:00:00Z"},
				{ID: "doc-1", OrderID: "ORD-1", Country: "BR", Channel: "web", Category: "books", Amount: decimal.RequireFromString("10.5"), Status: "pending", CreatedAt: "2026-10-16T10:00:00Z"},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Total int64            `json:"total"`
			Rows  []map[string]any `json:"rows"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Total != 42 || len(body.Rows) != 2 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		first := body.Rows[0]
		if first["id"] != "doc-2" || first["order_id"] != "ORD-2" || first["amount"] != 5.0 || first["created_at"] != "2026-10-16T11:00:00Z" {
			t.Fatalf("unexpected row: %v", first)
		}
		if body.Rows[1]["status"] != "pending" || body.Rows[1]["amount"] != 10.5 {
			t.Fatalf("unexpected row: %v", body.Rows[1])
		}
	})

	t.Run("query failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrdersUseCase(ctrl)
		h := NewOrdersHandler(uc)

		r := gin.New()
		r.GET("/orders", h.ListOrders)

		uc.EXPECT().ListOrders(gomock.Any()).Return(entities.OrderPage{}, &usecase.QueryFailure{Query: "recent_orders", Err: errors.New("index_not_found_exception: no such index [orders]")})

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != "index_not_found_exception: no such index [orders]" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if _, ok := body["rows"]; ok {
			t.Fatalf("expected no partial rows: %s", w.Body.String())
		}
	})
}
