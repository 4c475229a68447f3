package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orders_dashboard/internal/adapter/http/handlers"
	"orders_dashboard/internal/adapter/http/handlers/mocks"
	"orders_dashboard/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPingRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	addPingRoutes(r.Group(""))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
	}
}

func TestDashboardRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metricsUC := mocks.NewMockIMetricsUseCase(ctrl)
	ordersUC := mocks.NewMockIOrdersUseCase(ctrl)
	snapshotUC := mocks.NewMockISnapshotUseCase(ctrl)

	r := gin.New()
	g := r.Group("", queryTimeout(time.Second))
	addDashboardRoutes(g, handlers.NewMetricsHandler(metricsUC), handlers.NewOrdersHandler(ordersUC))
	addSnapshotRoutes(g, handlers.NewMetricsSnapshotHandler(snapshotUC))

	metricsUC.EXPECT().GetMetrics(gomock.Any()).Return(entities.MetricsResult{}, nil)
	ordersUC.EXPECT().ListOrders(gomock.Any()).Return(entities.OrderPage{}, nil)
	snapshotUC.EXPECT().Capture(gomock.Any()).Return(entities.MetricsSnapshot{ID: "snap-1"}, nil)
	snapshotUC.EXPECT().ListRecent(gomock.Any(), 0).Return(nil, nil)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, PathMetrics, http.StatusOK},
		{http.MethodGet, PathOrders, http.StatusOK},
		{http.MethodPost, PathSnapshots, http.StatusCreated},
		{http.MethodGet, PathSnapshots, http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Fatalf("%s %s: expected %d, got %d", tc.method, tc.path, tc.want, w.Code)
		}
	}
}

func TestQueryTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/slow", queryTimeout(50*time.Millisecond), func(c *gin.Context) {
		deadline, ok := c.Request.Context().Deadline()
		if !ok || time.Until(deadline) > 50*time.Millisecond {
			t.Errorf("expected request deadline, got %v %v", deadline, ok)
		}
		<-c.Request.Context().Done()
		c.Status(http.StatusGatewayTimeout)
	})

	req := httptest.NewRequest(http.MethodGet, "/slow", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected handler to observe cancellation, got %d", w.Code)
	}
}

func TestQueryTimeoutFromEnv(t *testing.T) {
	t.Setenv("QUERY_TIMEOUT", "")
	if got := queryTimeoutFromEnv(); got != defaultQueryTimeout {
		t.Fatalf("expected default, got %s", got)
	}

	t.Setenv("QUERY_TIMEOUT", "3s")
	if got := queryTimeoutFromEnv(); got != 3*time.Second {
		t.Fatalf("expected 3s, got %s", got)
	}

	t.Setenv("QUERY_TIMEOUT", "soon")
	if got := queryTimeoutFromEnv(); got != defaultQueryTimeout {
		t.Fatalf("expected default for invalid value, got %s", got)
	}
}
