package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	_ "orders_dashboard/docs" // swag init output
	"orders_dashboard/internal/adapter/http/handlers"
	"orders_dashboard/internal/adapter/persistence/repository"
	"orders_dashboard/internal/infrastructure/database"
	"orders_dashboard/internal/infrastructure/search"
	"orders_dashboard/internal/usecase"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const (
	defaultPort         = "8080"
	defaultQueryTimeout = 10 * time.Second
	shutdownTimeout     = 5 * time.Second
)

// Run will start the server and block until SIGINT/SIGTERM.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	srv := &http.Server{
		Addr:    ":" + getenvDefault("PORT", defaultPort),
		Handler: router,
	}

	go func() {
		log.Printf("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func getRoutes() {
	// Store clients are created once and shared by every request.
	es := search.ConnectElasticsearch()
	ddb := database.ConnectDynamoDB()

	orderStore := repository.NewOrderElasticsearchRepository(es)
	snapshotRepo := repository.NewMetricsSnapshotDynamoRepository(ddb)

	metricsUseCase := usecase.NewMetricsUseCase(orderStore)
	ordersUseCase := usecase.NewOrdersUseCase(orderStore)
	snapshotUseCase := usecase.NewSnapshotUseCase(metricsUseCase, snapshotRepo)

	metricsHandler := handlers.NewMetricsHandler(metricsUseCase)
	ordersHandler := handlers.NewOrdersHandler(ordersUseCase)
	snapshotHandler := handlers.NewMetricsSnapshotHandler(snapshotUseCase)

	root := router.Group("")
	addPingRoutes(root)

	dashboard := root.Group("", queryTimeout(queryTimeoutFromEnv()))
	addDashboardRoutes(dashboard, metricsHandler, ordersHandler)
	addSnapshotRoutes(dashboard, snapshotHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

// queryTimeout bounds every store query issued while serving the request.
func queryTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func queryTimeoutFromEnv() time.Duration {
	raw := os.Getenv("QUERY_TIMEOUT")
	if raw == "" {
		return defaultQueryTimeout
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("invalid QUERY_TIMEOUT=%q, using %s", raw, defaultQueryTimeout)
		return defaultQueryTimeout
	}
	return d
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
