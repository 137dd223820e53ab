package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/btoksoz/tatli-panel/internal/handler"
	mid "github.com/btoksoz/tatli-panel/internal/middleware"
	"github.com/btoksoz/tatli-panel/internal/store"
	"github.com/btoksoz/tatli-panel/pkg/config"
	"github.com/btoksoz/tatli-panel/pkg/logger"
	"github.com/btoksoz/tatli-panel/prometheus"
)

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting tatli-panel",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize the record store
	if err := store.Init(appConfig); err != nil {
		log.Fatal("Failed to initialize record store", zap.Error(err))
	}
	defer store.Get().Close()
	store.OnWriteFailure = prometheus.RecordStoreWriteFailure
	log.Info("Record store opened", zap.String("dir", appConfig.Data.Dir))

	// Give handlers access to configuration
	handler.Init(appConfig)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Routes
	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Customer API routes
	customerAPI := e.Group("/api/customers")
	customerAPI.GET("", handler.ListCustomers)
	customerAPI.POST("", handler.CreateCustomer)
	customerAPI.PUT("/:id", handler.UpdateCustomer)
	customerAPI.DELETE("/:id", handler.DeleteCustomer)
	customerAPI.GET("/:id/map", handler.GetCustomerMap)

	// Product API routes
	productAPI := e.Group("/api/products")
	productAPI.GET("", handler.ListProducts)
	productAPI.POST("", handler.CreateProduct)
	productAPI.PUT("/:id", handler.UpdateProduct)
	productAPI.DELETE("/:id", handler.DeleteProduct)

	// Order API routes
	orderAPI := e.Group("/api/orders")
	orderAPI.GET("", handler.ListOrders)
	orderAPI.POST("", handler.CreateOrder)
	orderAPI.PUT("/:id", handler.UpdateOrder)
	orderAPI.DELETE("/:id", handler.DeleteOrder)
	orderAPI.POST("/:id/status", handler.CycleOrderStatus)
	orderAPI.GET("/:id/summary", handler.GetOrderSummary)

	// Delivery API routes
	deliveryAPI := e.Group("/api/delivery")
	deliveryAPI.GET("", handler.ListDelivery)
	deliveryAPI.POST("/route", handler.BuildRoute)

	// Report API routes
	e.GET("/api/reports/daily", handler.DailyReport)

	// Backup API routes
	e.GET("/api/backup", handler.ExportBackup)
	e.POST("/api/backup", handler.ImportBackup)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
