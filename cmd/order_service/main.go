package main

import (
	"context"

	"github.com/gin-gonic/gin"
	orderAPI "github.com/lojinha/loja-microservices/internal/order/api"
	orderRepo "github.com/lojinha/loja-microservices/internal/order/repository"
	orderService "github.com/lojinha/loja-microservices/internal/order/service"
	"github.com/lojinha/loja-microservices/internal/platform/config"
	"github.com/lojinha/loja-microservices/internal/platform/database"
	"github.com/lojinha/loja-microservices/internal/platform/health"
	"github.com/lojinha/loja-microservices/internal/platform/logger"
	"github.com/lojinha/loja-microservices/internal/platform/metrics"
)

func main() {
	defer logger.Sync()

	// Load Config
	dbCfg := config.LoadOrderDBConfig()
	retryCfg := config.LoadRetryConfig()
	serverCfg := config.LoadServerConfig("3000")
	catalogURL := config.GetEnv("CATALOG_SERVICE_URL", "http://localhost:3001")

	logger.Info("Starting Order Service...")

	// Setup Database: the bounded connect loop runs to completion before the
	// router starts, so handlers never see a nil store handle.
	db, err := database.ConnectPostgresWithRetry(dbCfg.DSN, retryCfg.Attempts, retryCfg.Interval)
	if err != nil {
		logger.Error("Failed to connect to Postgres for Order Service", err)
		return
	}
	defer db.Close()

	// Setup Dependencies
	orderRepository := orderRepo.NewPostgresOrderRepository(db)
	catalogClient := orderService.NewHTTPCatalogClient(catalogURL)
	ordService := orderService.NewOrderService(orderRepository, catalogClient)
	orderHandler := orderAPI.NewOrderHandler(ordService)

	if err := orderRepository.InitSchema(context.Background()); err != nil {
		logger.Error("Failed to initialize pedidos schema", err)
		return
	}

	// Health monitor + background probe for the store_healthy gauge
	monitor := health.NewMonitor("pedidos", health.SQLPinger{DB: db})
	scheduler := monitor.StartPeriodicProbe()
	defer scheduler.Stop()

	// Setup Gin Router
	router := gin.Default()
	orderHandler.RegisterRoutes(router)
	router.GET("/health", monitor.Handler())
	router.GET("/metrics", metrics.Handler())

	logger.Info("Order Service running on port " + serverCfg.Port)
	logger.Info("Order Service connecting to Catalog Service at " + catalogURL)
	if err := router.Run(serverCfg.Port); err != nil {
		logger.Error("Failed to run Order Service server", err)
	}
}
