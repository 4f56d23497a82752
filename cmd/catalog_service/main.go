package main

import (
	"context"

	"github.com/gin-gonic/gin"
	catalogAPI "github.com/lojinha/loja-microservices/internal/catalog/api"
	catalogRepo "github.com/lojinha/loja-microservices/internal/catalog/repository"
	catalogService "github.com/lojinha/loja-microservices/internal/catalog/service"
	"github.com/lojinha/loja-microservices/internal/platform/config"
	"github.com/lojinha/loja-microservices/internal/platform/database"
	"github.com/lojinha/loja-microservices/internal/platform/health"
	"github.com/lojinha/loja-microservices/internal/platform/logger"
	"github.com/lojinha/loja-microservices/internal/platform/metrics"
)

func main() {
	defer logger.Sync()

	// Load Config
	dbCfg := config.LoadCatalogDBConfig()
	retryCfg := config.LoadRetryConfig()
	serverCfg := config.LoadServerConfig("3001")

	logger.Info("Starting Catalog Service...")

	// Setup Database: the bounded connect loop runs to completion before the
	// router starts, so handlers never see a nil store handle.
	client, err := database.ConnectMongoWithRetry(dbCfg.URI, retryCfg.Attempts, retryCfg.Interval)
	if err != nil {
		logger.Error("Failed to connect to MongoDB for Catalog Service", err)
		return
	}
	defer client.Disconnect(context.Background())

	// Setup Dependencies
	productRepository := catalogRepo.NewMongoProductRepository(client, dbCfg.Database)
	catService := catalogService.NewCatalogService(productRepository)
	catalogHandler := catalogAPI.NewCatalogHandler(catService)

	if err := catService.EnsureSeedData(context.Background()); err != nil {
		logger.Error("Failed to seed catalog data", err)
		return
	}

	// Health monitor + background probe for the store_healthy gauge
	// Legacy catalog health contract answers a bare "OK"
	monitor := health.NewMonitor("catalogo", health.MongoPinger{Client: client}).WithHealthyBody("OK")
	scheduler := monitor.StartPeriodicProbe()
	defer scheduler.Stop()

	// Setup Gin Router
	router := gin.Default()
	catalogHandler.RegisterRoutes(router)
	router.GET("/health", monitor.Handler())
	router.GET("/metrics", metrics.Handler())

	logger.Info("Catalog Service running on port " + serverCfg.Port)
	if err := router.Run(serverCfg.Port); err != nil {
		logger.Error("Failed to run Catalog Service server", err)
	}
}
