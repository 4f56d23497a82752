package main

import (
	"context"

	"github.com/gin-gonic/gin"
	customerAPI "github.com/lojinha/loja-microservices/internal/customer/api"
	customerRepo "github.com/lojinha/loja-microservices/internal/customer/repository"
	customerService "github.com/lojinha/loja-microservices/internal/customer/service"
	"github.com/lojinha/loja-microservices/internal/platform/config"
	"github.com/lojinha/loja-microservices/internal/platform/database"
	"github.com/lojinha/loja-microservices/internal/platform/health"
	"github.com/lojinha/loja-microservices/internal/platform/logger"
	"github.com/lojinha/loja-microservices/internal/platform/metrics"
)

func main() {
	defer logger.Sync()

	// Load Config
	dbCfg := config.LoadCustomerDBConfig()
	retryCfg := config.LoadRetryConfig()
	serverCfg := config.LoadServerConfig("3002")

	logger.Info("Starting Customer Service...")

	// Setup Database: the bounded connect loop runs to completion before the
	// router starts, so handlers never see a nil store handle.
	db, err := database.ConnectMySQLWithRetry(dbCfg.DSN, retryCfg.Attempts, retryCfg.Interval)
	if err != nil {
		logger.Error("Failed to connect to MySQL for Customer Service", err)
		return
	}
	defer db.Close()

	// Setup Dependencies
	customerRepository := customerRepo.NewMySQLCustomerRepository(db)
	custService := customerService.NewCustomerService(customerRepository)
	customerHandler := customerAPI.NewCustomerHandler(custService)

	if err := customerRepository.InitSchema(context.Background()); err != nil {
		logger.Error("Failed to initialize clientes schema", err)
		return
	}

	// Health monitor + background probe for the store_healthy gauge
	monitor := health.NewMonitor("clientes", health.SQLPinger{DB: db})
	scheduler := monitor.StartPeriodicProbe()
	defer scheduler.Stop()

	// Setup Gin Router
	router := gin.Default()
	customerHandler.RegisterRoutes(router)
	router.GET("/health", monitor.Handler())
	router.GET("/metrics", metrics.Handler())

	logger.Info("Customer Service running on port " + serverCfg.Port)
	if err := router.Run(serverCfg.Port); err != nil {
		logger.Error("Failed to run Customer Service server", err)
	}
}
