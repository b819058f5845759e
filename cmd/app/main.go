package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/quantrkucb/OrderBookVisualiser/config"
	"github.com/quantrkucb/OrderBookVisualiser/db/postgres"
	providers "github.com/quantrkucb/OrderBookVisualiser/db/postgres/providers"
	"github.com/quantrkucb/OrderBookVisualiser/logging"
	"github.com/quantrkucb/OrderBookVisualiser/metrics"
	"github.com/quantrkucb/OrderBookVisualiser/models"
	"github.com/quantrkucb/OrderBookVisualiser/repository"
	"github.com/quantrkucb/OrderBookVisualiser/routes"
	orderService "github.com/quantrkucb/OrderBookVisualiser/service"
)

func main() {
	// .env is a development convenience; in production everything comes
	// from the environment directly.
	_ = godotenv.Load(".env")

	cfg := config.Load()
	logger := logging.New(cfg)
	registry := metrics.Init()

	// 1. Optional Postgres journal
	var orderRepo *repository.OrderRepository
	var tradeRepo *repository.TradeRepository
	if cfg.Postgres.Enabled() {
		postgresClient, err := postgres.ConnectDB(cfg.Postgres, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		defer postgresClient.Stop()

		if err := postgresClient.InitSchema(); err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize journal schema")
		}

		dbHelper, err := providers.NewDbProvider(postgresClient.PostgresClient)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize DB helper")
		}
		orderRepo = repository.NewOrderRepository(dbHelper)
		tradeRepo = repository.NewTradeRepository(dbHelper)
	} else {
		logger.Info().Msg("no POSTGRES_HOST configured, running without journal")
	}

	// 2. Matching engine, optionally seeded with the demo book
	var seed []models.Order
	if cfg.SeedDemoBook {
		seed = orderService.DemoSeedOrders()
	}
	engine, err := orderService.NewMatchingEngine(seed...)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to seed matching engine")
	}

	// 3. Service, router, handlers
	svc := orderService.NewOrderService(cfg.Symbol, engine, orderRepo, tradeRepo, logger)
	router := gin.Default()
	routes.RegisterRoutes(router, svc, registry)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// 4. Run the REST API without blocking main
	go func() {
		logger.Info().Str("port", cfg.Port).Str("symbol", cfg.Symbol).Msg("order REST API running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// 5. Wait for an OS signal, then shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info().Str("signal", sig.String()).Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("shutdown complete")
}
