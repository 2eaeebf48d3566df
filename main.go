// main.go
package main

import (
	"context"
	"log"
	"time"

	"tourism-booking/cmd"
	"tourism-booking/internal/analytics"
	"tourism-booking/internal/cache"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/metrics"
	"tourism-booking/internal/usecase"
	"tourism-booking/internal/wire"
	"tourism-booking/pkg/database"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repository.InitSchema(ctx, db, logger); err != nil {
		cancel()
		logger.Fatal("Failed to initialize schema", zap.Error(err))
	}
	cancel()

	// Optional infrastructure: the service runs without Redis or Kafka,
	// it just loses caching and analytics.
	deps := usecase.Deps{
		Metrics: metrics.Registry("tourism"),
	}

	if config.Redis.Addr != "" {
		redisCache := cache.New(cache.Config{
			Addr:     config.Redis.Addr,
			Password: config.Redis.Password,
			DB:       config.Redis.DB,
		}, logger)

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			logger.Warn("Redis unreachable, caching disabled", zap.Error(err))
		} else {
			deps.Cache = redisCache
			defer redisCache.Close()
			logger.Info("Redis connected", zap.String("addr", config.Redis.Addr))
		}
		pingCancel()
	}

	if len(config.Kafka.Brokers) > 0 {
		producer := analytics.NewProducer(config.Kafka.Brokers, config.Kafka.IntentTopic, logger)
		deps.Analytics = producer
		defer producer.Close()
		logger.Info("Kafka producer ready",
			zap.Strings("brokers", config.Kafka.Brokers),
			zap.String("topic", config.Kafka.IntentTopic),
		)
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger, deps)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Fatal("Server exited", zap.Error(err))
	}
}
