package main

import (
	"context"
	"log"

	"rail-booking/cmd"
	"rail-booking/internal/data/repository"
	"rail-booking/internal/wire"
	"rail-booking/pkg/cache"
	"rail-booking/pkg/database"
	"rail-booking/pkg/queue"
	"rail-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	rdb := cache.InitRedis(config.Redis)
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	publisher := queue.NewPublisher(config.Queue.URL, logger)

	repos := repository.NewRepository(db, logger)

	if config.App.SeedData {
		if err := repository.SeedSampleData(context.Background(), repos, logger); err != nil {
			logger.Fatal("Failed to seed sample data", zap.Error(err))
		}
	}

	router := wire.Wiring(repos, config, logger, rdb, publisher)

	logger.Info("Starting server",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
	)
	cmd.APIServer(router, config.App.Port)
}
