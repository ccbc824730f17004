// One-shot news import: fetches current headlines for every stored country
// and persists them. Intended for cron-style scheduling as an alternative
// to the in-process worker.
package main

import (
	"context"
	"log"

	"github.com/alexivanou/worldinfo-api/internal/cache"
	"github.com/alexivanou/worldinfo-api/internal/config"
	"github.com/alexivanou/worldinfo-api/internal/database"
	"github.com/alexivanou/worldinfo-api/internal/provider"
	"github.com/alexivanou/worldinfo-api/internal/repository"
	"github.com/alexivanou/worldinfo-api/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	repos := repository.NewRepositories(db, cfg.DB.Type)

	lookupCache, err := cache.New(cfg.Cache)
	if err != nil {
		logger.Fatal("Failed to initialize cache", zap.Error(err))
	}

	geo := provider.NewGeoClient(cfg.Providers.GeoURL, cfg.Providers.APILayerKey, cfg.Providers.Timeout, logger)
	weather := provider.NewWeatherClient(cfg.Providers.WeatherURL, cfg.Providers.OpenWeatherKey, cfg.Providers.Timeout, logger)
	currency := provider.NewCurrencyClient(cfg.Providers.CurrencyURL, cfg.Providers.APILayerKey, cfg.Providers.Timeout, logger)
	news := provider.NewNewsClient(cfg.Providers.NewsURL, cfg.Providers.NewsAPIKey, cfg.Providers.Timeout, logger)

	svc := service.NewService(repos, geo, weather, currency, news, lookupCache, cfg.Cache.TTL, logger)

	if err := svc.ImportNews(ctx); err != nil {
		logger.Fatal("News import failed", zap.Error(err))
	}
	logger.Info("News import completed")
}
