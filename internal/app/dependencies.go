package app

import (
	"github.com/avc-dev/resort-finder/internal/config"
	"github.com/avc-dev/resort-finder/internal/handler"
	"github.com/avc-dev/resort-finder/internal/llm"
	"github.com/avc-dev/resort-finder/internal/maps"
	"github.com/avc-dev/resort-finder/internal/service"
	"github.com/avc-dev/resort-finder/internal/store"
	"github.com/avc-dev/resort-finder/internal/usecase"
	"go.uber.org/zap"
)

// initDependencies инициализирует все зависимости приложения
func initDependencies(cfg *config.Config, logger *zap.Logger) (*handler.Handler, error) {
	orgStore := store.NewOrganizationStore(cfg.ExportsDir, logger)
	logger.Info("Using file snapshots", zap.String("dir", cfg.ExportsDir))

	mapsClient := maps.NewClient(maps.Config{
		APIKey:        cfg.YandexAPIKey,
		GeocoderKey:   cfg.GeocoderAPIKey,
		SearchBaseURL: cfg.SearchBaseURL,
		GeocodeURL:    cfg.GeocoderBaseURL,
		Timeout:       cfg.SearchTimeout,
		CategoryPause: cfg.CategoryPause,
	}, logger)

	emailClient := llm.NewClient(llm.Config{
		APIKey:  cfg.ProxyAPIKey,
		BaseURL: cfg.ProxyAPIBaseURL,
		Timeout: cfg.LLMTimeout,
	}, logger)

	procs := service.NewProcessManager(logger)
	finder := usecase.NewFinderUsecase(orgStore, mapsClient, emailClient, procs, cfg, logger)

	return handler.New(finder, logger), nil
}
