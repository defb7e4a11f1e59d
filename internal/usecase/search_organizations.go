package usecase

import (
	"context"

	"github.com/avc-dev/resort-finder/internal/maps"
	"github.com/avc-dev/resort-finder/internal/model"
	"github.com/avc-dev/resort-finder/internal/service"
	"go.uber.org/zap"
)

// StartSearch проверяет запрос и запускает фоновый поиск организаций.
// Возвращается сразу после запуска; прогресс виден через /api/get_status.
func (u *FinderUsecase) StartSearch(scope model.Scope, categories []string) error {
	if len(categories) == 0 {
		return ErrTypesRequired
	}
	if !scope.IsCoordinates() && scope.City() == "" {
		return ErrScopeRequired
	}

	// Отсутствие ключа — синхронная ошибка, а не тихий провал в фоне
	if u.cfg.YandexAPIKey == "" {
		return maps.ErrMissingAPIKey
	}

	ctx, runID, err := u.procs.Begin(service.ProcessSearchNames)
	if err != nil {
		return err
	}

	// Кеш прошлого запуска сбрасывается сразу, чтобы статус не показывал
	// чужие данные во время нового поиска
	u.procs.ResetResults()

	go u.runSearch(ctx, runID, scope, categories)

	return nil
}

// runSearch — тело фонового поиска. Любой исход, включая панику,
// гарантированно опускает флаг процесса.
func (u *FinderUsecase) runSearch(ctx context.Context, runID string, scope model.Scope, categories []string) {
	defer func() {
		if r := recover(); r != nil {
			u.logger.Error("Search task panicked", zap.String("run_id", runID), zap.Any("panic", r))
		}
		u.procs.Finish(service.ProcessSearchNames, runID)
	}()

	orgs, err := u.maps.SearchOrganizations(ctx, scope, categories)
	if err != nil {
		u.logger.Error("Search failed", zap.String("run_id", runID), zap.Error(err))
		return
	}

	if scope.IsCoordinates() {
		u.backfillAddresses(ctx, orgs)
	}

	orgs = service.Dedup(orgs)

	if err := u.store.Save(scope, orgs); err != nil {
		u.logger.Error("Failed to save search results",
			zap.String("run_id", runID),
			zap.Error(err),
		)
	}

	u.procs.CacheResults(scope, orgs)

	u.logger.Info("Search finished",
		zap.String("run_id", runID),
		zap.String("scope", scope.StorageKey()),
		zap.Int("organizations", len(orgs)),
	)
}

// backfillAddresses дозаполняет адреса координатных результатов обратным
// геокодированием. Ошибки отдельных записей игнорируются: адрес-заглушка
// лучше прерванного поиска.
func (u *FinderUsecase) backfillAddresses(ctx context.Context, orgs []model.Organization) {
	for i := range orgs {
		if ctx.Err() != nil {
			return
		}
		if orgs[i].FullAddress != "" || len(orgs[i].Coordinates) < 2 {
			continue
		}

		info, err := u.maps.ReverseGeocode(ctx, orgs[i].Coordinates[0], orgs[i].Coordinates[1])
		if err != nil {
			u.logger.Debug("Reverse geocode failed",
				zap.String("organization", orgs[i].Name),
				zap.Error(err),
			)
			continue
		}

		orgs[i].FullAddress = info.FullAddress
	}
}
