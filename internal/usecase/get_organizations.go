package usecase

import (
	"context"

	"github.com/avc-dev/resort-finder/internal/geo"
	"github.com/avc-dev/resort-finder/internal/model"
	"go.uber.org/zap"
)

// GetOrganizations возвращает организации области поиска. Кеш последнего
// завершённого запуска имеет приоритет над снапшотом на диске.
func (u *FinderUsecase) GetOrganizations(scope model.Scope) []model.Organization {
	if cached, ok := u.procs.CachedResults(scope); ok {
		return cached
	}
	return u.store.Load(scope)
}

// SearchCities ищет города по названию. Если геокодер не вернул регион,
// он дозаполняется по таблице регионов.
func (u *FinderUsecase) SearchCities(ctx context.Context, name string) ([]model.City, error) {
	if name == "" {
		return nil, ErrCityRequired
	}

	cities, err := u.maps.SearchCities(ctx, name)
	if err != nil {
		u.logger.Warn("City lookup failed", zap.String("city", name), zap.Error(err))
		return nil, err
	}

	for i := range cities {
		if cities[i].Region != "" || len(cities[i].Coordinates) < 2 {
			continue
		}
		cities[i].Region = geo.RegionFor(cities[i].Coordinates[1], cities[i].Coordinates[0])
	}

	return cities, nil
}

// StopProcess сбрасывает флаг названного процесса, не дожидаясь, пока
// фоновая задача заметит отмену
func (u *FinderUsecase) StopProcess(kind string) error {
	return u.procs.Stop(kind)
}

// Status возвращает флаги процессов и количество организаций последнего запуска
func (u *FinderUsecase) Status() (map[string]bool, int) {
	return u.procs.Snapshot()
}
