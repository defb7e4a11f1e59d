package usecase

import (
	"context"

	"github.com/avc-dev/resort-finder/internal/config"
	"github.com/avc-dev/resort-finder/internal/model"
	"github.com/avc-dev/resort-finder/internal/service"
	"go.uber.org/zap"
)

// OrganizationStore определяет интерфейс хранилища снапшотов
type OrganizationStore interface {
	Save(scope model.Scope, orgs []model.Organization) error
	Load(scope model.Scope) []model.Organization
}

// MapsClient определяет интерфейс клиента картографического API
type MapsClient interface {
	SearchOrganizations(ctx context.Context, scope model.Scope, categories []string) ([]model.Organization, error)
	ReverseGeocode(ctx context.Context, lon, lat float64) (model.GeocodeInfo, error)
	SearchCities(ctx context.Context, name string) ([]model.City, error)
}

// EmailClient определяет интерфейс поиска email через языковую модель
type EmailClient interface {
	Ready() error
	FindEmail(ctx context.Context, orgName, city string) (string, error)
}

// FinderUsecase содержит бизнес-логику сервиса: запуск и остановку фоновых
// процессов, доступ к результатам и экспорт
type FinderUsecase struct {
	store OrganizationStore
	maps  MapsClient
	email EmailClient
	procs *service.ProcessManager

	cfg    *config.Config
	logger *zap.Logger
}

// NewFinderUsecase создает новый экземпляр FinderUsecase
func NewFinderUsecase(
	store OrganizationStore,
	maps MapsClient,
	email EmailClient,
	procs *service.ProcessManager,
	cfg *config.Config,
	logger *zap.Logger,
) *FinderUsecase {
	return &FinderUsecase{
		store:  store,
		maps:   maps,
		email:  email,
		procs:  procs,
		cfg:    cfg,
		logger: logger,
	}
}
