package usecase

import (
	"context"
	"sync"

	"github.com/avc-dev/resort-finder/internal/model"
)

// mockStore — потокобезопасное хранилище снапшотов в памяти для тестов
type mockStore struct {
	mu        sync.Mutex
	snapshots map[string][]model.Organization
	saveErr   error
}

func newMockStore() *mockStore {
	return &mockStore{snapshots: make(map[string][]model.Organization)}
}

func (m *mockStore) Save(scope model.Scope, orgs []model.Organization) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveErr != nil {
		return m.saveErr
	}
	m.snapshots[scope.StorageKey()] = orgs
	return nil
}

func (m *mockStore) Load(scope model.Scope) []model.Organization {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.snapshots[scope.StorageKey()]
}

type mockMaps struct {
	SearchOrganizationsFunc func(ctx context.Context, scope model.Scope, categories []string) ([]model.Organization, error)
	ReverseGeocodeFunc      func(ctx context.Context, lon, lat float64) (model.GeocodeInfo, error)
	SearchCitiesFunc        func(ctx context.Context, name string) ([]model.City, error)
}

func (m *mockMaps) SearchOrganizations(ctx context.Context, scope model.Scope, categories []string) ([]model.Organization, error) {
	return m.SearchOrganizationsFunc(ctx, scope, categories)
}

func (m *mockMaps) ReverseGeocode(ctx context.Context, lon, lat float64) (model.GeocodeInfo, error) {
	return m.ReverseGeocodeFunc(ctx, lon, lat)
}

func (m *mockMaps) SearchCities(ctx context.Context, name string) ([]model.City, error) {
	return m.SearchCitiesFunc(ctx, name)
}

type mockEmail struct {
	ReadyErr      error
	FindEmailFunc func(ctx context.Context, orgName, city string) (string, error)
}

func (m *mockEmail) Ready() error {
	return m.ReadyErr
}

func (m *mockEmail) FindEmail(ctx context.Context, orgName, city string) (string, error) {
	return m.FindEmailFunc(ctx, orgName, city)
}
