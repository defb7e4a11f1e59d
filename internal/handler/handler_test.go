package handler

import (
	"context"

	"github.com/avc-dev/resort-finder/internal/model"
)

// mockFinder — мок бизнес-логики с настраиваемыми функциями
type mockFinder struct {
	StartSearchFunc      func(scope model.Scope, categories []string) error
	StartEmailSearchFunc func(city string) error
	GetOrganizationsFunc func(scope model.Scope) []model.Organization
	SearchCitiesFunc     func(ctx context.Context, name string) ([]model.City, error)
	StopProcessFunc      func(kind string) error
	StatusFunc           func() (map[string]bool, int)
	ExportExcelFunc      func(scope model.Scope) ([]byte, string, error)
}

func (m *mockFinder) StartSearch(scope model.Scope, categories []string) error {
	return m.StartSearchFunc(scope, categories)
}

func (m *mockFinder) StartEmailSearch(city string) error {
	return m.StartEmailSearchFunc(city)
}

func (m *mockFinder) GetOrganizations(scope model.Scope) []model.Organization {
	return m.GetOrganizationsFunc(scope)
}

func (m *mockFinder) SearchCities(ctx context.Context, name string) ([]model.City, error) {
	return m.SearchCitiesFunc(ctx, name)
}

func (m *mockFinder) StopProcess(kind string) error {
	return m.StopProcessFunc(kind)
}

func (m *mockFinder) Status() (map[string]bool, int) {
	return m.StatusFunc()
}

func (m *mockFinder) ExportExcel(scope model.Scope) ([]byte, string, error) {
	return m.ExportExcelFunc(scope)
}
