package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/avc-dev/resort-finder/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOrganizationStore_SaveAndLoad(t *testing.T) {
	s := NewOrganizationStore(t.TempDir(), zap.NewNop())
	scope := model.ByCity("Сочи")

	orgs := []model.Organization{
		{
			Name:        "Санаторий \"Здоровье\"",
			Coordinates: []float64{39.7233, 43.5855},
			YandexID:    "1124715036",
			FullAddress: "ул. Лесная, 25, Сочи, Россия",
			Website:     "https://zdorovie-sanatorium.ru",
			Email:       "info@zdorovie-sanatorium.ru",
			Type:        "санаторий",
			City:        "Сочи",
		},
		{
			// Координаты могут отсутствовать, email — быть маркером неудачного поиска
			Name:        "Хостел \"Эконом\"",
			Coordinates: []float64{},
			YandexID:    "yandex_0002_хостел",
			FullAddress: "ул. Экономная, 7, Сочи, Россия",
			Website:     "https://хостелэконом.ru",
			Email:       model.EmailNotFound,
			Type:        "хостел",
			City:        "Сочи",
		},
	}

	require.NoError(t, s.Save(scope, orgs))

	loaded := s.Load(scope)
	require.Len(t, loaded, 2)
	assert.Equal(t, orgs[0], loaded[0])
	assert.Equal(t, orgs[1].Email, loaded[1].Email)
	assert.Empty(t, loaded[1].Coordinates)
}

func TestOrganizationStore_LoadMissingFile(t *testing.T) {
	s := NewOrganizationStore(t.TempDir(), zap.NewNop())

	loaded := s.Load(model.ByCity("Анапа"))

	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}

func TestOrganizationStore_LoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	s := NewOrganizationStore(dir, zap.NewNop())
	scope := model.ByCity("Анапа")

	// Портим снапшот вручную
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data_Анапа.json"), []byte("{broken"), 0o644))

	loaded := s.Load(scope)

	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}

func TestOrganizationStore_SaveOverwrites(t *testing.T) {
	s := NewOrganizationStore(t.TempDir(), zap.NewNop())
	scope := model.ByCoordinates(43.5855, 39.7233, 5)

	first := []model.Organization{{Name: "Гостиница \"Морская\"", Type: "гостиница"}}
	second := []model.Organization{{Name: "Хостел \"Центральный\"", Type: "хостел"}}

	require.NoError(t, s.Save(scope, first))
	require.NoError(t, s.Save(scope, second))

	loaded := s.Load(scope)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Хостел \"Центральный\"", loaded[0].Name)
}

func TestOrganizationStore_SaveRemovesLegacySnapshot(t *testing.T) {
	dir := t.TempDir()
	s := NewOrganizationStore(dir, zap.NewNop())
	scope := model.ByCity("Сочи")

	legacy := filepath.Join(dir, "data_Сочи.pkl")
	require.NoError(t, os.WriteFile(legacy, []byte("legacy"), 0o644))

	require.NoError(t, s.Save(scope, nil))

	_, err := os.Stat(legacy)
	assert.True(t, os.IsNotExist(err))
}

func TestOrganizationStore_ScopesDoNotCollide(t *testing.T) {
	s := NewOrganizationStore(t.TempDir(), zap.NewNop())

	citScope := model.ByCity("Сочи")
	coordScope := model.ByCoordinates(43.5855, 39.7233, 5)

	require.NoError(t, s.Save(citScope, []model.Organization{{Name: "A", Type: "гостиница"}}))
	require.NoError(t, s.Save(coordScope, []model.Organization{{Name: "B", Type: "хостел"}}))

	assert.Equal(t, "A", s.Load(citScope)[0].Name)
	assert.Equal(t, "B", s.Load(coordScope)[0].Name)
}
