package excel

import (
	"bytes"
	"testing"

	"github.com/avc-dev/resort-finder/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExport(t *testing.T) {
	orgs := []model.Organization{
		{
			Name:        "Санаторий \"Здоровье\"",
			Coordinates: []float64{39.7233, 43.5855},
			YandexID:    "101",
			FullAddress: "ул. Лесная, 25, Сочи",
			Website:     "https://zdorovie.ru",
			Email:       "info@zdorovie.ru",
			Type:        "санаторий",
			City:        "Сочи",
		},
		{
			Name:  "Хостел \"Эконом\"",
			Email: model.EmailNotFound,
			Type:  "хостел",
			City:  "Сочи",
		},
	}

	data, err := Export(orgs)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Курортные организации")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Название организации", rows[0][0])
	assert.Equal(t, "Город поиска", rows[0][7])

	// Координаты печатаются как "широта, долгота" с шестью знаками
	assert.Equal(t, "43.585500, 39.723300", rows[1][1])
	assert.Equal(t, "info@zdorovie.ru", rows[1][5])

	// Пустые координаты — пустая ячейка, email с маркером сохраняется как есть
	assert.Equal(t, "Хостел \"Эконом\"", rows[2][0])
	assert.Equal(t, model.EmailNotFound, rows[2][5])
}

func TestExport_EmptyList(t *testing.T) {
	data, err := Export(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Курортные организации")
	require.NoError(t, err)
	assert.Len(t, rows, 1) // только заголовки
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name     string
		scope    model.Scope
		expected string
	}{
		{"Known city", model.ByCity("Сочи"), "sochi.xlsx"},
		{"Known city uppercase", model.ByCity("МОСКВА"), "moscow.xlsx"},
		{"Known city with hyphen", model.ByCity("Ростов-на-Дону"), "rostov_on_don.xlsx"},
		{"Unknown cyrillic city", model.ByCity("Геленджик"), "геленджик.xlsx"},
		{"Unknown cyrillic cities differ", model.ByCity("Дивноморское"), "дивноморское.xlsx"},
		{"Latin city", model.ByCity("Anapa Resort"), "anapa_resort.xlsx"},
		{"Digits and punctuation stripped", model.ByCity("Туапсе 2024!"), "туапсе_.xlsx"},
		{"Coordinates", model.ByCoordinates(43.5855, 39.7233, 5), "coords_43.5855_39.7233_r5.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FileName(tt.scope))
		})
	}
}
