package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avc-dev/resort-finder/internal/maps"
	"github.com/avc-dev/resort-finder/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSearchCities_Found(t *testing.T) {
	finder := &mockFinder{
		SearchCitiesFunc: func(ctx context.Context, name string) ([]model.City, error) {
			return []model.City{
				{
					Name:        "Сочи",
					Coordinates: []float64{39.7233, 43.5855},
					Region:      "Краснодарский край",
					Country:     "Россия",
					FullAddress: "Россия, Краснодарский край, Сочи",
				},
			}, nil
		},
	}
	h := New(finder, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/search_cities",
		strings.NewReader(`{"city":"Сочи"}`))
	w := httptest.NewRecorder()

	h.SearchCities(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp citiesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Cities, 1)
	assert.Equal(t, "Сочи", resp.Cities[0].Name)
	assert.Equal(t, "Краснодарский край", resp.Cities[0].Region)
}

func TestSearchCities_NothingFound(t *testing.T) {
	finder := &mockFinder{
		SearchCitiesFunc: func(ctx context.Context, name string) ([]model.City, error) {
			return nil, maps.ErrNothingFound
		},
	}
	h := New(finder, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/search_cities",
		strings.NewReader(`{"city":"Нигденебург"}`))
	w := httptest.NewRecorder()

	h.SearchCities(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchCities_MissingKey(t *testing.T) {
	finder := &mockFinder{
		SearchCitiesFunc: func(ctx context.Context, name string) ([]model.City, error) {
			return nil, maps.ErrMissingAPIKey
		},
	}
	h := New(finder, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/search_cities",
		strings.NewReader(`{"city":"Сочи"}`))
	w := httptest.NewRecorder()

	h.SearchCities(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchCities_BadBody(t *testing.T) {
	h := New(&mockFinder{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/search_cities",
		strings.NewReader(`not json`))
	w := httptest.NewRecorder()

	h.SearchCities(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
