package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/resort-finder/internal/maps"
	"github.com/avc-dev/resort-finder/internal/model"
	"github.com/avc-dev/resort-finder/internal/usecase"
	"go.uber.org/zap"
)

// searchCitiesRequest — тело запроса поиска городов
type searchCitiesRequest struct {
	City string `json:"city"`
}

// citiesResponse — тело ответа со списком найденных городов
type citiesResponse struct {
	Cities []model.City `json:"cities"`
}

// SearchCities обрабатывает POST /api/search_cities: синхронно ищет
// населённые пункты по названию через геокодер
func (h *Handler) SearchCities(w http.ResponseWriter, req *http.Request) {
	var request searchCitiesRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode city search request", zap.Error(err))
		h.writeError(w, http.StatusBadRequest, "Некорректное тело запроса")
		return
	}

	cities, err := h.finder.SearchCities(req.Context(), request.City)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCityRequired):
			h.writeError(w, http.StatusBadRequest, "Город не указан")
		case errors.Is(err, maps.ErrNothingFound):
			h.writeError(w, http.StatusNotFound, "Город не найден")
		case errors.Is(err, maps.ErrMissingAPIKey):
			h.writeError(w, http.StatusBadRequest, "API ключ не найден")
		default:
			h.logger.Error("city search failed", zap.Error(err))
			h.writeError(w, http.StatusInternalServerError, "Ошибка поиска города")
		}
		return
	}

	h.writeJSON(w, http.StatusOK, citiesResponse{Cities: cities})
}
