package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/avc-dev/resort-finder/internal/maps"
	"github.com/avc-dev/resort-finder/internal/service"
	"github.com/avc-dev/resort-finder/internal/usecase"
	"go.uber.org/zap"
)

// searchOrganizationsRequest — тело запроса на запуск поиска организаций
type searchOrganizationsRequest struct {
	City        string    `json:"city"`
	Coordinates []float64 `json:"coordinates"` // [долгота, широта]
	Radius      float64   `json:"radius"`      // километры
	Types       []string  `json:"types"`
}

// SearchOrganizations обрабатывает POST /api/search_organizations:
// проверяет запрос, запускает фоновый поиск и сразу отвечает подтверждением
func (h *Handler) SearchOrganizations(w http.ResponseWriter, req *http.Request) {
	var request searchOrganizationsRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode search request", zap.Error(err))
		h.writeError(w, http.StatusBadRequest, "Некорректное тело запроса")
		return
	}

	if len(request.Types) == 0 {
		h.writeError(w, http.StatusBadRequest, "Не выбраны типы организаций")
		return
	}

	scope, err := scopeFromBody(request.City, request.Coordinates, request.Radius)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Укажите город или координаты с радиусом")
		return
	}

	if err := h.finder.StartSearch(scope, request.Types); err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyRunning):
			h.writeError(w, http.StatusConflict, "Поиск уже запущен")
		case errors.Is(err, maps.ErrMissingAPIKey):
			h.writeError(w, http.StatusBadRequest, "API ключ не найден")
		case errors.Is(err, usecase.ErrTypesRequired), errors.Is(err, usecase.ErrScopeRequired):
			h.writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to start search", zap.Error(err))
			h.writeError(w, http.StatusInternalServerError, "Не удалось запустить поиск")
		}
		return
	}

	var message string
	if scope.IsCoordinates() {
		lat, lon := scope.Center()
		message = fmt.Sprintf("Поиск организаций в радиусе %g км от точки %.4f, %.4f запущен",
			scope.RadiusKm(), lat, lon)
	} else {
		message = fmt.Sprintf("Поиск организаций в городе %s запущен", scope.City())
	}

	h.writeJSON(w, http.StatusAccepted, messageResponse{Message: message})
}
