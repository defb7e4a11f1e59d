package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/resort-finder/internal/llm"
	"github.com/avc-dev/resort-finder/internal/service"
	"github.com/avc-dev/resort-finder/internal/usecase"
	"go.uber.org/zap"
)

// searchEmailsRequest — тело запроса на запуск поиска email
type searchEmailsRequest struct {
	City string `json:"city"`
}

// SearchEmails обрабатывает POST /api/search_emails: запускает фоновое
// обогащение сохранённого снапшота города email адресами
func (h *Handler) SearchEmails(w http.ResponseWriter, req *http.Request) {
	var request searchEmailsRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode email search request", zap.Error(err))
		h.writeError(w, http.StatusBadRequest, "Некорректное тело запроса")
		return
	}

	if err := h.finder.StartEmailSearch(request.City); err != nil {
		switch {
		case errors.Is(err, usecase.ErrCityRequired):
			h.writeError(w, http.StatusBadRequest, "Город не указан")
		case errors.Is(err, usecase.ErrNoOrganizations):
			h.writeError(w, http.StatusBadRequest, "Сначала найдите организации")
		case errors.Is(err, llm.ErrMissingCredentials):
			h.writeError(w, http.StatusBadRequest, "ProxyAPI credentials не найдены")
		case errors.Is(err, service.ErrAlreadyRunning):
			h.writeError(w, http.StatusConflict, "Поиск email уже запущен")
		default:
			h.logger.Error("failed to start email search", zap.Error(err))
			h.writeError(w, http.StatusInternalServerError, "Не удалось запустить поиск email")
		}
		return
	}

	h.writeJSON(w, http.StatusAccepted, messageResponse{Message: "Поиск email адресов запущен"})
}
