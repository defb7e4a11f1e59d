package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avc-dev/resort-finder/internal/model"
	"go.uber.org/zap"
)

// Finder определяет интерфейс бизнес-логики, нужной HTTP слою
type Finder interface {
	StartSearch(scope model.Scope, categories []string) error
	StartEmailSearch(city string) error
	GetOrganizations(scope model.Scope) []model.Organization
	SearchCities(ctx context.Context, name string) ([]model.City, error)
	StopProcess(kind string) error
	Status() (map[string]bool, int)
	ExportExcel(scope model.Scope) ([]byte, string, error)
}

// Handler обслуживает HTTP API сервиса
type Handler struct {
	finder Finder
	logger *zap.Logger
}

// New создает новый экземпляр Handler
func New(finder Finder, logger *zap.Logger) *Handler {
	return &Handler{
		finder: finder,
		logger: logger,
	}
}

// messageResponse — тело успешного ответа асинхронных эндпоинтов
type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse — тело ответа с ошибкой
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON сериализует ответ с указанным статусом
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("failed to encode response", zap.Error(err))
	}
}

// writeError отправляет структурированную ошибку
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{Error: message})
}
