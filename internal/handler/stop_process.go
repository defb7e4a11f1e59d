package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/avc-dev/resort-finder/internal/service"
	"go.uber.org/zap"
)

// stopProcessRequest — тело запроса на остановку фонового процесса
type stopProcessRequest struct {
	ProcessType string `json:"process_type"`
}

// StopProcess обрабатывает POST /api/stop_process: сбрасывает флаг
// названного процесса, не дожидаясь его фактического завершения
func (h *Handler) StopProcess(w http.ResponseWriter, req *http.Request) {
	var request stopProcessRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode stop request", zap.Error(err))
		h.writeError(w, http.StatusBadRequest, "Некорректное тело запроса")
		return
	}

	if err := h.finder.StopProcess(request.ProcessType); err != nil {
		if errors.Is(err, service.ErrUnknownProcess) {
			h.writeError(w, http.StatusBadRequest, "Неизвестный тип процесса")
			return
		}
		h.logger.Error("failed to stop process", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "Не удалось остановить процесс")
		return
	}

	h.writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Процесс %s остановлен", request.ProcessType),
	})
}

// statusResponse — тело ответа /api/get_status
type statusResponse struct {
	Processes          map[string]bool `json:"processes"`
	OrganizationsCount int             `json:"organizations_count"`
}

// GetStatus обрабатывает GET /api/get_status
func (h *Handler) GetStatus(w http.ResponseWriter, req *http.Request) {
	flags, count := h.finder.Status()

	h.writeJSON(w, http.StatusOK, statusResponse{
		Processes:          flags,
		OrganizationsCount: count,
	})
}
