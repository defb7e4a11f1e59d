package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/avc-dev/resort-finder/internal/usecase"
	"go.uber.org/zap"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportExcel обрабатывает GET /api/export_excel: отдаёт таблицу организаций
// области поиска как файл. Отсутствие данных — ошибка, а не пустой файл.
func (h *Handler) ExportExcel(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()

	scope, err := scopeFromQuery(q.Get("city"), q.Get("coordinates"), q.Get("radius"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Укажите город или координаты с радиусом")
		return
	}

	data, filename, err := h.finder.ExportExcel(scope)
	if err != nil {
		if errors.Is(err, usecase.ErrNoExportData) {
			h.writeError(w, http.StatusNotFound, "Нет данных для экспорта")
			return
		}
		h.logger.Error("excel export failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "Ошибка при создании Excel файла")
		return
	}

	w.Header().Set("Content-Type", excelContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		h.logger.Warn("failed to write excel response", zap.Error(err))
	}
}
