package app

import (
	"github.com/avc-dev/resort-finder/internal/handler"
	"github.com/avc-dev/resort-finder/internal/middleware"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Gzip(logger))

	// Routes
	r.Post("/api/search_cities", h.SearchCities)
	r.Post("/api/search_organizations", h.SearchOrganizations)
	r.Post("/api/search_emails", h.SearchEmails)
	r.Post("/api/stop_process", h.StopProcess)
	r.Get("/api/get_organizations", h.GetOrganizations)
	r.Get("/api/get_status", h.GetStatus)
	r.Get("/api/export_excel", h.ExportExcel)

	return r
}
