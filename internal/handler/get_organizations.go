package handler

import (
	"net/http"

	"github.com/avc-dev/resort-finder/internal/model"
)

// organizationsResponse — тело ответа со списком организаций
type organizationsResponse struct {
	Organizations []model.Organization `json:"organizations"`
}

// GetOrganizations обрабатывает GET /api/get_organizations: возвращает
// организации области поиска, предпочитая результаты последнего запуска
// снапшоту на диске
func (h *Handler) GetOrganizations(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()

	scope, err := scopeFromQuery(q.Get("city"), q.Get("coordinates"), q.Get("radius"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Укажите город или координаты с радиусом")
		return
	}

	orgs := h.finder.GetOrganizations(scope)
	if orgs == nil {
		orgs = []model.Organization{}
	}

	h.writeJSON(w, http.StatusOK, organizationsResponse{Organizations: orgs})
}
