package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"
	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/service"
)

// AdminHandler serves the admin-console endpoints
type AdminHandler struct {
	statsSvc *service.StatsService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(statsSvc *service.StatsService) *AdminHandler {
	return &AdminHandler{statsSvc: statsSvc}
}

// Stats handles GET /v1/admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsSvc.Distribution(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// ListProfiles handles GET /v1/admin/profiles
func (h *AdminHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	if archetype := r.URL.Query().Get("archetype"); archetype != "" {
		profiles, err := h.statsSvc.ProfilesByArchetype(r.Context(), model.Archetype(archetype))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"profiles": profiles})
		return
	}

	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	profiles, err := h.statsSvc.RecentProfiles(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"profiles": profiles})
}

// GetProfile handles GET /v1/admin/profiles/{id}
func (h *AdminHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	profile, err := h.statsSvc.ProfileByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
