package handlers

import (
	"net/http"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/services"
)

type DashboardHandler struct {
	service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	stats, err := h.service.Stats(r.Context(), viewer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
