package handlers

import (
	"net/http"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/services"
)

type ManagerHandler struct {
	service *services.ManagerService
}

func NewManagerHandler(service *services.ManagerService) *ManagerHandler {
	return &ManagerHandler{service: service}
}

func (h *ManagerHandler) TeamTasks(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	tasks, err := h.service.TeamTasks(r.Context(), viewer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks, "count": len(tasks)})
}
