package handlers

import (
	"net/http"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/services"
	"github.com/gorilla/mux"
)

type SubtaskHandler struct {
	service *services.SubtaskService
}

func NewSubtaskHandler(service *services.SubtaskService) *SubtaskHandler {
	return &SubtaskHandler{service: service}
}

func (h *SubtaskHandler) CreateSubtask(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	var in services.SubtaskInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	st, outcome, err := h.service.CreateSubtask(r.Context(), viewer, mux.Vars(r)["id"], in)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := map[string]interface{}{"subtask": st}
	if len(outcome.Degraded) > 0 {
		resp["degraded"] = outcome.Degraded
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *SubtaskHandler) ListSubtasks(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	subtasks, err := h.service.ListSubtasks(r.Context(), viewer, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"subtasks": subtasks, "count": len(subtasks)})
}

func (h *SubtaskHandler) UpdateSubtask(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	var in services.SubtaskInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	vars := mux.Vars(r)
	st, err := h.service.UpdateSubtask(r.Context(), viewer, vars["id"], vars["subtaskId"], in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *SubtaskHandler) DeleteSubtask(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	vars := mux.Vars(r)
	outcome, err := h.service.DeleteSubtask(r.Context(), viewer, vars["id"], vars["subtaskId"])
	if err != nil {
		writeError(w, err)
		return
	}

	resp := map[string]interface{}{"deleted": true}
	if len(outcome.Degraded) > 0 {
		resp["degraded"] = outcome.Degraded
	}
	writeJSON(w, http.StatusOK, resp)
}

// ToggleComplete is open to any viewer who can see the parent task.
func (h *SubtaskHandler) ToggleComplete(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	var body struct {
		Completed bool `json:"completed"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}

	vars := mux.Vars(r)
	st, outcome, err := h.service.ToggleComplete(r.Context(), viewer, vars["id"], vars["subtaskId"], body.Completed)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := map[string]interface{}{"subtask": st}
	if len(outcome.Degraded) > 0 {
		resp["degraded"] = outcome.Degraded
	}
	writeJSON(w, http.StatusOK, resp)
}
