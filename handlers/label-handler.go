package handlers

import (
	"net/http"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/services"
	"github.com/gorilla/mux"
)

type LabelHandler struct {
	service *services.LabelService
}

func NewLabelHandler(service *services.LabelService) *LabelHandler {
	return &LabelHandler{service: service}
}

func (h *LabelHandler) CreateLabel(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}

	label, err := h.service.CreateLabel(r.Context(), body.Name, body.Color)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, label)
}

func (h *LabelHandler) ListLabels(w http.ResponseWriter, r *http.Request) {
	labels, err := h.service.ListLabels(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"labels": labels, "count": len(labels)})
}

func (h *LabelHandler) AssignLabel(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	vars := mux.Vars(r)
	junction, err := h.service.AssignLabel(r.Context(), viewer, vars["id"], vars["labelId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, junction)
}

func (h *LabelHandler) UnassignLabel(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	vars := mux.Vars(r)
	if err := h.service.UnassignLabel(r.Context(), viewer, vars["id"], vars["labelId"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"removed": true})
}

func (h *LabelHandler) ListTaskLabels(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	labels, err := h.service.ListTaskLabels(r.Context(), viewer, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"labels": labels, "count": len(labels)})
}
