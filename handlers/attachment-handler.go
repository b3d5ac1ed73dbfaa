package handlers

import (
	"net/http"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/services"
	"github.com/gorilla/mux"
)

type AttachmentHandler struct {
	service *services.AttachmentService
}

func NewAttachmentHandler(service *services.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{service: service}
}

func (h *AttachmentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	var in services.UploadAttachmentInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	att, err := h.service.Upload(r.Context(), viewer, mux.Vars(r)["id"], in)
	if err != nil {
		writeError(w, err)
		return
	}

	// The echo omits the payload, clients fetch it by id when needed.
	att.FileData = ""
	writeJSON(w, http.StatusCreated, att)
}

func (h *AttachmentHandler) List(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	attachments, err := h.service.List(r.Context(), viewer, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"attachments": attachments, "count": len(attachments)})
}

func (h *AttachmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	att, err := h.service.Get(r.Context(), viewer, mux.Vars(r)["attachmentId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, att)
}

func (h *AttachmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	if err := h.service.Delete(r.Context(), viewer, mux.Vars(r)["attachmentId"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"archived": true})
}
