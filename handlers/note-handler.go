package handlers

import (
	"net/http"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/services"
	"github.com/gorilla/mux"
)

type NoteHandler struct {
	service *services.NoteService
}

func NewNoteHandler(service *services.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

type noteBody struct {
	Body string `json:"body"`
}

func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	var body noteBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}

	note, err := h.service.CreateNote(r.Context(), viewer, mux.Vars(r)["id"], body.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	notes, err := h.service.ListNotes(r.Context(), viewer, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"notes": notes, "count": len(notes)})
}

func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	var body noteBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}

	note, err := h.service.UpdateNote(r.Context(), viewer, mux.Vars(r)["noteId"], body.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	if err := h.service.DeleteNote(r.Context(), viewer, mux.Vars(r)["noteId"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"archived": true})
}

func (h *NoteHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	var body noteBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}

	comment, err := h.service.CreateComment(r.Context(), viewer, mux.Vars(r)["id"], body.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

func (h *NoteHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	comments, err := h.service.ListComments(r.Context(), viewer, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"comments": comments, "count": len(comments)})
}

func (h *NoteHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	var body noteBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}

	comment, err := h.service.UpdateComment(r.Context(), viewer, mux.Vars(r)["commentId"], body.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comment)
}

func (h *NoteHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	if err := h.service.DeleteComment(r.Context(), viewer, mux.Vars(r)["commentId"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
