package handlers

import (
	"net/http"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/services"
	"github.com/gorilla/mux"
)

type ProjectHandler struct {
	projects    *services.ProjectService
	memberships *services.MembershipService
}

func NewProjectHandler(projects *services.ProjectService, memberships *services.MembershipService) *ProjectHandler {
	return &ProjectHandler{projects: projects, memberships: memberships}
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var in services.CreateProjectInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}
	if in.OwnerID == "" {
		in.OwnerID = viewerID(r)
	}

	project, err := h.projects.CreateProject(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.projects.GetProject(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.ListProjects(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"projects": projects, "count": len(projects)})
}

func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	var in services.UpdateProjectInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	project, err := h.projects.UpdateProject(r.Context(), viewer, mux.Vars(r)["id"], in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) ArchiveProject(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	if err := h.projects.ArchiveProject(r.Context(), viewer, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"archived": true})
}

func (h *ProjectHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	var body struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}

	membership, err := h.memberships.AddMember(r.Context(), viewer, mux.Vars(r)["id"], body.UserID, body.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, membership)
}

func (h *ProjectHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	vars := mux.Vars(r)
	if err := h.memberships.RemoveMember(r.Context(), viewer, vars["id"], vars["userId"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"removed": true})
}

func (h *ProjectHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberships.ListMembers(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"members": members, "count": len(members)})
}
