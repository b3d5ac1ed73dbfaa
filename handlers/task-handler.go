package handlers

import (
	"net/http"
	"strconv"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/logging"
	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/services"
	"github.com/gorilla/mux"
)

type TaskHandler struct {
	service *services.TaskService
}

func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var in services.CreateTaskInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}
	if in.CreatedByID == "" {
		in.CreatedByID = viewerID(r)
	}

	task, err := h.service.CreateTask(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	logging.Logger.Infof("Event ID: TASK_CREATE_OK, Description: Task %s created by %s", task.ID, in.CreatedByID)
	writeJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))
	q := services.ListTasksQuery{
		ProjectID:       query.Get("project_id"),
		AssignedToID:    query.Get("assigned_to_id"),
		LabelID:         query.Get("label_id"),
		Limit:           limit,
		IncludeArchived: query.Get("include_archived") == "true",
		Debug:           query.Get("debug") == "true",
	}

	tasks, sources, err := h.service.ListTasks(r.Context(), viewer, q)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := map[string]interface{}{
		"tasks": tasks,
		"count": len(tasks),
	}
	if sources != nil {
		resp["visibility_sources"] = sources
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	task, err := h.service.GetTask(r.Context(), viewer, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	var in services.UpdateTaskInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.service.UpdateTask(r.Context(), viewer, mux.Vars(r)["id"], in)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := map[string]interface{}{"task": result.Task}
	if result.NextRecurringTaskID != "" {
		resp["next_recurring_task_id"] = result.NextRecurringTaskID
	}
	if len(result.Effects.Degraded) > 0 {
		resp["degraded"] = result.Effects.Degraded
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	outcome, err := h.service.DeleteTask(r.Context(), viewer, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	resp := map[string]interface{}{
		"archived":         true,
		"cascade_archived": true,
	}
	if len(outcome.Degraded) > 0 {
		resp["degraded"] = outcome.Degraded
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *TaskHandler) ReassignTask(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	var body struct {
		AssignedToID string `json:"assigned_to_id"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}

	task, err := h.service.ReassignTask(r.Context(), viewer, mux.Vars(r)["id"], body.AssignedToID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}
