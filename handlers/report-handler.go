package handlers

import (
	"net/http"
	"time"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/logging"
	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/services"
)

type ReportHandler struct {
	service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) TaskCompletion(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	query := r.URL.Query()
	format := query.Get("format")
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "csv" {
		writeErrorMsg(w, http.StatusBadRequest, "invalid format, use json or csv")
		return
	}

	report, err := h.service.TaskCompletion(r.Context(), viewer, services.ReportQuery{
		AssignedToID: query.Get("user_id"),
		ProjectID:    query.Get("project_id"),
		StartDate:    query.Get("start_date"),
		EndDate:      query.Get("end_date"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	if format == "csv" {
		filename := "task_report_" + time.Now().UTC().Format("20060102_150405") + ".csv"
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		if err := report.WriteCSV(w); err != nil {
			logging.Logger.Errorf("Event ID: REPORT_CSV_FAILED, Description: Writing CSV report failed: %v", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) WeeklySummary(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		writeErrorMsg(w, http.StatusUnauthorized, "viewer identity required")
		return
	}

	summary, err := h.service.WeeklySummary(r.Context(), viewer, r.URL.Query().Get("week_start"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
