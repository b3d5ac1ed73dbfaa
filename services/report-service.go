package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/models"
)

// ReportService builds the admin/hr reporting views over the task
// collection.
type ReportService struct {
	tasks TaskStore
	users UserStore
}

func NewReportService(tasks TaskStore, users UserStore) *ReportService {
	return &ReportService{tasks: tasks, users: users}
}

type ReportQuery struct {
	AssignedToID string
	ProjectID    string
	StartDate    string
	EndDate      string
}

type ReportRow struct {
	TaskID       string          `json:"task_id"`
	Title        string          `json:"title"`
	Status       string          `json:"status"`
	Priority     models.Priority `json:"priority"`
	DueDate      string          `json:"due_date"`
	AssignedTo   string          `json:"assigned_to"`
	AssignedToID string          `json:"assigned_to_id"`
	ProjectID    string          `json:"project_id"`
	CreatedBy    string          `json:"created_by"`
	CreatedAt    string          `json:"created_at"`
}

type CompletionStats struct {
	TotalTasks     int     `json:"total_tasks"`
	Completed      int     `json:"completed"`
	InProgress     int     `json:"in_progress"`
	ToDo           int     `json:"todo"`
	Blocked        int     `json:"blocked"`
	CompletionRate float64 `json:"completion_rate"`
}

type CompletionReport struct {
	GeneratedAt string          `json:"generated_at"`
	Filters     []string        `json:"filters,omitempty"`
	Stats       CompletionStats `json:"stats"`
	Rows        []ReportRow     `json:"tasks"`
}

func (s *ReportService) requireAdminOrHR(ctx context.Context, viewerID string) error {
	if viewerID == "" {
		return ErrForbidden
	}
	viewer, err := s.users.Get(ctx, viewerID)
	if err != nil {
		return err
	}
	if viewer == nil || (viewer.Role != models.RoleAdmin && viewer.Role != models.RoleHR) {
		return ErrForbidden
	}
	return nil
}

// TaskCompletion builds the task completion report. Admin and hr only.
// The date range applies to the due date; tasks without a due date pass
// through, matching the range semantics of the dashboard overdue count.
func (s *ReportService) TaskCompletion(ctx context.Context, viewerID string, q ReportQuery) (*CompletionReport, error) {
	if err := s.requireAdminOrHR(ctx, viewerID); err != nil {
		return nil, err
	}

	var start, end time.Time
	if q.StartDate != "" {
		t, err := ParseWhen(q.StartDate)
		if err != nil {
			return nil, Validation("invalid start_date")
		}
		start = t
	}
	if q.EndDate != "" {
		t, err := ParseWhen(q.EndDate)
		if err != nil {
			return nil, Validation("invalid end_date")
		}
		end = t
	}

	var (
		tasks []models.Task
		err   error
	)
	switch {
	case q.AssignedToID != "":
		tasks, err = s.tasks.ListByAssignee(ctx, q.AssignedToID)
	case q.ProjectID != "":
		tasks, err = s.tasks.ListByProject(ctx, q.ProjectID)
	default:
		tasks, err = s.tasks.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	report := &CompletionReport{GeneratedAt: nowISO()}
	if q.AssignedToID != "" {
		report.Filters = append(report.Filters, "User: "+q.AssignedToID)
	}
	if q.ProjectID != "" {
		report.Filters = append(report.Filters, "Project: "+q.ProjectID)
	}
	if q.StartDate != "" {
		report.Filters = append(report.Filters, "Start Date: "+q.StartDate)
	}
	if q.EndDate != "" {
		report.Filters = append(report.Filters, "End Date: "+q.EndDate)
	}

	for i := range tasks {
		t := &tasks[i]
		if q.AssignedToID != "" && t.AssigneeID() != q.AssignedToID {
			continue
		}
		if q.ProjectID != "" && t.ProjectID != q.ProjectID {
			continue
		}
		if t.DueDate != "" {
			if due, err := ParseWhen(t.DueDate); err == nil {
				if !start.IsZero() && due.Before(start) {
					continue
				}
				if !end.IsZero() && due.After(end) {
					continue
				}
			}
		}

		row := ReportRow{
			TaskID:    t.ID,
			Title:     t.Title,
			Status:    string(t.Status),
			Priority:  t.Priority,
			DueDate:   t.DueDate,
			ProjectID: t.ProjectID,
			CreatedAt: t.CreatedAt,
		}
		if t.AssignedTo != nil {
			row.AssignedTo = t.AssignedTo.Name
			row.AssignedToID = t.AssignedTo.UserID
		}
		if row.AssignedTo == "" {
			row.AssignedTo = "Unassigned"
		}
		if t.CreatedBy != nil && t.CreatedBy.Name != "" {
			row.CreatedBy = t.CreatedBy.Name
		} else {
			row.CreatedBy = "Unknown"
		}
		report.Rows = append(report.Rows, row)

		report.Stats.TotalTasks++
		switch t.Status {
		case models.StatusCompleted:
			report.Stats.Completed++
		case models.StatusInProgress:
			report.Stats.InProgress++
		case models.StatusToDo:
			report.Stats.ToDo++
		case models.StatusBlocked:
			report.Stats.Blocked++
		}
	}

	if report.Stats.TotalTasks > 0 {
		rate := float64(report.Stats.Completed) / float64(report.Stats.TotalTasks) * 100
		report.Stats.CompletionRate = math.Round(rate*100) / 100
	}
	return report, nil
}

// WriteCSV renders the report in the exportable layout: metadata, summary
// block, then one row per task.
func (r *CompletionReport) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	rows := [][]string{
		{"Task Completion Report"},
		{"Generated:", r.GeneratedAt},
	}
	if len(r.Filters) > 0 {
		rows = append(rows, []string{"Filters:", strings.Join(r.Filters, ", ")})
	}
	rows = append(rows,
		[]string{},
		[]string{"Summary Statistics"},
		[]string{"Total Tasks", strconv.Itoa(r.Stats.TotalTasks)},
		[]string{"Completed", strconv.Itoa(r.Stats.Completed)},
		[]string{"In Progress", strconv.Itoa(r.Stats.InProgress)},
		[]string{"To Do", strconv.Itoa(r.Stats.ToDo)},
		[]string{"Blocked", strconv.Itoa(r.Stats.Blocked)},
		[]string{"Completion Rate", fmt.Sprintf("%.2f%%", r.Stats.CompletionRate)},
		[]string{},
		[]string{"Task Details"},
		[]string{"Task ID", "Title", "Status", "Priority", "Assignee", "Project ID", "Due Date", "Created By", "Created At"},
	)
	for _, row := range r.Rows {
		rows = append(rows, []string{
			row.TaskID,
			row.Title,
			row.Status,
			strconv.Itoa(int(row.Priority)),
			row.AssignedTo,
			row.ProjectID,
			dateOnly(row.DueDate),
			row.CreatedBy,
			dateOnly(row.CreatedAt),
		})
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func dateOnly(s string) string {
	if len(s) >= 10 {
		return s[:10]
	}
	if s == "" {
		return "N/A"
	}
	return s
}

type WeeklySummary struct {
	WeekStart       string         `json:"week_start"`
	WeekEnd         string         `json:"week_end"`
	TasksCreated    int            `json:"tasks_created"`
	TasksCompleted  int            `json:"tasks_completed"`
	StatusBreakdown map[string]int `json:"status_breakdown"`
}

// WeeklySummary aggregates the tasks created during one week. Admin and hr
// only. The default window starts on the Monday of the current UTC week.
func (s *ReportService) WeeklySummary(ctx context.Context, viewerID, weekStart string) (*WeeklySummary, error) {
	if err := s.requireAdminOrHR(ctx, viewerID); err != nil {
		return nil, err
	}

	var start time.Time
	if weekStart != "" {
		t, err := ParseWhen(weekStart)
		if err != nil {
			return nil, Validation("invalid week_start date format")
		}
		start = t
	} else {
		now := time.Now().UTC()
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		start = start.AddDate(0, 0, -int((start.Weekday()+6)%7))
	}
	end := start.AddDate(0, 0, 7)

	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &WeeklySummary{
		WeekStart:       formatWhen(start),
		WeekEnd:         formatWhen(end),
		StatusBreakdown: map[string]int{},
	}
	for i := range tasks {
		t := &tasks[i]
		created, err := ParseWhen(t.CreatedAt)
		if err != nil || created.Before(start) || !created.Before(end) {
			continue
		}
		summary.TasksCreated++
		summary.StatusBreakdown[string(t.Status)]++
		if t.Status == models.StatusCompleted {
			summary.TasksCompleted++
		}
	}
	return summary, nil
}
