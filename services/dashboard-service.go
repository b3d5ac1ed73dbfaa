package services

import (
	"context"
	"time"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/models"
)

type DashboardService struct {
	tasks *TaskService
}

func NewDashboardService(tasks *TaskService) *DashboardService {
	return &DashboardService{tasks: tasks}
}

type DashboardStats struct {
	TotalTasks        int            `json:"total_tasks"`
	StatusBreakdown   map[string]int `json:"status_breakdown"`
	PriorityBreakdown map[string]int `json:"priority_breakdown"`
	OverdueCount      int            `json:"overdue_count"`
	RecentTasks       []models.Task  `json:"recent_tasks"`
}

func priorityBand(p models.Priority) string {
	switch {
	case p >= 8:
		return "high"
	case p >= 5:
		return "medium"
	default:
		return "low"
	}
}

// Stats aggregates over the viewer's visible tasks, so two users see
// different dashboards for the same data set.
func (s *DashboardService) Stats(ctx context.Context, viewerID string) (*DashboardStats, error) {
	tasks, _, err := s.tasks.ListTasks(ctx, viewerID, ListTasksQuery{Limit: 1000})
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalTasks:        len(tasks),
		StatusBreakdown:   map[string]int{},
		PriorityBreakdown: map[string]int{},
	}
	now := time.Now().UTC()
	for _, t := range tasks {
		stats.StatusBreakdown[string(t.Status)]++
		stats.PriorityBreakdown[priorityBand(t.Priority)]++
		if t.Status != models.StatusCompleted && t.DueDate != "" {
			if due, err := ParseWhen(t.DueDate); err == nil && due.Before(now) {
				stats.OverdueCount++
			}
		}
	}

	recent := tasks
	if len(recent) > 5 {
		recent = recent[:5]
	}
	stats.RecentTasks = recent
	return stats, nil
}
