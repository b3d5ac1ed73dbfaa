package services

import (
	"time"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/models"
	"github.com/google/uuid"
)

// NextDueDate advances a due date by the recurrence interval. The base is
// always the original due date, never the completion time, so a task
// completed late does not drift its schedule.
func NextDueDate(dueDate string, intervalDays int) (string, bool) {
	if dueDate == "" || intervalDays <= 0 {
		return "", false
	}
	due, err := ParseWhen(dueDate)
	if err != nil {
		return "", false
	}
	return formatWhen(due.Add(time.Duration(intervalDays) * 24 * time.Hour)), true
}

// BuildSuccessor synthesizes the next occurrence of a recurring task that
// just completed. Returns nil when the task does not qualify.
func BuildSuccessor(completed *models.Task) *models.Task {
	if completed == nil || !completed.IsRecurring {
		return nil
	}
	nextDue, ok := NextDueDate(completed.DueDate, completed.RecurrenceIntervalDays)
	if !ok {
		return nil
	}

	now := nowISO()
	return &models.Task{
		ID:                     uuid.New().String(),
		Title:                  completed.Title,
		Description:            completed.Description,
		Priority:               completed.Priority,
		Status:                 models.StatusToDo,
		DueDate:                nextDue,
		CreatedAt:              now,
		UpdatedAt:              now,
		CreatedBy:              completed.CreatedBy,
		AssignedTo:             completed.AssignedTo,
		ProjectID:              completed.ProjectID,
		Tags:                   completed.Tags,
		IsRecurring:            true,
		RecurrenceIntervalDays: completed.RecurrenceIntervalDays,
		ParentRecurringTaskID:  completed.ID,
	}
}
