package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

type TaskStatus string

const (
	StatusToDo       TaskStatus = "To Do"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
	StatusBlocked    TaskStatus = "Blocked"
)

// ParseStatus validates a status string against the closed set.
func ParseStatus(s string) (TaskStatus, error) {
	switch TaskStatus(strings.TrimSpace(s)) {
	case StatusToDo, StatusInProgress, StatusCompleted, StatusBlocked:
		return TaskStatus(strings.TrimSpace(s)), nil
	}
	return "", fmt.Errorf("invalid status %q, must be one of: To Do, In Progress, Completed, Blocked", s)
}

// Priority is a 1-10 scale, 5 by default. Older clients sent label strings
// (Low/Medium/High/Critical) instead of numbers, so the unmarshaller accepts both
// and normalizes at the boundary.
type Priority int

const (
	PriorityLow      Priority = 3
	PriorityMedium   Priority = 5
	PriorityHigh     Priority = 8
	PriorityCritical Priority = 10
)

func (p Priority) Valid() bool {
	return p >= 1 && p <= 10
}

func (p *Priority) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*p = Priority(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("priority must be a number or a label")
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		*p = PriorityLow
	case "medium", "":
		*p = PriorityMedium
	case "high":
		*p = PriorityHigh
	case "critical":
		*p = PriorityCritical
	default:
		return fmt.Errorf("unknown priority label %q", s)
	}
	return nil
}

// UserRef is the denormalized user snapshot embedded on tasks.
type UserRef struct {
	UserID string `bson:"user_id" json:"user_id"`
	Name   string `bson:"name" json:"name"`
	Email  string `bson:"email" json:"email"`
}

type Task struct {
	ID          string     `bson:"_id" json:"task_id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	Priority    Priority   `bson:"priority" json:"priority"`
	Status      TaskStatus `bson:"status" json:"status"`
	DueDate     string     `bson:"due_date" json:"due_date"`
	CreatedAt   string     `bson:"created_at" json:"created_at"`
	UpdatedAt   string     `bson:"updated_at" json:"updated_at"`
	CreatedBy   *UserRef   `bson:"created_by" json:"created_by"`
	AssignedTo  *UserRef   `bson:"assigned_to" json:"assigned_to"`
	ProjectID   string     `bson:"project_id" json:"project_id"`
	Tags        []string   `bson:"tags" json:"tags"`
	Labels      []string   `bson:"labels" json:"labels"`

	Archived   bool   `bson:"archived" json:"archived"`
	ArchivedAt string `bson:"archived_at,omitempty" json:"archived_at,omitempty"`
	ArchivedBy string `bson:"archived_by,omitempty" json:"archived_by,omitempty"`

	IsRecurring            bool   `bson:"is_recurring" json:"is_recurring"`
	RecurrenceIntervalDays int    `bson:"recurrence_interval_days" json:"recurrence_interval_days"`
	ParentRecurringTaskID  string `bson:"parent_recurring_task_id,omitempty" json:"parent_recurring_task_id,omitempty"`

	SubtaskCount          int `bson:"subtask_count" json:"subtask_count"`
	SubtaskCompletedCount int `bson:"subtask_completed_count" json:"subtask_completed_count"`
}

// CreatorID returns the creator's user id, or "" when the snapshot is missing.
func (t *Task) CreatorID() string {
	if t.CreatedBy == nil {
		return ""
	}
	return t.CreatedBy.UserID
}

func (t *Task) AssigneeID() string {
	if t.AssignedTo == nil {
		return ""
	}
	return t.AssignedTo.UserID
}

// RecurrenceRoot reports whether this task heads a recurrence chain.
func (t *Task) RecurrenceRoot() bool {
	return t.IsRecurring && t.ParentRecurringTaskID == ""
}

// CascadePlan is the precomputed document set for an atomic archive batch.
// Everything listed here is committed together or not at all.
type CascadePlan struct {
	TaskID        string
	ArchivedAt    string
	ArchivedBy    string
	SubtaskIDs    []string
	NoteIDs       []string
	AttachmentIDs []string
	TaskLabelIDs  []string
	ChildTaskIDs  []string
}
