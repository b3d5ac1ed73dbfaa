package services

import (
	"context"
	"strings"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/logging"
	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/models"
	"github.com/google/uuid"
)

// TaskViewer is the slice of the task service the subtask service needs for
// completion toggles, which any viewer with task visibility may perform.
type TaskViewer interface {
	CanViewTask(ctx context.Context, viewerID string, task *models.Task) bool
}

type SubtaskService struct {
	tasks    TaskStore
	subtasks SubtaskStore
	viewer   TaskViewer
}

func NewSubtaskService(tasks TaskStore, subtasks SubtaskStore, viewer TaskViewer) *SubtaskService {
	return &SubtaskService{tasks: tasks, subtasks: subtasks, viewer: viewer}
}

func (s *SubtaskService) parentForCreator(ctx context.Context, viewerID, taskID string) (*models.Task, error) {
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrNotFound
	}
	if task.CreatorID() != viewerID {
		return nil, ErrForbidden
	}
	return task, nil
}

// bumpCounters adjusts the parent's denormalized counters. Failures degrade
// the outcome but never undo the subtask write that already happened.
func (s *SubtaskService) bumpCounters(ctx context.Context, taskID string, total, completed int, outcome *Outcome) {
	if total == 0 && completed == 0 {
		return
	}
	if err := s.tasks.IncrementSubtaskCounts(ctx, taskID, total, completed); err != nil {
		logging.Logger.Warnf("Event ID: SUBTASK_COUNTER_DEGRADED, Description: Counter update on task %s failed: %v", taskID, err)
		outcome.Degrade("parent counter update failed")
	}
}

// CreateSubtask is creator-only.
func (s *SubtaskService) CreateSubtask(ctx context.Context, viewerID, taskID string, in SubtaskInput) (*models.Subtask, Outcome, error) {
	outcome := Outcome{}
	if strings.TrimSpace(in.Title) == "" {
		return nil, outcome, Validation("subtask title must not be empty")
	}
	if in.DueDate != "" {
		if _, err := ParseWhen(in.DueDate); err != nil {
			return nil, outcome, Validation("due_date is not a recognized timestamp")
		}
	}

	if _, err := s.parentForCreator(ctx, viewerID, taskID); err != nil {
		return nil, outcome, err
	}

	st := &models.Subtask{
		ID:          uuid.New().String(),
		TaskID:      taskID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		DueDate:     in.DueDate,
		CreatedBy:   viewerID,
		CreatedAt:   nowISO(),
	}
	if err := s.subtasks.Insert(ctx, st); err != nil {
		return nil, outcome, err
	}
	outcome.Applied = true
	s.bumpCounters(ctx, taskID, 1, 0, &outcome)
	return st, outcome, nil
}

func (s *SubtaskService) ListSubtasks(ctx context.Context, viewerID, taskID string) ([]models.Subtask, error) {
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil || !s.viewer.CanViewTask(ctx, viewerID, task) {
		return nil, ErrNotFound
	}
	subtasks, err := s.subtasks.ListByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	active := subtasks[:0]
	for _, st := range subtasks {
		if !st.Archived {
			active = append(active, st)
		}
	}
	return active, nil
}

// UpdateSubtask is creator-only and does not touch completion state.
func (s *SubtaskService) UpdateSubtask(ctx context.Context, viewerID, taskID, subtaskID string, in SubtaskInput) (*models.Subtask, error) {
	if _, err := s.parentForCreator(ctx, viewerID, taskID); err != nil {
		return nil, err
	}

	st, err := s.subtasks.Get(ctx, subtaskID)
	if err != nil {
		return nil, err
	}
	if st == nil || st.TaskID != taskID || st.Archived {
		return nil, ErrNotFound
	}

	if in.Title != "" {
		st.Title = strings.TrimSpace(in.Title)
	}
	if in.Description != "" {
		st.Description = in.Description
	}
	if in.DueDate != "" {
		if _, err := ParseWhen(in.DueDate); err != nil {
			return nil, Validation("due_date is not a recognized timestamp")
		}
		st.DueDate = in.DueDate
	}
	if err := s.subtasks.Replace(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// DeleteSubtask archives the subtask and decrements the parent counters.
func (s *SubtaskService) DeleteSubtask(ctx context.Context, viewerID, taskID, subtaskID string) (Outcome, error) {
	outcome := Outcome{}
	if _, err := s.parentForCreator(ctx, viewerID, taskID); err != nil {
		return outcome, err
	}

	st, err := s.subtasks.Get(ctx, subtaskID)
	if err != nil {
		return outcome, err
	}
	if st == nil || st.TaskID != taskID || st.Archived {
		return outcome, ErrNotFound
	}

	st.Archived = true
	st.ArchivedAt = nowISO()
	if err := s.subtasks.Replace(ctx, st); err != nil {
		return outcome, err
	}
	outcome.Applied = true

	completedDelta := 0
	if st.Completed {
		completedDelta = -1
	}
	s.bumpCounters(ctx, taskID, -1, completedDelta, &outcome)
	return outcome, nil
}

// ToggleComplete flips completion. Any viewer who can see the parent task
// may toggle, not just the creator.
func (s *SubtaskService) ToggleComplete(ctx context.Context, viewerID, taskID, subtaskID string, completed bool) (*models.Subtask, Outcome, error) {
	outcome := Outcome{}

	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return nil, outcome, err
	}
	if task == nil || !s.viewer.CanViewTask(ctx, viewerID, task) {
		return nil, outcome, ErrNotFound
	}

	st, err := s.subtasks.Get(ctx, subtaskID)
	if err != nil {
		return nil, outcome, err
	}
	if st == nil || st.TaskID != taskID || st.Archived {
		return nil, outcome, ErrNotFound
	}

	if st.Completed == completed {
		outcome.Applied = true
		return st, outcome, nil
	}

	st.Completed = completed
	if completed {
		st.CompletedAt = nowISO()
		st.CompletedBy = viewerID
	} else {
		st.CompletedAt = ""
		st.CompletedBy = ""
	}
	if err := s.subtasks.Replace(ctx, st); err != nil {
		return nil, outcome, err
	}
	outcome.Applied = true

	delta := 1
	if !completed {
		delta = -1
	}
	s.bumpCounters(ctx, taskID, 0, delta, &outcome)
	return st, outcome, nil
}
