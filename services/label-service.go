package services

import (
	"context"
	"strings"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/models"
	"github.com/google/uuid"
)

type LabelService struct {
	tasks  TaskStore
	labels LabelStore
	viewer TaskViewer
}

func NewLabelService(tasks TaskStore, labels LabelStore, viewer TaskViewer) *LabelService {
	return &LabelService{tasks: tasks, labels: labels, viewer: viewer}
}

func (s *LabelService) CreateLabel(ctx context.Context, name, color string) (*models.Label, error) {
	if strings.TrimSpace(name) == "" {
		return nil, Validation("label name must not be empty")
	}
	label := &models.Label{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Color:     color,
		CreatedAt: nowISO(),
	}
	if err := s.labels.Insert(ctx, label); err != nil {
		return nil, err
	}
	return label, nil
}

func (s *LabelService) ListLabels(ctx context.Context) ([]models.Label, error) {
	return s.labels.ListAll(ctx)
}

// AssignLabel links a label to a task. The composite junction id makes a
// duplicate assignment a conflict, which is reported before the write.
func (s *LabelService) AssignLabel(ctx context.Context, viewerID, taskID, labelID string) (*models.TaskLabel, error) {
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil || !s.viewer.CanViewTask(ctx, viewerID, task) {
		return nil, ErrNotFound
	}

	label, err := s.labels.Get(ctx, labelID)
	if err != nil {
		return nil, err
	}
	if label == nil {
		return nil, ErrNotFound
	}

	existing, err := s.labels.GetAssignment(ctx, taskID, labelID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	junction := &models.TaskLabel{
		ID:         models.TaskLabelID(taskID, labelID),
		TaskID:     taskID,
		LabelID:    labelID,
		AssignedAt: nowISO(),
	}
	if err := s.labels.Assign(ctx, junction); err != nil {
		return nil, err
	}
	return junction, nil
}

func (s *LabelService) UnassignLabel(ctx context.Context, viewerID, taskID, labelID string) error {
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return err
	}
	if task == nil || !s.viewer.CanViewTask(ctx, viewerID, task) {
		return ErrNotFound
	}

	existing, err := s.labels.GetAssignment(ctx, taskID, labelID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.labels.Unassign(ctx, taskID, labelID)
}

func (s *LabelService) ListTaskLabels(ctx context.Context, viewerID, taskID string) ([]models.Label, error) {
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil || !s.viewer.CanViewTask(ctx, viewerID, task) {
		return nil, ErrNotFound
	}

	junctions, err := s.labels.ListAssignmentsByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	labels := make([]models.Label, 0, len(junctions))
	for _, j := range junctions {
		label, err := s.labels.Get(ctx, j.LabelID)
		if err != nil {
			return nil, err
		}
		if label != nil {
			labels = append(labels, *label)
		}
	}
	return labels, nil
}
