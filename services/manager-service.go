package services

import (
	"context"
	"sort"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/logging"
	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/models"
)

type ManagerService struct {
	tasks TaskStore
	users UserStore
}

func NewManagerService(tasks TaskStore, users UserStore) *ManagerService {
	return &ManagerService{tasks: tasks, users: users}
}

// TeamTasks collects the open tasks of a manager's direct reports, one
// level deep. Manager-level roles only.
func (s *ManagerService) TeamTasks(ctx context.Context, managerID string) ([]models.Task, error) {
	manager, err := s.users.Get(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if manager == nil || !manager.Role.ManagerOrAbove() {
		return nil, ErrForbidden
	}

	reports, err := s.users.ListByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}

	seen := map[string]models.Task{}
	collect := func(tasks []models.Task, err error, reportID string) {
		if err != nil {
			logging.Logger.Warnf("Event ID: TEAM_TASKS_DEGRADED, Description: Task scan for report %s failed: %v", reportID, err)
			return
		}
		for _, t := range tasks {
			if !t.Archived {
				seen[t.ID] = t
			}
		}
	}
	for _, report := range reports {
		created, err := s.tasks.ListByCreator(ctx, report.ID)
		collect(created, err, report.ID)
		assigned, err := s.tasks.ListByAssignee(ctx, report.ID)
		collect(assigned, err, report.ID)
	}

	tasks := make([]models.Task, 0, len(seen))
	for _, t := range seen {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt > tasks[j].CreatedAt
	})
	return tasks, nil
}
