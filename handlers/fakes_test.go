package handlers

import (
	"context"
	"sort"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/models"
	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/services"
)

// memStore is a map-backed stand-in for the document store, enough to run
// the handlers end to end without MongoDB.
type memStore struct {
	tasks       map[string]*models.Task
	subtasks    map[string]*models.Subtask
	users       map[string]*models.User
	memberships map[string]*models.Membership
}

func newMemStore() *memStore {
	return &memStore{
		tasks:       map[string]*models.Task{},
		subtasks:    map[string]*models.Subtask{},
		users:       map[string]*models.User{},
		memberships: map[string]*models.Membership{},
	}
}

func (m *memStore) Get(_ context.Context, id string) (*models.Task, error) {
	return m.tasks[id], nil
}

func (m *memStore) Insert(_ context.Context, task *models.Task) error {
	m.tasks[task.ID] = task
	return nil
}

func (m *memStore) InsertWithSubtasks(_ context.Context, task *models.Task, subtasks []*models.Subtask) error {
	m.tasks[task.ID] = task
	for _, st := range subtasks {
		m.subtasks[st.ID] = st
	}
	return nil
}

func (m *memStore) Replace(_ context.Context, task *models.Task) error {
	m.tasks[task.ID] = task
	return nil
}

func (m *memStore) IncrementSubtaskCounts(_ context.Context, taskID string, total, completed int) error {
	if task, ok := m.tasks[taskID]; ok {
		task.SubtaskCount += total
		task.SubtaskCompletedCount += completed
	}
	return nil
}

func (m *memStore) listWhere(pred func(*models.Task) bool) []models.Task {
	var out []models.Task
	for _, t := range m.tasks {
		if pred(t) {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out
}

func (m *memStore) ListByCreator(_ context.Context, userID string) ([]models.Task, error) {
	return m.listWhere(func(t *models.Task) bool { return t.CreatorID() == userID }), nil
}

func (m *memStore) ListByAssignee(_ context.Context, userID string) ([]models.Task, error) {
	return m.listWhere(func(t *models.Task) bool { return t.AssigneeID() == userID }), nil
}

func (m *memStore) ListByProject(_ context.Context, projectID string) ([]models.Task, error) {
	return m.listWhere(func(t *models.Task) bool { return t.ProjectID == projectID }), nil
}

func (m *memStore) ListAll(_ context.Context) ([]models.Task, error) {
	return m.listWhere(func(*models.Task) bool { return true }), nil
}

func (m *memStore) ListChildren(_ context.Context, parentID string) ([]models.Task, error) {
	return m.listWhere(func(t *models.Task) bool { return t.ParentRecurringTaskID == parentID }), nil
}

func (m *memStore) ListDueBetween(_ context.Context, from, to string) ([]models.Task, error) {
	return m.listWhere(func(t *models.Task) bool {
		return !t.Archived && t.DueDate >= from && t.DueDate < to
	}), nil
}

func (m *memStore) ArchiveCascade(_ context.Context, plan models.CascadePlan) error {
	if task, ok := m.tasks[plan.TaskID]; ok {
		task.Archived = true
		task.ArchivedAt = plan.ArchivedAt
		task.ArchivedBy = plan.ArchivedBy
	}
	for _, id := range plan.SubtaskIDs {
		if st, ok := m.subtasks[id]; ok {
			st.Archived = true
			st.ArchivedAt = plan.ArchivedAt
		}
	}
	for _, id := range plan.ChildTaskIDs {
		if task, ok := m.tasks[id]; ok {
			task.Archived = true
			task.ArchivedAt = plan.ArchivedAt
			task.ArchivedBy = plan.ArchivedBy
		}
	}
	return nil
}

// Subtask store methods, same backing maps.

type memSubtasks struct{ m *memStore }

func (s memSubtasks) Get(_ context.Context, id string) (*models.Subtask, error) {
	return s.m.subtasks[id], nil
}

func (s memSubtasks) Insert(_ context.Context, st *models.Subtask) error {
	s.m.subtasks[st.ID] = st
	return nil
}

func (s memSubtasks) Replace(_ context.Context, st *models.Subtask) error {
	s.m.subtasks[st.ID] = st
	return nil
}

func (s memSubtasks) ListByTask(_ context.Context, taskID string) ([]models.Subtask, error) {
	var out []models.Subtask
	for _, st := range s.m.subtasks {
		if st.TaskID == taskID {
			out = append(out, *st)
		}
	}
	return out, nil
}

type memUsers struct{ m *memStore }

func (u memUsers) Get(_ context.Context, id string) (*models.User, error) {
	return u.m.users[id], nil
}

func (u memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range u.m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (u memUsers) Insert(_ context.Context, user *models.User) error {
	u.m.users[user.ID] = user
	return nil
}

func (u memUsers) Replace(_ context.Context, user *models.User) error {
	u.m.users[user.ID] = user
	return nil
}

func (u memUsers) Delete(_ context.Context, id string) error {
	delete(u.m.users, id)
	return nil
}

func (u memUsers) ListAll(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, user := range u.m.users {
		out = append(out, *user)
	}
	return out, nil
}

func (u memUsers) ListByManager(_ context.Context, managerID string) ([]models.User, error) {
	var out []models.User
	for _, user := range u.m.users {
		if user.ManagerID == managerID {
			out = append(out, *user)
		}
	}
	return out, nil
}

type memMemberships struct{ m *memStore }

func (s memMemberships) Get(_ context.Context, projectID, userID string) (*models.Membership, error) {
	return s.m.memberships[models.MembershipID(projectID, userID)], nil
}

func (s memMemberships) Insert(_ context.Context, mem *models.Membership) error {
	s.m.memberships[mem.ID] = mem
	return nil
}

func (s memMemberships) Delete(_ context.Context, projectID, userID string) error {
	delete(s.m.memberships, models.MembershipID(projectID, userID))
	return nil
}

func (s memMemberships) ListByProject(_ context.Context, projectID string) ([]models.Membership, error) {
	var out []models.Membership
	for _, mem := range s.m.memberships {
		if mem.ProjectID == projectID {
			out = append(out, *mem)
		}
	}
	return out, nil
}

func (s memMemberships) ListByUser(_ context.Context, userID string) ([]models.Membership, error) {
	var out []models.Membership
	for _, mem := range s.m.memberships {
		if mem.UserID == userID {
			out = append(out, *mem)
		}
	}
	return out, nil
}

// Empty stubs for the stores the handler tests never touch.

type noNotes struct{}

func (noNotes) Get(context.Context, string) (*models.Note, error)          { return nil, nil }
func (noNotes) Insert(context.Context, *models.Note) error                { return nil }
func (noNotes) Replace(context.Context, *models.Note) error               { return nil }
func (noNotes) ListByTask(context.Context, string) ([]models.Note, error) { return nil, nil }
func (noNotes) GetComment(context.Context, string) (*models.Comment, error) {
	return nil, nil
}
func (noNotes) InsertComment(context.Context, *models.Comment) error  { return nil }
func (noNotes) ReplaceComment(context.Context, *models.Comment) error { return nil }
func (noNotes) DeleteComment(context.Context, string) error           { return nil }
func (noNotes) ListCommentsByTask(context.Context, string) ([]models.Comment, error) {
	return nil, nil
}

type noAttachments struct{}

func (noAttachments) Get(context.Context, string) (*models.Attachment, error) { return nil, nil }
func (noAttachments) Insert(context.Context, *models.Attachment) error        { return nil }
func (noAttachments) Archive(context.Context, string, string) error           { return nil }
func (noAttachments) ListByTask(context.Context, string) ([]models.Attachment, error) {
	return nil, nil
}

type noLabels struct{}

func (noLabels) Get(context.Context, string) (*models.Label, error)     { return nil, nil }
func (noLabels) Insert(context.Context, *models.Label) error            { return nil }
func (noLabels) ListAll(context.Context) ([]models.Label, error)        { return nil, nil }
func (noLabels) Assign(context.Context, *models.TaskLabel) error        { return nil }
func (noLabels) Unassign(context.Context, string, string) error         { return nil }
func (noLabels) GetAssignment(context.Context, string, string) (*models.TaskLabel, error) {
	return nil, nil
}
func (noLabels) ListAssignmentsByTask(context.Context, string) ([]models.TaskLabel, error) {
	return nil, nil
}
func (noLabels) ListAssignmentsByLabel(context.Context, string) ([]models.TaskLabel, error) {
	return nil, nil
}

type noopNotifier struct{}

func (noopNotifier) NotifyTaskChanged(context.Context, *models.Task, []string, string, string) services.Outcome {
	return services.Outcome{Applied: true}
}

// newTaskFixture wires a real task service over the in-memory store.
func newTaskFixture() (*memStore, *services.TaskService) {
	store := newMemStore()
	svc := services.NewTaskService(
		store,
		memSubtasks{store},
		memUsers{store},
		memMemberships{store},
		noNotes{},
		noAttachments{},
		noLabels{},
		noopNotifier{},
	)
	return store, svc
}
