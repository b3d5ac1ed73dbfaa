package services

import (
	"context"
	"errors"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/models"
)

var errStore = errors.New("store unavailable")

type fakeTaskStore struct {
	GetFunc                    func(ctx context.Context, id string) (*models.Task, error)
	InsertFunc                 func(ctx context.Context, task *models.Task) error
	InsertWithSubtasksFunc     func(ctx context.Context, task *models.Task, subtasks []*models.Subtask) error
	ReplaceFunc                func(ctx context.Context, task *models.Task) error
	IncrementSubtaskCountsFunc func(ctx context.Context, taskID string, total, completed int) error
	ListByCreatorFunc          func(ctx context.Context, userID string) ([]models.Task, error)
	ListByAssigneeFunc         func(ctx context.Context, userID string) ([]models.Task, error)
	ListByProjectFunc          func(ctx context.Context, projectID string) ([]models.Task, error)
	ListAllFunc                func(ctx context.Context) ([]models.Task, error)
	ListChildrenFunc           func(ctx context.Context, parentID string) ([]models.Task, error)
	ListDueBetweenFunc         func(ctx context.Context, from, to string) ([]models.Task, error)
	ArchiveCascadeFunc         func(ctx context.Context, plan models.CascadePlan) error
}

func (f *fakeTaskStore) Get(ctx context.Context, id string) (*models.Task, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, id)
	}
	return nil, nil
}

func (f *fakeTaskStore) Insert(ctx context.Context, task *models.Task) error {
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, task)
	}
	return nil
}

func (f *fakeTaskStore) InsertWithSubtasks(ctx context.Context, task *models.Task, subtasks []*models.Subtask) error {
	if f.InsertWithSubtasksFunc != nil {
		return f.InsertWithSubtasksFunc(ctx, task, subtasks)
	}
	return nil
}

func (f *fakeTaskStore) Replace(ctx context.Context, task *models.Task) error {
	if f.ReplaceFunc != nil {
		return f.ReplaceFunc(ctx, task)
	}
	return nil
}

func (f *fakeTaskStore) IncrementSubtaskCounts(ctx context.Context, taskID string, total, completed int) error {
	if f.IncrementSubtaskCountsFunc != nil {
		return f.IncrementSubtaskCountsFunc(ctx, taskID, total, completed)
	}
	return nil
}

func (f *fakeTaskStore) ListByCreator(ctx context.Context, userID string) ([]models.Task, error) {
	if f.ListByCreatorFunc != nil {
		return f.ListByCreatorFunc(ctx, userID)
	}
	return nil, nil
}

func (f *fakeTaskStore) ListByAssignee(ctx context.Context, userID string) ([]models.Task, error) {
	if f.ListByAssigneeFunc != nil {
		return f.ListByAssigneeFunc(ctx, userID)
	}
	return nil, nil
}

func (f *fakeTaskStore) ListByProject(ctx context.Context, projectID string) ([]models.Task, error) {
	if f.ListByProjectFunc != nil {
		return f.ListByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (f *fakeTaskStore) ListAll(ctx context.Context) ([]models.Task, error) {
	if f.ListAllFunc != nil {
		return f.ListAllFunc(ctx)
	}
	return nil, nil
}

func (f *fakeTaskStore) ListChildren(ctx context.Context, parentID string) ([]models.Task, error) {
	if f.ListChildrenFunc != nil {
		return f.ListChildrenFunc(ctx, parentID)
	}
	return nil, nil
}

func (f *fakeTaskStore) ListDueBetween(ctx context.Context, from, to string) ([]models.Task, error) {
	if f.ListDueBetweenFunc != nil {
		return f.ListDueBetweenFunc(ctx, from, to)
	}
	return nil, nil
}

func (f *fakeTaskStore) ArchiveCascade(ctx context.Context, plan models.CascadePlan) error {
	if f.ArchiveCascadeFunc != nil {
		return f.ArchiveCascadeFunc(ctx, plan)
	}
	return nil
}

type fakeSubtaskStore struct {
	GetFunc        func(ctx context.Context, id string) (*models.Subtask, error)
	InsertFunc     func(ctx context.Context, st *models.Subtask) error
	ReplaceFunc    func(ctx context.Context, st *models.Subtask) error
	ListByTaskFunc func(ctx context.Context, taskID string) ([]models.Subtask, error)
}

func (f *fakeSubtaskStore) Get(ctx context.Context, id string) (*models.Subtask, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, id)
	}
	return nil, nil
}

func (f *fakeSubtaskStore) Insert(ctx context.Context, st *models.Subtask) error {
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, st)
	}
	return nil
}

func (f *fakeSubtaskStore) Replace(ctx context.Context, st *models.Subtask) error {
	if f.ReplaceFunc != nil {
		return f.ReplaceFunc(ctx, st)
	}
	return nil
}

func (f *fakeSubtaskStore) ListByTask(ctx context.Context, taskID string) ([]models.Subtask, error) {
	if f.ListByTaskFunc != nil {
		return f.ListByTaskFunc(ctx, taskID)
	}
	return nil, nil
}

type fakeUserStore struct {
	GetFunc           func(ctx context.Context, id string) (*models.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*models.User, error)
	InsertFunc        func(ctx context.Context, user *models.User) error
	ReplaceFunc       func(ctx context.Context, user *models.User) error
	DeleteFunc        func(ctx context.Context, id string) error
	ListAllFunc       func(ctx context.Context) ([]models.User, error)
	ListByManagerFunc func(ctx context.Context, managerID string) ([]models.User, error)
}

func (f *fakeUserStore) Get(ctx context.Context, id string) (*models.User, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, id)
	}
	return nil, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.GetByEmailFunc != nil {
		return f.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (f *fakeUserStore) Insert(ctx context.Context, user *models.User) error {
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, user)
	}
	return nil
}

func (f *fakeUserStore) Replace(ctx context.Context, user *models.User) error {
	if f.ReplaceFunc != nil {
		return f.ReplaceFunc(ctx, user)
	}
	return nil
}

func (f *fakeUserStore) Delete(ctx context.Context, id string) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}
	return nil
}

func (f *fakeUserStore) ListAll(ctx context.Context) ([]models.User, error) {
	if f.ListAllFunc != nil {
		return f.ListAllFunc(ctx)
	}
	return nil, nil
}

func (f *fakeUserStore) ListByManager(ctx context.Context, managerID string) ([]models.User, error) {
	if f.ListByManagerFunc != nil {
		return f.ListByManagerFunc(ctx, managerID)
	}
	return nil, nil
}

type fakeMembershipStore struct {
	GetFunc           func(ctx context.Context, projectID, userID string) (*models.Membership, error)
	InsertFunc        func(ctx context.Context, m *models.Membership) error
	DeleteFunc        func(ctx context.Context, projectID, userID string) error
	ListByProjectFunc func(ctx context.Context, projectID string) ([]models.Membership, error)
	ListByUserFunc    func(ctx context.Context, userID string) ([]models.Membership, error)
}

func (f *fakeMembershipStore) Get(ctx context.Context, projectID, userID string) (*models.Membership, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, projectID, userID)
	}
	return nil, nil
}

func (f *fakeMembershipStore) Insert(ctx context.Context, m *models.Membership) error {
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, m)
	}
	return nil
}

func (f *fakeMembershipStore) Delete(ctx context.Context, projectID, userID string) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, projectID, userID)
	}
	return nil
}

func (f *fakeMembershipStore) ListByProject(ctx context.Context, projectID string) ([]models.Membership, error) {
	if f.ListByProjectFunc != nil {
		return f.ListByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (f *fakeMembershipStore) ListByUser(ctx context.Context, userID string) ([]models.Membership, error) {
	if f.ListByUserFunc != nil {
		return f.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

type fakeNoteStore struct {
	GetFunc                func(ctx context.Context, id string) (*models.Note, error)
	InsertFunc             func(ctx context.Context, note *models.Note) error
	ReplaceFunc            func(ctx context.Context, note *models.Note) error
	ListByTaskFunc         func(ctx context.Context, taskID string) ([]models.Note, error)
	GetCommentFunc         func(ctx context.Context, id string) (*models.Comment, error)
	InsertCommentFunc      func(ctx context.Context, comment *models.Comment) error
	ReplaceCommentFunc     func(ctx context.Context, comment *models.Comment) error
	DeleteCommentFunc      func(ctx context.Context, id string) error
	ListCommentsByTaskFunc func(ctx context.Context, taskID string) ([]models.Comment, error)
}

func (f *fakeNoteStore) Get(ctx context.Context, id string) (*models.Note, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, id)
	}
	return nil, nil
}

func (f *fakeNoteStore) Insert(ctx context.Context, note *models.Note) error {
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, note)
	}
	return nil
}

func (f *fakeNoteStore) Replace(ctx context.Context, note *models.Note) error {
	if f.ReplaceFunc != nil {
		return f.ReplaceFunc(ctx, note)
	}
	return nil
}

func (f *fakeNoteStore) ListByTask(ctx context.Context, taskID string) ([]models.Note, error) {
	if f.ListByTaskFunc != nil {
		return f.ListByTaskFunc(ctx, taskID)
	}
	return nil, nil
}

func (f *fakeNoteStore) GetComment(ctx context.Context, id string) (*models.Comment, error) {
	if f.GetCommentFunc != nil {
		return f.GetCommentFunc(ctx, id)
	}
	return nil, nil
}

func (f *fakeNoteStore) InsertComment(ctx context.Context, comment *models.Comment) error {
	if f.InsertCommentFunc != nil {
		return f.InsertCommentFunc(ctx, comment)
	}
	return nil
}

func (f *fakeNoteStore) ReplaceComment(ctx context.Context, comment *models.Comment) error {
	if f.ReplaceCommentFunc != nil {
		return f.ReplaceCommentFunc(ctx, comment)
	}
	return nil
}

func (f *fakeNoteStore) DeleteComment(ctx context.Context, id string) error {
	if f.DeleteCommentFunc != nil {
		return f.DeleteCommentFunc(ctx, id)
	}
	return nil
}

func (f *fakeNoteStore) ListCommentsByTask(ctx context.Context, taskID string) ([]models.Comment, error) {
	if f.ListCommentsByTaskFunc != nil {
		return f.ListCommentsByTaskFunc(ctx, taskID)
	}
	return nil, nil
}

type fakeAttachmentStore struct {
	GetFunc        func(ctx context.Context, id string) (*models.Attachment, error)
	InsertFunc     func(ctx context.Context, att *models.Attachment) error
	ArchiveFunc    func(ctx context.Context, id, archivedAt string) error
	ListByTaskFunc func(ctx context.Context, taskID string) ([]models.Attachment, error)
}

func (f *fakeAttachmentStore) Get(ctx context.Context, id string) (*models.Attachment, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, id)
	}
	return nil, nil
}

func (f *fakeAttachmentStore) Insert(ctx context.Context, att *models.Attachment) error {
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, att)
	}
	return nil
}

func (f *fakeAttachmentStore) Archive(ctx context.Context, id, archivedAt string) error {
	if f.ArchiveFunc != nil {
		return f.ArchiveFunc(ctx, id, archivedAt)
	}
	return nil
}

func (f *fakeAttachmentStore) ListByTask(ctx context.Context, taskID string) ([]models.Attachment, error) {
	if f.ListByTaskFunc != nil {
		return f.ListByTaskFunc(ctx, taskID)
	}
	return nil, nil
}

type fakeLabelStore struct {
	GetFunc                    func(ctx context.Context, id string) (*models.Label, error)
	InsertFunc                 func(ctx context.Context, label *models.Label) error
	ListAllFunc                func(ctx context.Context) ([]models.Label, error)
	AssignFunc                 func(ctx context.Context, junction *models.TaskLabel) error
	UnassignFunc               func(ctx context.Context, taskID, labelID string) error
	GetAssignmentFunc          func(ctx context.Context, taskID, labelID string) (*models.TaskLabel, error)
	ListAssignmentsByTaskFunc  func(ctx context.Context, taskID string) ([]models.TaskLabel, error)
	ListAssignmentsByLabelFunc func(ctx context.Context, labelID string) ([]models.TaskLabel, error)
}

func (f *fakeLabelStore) Get(ctx context.Context, id string) (*models.Label, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, id)
	}
	return nil, nil
}

func (f *fakeLabelStore) Insert(ctx context.Context, label *models.Label) error {
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, label)
	}
	return nil
}

func (f *fakeLabelStore) ListAll(ctx context.Context) ([]models.Label, error) {
	if f.ListAllFunc != nil {
		return f.ListAllFunc(ctx)
	}
	return nil, nil
}

func (f *fakeLabelStore) Assign(ctx context.Context, junction *models.TaskLabel) error {
	if f.AssignFunc != nil {
		return f.AssignFunc(ctx, junction)
	}
	return nil
}

func (f *fakeLabelStore) Unassign(ctx context.Context, taskID, labelID string) error {
	if f.UnassignFunc != nil {
		return f.UnassignFunc(ctx, taskID, labelID)
	}
	return nil
}

func (f *fakeLabelStore) GetAssignment(ctx context.Context, taskID, labelID string) (*models.TaskLabel, error) {
	if f.GetAssignmentFunc != nil {
		return f.GetAssignmentFunc(ctx, taskID, labelID)
	}
	return nil, nil
}

func (f *fakeLabelStore) ListAssignmentsByTask(ctx context.Context, taskID string) ([]models.TaskLabel, error) {
	if f.ListAssignmentsByTaskFunc != nil {
		return f.ListAssignmentsByTaskFunc(ctx, taskID)
	}
	return nil, nil
}

func (f *fakeLabelStore) ListAssignmentsByLabel(ctx context.Context, labelID string) ([]models.TaskLabel, error) {
	if f.ListAssignmentsByLabelFunc != nil {
		return f.ListAssignmentsByLabelFunc(ctx, labelID)
	}
	return nil, nil
}

type fakeNotifier struct {
	Calls []notifyCall
}

type notifyCall struct {
	TaskID     string
	Recipients []string
	Title      string
	Body       string
}

func (f *fakeNotifier) NotifyTaskChanged(ctx context.Context, task *models.Task, recipientIDs []string, title, body string) Outcome {
	f.Calls = append(f.Calls, notifyCall{TaskID: task.ID, Recipients: recipientIDs, Title: title, Body: body})
	return Outcome{Applied: true}
}

type fakeAccountStore struct {
	GetFunc         func(ctx context.Context, id string) (*models.Account, error)
	GetByEmailFunc  func(ctx context.Context, email string) (*models.Account, error)
	InsertFunc      func(ctx context.Context, acc *models.Account) error
	DeleteFunc      func(ctx context.Context, id string) error
	SetDisabledFunc func(ctx context.Context, id string, disabled bool) error
}

func (f *fakeAccountStore) Get(ctx context.Context, id string) (*models.Account, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, id)
	}
	return nil, nil
}

func (f *fakeAccountStore) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	if f.GetByEmailFunc != nil {
		return f.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (f *fakeAccountStore) Insert(ctx context.Context, acc *models.Account) error {
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, acc)
	}
	return nil
}

func (f *fakeAccountStore) Delete(ctx context.Context, id string) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}
	return nil
}

func (f *fakeAccountStore) SetDisabled(ctx context.Context, id string, disabled bool) error {
	if f.SetDisabledFunc != nil {
		return f.SetDisabledFunc(ctx, id, disabled)
	}
	return nil
}
