package services

import (
	"context"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/models"
)

// Store interfaces are satisfied by the repositories package. Lookups return
// (nil, nil) for a missing document and (nil, err) for a failed read; the
// authorization rules depend on telling those apart.

type TaskStore interface {
	Get(ctx context.Context, id string) (*models.Task, error)
	Insert(ctx context.Context, task *models.Task) error
	InsertWithSubtasks(ctx context.Context, task *models.Task, subtasks []*models.Subtask) error
	Replace(ctx context.Context, task *models.Task) error
	IncrementSubtaskCounts(ctx context.Context, taskID string, total, completed int) error
	ListByCreator(ctx context.Context, userID string) ([]models.Task, error)
	ListByAssignee(ctx context.Context, userID string) ([]models.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]models.Task, error)
	ListAll(ctx context.Context) ([]models.Task, error)
	ListChildren(ctx context.Context, parentID string) ([]models.Task, error)
	ListDueBetween(ctx context.Context, from, to string) ([]models.Task, error)
	ArchiveCascade(ctx context.Context, plan models.CascadePlan) error
}

type SubtaskStore interface {
	Get(ctx context.Context, id string) (*models.Subtask, error)
	Insert(ctx context.Context, st *models.Subtask) error
	Replace(ctx context.Context, st *models.Subtask) error
	ListByTask(ctx context.Context, taskID string) ([]models.Subtask, error)
}

type UserStore interface {
	Get(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	Replace(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]models.User, error)
	ListByManager(ctx context.Context, managerID string) ([]models.User, error)
}

type AccountStore interface {
	Get(ctx context.Context, id string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	Insert(ctx context.Context, acc *models.Account) error
	Delete(ctx context.Context, id string) error
	SetDisabled(ctx context.Context, id string, disabled bool) error
}

type ProjectStore interface {
	Get(ctx context.Context, id string) (*models.Project, error)
	InsertWithOwner(ctx context.Context, project *models.Project, owner *models.Membership) error
	Replace(ctx context.Context, project *models.Project) error
	ListAll(ctx context.Context) ([]models.Project, error)
}

type MembershipStore interface {
	Get(ctx context.Context, projectID, userID string) (*models.Membership, error)
	Insert(ctx context.Context, m *models.Membership) error
	Delete(ctx context.Context, projectID, userID string) error
	ListByProject(ctx context.Context, projectID string) ([]models.Membership, error)
	ListByUser(ctx context.Context, userID string) ([]models.Membership, error)
}

type NoteStore interface {
	Get(ctx context.Context, id string) (*models.Note, error)
	Insert(ctx context.Context, note *models.Note) error
	Replace(ctx context.Context, note *models.Note) error
	ListByTask(ctx context.Context, taskID string) ([]models.Note, error)
	GetComment(ctx context.Context, id string) (*models.Comment, error)
	InsertComment(ctx context.Context, comment *models.Comment) error
	ReplaceComment(ctx context.Context, comment *models.Comment) error
	DeleteComment(ctx context.Context, id string) error
	ListCommentsByTask(ctx context.Context, taskID string) ([]models.Comment, error)
}

type AttachmentStore interface {
	Get(ctx context.Context, id string) (*models.Attachment, error)
	Insert(ctx context.Context, att *models.Attachment) error
	Archive(ctx context.Context, id, archivedAt string) error
	ListByTask(ctx context.Context, taskID string) ([]models.Attachment, error)
}

type LabelStore interface {
	Get(ctx context.Context, id string) (*models.Label, error)
	Insert(ctx context.Context, label *models.Label) error
	ListAll(ctx context.Context) ([]models.Label, error)
	Assign(ctx context.Context, junction *models.TaskLabel) error
	Unassign(ctx context.Context, taskID, labelID string) error
	GetAssignment(ctx context.Context, taskID, labelID string) (*models.TaskLabel, error)
	ListAssignmentsByTask(ctx context.Context, taskID string) ([]models.TaskLabel, error)
	ListAssignmentsByLabel(ctx context.Context, labelID string) ([]models.TaskLabel, error)
}

type NotificationStore interface {
	Insert(ctx context.Context, n *models.Notification) error
	Get(ctx context.Context, id string) (*models.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
	Exists(ctx context.Context, userID, taskID, title string) (bool, error)
	MarkRead(ctx context.Context, id string) error
	MarkEmailSent(ctx context.Context, id, sentAt string) error
}

// TaskNotifier records notifications for task events. The task service calls
// it as a best-effort side effect after its own writes commit.
type TaskNotifier interface {
	NotifyTaskChanged(ctx context.Context, task *models.Task, recipientIDs []string, title, body string) Outcome
}

// Mailer delivers a plain-text email. Implementations may refuse while a
// breaker is open.
type Mailer interface {
	Send(to, subject, body string) error
}
