package services

import (
	"context"
	"fmt"
	"time"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/logging"
	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/models"
	"github.com/google/uuid"
)

type NotificationService struct {
	notifications NotificationStore
	tasks         TaskStore
	users         UserStore
	memberships   MembershipStore
	mailer        Mailer
}

func NewNotificationService(notifications NotificationStore, tasks TaskStore, users UserStore, memberships MembershipStore, mailer Mailer) *NotificationService {
	return &NotificationService{notifications: notifications, tasks: tasks, users: users, memberships: memberships, mailer: mailer}
}

// NotifyTaskChanged fans a notification out to every recipient. Each
// recipient is independent: one failed insert or email degrades the outcome
// without stopping the rest.
func (s *NotificationService) NotifyTaskChanged(ctx context.Context, task *models.Task, recipientIDs []string, title, body string) Outcome {
	outcome := Outcome{Applied: true}
	for _, userID := range recipientIDs {
		n := &models.Notification{
			ID:        uuid.New().String(),
			UserID:    userID,
			Title:     title,
			Body:      body,
			TaskID:    task.ID,
			CreatedAt: nowISO(),
		}
		if err := s.notifications.Insert(ctx, n); err != nil {
			logging.Logger.Warnf("Event ID: NOTIFY_DEGRADED, Description: Notification insert for user %s failed: %v", userID, err)
			outcome.Degrade("notification for " + userID + " failed")
			continue
		}
		s.emailBestEffort(ctx, n)
	}
	return outcome
}

// emailBestEffort resolves the recipient's address and sends one email. Any
// failure, breaker-open included, is logged and dropped.
func (s *NotificationService) emailBestEffort(ctx context.Context, n *models.Notification) {
	if s.mailer == nil {
		return
	}
	user, err := s.users.Get(ctx, n.UserID)
	if err != nil || user == nil || user.Email == "" {
		return
	}
	if err := s.mailer.Send(user.Email, n.Title, n.Body); err != nil {
		logging.Logger.Warnf("Event ID: NOTIFY_EMAIL_DEGRADED, Description: Email to %s failed: %v", n.UserID, err)
		return
	}
	if err := s.notifications.MarkEmailSent(ctx, n.ID, nowISO()); err != nil {
		logging.Logger.Warnf("Event ID: NOTIFY_EMAIL_FLAG_DEGRADED, Description: Email flag for notification %s failed: %v", n.ID, err)
	}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.notifications.ListByUser(ctx, userID)
}

// MarkRead is owner-only.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	n, err := s.notifications.Get(ctx, notificationID)
	if err != nil {
		return err
	}
	if n == nil {
		return ErrNotFound
	}
	if n.UserID != userID {
		return ErrForbidden
	}
	return s.notifications.MarkRead(ctx, notificationID)
}

// CheckDeadlines scans tasks due in the next 24 hours and reminds the
// creator and assignee once per task. The (user, task, title) triple keyed
// in the store deduplicates repeat scans.
func (s *NotificationService) CheckDeadlines(ctx context.Context) (int, error) {
	now := time.Now().UTC()
	from := formatWhen(now)
	to := formatWhen(now.Add(24 * time.Hour))

	tasks, err := s.tasks.ListDueBetween(ctx, from, to)
	if err != nil {
		return 0, err
	}

	created := 0
	for i := range tasks {
		task := &tasks[i]
		if task.Status == models.StatusCompleted {
			continue
		}
		title := "Deadline approaching: " + task.Title
		body := fmt.Sprintf("Task %q is due %s.", task.Title, task.DueDate)
		for _, userID := range []string{task.CreatorID(), task.AssigneeID()} {
			if userID == "" {
				continue
			}
			exists, err := s.notifications.Exists(ctx, userID, task.ID, title)
			if err != nil || exists {
				continue
			}
			n := &models.Notification{
				ID:        uuid.New().String(),
				UserID:    userID,
				Title:     title,
				Body:      body,
				TaskID:    task.ID,
				CreatedAt: nowISO(),
			}
			if err := s.notifications.Insert(ctx, n); err != nil {
				logging.Logger.Warnf("Event ID: DEADLINE_NOTIFY_DEGRADED, Description: Reminder insert for user %s failed: %v", userID, err)
				continue
			}
			created++
			s.emailBestEffort(ctx, n)
		}
	}
	logging.Logger.Infof("Event ID: DEADLINE_SCAN, Description: Deadline scan created %d reminders over %d tasks", created, len(tasks))
	return created, nil
}

// DueToday returns the viewer's open tasks due in the current UTC day.
// Involvement means creator, assignee, or member of the task's project.
func (s *NotificationService) DueToday(ctx context.Context, viewerID string) ([]models.Task, error) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	tasks, err := s.tasks.ListDueBetween(ctx, formatWhen(start), formatWhen(start.Add(24*time.Hour)))
	if err != nil {
		return nil, err
	}

	memberOf := map[string]bool{}
	if memberships, err := s.memberships.ListByUser(ctx, viewerID); err != nil {
		logging.Logger.Warnf("Event ID: DUE_TODAY_DEGRADED, Description: Membership scan for %s failed: %v", viewerID, err)
	} else {
		for _, m := range memberships {
			memberOf[m.ProjectID] = true
		}
	}

	open := tasks[:0]
	for _, t := range tasks {
		if t.Status == models.StatusCompleted {
			continue
		}
		if t.CreatorID() != viewerID && t.AssigneeID() != viewerID && !memberOf[t.ProjectID] {
			continue
		}
		open = append(open, t)
	}
	return open, nil
}
