package services

import (
	"context"
	"errors"
	"testing"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/models"
)

func newTaskService(tasks *fakeTaskStore, subtasks *fakeSubtaskStore, users *fakeUserStore,
	memberships *fakeMembershipStore, notes *fakeNoteStore, attachments *fakeAttachmentStore,
	labels *fakeLabelStore, notifier *fakeNotifier) *TaskService {
	if tasks == nil {
		tasks = &fakeTaskStore{}
	}
	if subtasks == nil {
		subtasks = &fakeSubtaskStore{}
	}
	if users == nil {
		users = &fakeUserStore{}
	}
	if memberships == nil {
		memberships = &fakeMembershipStore{}
	}
	if notes == nil {
		notes = &fakeNoteStore{}
	}
	if attachments == nil {
		attachments = &fakeAttachmentStore{}
	}
	if labels == nil {
		labels = &fakeLabelStore{}
	}
	if notifier == nil {
		notifier = &fakeNotifier{}
	}
	return NewTaskService(tasks, subtasks, users, memberships, notes, attachments, labels, notifier)
}

func taskWith(creatorID, assigneeID, projectID string) *models.Task {
	t := &models.Task{ID: "t1", Title: "Fix bug", ProjectID: projectID}
	if creatorID != "" {
		t.CreatedBy = &models.UserRef{UserID: creatorID, Name: "Creator"}
	}
	if assigneeID != "" {
		t.AssignedTo = &models.UserRef{UserID: assigneeID, Name: "Assignee"}
	}
	return t
}

func userDirectory(users map[string]*models.User) *fakeUserStore {
	return &fakeUserStore{
		GetFunc: func(_ context.Context, id string) (*models.User, error) {
			return users[id], nil
		},
	}
}

func TestCanViewTaskCreatorAndAssignee(t *testing.T) {
	svc := newTaskService(nil, nil, nil, nil, nil, nil, nil, nil)

	if !svc.CanViewTask(context.Background(), "u1", taskWith("u1", "", "")) {
		t.Error("creator should see their task")
	}
	if !svc.CanViewTask(context.Background(), "u2", taskWith("u1", "u2", "")) {
		t.Error("assignee should see their task")
	}
	if svc.CanViewTask(context.Background(), "", taskWith("u1", "u2", "")) {
		t.Error("missing viewer identity must deny")
	}
}

func TestCanViewTaskProjectMember(t *testing.T) {
	memberships := &fakeMembershipStore{
		GetFunc: func(_ context.Context, projectID, userID string) (*models.Membership, error) {
			if projectID == "p1" && userID == "u3" {
				return &models.Membership{ID: "p1_u3"}, nil
			}
			return nil, nil
		},
	}
	svc := newTaskService(nil, nil, nil, memberships, nil, nil, nil, nil)

	if !svc.CanViewTask(context.Background(), "u3", taskWith("u1", "u2", "p1")) {
		t.Error("project member should see project task")
	}
	if svc.CanViewTask(context.Background(), "u4", taskWith("u1", "u2", "p1")) {
		t.Error("non-member stranger must be denied")
	}
}

// A failed membership lookup skips to the later rules instead of denying,
// so an admin still gets through.
func TestCanViewTaskMembershipFailureContinues(t *testing.T) {
	memberships := &fakeMembershipStore{
		GetFunc: func(_ context.Context, _, _ string) (*models.Membership, error) {
			return nil, errStore
		},
	}
	users := userDirectory(map[string]*models.User{
		"admin1": {ID: "admin1", Role: models.RoleAdmin},
	})
	svc := newTaskService(nil, nil, users, memberships, nil, nil, nil, nil)

	if !svc.CanViewTask(context.Background(), "admin1", taskWith("u1", "u2", "p1")) {
		t.Error("admin should be allowed even when the membership lookup fails")
	}
}

func TestCanViewTaskManagerChain(t *testing.T) {
	users := userDirectory(map[string]*models.User{
		"m1":     {ID: "m1", Role: models.RoleManager},
		"staff1": {ID: "staff1", Role: models.RoleStaff, ManagerID: "m1"},
		"staff2": {ID: "staff2", Role: models.RoleStaff, ManagerID: "other"},
	})
	svc := newTaskService(nil, nil, users, nil, nil, nil, nil, nil)

	if !svc.CanViewTask(context.Background(), "m1", taskWith("staff1", "", "")) {
		t.Error("manager should see a direct report's task")
	}
	if !svc.CanViewTask(context.Background(), "m1", taskWith("staff2", "staff1", "")) {
		t.Error("manager should see a task assigned to a direct report")
	}
	if svc.CanViewTask(context.Background(), "m1", taskWith("staff2", "staff2", "")) {
		t.Error("manager must not see tasks of someone else's report")
	}
}

// A failed lookup while walking the manager chain denies outright, unlike
// the membership rule.
func TestCanViewTaskManagerChainFailureDenies(t *testing.T) {
	users := &fakeUserStore{
		GetFunc: func(_ context.Context, id string) (*models.User, error) {
			if id == "m1" {
				return &models.User{ID: "m1", Role: models.RoleManager}, nil
			}
			return nil, errStore
		},
	}
	svc := newTaskService(nil, nil, users, nil, nil, nil, nil, nil)

	if svc.CanViewTask(context.Background(), "m1", taskWith("staff1", "", "")) {
		t.Error("a failed creator lookup must deny, not continue")
	}
}

// A failed lookup of the viewer's own record defaults the role to staff
// and keeps evaluating.
func TestCanViewTaskViewerLookupFailureDefaultsStaff(t *testing.T) {
	users := &fakeUserStore{
		GetFunc: func(_ context.Context, _ string) (*models.User, error) {
			return nil, errStore
		},
	}
	svc := newTaskService(nil, nil, users, nil, nil, nil, nil, nil)

	if svc.CanViewTask(context.Background(), "admin1", taskWith("u1", "u2", "")) {
		t.Error("unresolvable viewer must fall back to staff and be denied")
	}
}

func TestCanEditTask(t *testing.T) {
	svc := newTaskService(nil, nil, nil, nil, nil, nil, nil, nil)
	task := taskWith("u1", "u2", "")

	if !svc.CanEditTask("u1", task) || !svc.CanEditTask("u2", task) {
		t.Error("creator and assignee can edit")
	}
	if svc.CanEditTask("u3", task) {
		t.Error("no role escalation for editing")
	}
}

func TestCreateTaskValidation(t *testing.T) {
	users := userDirectory(map[string]*models.User{"u1": {ID: "u1", Name: "Una"}})
	svc := newTaskService(nil, nil, users, nil, nil, nil, nil, nil)

	cases := []struct {
		name string
		in   CreateTaskInput
	}{
		{"short title", CreateTaskInput{Title: "ab", Description: "long enough desc", CreatedByID: "u1"}},
		{"short description", CreateTaskInput{Title: "Fix bug", Description: "short", CreatedByID: "u1"}},
		{"too many tags", CreateTaskInput{Title: "Fix bug", Description: "long enough desc", CreatedByID: "u1", Tags: []string{"a", "b", "c", "d"}}},
		{"tag too long", CreateTaskInput{Title: "Fix bug", Description: "long enough desc", CreatedByID: "u1", Tags: []string{"thirteenchars"}}},
		{"recurring without due date", CreateTaskInput{Title: "Fix bug", Description: "long enough desc", CreatedByID: "u1", IsRecurring: true, RecurrenceIntervalDays: 1}},
		{"recurring without interval", CreateTaskInput{Title: "Fix bug", Description: "long enough desc", CreatedByID: "u1", IsRecurring: true, DueDate: "2024-09-29T10:00:00Z"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateTask(context.Background(), tc.in)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateTaskUnknownUsers(t *testing.T) {
	users := userDirectory(map[string]*models.User{"u1": {ID: "u1"}})
	svc := newTaskService(nil, nil, users, nil, nil, nil, nil, nil)

	_, err := svc.CreateTask(context.Background(), CreateTaskInput{
		Title: "Fix bug", Description: "Investigate crash on login", CreatedByID: "ghost",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown creator should be not-found, got %v", err)
	}

	_, err = svc.CreateTask(context.Background(), CreateTaskInput{
		Title: "Fix bug", Description: "Investigate crash on login", CreatedByID: "u1", AssignedToID: "ghost",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown assignee should be not-found, got %v", err)
	}
}

func TestCreateTaskRequiresProjectMembership(t *testing.T) {
	users := userDirectory(map[string]*models.User{"u1": {ID: "u1"}})
	memberships := &fakeMembershipStore{
		GetFunc: func(_ context.Context, _, _ string) (*models.Membership, error) {
			return nil, nil
		},
	}
	svc := newTaskService(nil, nil, users, memberships, nil, nil, nil, nil)

	_, err := svc.CreateTask(context.Background(), CreateTaskInput{
		Title: "Fix bug", Description: "Investigate crash on login", CreatedByID: "u1", ProjectID: "p1",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("non-member creator should be forbidden, got %v", err)
	}
}

func TestCreateTaskDefaults(t *testing.T) {
	var inserted *models.Task
	tasks := &fakeTaskStore{
		InsertFunc: func(_ context.Context, task *models.Task) error {
			inserted = task
			return nil
		},
	}
	users := userDirectory(map[string]*models.User{"u1": {ID: "u1", Name: "Una", Email: "una@x.io"}})
	svc := newTaskService(tasks, nil, users, nil, nil, nil, nil, nil)

	task, err := svc.CreateTask(context.Background(), CreateTaskInput{
		Title: "Fix bug", Description: "Investigate crash on login", CreatedByID: "u1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if inserted == nil || inserted.ID != task.ID {
		t.Fatal("task was not written to the store")
	}
	if task.Status != models.StatusToDo {
		t.Errorf("status defaults to To Do, got %q", task.Status)
	}
	if task.Priority != models.PriorityMedium {
		t.Errorf("priority defaults to medium, got %d", task.Priority)
	}
	if task.CreatedBy == nil || task.CreatedBy.Name != "Una" {
		t.Error("creator snapshot not embedded")
	}
}

func TestGetTaskMasksDenialAsNotFound(t *testing.T) {
	tasks := &fakeTaskStore{
		GetFunc: func(_ context.Context, id string) (*models.Task, error) {
			return taskWith("u1", "", ""), nil
		},
	}
	svc := newTaskService(tasks, nil, nil, nil, nil, nil, nil, nil)

	if _, err := svc.GetTask(context.Background(), "stranger", "t1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("denied viewer should get not-found, got %v", err)
	}
	if task, err := svc.GetTask(context.Background(), "u1", "t1"); err != nil || task == nil {
		t.Fatalf("creator should read the task, got %v", err)
	}
}

func TestUpdateTaskSpawnsSuccessorFromOriginalDueDate(t *testing.T) {
	stored := &models.Task{
		ID:                     "t1",
		Title:                  "Daily standup notes",
		Description:            "Write up the daily standup",
		Status:                 models.StatusInProgress,
		DueDate:                "2024-09-29T10:00:00Z",
		CreatedBy:              &models.UserRef{UserID: "u1", Name: "Una"},
		IsRecurring:            true,
		RecurrenceIntervalDays: 1,
	}
	var successor *models.Task
	tasks := &fakeTaskStore{
		GetFunc: func(_ context.Context, _ string) (*models.Task, error) { return stored, nil },
		InsertFunc: func(_ context.Context, task *models.Task) error {
			successor = task
			return nil
		},
	}
	svc := newTaskService(tasks, nil, nil, nil, nil, nil, nil, nil)

	// Completed two days late. The successor is still anchored to the
	// original due date.
	status := string(models.StatusCompleted)
	result, err := svc.UpdateTask(context.Background(), "u1", "t1", UpdateTaskInput{Status: &status})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if successor == nil {
		t.Fatal("no successor created")
	}
	if successor.DueDate != "2024-09-30T10:00:00Z" {
		t.Errorf("successor due date is %q, want 2024-09-30T10:00:00Z", successor.DueDate)
	}
	if successor.ParentRecurringTaskID != "t1" {
		t.Error("successor must point back at the completed task")
	}
	if successor.Status != models.StatusToDo {
		t.Error("successor must reset to To Do")
	}
	if !successor.IsRecurring || successor.RecurrenceIntervalDays != 1 {
		t.Error("successor must keep the recurrence settings")
	}
	if result.NextRecurringTaskID != successor.ID {
		t.Error("successor id must surface in the result")
	}
}

func TestUpdateTaskNoSuccessorCases(t *testing.T) {
	cases := []struct {
		name   string
		stored models.Task
	}{
		{"non-recurring", models.Task{
			ID: "t1", Title: "One off", Description: "A one-off piece of work",
			Status: models.StatusInProgress, DueDate: "2024-09-29T10:00:00Z",
			CreatedBy: &models.UserRef{UserID: "u1"},
		}},
		{"already completed", models.Task{
			ID: "t1", Title: "Daily", Description: "Already done once before",
			Status: models.StatusCompleted, DueDate: "2024-09-29T10:00:00Z",
			CreatedBy: &models.UserRef{UserID: "u1"}, IsRecurring: true, RecurrenceIntervalDays: 1,
		}},
		{"unparseable due date", models.Task{
			ID: "t1", Title: "Daily", Description: "Recurring with bad due date",
			Status: models.StatusInProgress, DueDate: "not-a-date",
			CreatedBy: &models.UserRef{UserID: "u1"}, IsRecurring: true, RecurrenceIntervalDays: 1,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stored := tc.stored
			inserts := 0
			tasks := &fakeTaskStore{
				GetFunc:    func(_ context.Context, _ string) (*models.Task, error) { return &stored, nil },
				InsertFunc: func(_ context.Context, _ *models.Task) error { inserts++; return nil },
			}
			svc := newTaskService(tasks, nil, nil, nil, nil, nil, nil, nil)

			status := string(models.StatusCompleted)
			result, err := svc.UpdateTask(context.Background(), "u1", "t1", UpdateTaskInput{Status: &status})
			if err != nil {
				t.Fatalf("update failed: %v", err)
			}
			if inserts != 0 {
				t.Error("no successor may be created")
			}
			if result.NextRecurringTaskID != "" {
				t.Error("result must not carry a successor id")
			}
		})
	}
}

func TestUpdateTaskNotifiesOnWatchedFieldChange(t *testing.T) {
	stored := &models.Task{
		ID: "t1", Title: "Fix bug", Description: "Investigate crash on login",
		Status:    models.StatusToDo,
		CreatedBy: &models.UserRef{UserID: "u1", Name: "Una"},
		AssignedTo: &models.UserRef{
			UserID: "u2", Name: "Duo",
		},
	}
	notifier := &fakeNotifier{}
	tasks := &fakeTaskStore{
		GetFunc: func(_ context.Context, _ string) (*models.Task, error) { return stored, nil },
	}
	svc := newTaskService(tasks, nil, nil, nil, nil, nil, nil, notifier)

	title := "Fix login bug"
	if _, err := svc.UpdateTask(context.Background(), "u1", "t1", UpdateTaskInput{Title: &title}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if len(notifier.Calls) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.Calls))
	}
	call := notifier.Calls[0]
	if len(call.Recipients) != 2 || call.Recipients[0] != "u1" || call.Recipients[1] != "u2" {
		t.Errorf("recipients should be creator and assignee, got %v", call.Recipients)
	}
	if want := "title: Fix bug -> Fix login bug"; !containsLine(call.Body, want) {
		t.Errorf("body missing diff line %q:\n%s", want, call.Body)
	}
}

func TestDiffWatchedFieldsComparesTagsElementwise(t *testing.T) {
	old := &models.Task{Title: "T", Tags: []string{"a,b"}}
	updated := &models.Task{Title: "T", Tags: []string{"a", "b"}}

	lines := diffWatchedFields(old, updated)
	if len(lines) != 1 {
		t.Fatalf("expected one diff line, got %v", lines)
	}
	if want := "tags: a,b -> a, b"; lines[0] != want {
		t.Errorf("diff line = %q, want %q", lines[0], want)
	}

	if lines := diffWatchedFields(updated, updated); len(lines) != 0 {
		t.Errorf("identical tags must not diff, got %v", lines)
	}
}

func TestUpdateTaskNoNotificationWithoutChange(t *testing.T) {
	stored := &models.Task{
		ID: "t1", Title: "Fix bug", Description: "Investigate crash on login",
		Status:    models.StatusToDo,
		CreatedBy: &models.UserRef{UserID: "u1"},
	}
	notifier := &fakeNotifier{}
	tasks := &fakeTaskStore{
		GetFunc: func(_ context.Context, _ string) (*models.Task, error) { return stored, nil },
	}
	svc := newTaskService(tasks, nil, nil, nil, nil, nil, nil, notifier)

	same := "Fix bug"
	if _, err := svc.UpdateTask(context.Background(), "u1", "t1", UpdateTaskInput{Title: &same}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(notifier.Calls) != 0 {
		t.Error("unchanged watched fields must not notify")
	}
}

func TestUpdateTaskEditDenied(t *testing.T) {
	tasks := &fakeTaskStore{
		GetFunc: func(_ context.Context, _ string) (*models.Task, error) {
			return taskWith("u1", "u2", ""), nil
		},
	}
	svc := newTaskService(tasks, nil, nil, nil, nil, nil, nil, nil)

	title := "New title"
	if _, err := svc.UpdateTask(context.Background(), "u3", "t1", UpdateTaskInput{Title: &title}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("non-editor should be forbidden, got %v", err)
	}
}

func TestDeleteTaskStaffCreatorForbidden(t *testing.T) {
	cascades := 0
	tasks := &fakeTaskStore{
		GetFunc: func(_ context.Context, _ string) (*models.Task, error) {
			return taskWith("staff1", "", ""), nil
		},
		ArchiveCascadeFunc: func(_ context.Context, _ models.CascadePlan) error { cascades++; return nil },
	}
	users := userDirectory(map[string]*models.User{"staff1": {ID: "staff1", Role: models.RoleStaff}})
	svc := newTaskService(tasks, nil, users, nil, nil, nil, nil, nil)

	_, err := svc.DeleteTask(context.Background(), "staff1", "t1")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("staff may never archive, got %v", err)
	}
	if cascades != 0 {
		t.Error("no cascade may run on a denied delete")
	}
}

func TestDeleteTaskNonCreatorMasked(t *testing.T) {
	tasks := &fakeTaskStore{
		GetFunc: func(_ context.Context, _ string) (*models.Task, error) {
			return taskWith("u1", "", ""), nil
		},
	}
	users := userDirectory(map[string]*models.User{"m1": {ID: "m1", Role: models.RoleManager}})
	svc := newTaskService(tasks, nil, users, nil, nil, nil, nil, nil)

	if _, err := svc.DeleteTask(context.Background(), "m1", "t1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("non-creator delete should be masked as not-found, got %v", err)
	}
}

func TestDeleteTaskCascadePlan(t *testing.T) {
	root := taskWith("m1", "", "")
	root.IsRecurring = true
	root.RecurrenceIntervalDays = 1

	var plan models.CascadePlan
	tasks := &fakeTaskStore{
		GetFunc: func(_ context.Context, _ string) (*models.Task, error) { return root, nil },
		ListChildrenFunc: func(_ context.Context, parentID string) ([]models.Task, error) {
			return []models.Task{
				{ID: "child-open", Status: models.StatusToDo, ParentRecurringTaskID: parentID},
				{ID: "child-done", Status: models.StatusCompleted, ParentRecurringTaskID: parentID},
			}, nil
		},
		ArchiveCascadeFunc: func(_ context.Context, p models.CascadePlan) error {
			plan = p
			return nil
		},
	}
	subtasks := &fakeSubtaskStore{
		ListByTaskFunc: func(_ context.Context, _ string) ([]models.Subtask, error) {
			return []models.Subtask{{ID: "s1"}, {ID: "s2", Archived: true}}, nil
		},
	}
	notes := &fakeNoteStore{
		ListByTaskFunc: func(_ context.Context, _ string) ([]models.Note, error) {
			return []models.Note{{ID: "n1"}}, nil
		},
	}
	attachments := &fakeAttachmentStore{
		ListByTaskFunc: func(_ context.Context, _ string) ([]models.Attachment, error) {
			return []models.Attachment{{ID: "a1"}}, nil
		},
	}
	labels := &fakeLabelStore{
		ListAssignmentsByTaskFunc: func(_ context.Context, taskID string) ([]models.TaskLabel, error) {
			return []models.TaskLabel{{ID: taskID + "_l1"}}, nil
		},
	}
	users := userDirectory(map[string]*models.User{"m1": {ID: "m1", Role: models.RoleManager}})
	svc := newTaskService(tasks, subtasks, users, nil, notes, attachments, labels, nil)

	outcome, err := svc.DeleteTask(context.Background(), "m1", "t1")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !outcome.Applied {
		t.Error("outcome should report applied")
	}
	if len(plan.SubtaskIDs) != 1 || plan.SubtaskIDs[0] != "s1" {
		t.Errorf("already-archived subtasks are skipped, got %v", plan.SubtaskIDs)
	}
	if len(plan.NoteIDs) != 1 || len(plan.AttachmentIDs) != 1 || len(plan.TaskLabelIDs) != 1 {
		t.Errorf("plan incomplete: %+v", plan)
	}
	if len(plan.ChildTaskIDs) != 1 || plan.ChildTaskIDs[0] != "child-open" {
		t.Errorf("only open recurrence children are archived, got %v", plan.ChildTaskIDs)
	}
	if plan.ArchivedBy != "m1" || plan.ArchivedAt == "" {
		t.Error("archive metadata missing")
	}
}

// Enumeration failures degrade the outcome but the commit still runs.
func TestDeleteTaskScanFailureDegrades(t *testing.T) {
	cascades := 0
	tasks := &fakeTaskStore{
		GetFunc:            func(_ context.Context, _ string) (*models.Task, error) { return taskWith("m1", "", ""), nil },
		ArchiveCascadeFunc: func(_ context.Context, _ models.CascadePlan) error { cascades++; return nil },
	}
	subtasks := &fakeSubtaskStore{
		ListByTaskFunc: func(_ context.Context, _ string) ([]models.Subtask, error) { return nil, errStore },
	}
	users := userDirectory(map[string]*models.User{"m1": {ID: "m1", Role: models.RoleManager}})
	svc := newTaskService(tasks, subtasks, users, nil, nil, nil, nil, nil)

	outcome, err := svc.DeleteTask(context.Background(), "m1", "t1")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if cascades != 1 {
		t.Error("cascade commit must still run")
	}
	if len(outcome.Degraded) == 0 {
		t.Error("failed scan must be reported as degraded")
	}
}

func TestDeleteTaskCommitFailurePropagates(t *testing.T) {
	tasks := &fakeTaskStore{
		GetFunc:            func(_ context.Context, _ string) (*models.Task, error) { return taskWith("m1", "", ""), nil },
		ArchiveCascadeFunc: func(_ context.Context, _ models.CascadePlan) error { return errStore },
	}
	users := userDirectory(map[string]*models.User{"m1": {ID: "m1", Role: models.RoleManager}})
	svc := newTaskService(tasks, nil, users, nil, nil, nil, nil, nil)

	if _, err := svc.DeleteTask(context.Background(), "m1", "t1"); !errors.Is(err, errStore) {
		t.Fatalf("a failed commit must fail the request, got %v", err)
	}
}

func TestReassignTask(t *testing.T) {
	stored := taskWith("u1", "u2", "")
	replaces := 0
	tasks := &fakeTaskStore{
		GetFunc:     func(_ context.Context, _ string) (*models.Task, error) { return stored, nil },
		ReplaceFunc: func(_ context.Context, _ *models.Task) error { replaces++; return nil },
	}
	users := userDirectory(map[string]*models.User{
		"m1": {ID: "m1", Role: models.RoleManager},
		"s1": {ID: "s1", Role: models.RoleStaff},
		"u3": {ID: "u3", Name: "Trio", Email: "trio@x.io"},
	})
	notifier := &fakeNotifier{}
	svc := newTaskService(tasks, nil, users, nil, nil, nil, nil, notifier)

	if _, err := svc.ReassignTask(context.Background(), "s1", "t1", "u3"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("staff cannot reassign, got %v", err)
	}
	if _, err := svc.ReassignTask(context.Background(), "m1", "t1", ""); err == nil {
		t.Fatal("missing target must be rejected")
	}
	if _, err := svc.ReassignTask(context.Background(), "m1", "t1", "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown target should be not-found, got %v", err)
	}

	// Reassigning to the current assignee is a no-op success.
	if _, err := svc.ReassignTask(context.Background(), "m1", "t1", "u2"); err != nil {
		t.Fatalf("no-op reassign failed: %v", err)
	}
	if replaces != 0 {
		t.Error("no-op reassign must not write")
	}

	task, err := svc.ReassignTask(context.Background(), "m1", "t1", "u3")
	if err != nil {
		t.Fatalf("reassign failed: %v", err)
	}
	if task.AssigneeID() != "u3" || replaces != 1 {
		t.Error("assignee was not replaced")
	}
	if len(notifier.Calls) != 1 || notifier.Calls[0].Recipients[0] != "u3" {
		t.Error("new assignee must be notified")
	}
}

func TestListTasksUnionAndFilters(t *testing.T) {
	created := []models.Task{
		{ID: "t1", CreatedAt: "2024-01-03T00:00:00Z", CreatedBy: &models.UserRef{UserID: "u1"}},
		{ID: "t2", CreatedAt: "2024-01-01T00:00:00Z", CreatedBy: &models.UserRef{UserID: "u1"}, Archived: true},
	}
	assigned := []models.Task{
		{ID: "t3", CreatedAt: "2024-01-02T00:00:00Z", AssignedTo: &models.UserRef{UserID: "u1"}},
		{ID: "t1", CreatedAt: "2024-01-03T00:00:00Z", CreatedBy: &models.UserRef{UserID: "u1"}},
	}
	tasks := &fakeTaskStore{
		ListByCreatorFunc:  func(_ context.Context, _ string) ([]models.Task, error) { return created, nil },
		ListByAssigneeFunc: func(_ context.Context, _ string) ([]models.Task, error) { return assigned, nil },
	}
	svc := newTaskService(tasks, nil, nil, nil, nil, nil, nil, nil)

	list, _, err := svc.ListTasks(context.Background(), "u1", ListTasksQuery{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected t1 and t3 (archived t2 hidden, t1 deduped), got %d", len(list))
	}
	if list[0].ID != "t1" || list[1].ID != "t3" {
		t.Errorf("expected created_at desc order, got %s then %s", list[0].ID, list[1].ID)
	}

	withArchived, _, err := svc.ListTasks(context.Background(), "u1", ListTasksQuery{IncludeArchived: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(withArchived) != 3 {
		t.Errorf("include_archived should surface t2, got %d", len(withArchived))
	}
}

func TestListTasksAdminSeesAll(t *testing.T) {
	tasks := &fakeTaskStore{
		ListAllFunc: func(_ context.Context) ([]models.Task, error) {
			return []models.Task{{ID: "t1"}, {ID: "t2"}}, nil
		},
	}
	users := userDirectory(map[string]*models.User{"admin1": {ID: "admin1", Role: models.RoleAdmin}})
	svc := newTaskService(tasks, nil, users, nil, nil, nil, nil, nil)

	list, _, err := svc.ListTasks(context.Background(), "admin1", ListTasksQuery{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("admin should see everything, got %d", len(list))
	}
}

func containsLine(body, line string) bool {
	for start := 0; start+len(line) <= len(body); start++ {
		if body[start:start+len(line)] == line {
			return true
		}
	}
	return false
}
