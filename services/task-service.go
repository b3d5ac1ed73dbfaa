package services

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/logging"
	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/models"
	"github.com/google/uuid"
)

const defaultListLimit = 50

type TaskService struct {
	tasks       TaskStore
	subtasks    SubtaskStore
	users       UserStore
	memberships MembershipStore
	notes       NoteStore
	attachments AttachmentStore
	labels      LabelStore
	notifier    TaskNotifier
}

func NewTaskService(tasks TaskStore, subtasks SubtaskStore, users UserStore, memberships MembershipStore,
	notes NoteStore, attachments AttachmentStore, labels LabelStore, notifier TaskNotifier) *TaskService {
	return &TaskService{
		tasks:       tasks,
		subtasks:    subtasks,
		users:       users,
		memberships: memberships,
		notes:       notes,
		attachments: attachments,
		labels:      labels,
		notifier:    notifier,
	}
}

// CanViewTask decides whether a viewer may read a task. First match wins.
// It never returns an error; lookup failures degrade toward deny, except the
// membership rule, which skips to the next rule on failure.
func (s *TaskService) CanViewTask(ctx context.Context, viewerID string, task *models.Task) bool {
	if viewerID == "" || task == nil {
		return false
	}

	// Creator and assignee always see their own task.
	if task.CreatorID() == viewerID || task.AssigneeID() == viewerID {
		return true
	}

	// Project members see project tasks. A failed membership lookup is
	// treated as no membership, the remaining rules still run.
	if task.ProjectID != "" {
		member, err := s.memberships.Get(ctx, task.ProjectID, viewerID)
		if err != nil {
			logging.Logger.Warnf("Event ID: VISIBILITY_MEMBERSHIP_DEGRADED, Description: Membership lookup failed for viewer %s on project %s: %v", viewerID, task.ProjectID, err)
		} else if member != nil {
			return true
		}
	}

	// If the viewer's own record cannot be read, assume the least
	// privileged role and keep going.
	role := models.RoleStaff
	viewer, err := s.users.Get(ctx, viewerID)
	if err != nil {
		logging.Logger.Warnf("Event ID: VISIBILITY_VIEWER_DEGRADED, Description: Viewer lookup failed for %s, defaulting role to staff: %v", viewerID, err)
	} else if viewer != nil {
		role = viewer.Role
	}
	if role == models.RoleAdmin {
		return true
	}

	// Managers, directors and hr see tasks of their direct reports. A
	// lookup failure here denies outright instead of continuing.
	if role == models.RoleManager || role == models.RoleDirector || role == models.RoleHR {
		if creatorID := task.CreatorID(); creatorID != "" {
			creator, err := s.users.Get(ctx, creatorID)
			if err != nil {
				logging.Logger.Warnf("Event ID: VISIBILITY_CHAIN_DENIED, Description: Creator lookup failed for task %s: %v", task.ID, err)
				return false
			}
			if creator != nil && creator.ManagerID == viewerID {
				return true
			}
		}
		if assigneeID := task.AssigneeID(); assigneeID != "" {
			assignee, err := s.users.Get(ctx, assigneeID)
			if err != nil {
				logging.Logger.Warnf("Event ID: VISIBILITY_CHAIN_DENIED, Description: Assignee lookup failed for task %s: %v", task.ID, err)
				return false
			}
			if assignee != nil && assignee.ManagerID == viewerID {
				return true
			}
		}
	}

	return false
}

// CanEditTask allows only the creator or the assignee, regardless of role.
func (s *TaskService) CanEditTask(viewerID string, task *models.Task) bool {
	if viewerID == "" || task == nil {
		return false
	}
	return task.CreatorID() == viewerID || task.AssigneeID() == viewerID
}

type SubtaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

type CreateTaskInput struct {
	Title                  string          `json:"title"`
	Description            string          `json:"description"`
	Priority               models.Priority `json:"priority"`
	Status                 string          `json:"status"`
	DueDate                string          `json:"due_date"`
	ProjectID              string          `json:"project_id"`
	CreatedByID            string          `json:"created_by_id"`
	AssignedToID           string          `json:"assigned_to_id"`
	Tags                   []string        `json:"tags"`
	IsRecurring            bool            `json:"is_recurring"`
	RecurrenceIntervalDays int             `json:"recurrence_interval_days"`
	Subtasks               []SubtaskInput  `json:"subtasks"`
}

func validateTags(tags []string) error {
	if len(tags) > 3 {
		return Validation("a task may carry at most 3 tags")
	}
	for _, tag := range tags {
		if len(tag) > 12 {
			return Validation(fmt.Sprintf("tag %q exceeds 12 characters", tag))
		}
	}
	return nil
}

func (s *TaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*models.Task, error) {
	if len(strings.TrimSpace(in.Title)) < 3 {
		return nil, Validation("title must be at least 3 characters")
	}
	if len(strings.TrimSpace(in.Description)) < 10 {
		return nil, Validation("description must be at least 10 characters")
	}
	if err := validateTags(in.Tags); err != nil {
		return nil, err
	}
	if in.CreatedByID == "" {
		return nil, Validation("created_by_id is required")
	}

	status := models.StatusToDo
	if in.Status != "" {
		parsed, err := models.ParseStatus(in.Status)
		if err != nil {
			return nil, Validation(err.Error())
		}
		status = parsed
	}

	priority := in.Priority
	if priority == 0 {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return nil, Validation("priority must be between 1 and 10")
	}

	if in.DueDate != "" {
		if _, err := ParseWhen(in.DueDate); err != nil {
			return nil, Validation("due_date is not a recognized timestamp")
		}
	}
	if in.IsRecurring {
		if in.DueDate == "" {
			return nil, Validation("a recurring task requires a due date")
		}
		if in.RecurrenceIntervalDays <= 0 {
			return nil, Validation("a recurring task requires a positive recurrence interval")
		}
	}

	creator, err := s.users.Get(ctx, in.CreatedByID)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, fmt.Errorf("%w: creator user does not exist", ErrNotFound)
	}

	var assignee *models.User
	if in.AssignedToID != "" {
		assignee, err = s.users.Get(ctx, in.AssignedToID)
		if err != nil {
			return nil, err
		}
		if assignee == nil {
			return nil, fmt.Errorf("%w: assignee user does not exist", ErrNotFound)
		}
	}

	if in.ProjectID != "" {
		member, err := s.memberships.Get(ctx, in.ProjectID, in.CreatedByID)
		if err != nil {
			return nil, err
		}
		if member == nil {
			return nil, ErrForbidden
		}
	}

	now := nowISO()
	task := &models.Task{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Priority:    priority,
		Status:      status,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   &models.UserRef{UserID: creator.ID, Name: creator.Name, Email: creator.Email},
		ProjectID:   in.ProjectID,
		Tags:        in.Tags,

		IsRecurring:            in.IsRecurring,
		RecurrenceIntervalDays: in.RecurrenceIntervalDays,
		SubtaskCount:           len(in.Subtasks),
	}
	if assignee != nil {
		task.AssignedTo = &models.UserRef{UserID: assignee.ID, Name: assignee.Name, Email: assignee.Email}
	}

	if len(in.Subtasks) == 0 {
		if err := s.tasks.Insert(ctx, task); err != nil {
			return nil, err
		}
		return task, nil
	}

	subtasks := make([]*models.Subtask, 0, len(in.Subtasks))
	for _, si := range in.Subtasks {
		if strings.TrimSpace(si.Title) == "" {
			return nil, Validation("subtask title must not be empty")
		}
		subtasks = append(subtasks, &models.Subtask{
			ID:          uuid.New().String(),
			TaskID:      task.ID,
			Title:       strings.TrimSpace(si.Title),
			Description: si.Description,
			DueDate:     si.DueDate,
			CreatedBy:   creator.ID,
			CreatedAt:   now,
		})
	}
	if err := s.tasks.InsertWithSubtasks(ctx, task, subtasks); err != nil {
		return nil, err
	}
	logging.Logger.Infof("Event ID: TASK_CREATED, Description: Task %s created with %d subtasks", task.ID, len(subtasks))
	return task, nil
}

// GetTask masks visibility denial as not-found so a denied viewer cannot
// tell the task exists.
func (s *TaskService) GetTask(ctx context.Context, viewerID, id string) (*models.Task, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil || !s.CanViewTask(ctx, viewerID, task) {
		return nil, ErrNotFound
	}
	return task, nil
}

type ListTasksQuery struct {
	ProjectID       string
	AssignedToID    string
	LabelID         string
	Limit           int
	IncludeArchived bool
	Debug           bool
}

// ListTasks generalizes the visibility predicate to bulk queries: the result
// is the union of what each rule would let the viewer see. The sources map
// is populated only in debug mode.
func (s *TaskService) ListTasks(ctx context.Context, viewerID string, q ListTasksQuery) ([]models.Task, map[string]string, error) {
	role := models.RoleStaff
	viewer, err := s.users.Get(ctx, viewerID)
	if err != nil {
		logging.Logger.Warnf("Event ID: TASK_LIST_VIEWER_DEGRADED, Description: Viewer lookup failed for %s, defaulting role to staff: %v", viewerID, err)
	} else if viewer != nil {
		role = viewer.Role
	}

	seen := map[string]models.Task{}
	sources := map[string]string{}
	add := func(tasks []models.Task, source string) {
		for _, t := range tasks {
			if _, ok := seen[t.ID]; !ok {
				seen[t.ID] = t
				sources[t.ID] = source
			}
		}
	}

	if role == models.RoleAdmin {
		all, err := s.tasks.ListAll(ctx)
		if err != nil {
			return nil, nil, err
		}
		add(all, "admin")
	} else {
		created, err := s.tasks.ListByCreator(ctx, viewerID)
		if err != nil {
			return nil, nil, err
		}
		add(created, "creator")

		assigned, err := s.tasks.ListByAssignee(ctx, viewerID)
		if err != nil {
			return nil, nil, err
		}
		add(assigned, "assignee")

		memberships, err := s.memberships.ListByUser(ctx, viewerID)
		if err != nil {
			logging.Logger.Warnf("Event ID: TASK_LIST_MEMBERSHIP_DEGRADED, Description: Membership scan failed for %s: %v", viewerID, err)
		} else {
			for _, m := range memberships {
				projectTasks, err := s.tasks.ListByProject(ctx, m.ProjectID)
				if err != nil {
					logging.Logger.Warnf("Event ID: TASK_LIST_PROJECT_DEGRADED, Description: Project scan failed for %s: %v", m.ProjectID, err)
					continue
				}
				add(projectTasks, "project:"+m.ProjectID)
			}
		}

		if role.ManagerOrAbove() {
			reports, err := s.users.ListByManager(ctx, viewerID)
			if err != nil {
				logging.Logger.Warnf("Event ID: TASK_LIST_REPORTS_DEGRADED, Description: Direct-report scan failed for %s: %v", viewerID, err)
			} else {
				for _, report := range reports {
					created, err := s.tasks.ListByCreator(ctx, report.ID)
					if err == nil {
						add(created, "report:"+report.ID)
					}
					assigned, err := s.tasks.ListByAssignee(ctx, report.ID)
					if err == nil {
						add(assigned, "report:"+report.ID)
					}
				}
			}
		}
	}

	tasks := make([]models.Task, 0, len(seen))
	for _, t := range seen {
		if t.Archived && !q.IncludeArchived {
			continue
		}
		if q.ProjectID != "" && t.ProjectID != q.ProjectID {
			continue
		}
		if q.AssignedToID != "" && t.AssigneeID() != q.AssignedToID {
			continue
		}
		if q.LabelID != "" && !contains(t.Labels, q.LabelID) {
			continue
		}
		tasks = append(tasks, t)
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt > tasks[j].CreatedAt
	})

	limit := q.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if len(tasks) > limit {
		tasks = tasks[:limit]
	}

	if !q.Debug {
		return tasks, nil, nil
	}
	return tasks, sources, nil
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}

type UpdateTaskInput struct {
	Title                  *string          `json:"title"`
	Description            *string          `json:"description"`
	Priority               *models.Priority `json:"priority"`
	Status                 *string          `json:"status"`
	DueDate                *string          `json:"due_date"`
	Tags                   *[]string        `json:"tags"`
	IsRecurring            *bool            `json:"is_recurring"`
	RecurrenceIntervalDays *int             `json:"recurrence_interval_days"`
}

// UpdateResult carries the committed task plus the side-effect report. The
// successor id is set only when a recurring task just completed.
type UpdateResult struct {
	Task                *models.Task
	NextRecurringTaskID string
	Effects             Outcome
}

func (s *TaskService) UpdateTask(ctx context.Context, viewerID, id string, in UpdateTaskInput) (*UpdateResult, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrNotFound
	}
	if !s.CanEditTask(viewerID, task) {
		return nil, ErrForbidden
	}

	old := *task

	if in.Title != nil {
		if len(strings.TrimSpace(*in.Title)) < 3 {
			return nil, Validation("title must be at least 3 characters")
		}
		task.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		if len(strings.TrimSpace(*in.Description)) < 10 {
			return nil, Validation("description must be at least 10 characters")
		}
		task.Description = strings.TrimSpace(*in.Description)
	}
	if in.Priority != nil {
		if !in.Priority.Valid() {
			return nil, Validation("priority must be between 1 and 10")
		}
		task.Priority = *in.Priority
	}
	if in.Status != nil {
		parsed, err := models.ParseStatus(*in.Status)
		if err != nil {
			return nil, Validation(err.Error())
		}
		task.Status = parsed
	}
	if in.DueDate != nil {
		if *in.DueDate != "" {
			if _, err := ParseWhen(*in.DueDate); err != nil {
				return nil, Validation("due_date is not a recognized timestamp")
			}
		}
		task.DueDate = *in.DueDate
	}
	if in.Tags != nil {
		if err := validateTags(*in.Tags); err != nil {
			return nil, err
		}
		task.Tags = *in.Tags
	}
	if in.IsRecurring != nil {
		task.IsRecurring = *in.IsRecurring
	}
	if in.RecurrenceIntervalDays != nil {
		task.RecurrenceIntervalDays = *in.RecurrenceIntervalDays
	}
	if task.IsRecurring {
		if task.DueDate == "" {
			return nil, Validation("a recurring task requires a due date")
		}
		if task.RecurrenceIntervalDays <= 0 {
			return nil, Validation("a recurring task requires a positive recurrence interval")
		}
	}

	task.UpdatedAt = nowISO()
	if err := s.tasks.Replace(ctx, task); err != nil {
		return nil, err
	}

	result := &UpdateResult{Task: task, Effects: Outcome{Applied: true}}

	// Successor generation fires only on the not-completed to completed
	// transition.
	if old.Status != models.StatusCompleted && task.Status == models.StatusCompleted {
		if successor := BuildSuccessor(task); successor != nil {
			if err := s.tasks.Insert(ctx, successor); err != nil {
				logging.Logger.Errorf("Event ID: RECURRENCE_DEGRADED, Description: Successor insert for task %s failed: %v", task.ID, err)
				result.Effects.Degrade("successor creation failed")
			} else {
				result.NextRecurringTaskID = successor.ID
				logging.Logger.Infof("Event ID: RECURRENCE_GENERATED, Description: Task %s spawned successor %s due %s", task.ID, successor.ID, successor.DueDate)
			}
		}
	}

	if lines := diffWatchedFields(&old, task); len(lines) > 0 {
		editor := s.editorName(ctx, viewerID, task)
		title := "Task updated: " + task.Title
		body := fmt.Sprintf("%s updated the task:\n%s", editor, strings.Join(lines, "\n"))
		outcome := s.notifier.NotifyTaskChanged(ctx, task, s.changeRecipients(ctx, task), title, body)
		for _, reason := range outcome.Degraded {
			result.Effects.Degrade(reason)
		}
	}

	return result, nil
}

// diffWatchedFields renders one "old -> new" line per changed watched field.
func diffWatchedFields(old, updated *models.Task) []string {
	var lines []string
	line := func(field, before, after string) {
		lines = append(lines, fmt.Sprintf("%s: %s -> %s", field, orNone(before), orNone(after)))
	}
	if old.Title != updated.Title {
		line("title", old.Title, updated.Title)
	}
	if old.Description != updated.Description {
		line("description", old.Description, updated.Description)
	}
	if old.Priority != updated.Priority {
		line("priority", fmt.Sprintf("%d", old.Priority), fmt.Sprintf("%d", updated.Priority))
	}
	if old.Status != updated.Status {
		line("status", string(old.Status), string(updated.Status))
	}
	if old.DueDate != updated.DueDate {
		line("due_date", old.DueDate, updated.DueDate)
	}
	if !slices.Equal(old.Tags, updated.Tags) {
		line("tags", strings.Join(old.Tags, ", "), strings.Join(updated.Tags, ", "))
	}
	return lines
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

// editorName resolves the editor's display name from the task's embedded
// snapshots before falling back to a lookup, and finally to a placeholder.
func (s *TaskService) editorName(ctx context.Context, editorID string, task *models.Task) string {
	if task.CreatedBy != nil && task.CreatedBy.UserID == editorID && task.CreatedBy.Name != "" {
		return task.CreatedBy.Name
	}
	if task.AssignedTo != nil && task.AssignedTo.UserID == editorID && task.AssignedTo.Name != "" {
		return task.AssignedTo.Name
	}
	user, err := s.users.Get(ctx, editorID)
	if err != nil || user == nil {
		return "A team member"
	}
	return user.Name
}

// changeRecipients is the union of creator, assignee and project members.
// The editor is not excluded.
func (s *TaskService) changeRecipients(ctx context.Context, task *models.Task) []string {
	seen := map[string]bool{}
	var recipients []string
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			recipients = append(recipients, id)
		}
	}
	add(task.CreatorID())
	add(task.AssigneeID())
	if task.ProjectID != "" {
		members, err := s.memberships.ListByProject(ctx, task.ProjectID)
		if err != nil {
			logging.Logger.Warnf("Event ID: NOTIFY_MEMBERS_DEGRADED, Description: Member scan failed for project %s: %v", task.ProjectID, err)
		} else {
			for _, m := range members {
				add(m.UserID)
			}
		}
	}
	return recipients
}

// DeleteTask archives the task and everything hanging off it. Only the
// creator may archive, and never with the staff role. Non-creators get
// not-found so the task's existence stays hidden.
func (s *TaskService) DeleteTask(ctx context.Context, viewerID, id string) (Outcome, error) {
	outcome := Outcome{}

	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return outcome, err
	}
	if task == nil || task.CreatorID() != viewerID {
		return outcome, ErrNotFound
	}

	role := models.RoleStaff
	viewer, err := s.users.Get(ctx, viewerID)
	if err != nil {
		logging.Logger.Warnf("Event ID: ARCHIVE_VIEWER_DEGRADED, Description: Viewer lookup failed for %s, defaulting role to staff: %v", viewerID, err)
	} else if viewer != nil {
		role = viewer.Role
	}
	if role == models.RoleStaff {
		return outcome, ErrForbidden
	}

	plan := models.CascadePlan{
		TaskID:     task.ID,
		ArchivedAt: nowISO(),
		ArchivedBy: viewerID,
	}

	// Enumeration of dependents is best-effort; a failed scan is logged
	// and that collection is skipped. The commit itself is atomic.
	if subtasks, err := s.subtasks.ListByTask(ctx, task.ID); err != nil {
		logging.Logger.Warnf("Event ID: ARCHIVE_SCAN_DEGRADED, Description: Subtask scan failed for task %s: %v", task.ID, err)
		outcome.Degrade("subtask scan failed")
	} else {
		for _, st := range subtasks {
			if !st.Archived {
				plan.SubtaskIDs = append(plan.SubtaskIDs, st.ID)
			}
		}
	}
	if notes, err := s.notes.ListByTask(ctx, task.ID); err != nil {
		logging.Logger.Warnf("Event ID: ARCHIVE_SCAN_DEGRADED, Description: Note scan failed for task %s: %v", task.ID, err)
		outcome.Degrade("note scan failed")
	} else {
		for _, n := range notes {
			plan.NoteIDs = append(plan.NoteIDs, n.ID)
		}
	}
	if attachments, err := s.attachments.ListByTask(ctx, task.ID); err != nil {
		logging.Logger.Warnf("Event ID: ARCHIVE_SCAN_DEGRADED, Description: Attachment scan failed for task %s: %v", task.ID, err)
		outcome.Degrade("attachment scan failed")
	} else {
		for _, a := range attachments {
			plan.AttachmentIDs = append(plan.AttachmentIDs, a.ID)
		}
	}
	if junctions, err := s.labels.ListAssignmentsByTask(ctx, task.ID); err != nil {
		logging.Logger.Warnf("Event ID: ARCHIVE_SCAN_DEGRADED, Description: Label junction scan failed for task %s: %v", task.ID, err)
		outcome.Degrade("label junction scan failed")
	} else {
		for _, j := range junctions {
			plan.TaskLabelIDs = append(plan.TaskLabelIDs, j.ID)
		}
	}

	// A recurrence root drags its open children into the archive.
	// Completed children stay as historical record.
	if task.RecurrenceRoot() {
		if children, err := s.tasks.ListChildren(ctx, task.ID); err != nil {
			logging.Logger.Warnf("Event ID: ARCHIVE_SCAN_DEGRADED, Description: Child scan failed for task %s: %v", task.ID, err)
			outcome.Degrade("recurrence child scan failed")
		} else {
			for _, child := range children {
				if child.Status != models.StatusCompleted && !child.Archived {
					plan.ChildTaskIDs = append(plan.ChildTaskIDs, child.ID)
				}
			}
		}
	}

	if err := s.tasks.ArchiveCascade(ctx, plan); err != nil {
		return outcome, err
	}
	outcome.Applied = true
	logging.Logger.Infof("Event ID: TASK_ARCHIVED, Description: Task %s archived by %s with %d subtasks, %d notes, %d attachments, %d children",
		task.ID, viewerID, len(plan.SubtaskIDs), len(plan.NoteIDs), len(plan.AttachmentIDs), len(plan.ChildTaskIDs))
	return outcome, nil
}

// ReassignTask moves a task to a new assignee. Manager-level roles only.
// Reassigning to the current assignee succeeds without writing.
func (s *TaskService) ReassignTask(ctx context.Context, viewerID, id, targetUserID string) (*models.Task, error) {
	if targetUserID == "" {
		return nil, Validation("assigned_to_id is required")
	}

	viewer, err := s.users.Get(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if viewer == nil || !viewer.Role.ManagerOrAbove() {
		return nil, ErrForbidden
	}

	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrNotFound
	}

	if task.AssigneeID() == targetUserID {
		return task, nil
	}

	target, err := s.users.Get(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, fmt.Errorf("%w: target user does not exist", ErrNotFound)
	}

	task.AssignedTo = &models.UserRef{UserID: target.ID, Name: target.Name, Email: target.Email}
	task.UpdatedAt = nowISO()
	if err := s.tasks.Replace(ctx, task); err != nil {
		return nil, err
	}

	title := "Task assigned to you: " + task.Title
	body := fmt.Sprintf("%s assigned you the task %q.", s.editorName(ctx, viewerID, task), task.Title)
	s.notifier.NotifyTaskChanged(ctx, task, []string{target.ID}, title, body)

	return task, nil
}
