package repositories

import (
	"context"
	"errors"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/logging"
	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TaskRepo covers tasks, their subtasks and the documents the archive
// cascade touches. It keeps the client so the cascade can run in a session.
type TaskRepo struct {
	client      *mongo.Client
	tasks       *mongo.Collection
	subtasks    *mongo.Collection
	notes       *mongo.Collection
	attachments *mongo.Collection
	taskLabels  *mongo.Collection
}

func NewTaskRepo(client *mongo.Client, db *mongo.Database) *TaskRepo {
	return &TaskRepo{
		client:      client,
		tasks:       db.Collection("tasks"),
		subtasks:    db.Collection("subtasks"),
		notes:       db.Collection("notes"),
		attachments: db.Collection("attachments"),
		taskLabels:  db.Collection("task_labels"),
	}
}

// Get returns (nil, nil) when the task does not exist. Callers depend on the
// distinction between a missing document and a failed lookup.
func (r *TaskRepo) Get(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task
	err := r.tasks.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logging.Logger.Errorf("Event ID: TASK_GET_FAILED, Description: Lookup of task %s failed: %v", id, err)
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepo) Insert(ctx context.Context, task *models.Task) error {
	_, err := r.tasks.InsertOne(ctx, task)
	if err != nil {
		logging.Logger.Errorf("Event ID: TASK_INSERT_FAILED, Description: Insert of task %s failed: %v", task.ID, err)
	}
	return err
}

// InsertWithSubtasks writes the task and its initial subtasks in one
// transaction so a half-created task never becomes visible.
func (r *TaskRepo) InsertWithSubtasks(ctx context.Context, task *models.Task, subtasks []*models.Subtask) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.tasks.InsertOne(sc, task); err != nil {
			return nil, err
		}
		for _, st := range subtasks {
			if _, err := r.subtasks.InsertOne(sc, st); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		logging.Logger.Errorf("Event ID: TASK_INSERT_TX_FAILED, Description: Transactional insert of task %s failed: %v", task.ID, err)
	}
	return err
}

func (r *TaskRepo) Replace(ctx context.Context, task *models.Task) error {
	_, err := r.tasks.ReplaceOne(ctx, bson.M{"_id": task.ID}, task)
	if err != nil {
		logging.Logger.Errorf("Event ID: TASK_REPLACE_FAILED, Description: Update of task %s failed: %v", task.ID, err)
	}
	return err
}

// IncrementSubtaskCounts bumps the denormalized counters on the parent task.
func (r *TaskRepo) IncrementSubtaskCounts(ctx context.Context, taskID string, total, completed int) error {
	inc := bson.M{}
	if total != 0 {
		inc["subtask_count"] = total
	}
	if completed != 0 {
		inc["subtask_completed_count"] = completed
	}
	if len(inc) == 0 {
		return nil
	}
	_, err := r.tasks.UpdateOne(ctx, bson.M{"_id": taskID}, bson.M{"$inc": inc})
	if err != nil {
		logging.Logger.Errorf("Event ID: TASK_COUNTER_FAILED, Description: Counter update on task %s failed: %v", taskID, err)
	}
	return err
}

func (r *TaskRepo) ListByCreator(ctx context.Context, userID string) ([]models.Task, error) {
	return r.list(ctx, bson.M{"created_by.user_id": userID})
}

func (r *TaskRepo) ListByAssignee(ctx context.Context, userID string) ([]models.Task, error) {
	return r.list(ctx, bson.M{"assigned_to.user_id": userID})
}

func (r *TaskRepo) ListByProject(ctx context.Context, projectID string) ([]models.Task, error) {
	return r.list(ctx, bson.M{"project_id": projectID})
}

func (r *TaskRepo) ListAll(ctx context.Context) ([]models.Task, error) {
	return r.list(ctx, bson.M{})
}

// ListChildren returns the follow-up tasks spawned from a recurring task.
func (r *TaskRepo) ListChildren(ctx context.Context, parentID string) ([]models.Task, error) {
	return r.list(ctx, bson.M{"parent_recurring_task_id": parentID})
}

// ListDueBetween relies on due dates being ISO-8601 strings, which order
// lexicographically.
func (r *TaskRepo) ListDueBetween(ctx context.Context, from, to string) ([]models.Task, error) {
	return r.list(ctx, bson.M{
		"archived": false,
		"due_date": bson.M{"$gte": from, "$lt": to},
	})
}

func (r *TaskRepo) list(ctx context.Context, filter bson.M) ([]models.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.tasks.Find(ctx, filter, opts)
	if err != nil {
		logging.Logger.Errorf("Event ID: TASK_LIST_FAILED, Description: Task query failed: %v", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		logging.Logger.Errorf("Event ID: TASK_LIST_DECODE_FAILED, Description: Decoding task query failed: %v", err)
		return nil, err
	}
	return tasks, nil
}

// ArchiveCascade commits the whole archive batch in one transaction. The
// plan was enumerated beforehand, so a partially enumerated plan still
// commits atomically.
func (r *TaskRepo) ArchiveCascade(ctx context.Context, plan models.CascadePlan) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	archived := bson.M{"$set": bson.M{"archived": true, "archived_at": plan.ArchivedAt}}

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		taskSet := bson.M{"$set": bson.M{
			"archived":    true,
			"archived_at": plan.ArchivedAt,
			"archived_by": plan.ArchivedBy,
		}}
		if _, err := r.tasks.UpdateOne(sc, bson.M{"_id": plan.TaskID}, taskSet); err != nil {
			return nil, err
		}
		if len(plan.SubtaskIDs) > 0 {
			if _, err := r.subtasks.UpdateMany(sc, bson.M{"_id": bson.M{"$in": plan.SubtaskIDs}}, archived); err != nil {
				return nil, err
			}
		}
		if len(plan.NoteIDs) > 0 {
			if _, err := r.notes.UpdateMany(sc, bson.M{"_id": bson.M{"$in": plan.NoteIDs}}, archived); err != nil {
				return nil, err
			}
		}
		if len(plan.AttachmentIDs) > 0 {
			if _, err := r.attachments.UpdateMany(sc, bson.M{"_id": bson.M{"$in": plan.AttachmentIDs}}, archived); err != nil {
				return nil, err
			}
		}
		if len(plan.TaskLabelIDs) > 0 {
			if _, err := r.taskLabels.DeleteMany(sc, bson.M{"_id": bson.M{"$in": plan.TaskLabelIDs}}); err != nil {
				return nil, err
			}
		}
		if len(plan.ChildTaskIDs) > 0 {
			if _, err := r.tasks.UpdateMany(sc, bson.M{"_id": bson.M{"$in": plan.ChildTaskIDs}}, taskSet); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		logging.Logger.Errorf("Event ID: TASK_CASCADE_FAILED, Description: Cascade archive of task %s failed: %v", plan.TaskID, err)
	}
	return err
}
