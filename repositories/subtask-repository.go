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

type SubtaskRepo struct {
	subtasks *mongo.Collection
}

func NewSubtaskRepo(db *mongo.Database) *SubtaskRepo {
	return &SubtaskRepo{subtasks: db.Collection("subtasks")}
}

func (r *SubtaskRepo) Get(ctx context.Context, id string) (*models.Subtask, error) {
	var st models.Subtask
	err := r.subtasks.FindOne(ctx, bson.M{"_id": id}).Decode(&st)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logging.Logger.Errorf("Event ID: SUBTASK_GET_FAILED, Description: Lookup of subtask %s failed: %v", id, err)
		return nil, err
	}
	return &st, nil
}

func (r *SubtaskRepo) Insert(ctx context.Context, st *models.Subtask) error {
	_, err := r.subtasks.InsertOne(ctx, st)
	if err != nil {
		logging.Logger.Errorf("Event ID: SUBTASK_INSERT_FAILED, Description: Insert of subtask %s failed: %v", st.ID, err)
	}
	return err
}

func (r *SubtaskRepo) Replace(ctx context.Context, st *models.Subtask) error {
	_, err := r.subtasks.ReplaceOne(ctx, bson.M{"_id": st.ID}, st)
	if err != nil {
		logging.Logger.Errorf("Event ID: SUBTASK_REPLACE_FAILED, Description: Update of subtask %s failed: %v", st.ID, err)
	}
	return err
}

func (r *SubtaskRepo) ListByTask(ctx context.Context, taskID string) ([]models.Subtask, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.subtasks.Find(ctx, bson.M{"task_id": taskID}, opts)
	if err != nil {
		logging.Logger.Errorf("Event ID: SUBTASK_LIST_FAILED, Description: Subtask query for task %s failed: %v", taskID, err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var subtasks []models.Subtask
	if err := cursor.All(ctx, &subtasks); err != nil {
		return nil, err
	}
	return subtasks, nil
}
