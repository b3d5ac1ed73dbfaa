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

// LabelRepo maintains labels, the task_labels junction collection and the
// denormalized labels array on the task document.
type LabelRepo struct {
	labels     *mongo.Collection
	taskLabels *mongo.Collection
	tasks      *mongo.Collection
}

func NewLabelRepo(db *mongo.Database) *LabelRepo {
	return &LabelRepo{
		labels:     db.Collection("labels"),
		taskLabels: db.Collection("task_labels"),
		tasks:      db.Collection("tasks"),
	}
}

func (r *LabelRepo) Get(ctx context.Context, id string) (*models.Label, error) {
	var label models.Label
	err := r.labels.FindOne(ctx, bson.M{"_id": id}).Decode(&label)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logging.Logger.Errorf("Event ID: LABEL_GET_FAILED, Description: Lookup of label %s failed: %v", id, err)
		return nil, err
	}
	return &label, nil
}

func (r *LabelRepo) Insert(ctx context.Context, label *models.Label) error {
	_, err := r.labels.InsertOne(ctx, label)
	if err != nil {
		logging.Logger.Errorf("Event ID: LABEL_INSERT_FAILED, Description: Insert of label %s failed: %v", label.ID, err)
	}
	return err
}

func (r *LabelRepo) ListAll(ctx context.Context) ([]models.Label, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.labels.Find(ctx, bson.M{}, opts)
	if err != nil {
		logging.Logger.Errorf("Event ID: LABEL_LIST_FAILED, Description: Label query failed: %v", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var labels []models.Label
	if err := cursor.All(ctx, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

// Assign writes the junction row and mirrors the label id onto the task
// document. $addToSet keeps the mirror idempotent.
func (r *LabelRepo) Assign(ctx context.Context, junction *models.TaskLabel) error {
	if _, err := r.taskLabels.InsertOne(ctx, junction); err != nil {
		logging.Logger.Errorf("Event ID: LABEL_ASSIGN_FAILED, Description: Insert of junction %s failed: %v", junction.ID, err)
		return err
	}
	_, err := r.tasks.UpdateOne(ctx, bson.M{"_id": junction.TaskID},
		bson.M{"$addToSet": bson.M{"labels": junction.LabelID}})
	if err != nil {
		logging.Logger.Errorf("Event ID: LABEL_MIRROR_FAILED, Description: Mirroring label onto task %s failed: %v", junction.TaskID, err)
	}
	return err
}

func (r *LabelRepo) Unassign(ctx context.Context, taskID, labelID string) error {
	if _, err := r.taskLabels.DeleteOne(ctx, bson.M{"_id": models.TaskLabelID(taskID, labelID)}); err != nil {
		logging.Logger.Errorf("Event ID: LABEL_UNASSIGN_FAILED, Description: Delete of junction failed: %v", err)
		return err
	}
	_, err := r.tasks.UpdateOne(ctx, bson.M{"_id": taskID},
		bson.M{"$pull": bson.M{"labels": labelID}})
	if err != nil {
		logging.Logger.Errorf("Event ID: LABEL_UNMIRROR_FAILED, Description: Removing label from task %s failed: %v", taskID, err)
	}
	return err
}

func (r *LabelRepo) GetAssignment(ctx context.Context, taskID, labelID string) (*models.TaskLabel, error) {
	var junction models.TaskLabel
	err := r.taskLabels.FindOne(ctx, bson.M{"_id": models.TaskLabelID(taskID, labelID)}).Decode(&junction)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logging.Logger.Errorf("Event ID: LABEL_ASSIGNMENT_GET_FAILED, Description: Junction lookup failed: %v", err)
		return nil, err
	}
	return &junction, nil
}

func (r *LabelRepo) ListAssignmentsByTask(ctx context.Context, taskID string) ([]models.TaskLabel, error) {
	cursor, err := r.taskLabels.Find(ctx, bson.M{"task_id": taskID})
	if err != nil {
		logging.Logger.Errorf("Event ID: LABEL_ASSIGNMENT_LIST_FAILED, Description: Junction query for task %s failed: %v", taskID, err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var junctions []models.TaskLabel
	if err := cursor.All(ctx, &junctions); err != nil {
		return nil, err
	}
	return junctions, nil
}

func (r *LabelRepo) ListAssignmentsByLabel(ctx context.Context, labelID string) ([]models.TaskLabel, error) {
	cursor, err := r.taskLabels.Find(ctx, bson.M{"label_id": labelID})
	if err != nil {
		logging.Logger.Errorf("Event ID: LABEL_ASSIGNMENT_LIST_FAILED, Description: Junction query for label %s failed: %v", labelID, err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var junctions []models.TaskLabel
	if err := cursor.All(ctx, &junctions); err != nil {
		return nil, err
	}
	return junctions, nil
}
