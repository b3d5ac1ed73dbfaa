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

type AttachmentRepo struct {
	attachments *mongo.Collection
}

func NewAttachmentRepo(db *mongo.Database) *AttachmentRepo {
	return &AttachmentRepo{attachments: db.Collection("attachments")}
}

func (r *AttachmentRepo) Get(ctx context.Context, id string) (*models.Attachment, error) {
	var att models.Attachment
	err := r.attachments.FindOne(ctx, bson.M{"_id": id}).Decode(&att)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logging.Logger.Errorf("Event ID: ATTACHMENT_GET_FAILED, Description: Lookup of attachment %s failed: %v", id, err)
		return nil, err
	}
	return &att, nil
}

func (r *AttachmentRepo) Insert(ctx context.Context, att *models.Attachment) error {
	_, err := r.attachments.InsertOne(ctx, att)
	if err != nil {
		logging.Logger.Errorf("Event ID: ATTACHMENT_INSERT_FAILED, Description: Insert of attachment %s failed: %v", att.ID, err)
	}
	return err
}

func (r *AttachmentRepo) Archive(ctx context.Context, id, archivedAt string) error {
	_, err := r.attachments.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"archived": true, "archived_at": archivedAt}})
	if err != nil {
		logging.Logger.Errorf("Event ID: ATTACHMENT_ARCHIVE_FAILED, Description: Archive of attachment %s failed: %v", id, err)
	}
	return err
}

// ListByTask omits file_data so listings stay light. The payload is only
// fetched through Get on a single attachment.
func (r *AttachmentRepo) ListByTask(ctx context.Context, taskID string) ([]models.Attachment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "uploaded_at", Value: -1}}).
		SetProjection(bson.M{"file_data": 0})
	cursor, err := r.attachments.Find(ctx, bson.M{"task_id": taskID, "archived": false}, opts)
	if err != nil {
		logging.Logger.Errorf("Event ID: ATTACHMENT_LIST_FAILED, Description: Attachment query for task %s failed: %v", taskID, err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var attachments []models.Attachment
	if err := cursor.All(ctx, &attachments); err != nil {
		return nil, err
	}
	return attachments, nil
}
