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

type NotificationRepo struct {
	notifications *mongo.Collection
}

func NewNotificationRepo(db *mongo.Database) *NotificationRepo {
	return &NotificationRepo{notifications: db.Collection("notifications")}
}

func (r *NotificationRepo) Insert(ctx context.Context, n *models.Notification) error {
	_, err := r.notifications.InsertOne(ctx, n)
	if err != nil {
		logging.Logger.Errorf("Event ID: NOTIFICATION_INSERT_FAILED, Description: Insert of notification %s failed: %v", n.ID, err)
	}
	return err
}

func (r *NotificationRepo) Get(ctx context.Context, id string) (*models.Notification, error) {
	var n models.Notification
	err := r.notifications.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logging.Logger.Errorf("Event ID: NOTIFICATION_GET_FAILED, Description: Lookup of notification %s failed: %v", id, err)
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepo) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.notifications.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		logging.Logger.Errorf("Event ID: NOTIFICATION_LIST_FAILED, Description: Notification query for user %s failed: %v", userID, err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// Exists checks the (user, task, title) triple used to deduplicate deadline
// reminders.
func (r *NotificationRepo) Exists(ctx context.Context, userID, taskID, title string) (bool, error) {
	count, err := r.notifications.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"task_id": taskID,
		"title":   title,
	})
	if err != nil {
		logging.Logger.Errorf("Event ID: NOTIFICATION_DEDUPE_FAILED, Description: Dedupe query failed: %v", err)
		return false, err
	}
	return count > 0, nil
}

func (r *NotificationRepo) MarkRead(ctx context.Context, id string) error {
	_, err := r.notifications.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		logging.Logger.Errorf("Event ID: NOTIFICATION_MARK_READ_FAILED, Description: Marking notification %s read failed: %v", id, err)
	}
	return err
}

func (r *NotificationRepo) MarkEmailSent(ctx context.Context, id, sentAt string) error {
	_, err := r.notifications.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"email_sent": true, "email_sent_at": sentAt}})
	if err != nil {
		logging.Logger.Errorf("Event ID: NOTIFICATION_EMAIL_FLAG_FAILED, Description: Flagging email for notification %s failed: %v", id, err)
	}
	return err
}
