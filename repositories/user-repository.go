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

type UserRepo struct {
	users *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{users: db.Collection("users")}
}

// Get returns (nil, nil) when no profile exists for the id.
func (r *UserRepo) Get(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logging.Logger.Errorf("Event ID: USER_GET_FAILED, Description: Lookup of user %s failed: %v", id, err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logging.Logger.Errorf("Event ID: USER_GET_BY_EMAIL_FAILED, Description: Lookup of user by email failed: %v", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) Insert(ctx context.Context, user *models.User) error {
	_, err := r.users.InsertOne(ctx, user)
	if err != nil {
		logging.Logger.Errorf("Event ID: USER_INSERT_FAILED, Description: Insert of user %s failed: %v", user.ID, err)
	}
	return err
}

func (r *UserRepo) Replace(ctx context.Context, user *models.User) error {
	_, err := r.users.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		logging.Logger.Errorf("Event ID: USER_REPLACE_FAILED, Description: Update of user %s failed: %v", user.ID, err)
	}
	return err
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	_, err := r.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logging.Logger.Errorf("Event ID: USER_DELETE_FAILED, Description: Delete of user %s failed: %v", id, err)
	}
	return err
}

func (r *UserRepo) ListAll(ctx context.Context) ([]models.User, error) {
	return r.list(ctx, bson.M{})
}

// ListByManager returns the direct reports of a manager.
func (r *UserRepo) ListByManager(ctx context.Context, managerID string) ([]models.User, error) {
	return r.list(ctx, bson.M{"manager_id": managerID})
}

func (r *UserRepo) list(ctx context.Context, filter bson.M) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.users.Find(ctx, filter, opts)
	if err != nil {
		logging.Logger.Errorf("Event ID: USER_LIST_FAILED, Description: User query failed: %v", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
