package repositories

import (
	"context"
	"errors"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/logging"
	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AccountRepo backs the identity provider with a credential collection kept
// apart from user profiles.
type AccountRepo struct {
	accounts *mongo.Collection
}

func NewAccountRepo(db *mongo.Database) *AccountRepo {
	return &AccountRepo{accounts: db.Collection("accounts")}
}

func (r *AccountRepo) Get(ctx context.Context, id string) (*models.Account, error) {
	var acc models.Account
	err := r.accounts.FindOne(ctx, bson.M{"_id": id}).Decode(&acc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logging.Logger.Errorf("Event ID: ACCOUNT_GET_FAILED, Description: Lookup of account %s failed: %v", id, err)
		return nil, err
	}
	return &acc, nil
}

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	var acc models.Account
	err := r.accounts.FindOne(ctx, bson.M{"email": email}).Decode(&acc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logging.Logger.Errorf("Event ID: ACCOUNT_GET_BY_EMAIL_FAILED, Description: Lookup of account by email failed: %v", err)
		return nil, err
	}
	return &acc, nil
}

func (r *AccountRepo) Insert(ctx context.Context, acc *models.Account) error {
	_, err := r.accounts.InsertOne(ctx, acc)
	if err != nil {
		logging.Logger.Errorf("Event ID: ACCOUNT_INSERT_FAILED, Description: Insert of account %s failed: %v", acc.ID, err)
	}
	return err
}

func (r *AccountRepo) Delete(ctx context.Context, id string) error {
	_, err := r.accounts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logging.Logger.Errorf("Event ID: ACCOUNT_DELETE_FAILED, Description: Delete of account %s failed: %v", id, err)
	}
	return err
}

func (r *AccountRepo) SetDisabled(ctx context.Context, id string, disabled bool) error {
	_, err := r.accounts.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"disabled": disabled}})
	if err != nil {
		logging.Logger.Errorf("Event ID: ACCOUNT_DISABLE_FAILED, Description: Disabling account %s failed: %v", id, err)
	}
	return err
}
