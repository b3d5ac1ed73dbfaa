package repositories

import (
	"context"
	"errors"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/logging"
	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MembershipRepo struct {
	memberships *mongo.Collection
}

func NewMembershipRepo(db *mongo.Database) *MembershipRepo {
	return &MembershipRepo{memberships: db.Collection("memberships")}
}

// Get looks up the composite "{project_id}_{user_id}" key and returns
// (nil, nil) when the user is not a member.
func (r *MembershipRepo) Get(ctx context.Context, projectID, userID string) (*models.Membership, error) {
	var m models.Membership
	err := r.memberships.FindOne(ctx, bson.M{"_id": models.MembershipID(projectID, userID)}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logging.Logger.Errorf("Event ID: MEMBERSHIP_GET_FAILED, Description: Membership lookup for project %s failed: %v", projectID, err)
		return nil, err
	}
	return &m, nil
}

func (r *MembershipRepo) Insert(ctx context.Context, m *models.Membership) error {
	_, err := r.memberships.InsertOne(ctx, m)
	if err != nil {
		logging.Logger.Errorf("Event ID: MEMBERSHIP_INSERT_FAILED, Description: Insert of membership %s failed: %v", m.ID, err)
	}
	return err
}

func (r *MembershipRepo) Delete(ctx context.Context, projectID, userID string) error {
	_, err := r.memberships.DeleteOne(ctx, bson.M{"_id": models.MembershipID(projectID, userID)})
	if err != nil {
		logging.Logger.Errorf("Event ID: MEMBERSHIP_DELETE_FAILED, Description: Delete of membership failed: %v", err)
	}
	return err
}

func (r *MembershipRepo) ListByProject(ctx context.Context, projectID string) ([]models.Membership, error) {
	return r.list(ctx, bson.M{"project_id": projectID})
}

func (r *MembershipRepo) ListByUser(ctx context.Context, userID string) ([]models.Membership, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *MembershipRepo) list(ctx context.Context, filter bson.M) ([]models.Membership, error) {
	cursor, err := r.memberships.Find(ctx, filter)
	if err != nil {
		logging.Logger.Errorf("Event ID: MEMBERSHIP_LIST_FAILED, Description: Membership query failed: %v", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var memberships []models.Membership
	if err := cursor.All(ctx, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}
