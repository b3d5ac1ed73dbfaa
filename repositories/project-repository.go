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

// ProjectRepo keeps the client so project creation can write the project and
// the owner membership together.
type ProjectRepo struct {
	client      *mongo.Client
	projects    *mongo.Collection
	memberships *mongo.Collection
}

func NewProjectRepo(client *mongo.Client, db *mongo.Database) *ProjectRepo {
	return &ProjectRepo{
		client:      client,
		projects:    db.Collection("projects"),
		memberships: db.Collection("memberships"),
	}
}

func (r *ProjectRepo) Get(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := r.projects.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logging.Logger.Errorf("Event ID: PROJECT_GET_FAILED, Description: Lookup of project %s failed: %v", id, err)
		return nil, err
	}
	return &project, nil
}

// InsertWithOwner creates the project and its owner membership in one
// transaction so a project is never ownerless.
func (r *ProjectRepo) InsertWithOwner(ctx context.Context, project *models.Project, owner *models.Membership) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.projects.InsertOne(sc, project); err != nil {
			return nil, err
		}
		if _, err := r.memberships.InsertOne(sc, owner); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		logging.Logger.Errorf("Event ID: PROJECT_INSERT_TX_FAILED, Description: Transactional insert of project %s failed: %v", project.ID, err)
	}
	return err
}

func (r *ProjectRepo) Replace(ctx context.Context, project *models.Project) error {
	_, err := r.projects.ReplaceOne(ctx, bson.M{"_id": project.ID}, project)
	if err != nil {
		logging.Logger.Errorf("Event ID: PROJECT_REPLACE_FAILED, Description: Update of project %s failed: %v", project.ID, err)
	}
	return err
}

func (r *ProjectRepo) ListAll(ctx context.Context) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.projects.Find(ctx, bson.M{"archived": false}, opts)
	if err != nil {
		logging.Logger.Errorf("Event ID: PROJECT_LIST_FAILED, Description: Project query failed: %v", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}
