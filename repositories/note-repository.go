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

// NoteRepo covers both notes and the lighter comment stream.
type NoteRepo struct {
	notes    *mongo.Collection
	comments *mongo.Collection
}

func NewNoteRepo(db *mongo.Database) *NoteRepo {
	return &NoteRepo{
		notes:    db.Collection("notes"),
		comments: db.Collection("comments"),
	}
}

func (r *NoteRepo) Get(ctx context.Context, id string) (*models.Note, error) {
	var note models.Note
	err := r.notes.FindOne(ctx, bson.M{"_id": id}).Decode(&note)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logging.Logger.Errorf("Event ID: NOTE_GET_FAILED, Description: Lookup of note %s failed: %v", id, err)
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepo) Insert(ctx context.Context, note *models.Note) error {
	_, err := r.notes.InsertOne(ctx, note)
	if err != nil {
		logging.Logger.Errorf("Event ID: NOTE_INSERT_FAILED, Description: Insert of note %s failed: %v", note.ID, err)
	}
	return err
}

func (r *NoteRepo) Replace(ctx context.Context, note *models.Note) error {
	_, err := r.notes.ReplaceOne(ctx, bson.M{"_id": note.ID}, note)
	if err != nil {
		logging.Logger.Errorf("Event ID: NOTE_REPLACE_FAILED, Description: Update of note %s failed: %v", note.ID, err)
	}
	return err
}

func (r *NoteRepo) ListByTask(ctx context.Context, taskID string) ([]models.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.notes.Find(ctx, bson.M{"task_id": taskID, "archived": false}, opts)
	if err != nil {
		logging.Logger.Errorf("Event ID: NOTE_LIST_FAILED, Description: Note query for task %s failed: %v", taskID, err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var notes []models.Note
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NoteRepo) GetComment(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	err := r.comments.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logging.Logger.Errorf("Event ID: COMMENT_GET_FAILED, Description: Lookup of comment %s failed: %v", id, err)
		return nil, err
	}
	return &comment, nil
}

func (r *NoteRepo) InsertComment(ctx context.Context, comment *models.Comment) error {
	_, err := r.comments.InsertOne(ctx, comment)
	if err != nil {
		logging.Logger.Errorf("Event ID: COMMENT_INSERT_FAILED, Description: Insert of comment %s failed: %v", comment.ID, err)
	}
	return err
}

func (r *NoteRepo) ReplaceComment(ctx context.Context, comment *models.Comment) error {
	_, err := r.comments.ReplaceOne(ctx, bson.M{"_id": comment.ID}, comment)
	if err != nil {
		logging.Logger.Errorf("Event ID: COMMENT_REPLACE_FAILED, Description: Update of comment %s failed: %v", comment.ID, err)
	}
	return err
}

func (r *NoteRepo) DeleteComment(ctx context.Context, id string) error {
	_, err := r.comments.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logging.Logger.Errorf("Event ID: COMMENT_DELETE_FAILED, Description: Delete of comment %s failed: %v", id, err)
	}
	return err
}

func (r *NoteRepo) ListCommentsByTask(ctx context.Context, taskID string) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.comments.Find(ctx, bson.M{"task_id": taskID}, opts)
	if err != nil {
		logging.Logger.Errorf("Event ID: COMMENT_LIST_FAILED, Description: Comment query for task %s failed: %v", taskID, err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []models.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
