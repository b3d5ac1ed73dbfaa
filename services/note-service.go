package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/models"
	"github.com/google/uuid"
)

var mentionPattern = regexp.MustCompile(`@([a-zA-Z0-9_-]+)`)

// ExtractMentions returns the unique @handles in a body, in order of first
// appearance.
func ExtractMentions(body string) []string {
	matches := mentionPattern.FindAllStringSubmatch(body, -1)
	seen := map[string]bool{}
	var handles []string
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			handles = append(handles, m[1])
		}
	}
	return handles
}

type NoteService struct {
	tasks  TaskStore
	notes  NoteStore
	viewer TaskViewer
}

func NewNoteService(tasks TaskStore, notes NoteStore, viewer TaskViewer) *NoteService {
	return &NoteService{tasks: tasks, notes: notes, viewer: viewer}
}

func (s *NoteService) visibleTask(ctx context.Context, viewerID, taskID string) (*models.Task, error) {
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil || !s.viewer.CanViewTask(ctx, viewerID, task) {
		return nil, ErrNotFound
	}
	return task, nil
}

func (s *NoteService) CreateNote(ctx context.Context, viewerID, taskID, body string) (*models.Note, error) {
	if strings.TrimSpace(body) == "" {
		return nil, Validation("note body must not be empty")
	}
	if _, err := s.visibleTask(ctx, viewerID, taskID); err != nil {
		return nil, err
	}

	note := &models.Note{
		ID:        uuid.New().String(),
		TaskID:    taskID,
		AuthorID:  viewerID,
		Body:      body,
		Mentions:  ExtractMentions(body),
		CreatedAt: nowISO(),
	}
	if err := s.notes.Insert(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) ListNotes(ctx context.Context, viewerID, taskID string) ([]models.Note, error) {
	if _, err := s.visibleTask(ctx, viewerID, taskID); err != nil {
		return nil, err
	}
	return s.notes.ListByTask(ctx, taskID)
}

// UpdateNote is author-only. Mentions are re-extracted from the new body.
func (s *NoteService) UpdateNote(ctx context.Context, viewerID, noteID, body string) (*models.Note, error) {
	if strings.TrimSpace(body) == "" {
		return nil, Validation("note body must not be empty")
	}
	note, err := s.notes.Get(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil || note.Archived {
		return nil, ErrNotFound
	}
	if note.AuthorID != viewerID {
		return nil, ErrForbidden
	}

	note.Body = body
	note.Mentions = ExtractMentions(body)
	note.EditedAt = nowISO()
	if err := s.notes.Replace(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// DeleteNote archives the note, author-only.
func (s *NoteService) DeleteNote(ctx context.Context, viewerID, noteID string) error {
	note, err := s.notes.Get(ctx, noteID)
	if err != nil {
		return err
	}
	if note == nil || note.Archived {
		return ErrNotFound
	}
	if note.AuthorID != viewerID {
		return ErrForbidden
	}

	note.Archived = true
	note.ArchivedAt = nowISO()
	return s.notes.Replace(ctx, note)
}

func (s *NoteService) CreateComment(ctx context.Context, viewerID, taskID, body string) (*models.Comment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, Validation("comment body must not be empty")
	}
	if _, err := s.visibleTask(ctx, viewerID, taskID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:        uuid.New().String(),
		TaskID:    taskID,
		AuthorID:  viewerID,
		Body:      body,
		CreatedAt: nowISO(),
	}
	if err := s.notes.InsertComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *NoteService) ListComments(ctx context.Context, viewerID, taskID string) ([]models.Comment, error) {
	if _, err := s.visibleTask(ctx, viewerID, taskID); err != nil {
		return nil, err
	}
	return s.notes.ListCommentsByTask(ctx, taskID)
}

func (s *NoteService) UpdateComment(ctx context.Context, viewerID, commentID, body string) (*models.Comment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, Validation("comment body must not be empty")
	}
	comment, err := s.notes.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrNotFound
	}
	if comment.AuthorID != viewerID {
		return nil, ErrForbidden
	}

	comment.Body = body
	comment.EditedAt = nowISO()
	if err := s.notes.ReplaceComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *NoteService) DeleteComment(ctx context.Context, viewerID, commentID string) error {
	comment, err := s.notes.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}
	if comment.AuthorID != viewerID {
		return ErrForbidden
	}
	return s.notes.DeleteComment(ctx, commentID)
}
