package services

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/models"
	"github.com/google/uuid"
)

// Attachment payloads live inline in the document, so the size ceiling is
// deliberately small.
const maxAttachmentBytes = 5 << 20

type AttachmentService struct {
	tasks       TaskStore
	attachments AttachmentStore
	viewer      TaskViewer
}

func NewAttachmentService(tasks TaskStore, attachments AttachmentStore, viewer TaskViewer) *AttachmentService {
	return &AttachmentService{tasks: tasks, attachments: attachments, viewer: viewer}
}

func (s *AttachmentService) visibleTask(ctx context.Context, viewerID, taskID string) error {
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return err
	}
	if task == nil || !s.viewer.CanViewTask(ctx, viewerID, task) {
		return ErrNotFound
	}
	return nil
}

type UploadAttachmentInput struct {
	Filename string `json:"filename"`
	MimeType string `json:"mime_type"`
	FileData string `json:"file_data"`
}

// Upload stores base64-encoded bytes on the document itself, with a sha256
// hash for later integrity checks.
func (s *AttachmentService) Upload(ctx context.Context, viewerID, taskID string, in UploadAttachmentInput) (*models.Attachment, error) {
	if strings.TrimSpace(in.Filename) == "" {
		return nil, Validation("filename must not be empty")
	}
	if in.FileData == "" {
		return nil, Validation("file_data must not be empty")
	}
	raw, err := base64.StdEncoding.DecodeString(in.FileData)
	if err != nil {
		return nil, Validation("file_data must be valid base64")
	}
	if len(raw) > maxAttachmentBytes {
		return nil, Validation("attachment exceeds the 5 MB limit")
	}
	if err := s.visibleTask(ctx, viewerID, taskID); err != nil {
		return nil, err
	}

	sum := sha256.Sum256(raw)
	att := &models.Attachment{
		ID:         uuid.New().String(),
		TaskID:     taskID,
		Filename:   strings.TrimSpace(in.Filename),
		MimeType:   in.MimeType,
		SizeBytes:  int64(len(raw)),
		UploadedBy: viewerID,
		UploadedAt: nowISO(),
		FileData:   in.FileData,
		FileHash:   hex.EncodeToString(sum[:]),
	}
	if err := s.attachments.Insert(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

func (s *AttachmentService) List(ctx context.Context, viewerID, taskID string) ([]models.Attachment, error) {
	if err := s.visibleTask(ctx, viewerID, taskID); err != nil {
		return nil, err
	}
	return s.attachments.ListByTask(ctx, taskID)
}

func (s *AttachmentService) Get(ctx context.Context, viewerID, attachmentID string) (*models.Attachment, error) {
	att, err := s.attachments.Get(ctx, attachmentID)
	if err != nil {
		return nil, err
	}
	if att == nil || att.Archived {
		return nil, ErrNotFound
	}
	if err := s.visibleTask(ctx, viewerID, att.TaskID); err != nil {
		return nil, err
	}
	return att, nil
}

// Delete archives the attachment, uploader-only.
func (s *AttachmentService) Delete(ctx context.Context, viewerID, attachmentID string) error {
	att, err := s.attachments.Get(ctx, attachmentID)
	if err != nil {
		return err
	}
	if att == nil || att.Archived {
		return ErrNotFound
	}
	if att.UploadedBy != viewerID {
		return ErrForbidden
	}
	return s.attachments.Archive(ctx, attachmentID, nowISO())
}
