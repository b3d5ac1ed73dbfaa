package models

type Attachment struct {
	ID         string `bson:"_id" json:"attachment_id"`
	TaskID     string `bson:"task_id" json:"task_id"`
	Filename   string `bson:"filename" json:"filename"`
	MimeType   string `bson:"mime_type" json:"mime_type"`
	SizeBytes  int64  `bson:"size_bytes" json:"size_bytes"`
	UploadedBy string `bson:"uploaded_by" json:"uploaded_by"`
	UploadedAt string `bson:"uploaded_at" json:"uploaded_at"`
	FileData   string `bson:"file_data" json:"file_data,omitempty"`
	FileHash   string `bson:"file_hash" json:"file_hash"`
	Archived   bool   `bson:"archived" json:"archived"`
	ArchivedAt string `bson:"archived_at,omitempty" json:"archived_at,omitempty"`
}
