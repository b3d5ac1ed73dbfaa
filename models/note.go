package models

type Note struct {
	ID         string   `bson:"_id" json:"note_id"`
	TaskID     string   `bson:"task_id" json:"task_id"`
	AuthorID   string   `bson:"author_id" json:"author_id"`
	Body       string   `bson:"body" json:"body"`
	Mentions   []string `bson:"mentions" json:"mentions"`
	CreatedAt  string   `bson:"created_at" json:"created_at"`
	EditedAt   string   `bson:"edited_at,omitempty" json:"edited_at,omitempty"`
	Archived   bool     `bson:"archived" json:"archived"`
	ArchivedAt string   `bson:"archived_at,omitempty" json:"archived_at,omitempty"`
}

type Comment struct {
	ID        string `bson:"_id" json:"comment_id"`
	TaskID    string `bson:"task_id" json:"task_id"`
	AuthorID  string `bson:"author_id" json:"author_id"`
	Body      string `bson:"body" json:"body"`
	CreatedAt string `bson:"created_at" json:"created_at"`
	EditedAt  string `bson:"edited_at,omitempty" json:"edited_at,omitempty"`
}
