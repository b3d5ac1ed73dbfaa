package models

type Subtask struct {
	ID          string `bson:"_id" json:"subtask_id"`
	TaskID      string `bson:"task_id" json:"task_id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	DueDate     string `bson:"due_date" json:"due_date"`
	CreatedBy   string `bson:"created_by" json:"created_by"`
	CreatedAt   string `bson:"created_at" json:"created_at"`
	Completed   bool   `bson:"completed" json:"completed"`
	CompletedAt string `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	CompletedBy string `bson:"completed_by,omitempty" json:"completed_by,omitempty"`
	Archived    bool   `bson:"archived" json:"archived"`
	ArchivedAt  string `bson:"archived_at,omitempty" json:"archived_at,omitempty"`
}
