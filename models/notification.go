package models

type Notification struct {
	ID          string `bson:"_id" json:"notification_id"`
	UserID      string `bson:"user_id" json:"user_id"`
	Title       string `bson:"title" json:"title"`
	Body        string `bson:"body" json:"body"`
	TaskID      string `bson:"task_id,omitempty" json:"task_id,omitempty"`
	CreatedAt   string `bson:"created_at" json:"created_at"`
	Read        bool   `bson:"read" json:"read"`
	EmailSent   bool   `bson:"email_sent" json:"email_sent"`
	EmailSentAt string `bson:"email_sent_at,omitempty" json:"email_sent_at,omitempty"`
}
