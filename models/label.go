package models

type Label struct {
	ID        string `bson:"_id" json:"label_id"`
	Name      string `bson:"name" json:"name"`
	Color     string `bson:"color,omitempty" json:"color,omitempty"`
	CreatedAt string `bson:"created_at" json:"created_at"`
}

// TaskLabel is the task<->label junction row, keyed "{task_id}_{label_id}".
// Junctions are deleted outright when a task is archived, they carry no
// meaning without the task.
type TaskLabel struct {
	ID         string `bson:"_id" json:"-"`
	TaskID     string `bson:"task_id" json:"task_id"`
	LabelID    string `bson:"label_id" json:"label_id"`
	AssignedAt string `bson:"assigned_at" json:"assigned_at"`
}

func TaskLabelID(taskID, labelID string) string {
	return taskID + "_" + labelID
}
