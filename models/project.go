package models

type Project struct {
	ID          string `bson:"_id" json:"project_id"`
	Name        string `bson:"name" json:"name"`
	Key         string `bson:"key,omitempty" json:"key,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	OwnerID     string `bson:"owner_id" json:"owner_id"`
	CreatedAt   string `bson:"created_at" json:"created_at"`
	UpdatedAt   string `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	Archived    bool   `bson:"archived" json:"archived"`
}

// Membership links a user to a project. The document id is the composite
// "{project_id}_{user_id}", which makes the (project, user) pair unique.
type Membership struct {
	ID        string `bson:"_id" json:"membership_id"`
	ProjectID string `bson:"project_id" json:"project_id"`
	UserID    string `bson:"user_id" json:"user_id"`
	Role      string `bson:"role" json:"role"`
	AddedAt   string `bson:"added_at" json:"added_at"`
	AddedBy   string `bson:"added_by,omitempty" json:"added_by,omitempty"`
}

func MembershipID(projectID, userID string) string {
	return projectID + "_" + userID
}
