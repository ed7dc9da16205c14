package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is an immutable comment on a project. Author name and image are
// snapshotted at creation so old comments keep rendering after profile
// edits; there is no update path.
type Comment struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectID uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index"`
	AuthorID  uuid.UUID `json:"author_id" db:"author_id" gorm:"type:uuid;not null"`

	// Snapshots of the author's profile at comment time
	AuthorName  string `json:"author_name" db:"author_name"`
	AuthorImage string `json:"author_image" db:"author_image"`

	Text      string    `json:"text" db:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
}

// TableName sets the table name for the Comment model
func (Comment) TableName() string {
	return "comments"
}
