package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DefaultProjectImage is the placeholder assigned to uploads without an
// image. The portfolio pipeline never fetches it.
const DefaultProjectImage = "https://static.sharecase.app/images/project-default.png"

// Project represents an uploaded student project
type Project struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OwnerID     uuid.UUID `json:"owner_id" db:"owner_id" gorm:"type:uuid;not null;index"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description" gorm:"type:text"`
	Problem     string    `json:"problem" db:"problem" gorm:"type:text"`

	// Images holds externally hosted URLs; the first entry is the primary
	// image used by exports and listings
	Images pq.StringArray `json:"images" db:"images" gorm:"type:text[]"`
	Tags   pq.StringArray `json:"tags" db:"tags" gorm:"type:text[]"`

	// Engagement metrics
	LikesCount int `json:"likes_count" db:"likes_count" gorm:"default:0;check:likes_count >= 0"`
	ViewsCount int `json:"views_count" db:"views_count" gorm:"default:0;check:views_count >= 0"`
	Points     int `json:"points" db:"points" gorm:"default:0;check:points >= 0"`

	// IsPublished gates visibility to exports and public listings
	IsPublished bool `json:"is_published" db:"is_published" gorm:"default:false;index"`

	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Owner         User      `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Collaborators []User    `json:"collaborators,omitempty" gorm:"many2many:project_collaborators"`
	Comments      []Comment `json:"comments,omitempty" gorm:"foreignKey:ProjectID"`
}

// TableName sets the table name for the Project model
func (Project) TableName() string {
	return "projects"
}

// PrimaryImage returns the project's primary image URL, or "" when the
// project has no usable image (none uploaded, or only the placeholder).
func (p *Project) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	if p.Images[0] == DefaultProjectImage {
		return ""
	}
	return p.Images[0]
}
