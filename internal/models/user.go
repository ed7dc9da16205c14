package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered member of the platform
type User struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email        string    `json:"email" db:"email" gorm:"uniqueIndex;not null"`
	Name         string    `json:"name" db:"name"`
	ProfileImage string    `json:"profile_image" db:"profile_image"`
	Bio          string    `json:"bio" db:"bio"`

	// Social links; stored as entered, normalized to an explicit scheme
	// at render time
	LinkedInURL string `json:"linkedin_url" db:"linkedin_url"`
	GitHubURL   string `json:"github_url" db:"github_url"`
	WebsiteURL  string `json:"website_url" db:"website_url"`

	// TotalPoints is only mutated through the points service
	TotalPoints int `json:"total_points" db:"total_points" gorm:"default:0;check:total_points >= 0"`

	IsActive  bool      `json:"is_active" db:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Projects   []Project  `json:"projects,omitempty" gorm:"foreignKey:OwnerID"`
	Activities []Activity `json:"activities,omitempty" gorm:"foreignKey:UserID"`
}

// TableName sets the table name for the User model
func (User) TableName() string {
	return "users"
}
