package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity is one append-only entry in a user's activity log. Entries are
// created inside the same transaction as the mutation they describe and
// never updated afterwards.
type Activity struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    uuid.UUID `json:"user_id" db:"user_id" gorm:"type:uuid;not null;index"`
	Action    string    `json:"action" db:"action" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime;index"`
}

// TableName sets the table name for the Activity model
func (Activity) TableName() string {
	return "activities"
}
