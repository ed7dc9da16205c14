package models

import (
	"time"

	"github.com/google/uuid"
)

// UserFollow is a single row of the follow relation. One row carries both
// directions: the follower's "following" view and the followee's
// "followers" view are two indexed queries over the same relation, so the
// mirrored-pair invariant holds by construction.
type UserFollow struct {
	ID         uuid.UUID `json:"id" db:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	FollowerID uuid.UUID `json:"follower_id" db:"follower_id" gorm:"type:uuid;not null;uniqueIndex:idx_follower_followee"`
	FolloweeID uuid.UUID `json:"followee_id" db:"followee_id" gorm:"type:uuid;not null;uniqueIndex:idx_follower_followee"`
	CreatedAt  time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`

	Follower User `json:"follower,omitempty" gorm:"foreignKey:FollowerID"`
	Followee User `json:"followee,omitempty" gorm:"foreignKey:FolloweeID"`
}

// TableName sets the table name for the UserFollow model
func (UserFollow) TableName() string {
	return "user_follows"
}
