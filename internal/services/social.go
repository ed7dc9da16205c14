package services

import (
	"errors"
	"fmt"
	"log"

	"sharecase/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventPublisher receives activity events as they are committed. The
// realtime hub implements it; a nil publisher disables publishing.
type EventPublisher interface {
	Publish(event ActivityEvent)
}

// ActivityEvent is the payload broadcast to realtime subscribers
type ActivityEvent struct {
	UserID uuid.UUID `json:"user_id"`
	Action string    `json:"action"`
}

// SocialService maintains the follow relation and the per-user activity log
type SocialService struct {
	db     *gorm.DB
	events EventPublisher
}

// NewSocialService creates a new SocialService
func NewSocialService(db *gorm.DB, events EventPublisher) *SocialService {
	return &SocialService{
		db:     db,
		events: events,
	}
}

// Follow records that actor follows target. Both sides of the relation are
// a single user_follows row, created together with the activity entries in
// one transaction. Duplicate follows are idempotent no-ops: the relation
// has set semantics enforced by a unique index.
func (s *SocialService) Follow(actorID, targetID uuid.UUID) error {
	if actorID == targetID {
		return ErrSelfFollow
	}

	actor, err := s.loadUser(actorID)
	if err != nil {
		return err
	}
	target, err := s.loadUser(targetID)
	if err != nil {
		return err
	}

	created := false
	err = s.db.Transaction(func(tx *gorm.DB) error {
		follow := models.UserFollow{
			FollowerID: actorID,
			FolloweeID: targetID,
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow)
		if res.Error != nil {
			return fmt.Errorf("failed to create follow relation: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			// Already following; leave state and log untouched
			return nil
		}
		created = true

		entries := []models.Activity{
			{UserID: actorID, Action: fmt.Sprintf("Followed %s", target.Name)},
			{UserID: targetID, Action: fmt.Sprintf("%s followed you", actor.Name)},
		}
		if err := tx.Create(&entries).Error; err != nil {
			return fmt.Errorf("failed to log follow activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if created {
		log.Printf("✅ %s now follows %s", actor.Name, target.Name)
		s.publish(targetID, fmt.Sprintf("%s followed you", actor.Name))
	}
	return nil
}

// Unfollow removes the follow relation between actor and target. Removing
// the single relation row clears both the following and the followers view
// at once; not currently following is a no-op. That covers a self target
// too: a self-follow can never exist, so there is nothing to reject.
func (s *SocialService) Unfollow(actorID, targetID uuid.UUID) error {
	actor, err := s.loadUser(actorID)
	if err != nil {
		return err
	}
	target, err := s.loadUser(targetID)
	if err != nil {
		return err
	}

	removed := false
	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("follower_id = ? AND followee_id = ?", actorID, targetID).
			Delete(&models.UserFollow{})
		if res.Error != nil {
			return fmt.Errorf("failed to remove follow relation: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true

		entry := models.Activity{
			UserID: actorID,
			Action: fmt.Sprintf("Unfollowed %s", target.Name),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to log unfollow activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if removed {
		log.Printf("✅ %s unfollowed %s", actor.Name, target.Name)
	}
	return nil
}

// IsFollowing reports whether actor currently follows target
func (s *SocialService) IsFollowing(actorID, targetID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.UserFollow{}).
		Where("follower_id = ? AND followee_id = ?", actorID, targetID).
		Count(&count).Error
	return count > 0, err
}

// Followers returns the users following the given user
func (s *SocialService) Followers(userID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := s.db.
		Joins("JOIN user_follows ON user_follows.follower_id = users.id").
		Where("user_follows.followee_id = ?", userID).
		Order("user_follows.created_at ASC").
		Find(&users).Error
	return users, err
}

// Following returns the users the given user follows
func (s *SocialService) Following(userID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := s.db.
		Joins("JOIN user_follows ON user_follows.followee_id = users.id").
		Where("user_follows.follower_id = ?", userID).
		Order("user_follows.created_at ASC").
		Find(&users).Error
	return users, err
}

// FollowCounts returns follower and following counts for a user
func (s *SocialService) FollowCounts(userID uuid.UUID) (followers int64, following int64, err error) {
	if err = s.db.Model(&models.UserFollow{}).
		Where("followee_id = ?", userID).Count(&followers).Error; err != nil {
		return
	}
	err = s.db.Model(&models.UserFollow{}).
		Where("follower_id = ?", userID).Count(&following).Error
	return
}

// RecentActivity returns the newest entries of a user's activity log
func (s *SocialService) RecentActivity(userID uuid.UUID, limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = 20
	}
	var entries []models.Activity
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (s *SocialService) loadUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

func (s *SocialService) publish(userID uuid.UUID, action string) {
	if s.events == nil {
		return
	}
	s.events.Publish(ActivityEvent{UserID: userID, Action: action})
}
