package services

import (
	"errors"
	"fmt"
	"log"

	"sharecase/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PointsService handles point accrual for users
type PointsService struct {
	db     *gorm.DB
	events EventPublisher
}

// NewPointsService creates a new PointsService
func NewPointsService(db *gorm.DB, events EventPublisher) *PointsService {
	return &PointsService{
		db:     db,
		events: events,
	}
}

// AwardPoints adds amount to the user's point total and appends an activity
// entry, both inside one transaction. Amount must be a positive integer;
// there is no defined operation that decreases a total, so totals never go
// negative.
func (p *PointsService) AwardPoints(userID uuid.UUID, amount int, reason string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	err := p.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("total_points", gorm.Expr("total_points + ?", amount))
		if res.Error != nil {
			return fmt.Errorf("failed to award points: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}

		action := fmt.Sprintf("Earned %d points", amount)
		if reason != "" {
			action = fmt.Sprintf("Earned %d points: %s", amount, reason)
		}
		entry := models.Activity{UserID: userID, Action: action}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to log points activity: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	log.Printf("✅ Awarded %d points to user %s", amount, userID)
	if p.events != nil {
		p.events.Publish(ActivityEvent{
			UserID: userID,
			Action: fmt.Sprintf("Earned %d points", amount),
		})
	}
	return nil
}

// TotalPoints returns the user's current point total
func (p *PointsService) TotalPoints(userID uuid.UUID) (int, error) {
	var user models.User
	if err := p.db.Select("total_points").First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to query user points: %w", err)
	}
	return user.TotalPoints, nil
}
