package services

import (
	"testing"

	"sharecase/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsService_AwardPoints(t *testing.T) {
	db := setupTestDB(t)
	service := NewPointsService(db, nil)

	user := models.User{ID: uuid.New(), Email: "ada@example.com", Name: "Ada", TotalPoints: 25}
	require.NoError(t, db.Create(&user).Error)

	t.Run("awards accumulate exactly", func(t *testing.T) {
		require.NoError(t, service.AwardPoints(user.ID, 50, "published a project"))
		require.NoError(t, service.AwardPoints(user.ID, 50, "gained a follower"))

		total, err := service.TotalPoints(user.ID)
		require.NoError(t, err)
		assert.Equal(t, 125, total)
	})

	t.Run("zero and negative amounts are rejected", func(t *testing.T) {
		assert.ErrorIs(t, service.AwardPoints(user.ID, 0, ""), ErrInvalidAmount)
		assert.ErrorIs(t, service.AwardPoints(user.ID, -10, ""), ErrInvalidAmount)

		total, err := service.TotalPoints(user.ID)
		require.NoError(t, err)
		assert.Equal(t, 125, total)
	})

	t.Run("unknown user is rejected", func(t *testing.T) {
		assert.ErrorIs(t, service.AwardPoints(uuid.New(), 10, ""), ErrUserNotFound)
	})

	t.Run("each award appends an activity entry", func(t *testing.T) {
		var count int64
		db.Model(&models.Activity{}).
			Where("user_id = ? AND action LIKE ?", user.ID, "Earned%").
			Count(&count)
		assert.Equal(t, int64(2), count)
	})
}
