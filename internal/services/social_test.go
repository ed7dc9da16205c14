package services

import (
	"testing"

	"sharecase/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocialService_Follow(t *testing.T) {
	db := setupTestDB(t)
	service := NewSocialService(db, nil)

	ada := models.User{ID: uuid.New(), Email: "ada@example.com", Name: "Ada"}
	grace := models.User{ID: uuid.New(), Email: "grace@example.com", Name: "Grace"}
	require.NoError(t, db.Create(&ada).Error)
	require.NoError(t, db.Create(&grace).Error)

	t.Run("follow is symmetric across both views", func(t *testing.T) {
		require.NoError(t, service.Follow(ada.ID, grace.ID))

		following, err := service.Following(ada.ID)
		require.NoError(t, err)
		require.Len(t, following, 1)
		assert.Equal(t, grace.ID, following[0].ID)

		followers, err := service.Followers(grace.ID)
		require.NoError(t, err)
		require.Len(t, followers, 1)
		assert.Equal(t, ada.ID, followers[0].ID)
	})

	t.Run("duplicate follow is an idempotent no-op", func(t *testing.T) {
		require.NoError(t, service.Follow(ada.ID, grace.ID))

		var count int64
		db.Model(&models.UserFollow{}).
			Where("follower_id = ? AND followee_id = ?", ada.ID, grace.ID).
			Count(&count)
		assert.Equal(t, int64(1), count)

		// Only the first follow logged activity
		var entries int64
		db.Model(&models.Activity{}).
			Where("user_id = ? AND action LIKE ?", ada.ID, "Followed%").
			Count(&entries)
		assert.Equal(t, int64(1), entries)
	})

	t.Run("self follow is rejected without state changes", func(t *testing.T) {
		err := service.Follow(ada.ID, ada.ID)
		assert.ErrorIs(t, err, ErrSelfFollow)

		var count int64
		db.Model(&models.UserFollow{}).
			Where("follower_id = ? AND followee_id = ?", ada.ID, ada.ID).
			Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("unknown identities are rejected", func(t *testing.T) {
		err := service.Follow(ada.ID, uuid.New())
		assert.ErrorIs(t, err, ErrUserNotFound)

		err = service.Follow(uuid.New(), grace.ID)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("follow logs activity on both sides", func(t *testing.T) {
		entries, err := service.RecentActivity(grace.ID, 10)
		require.NoError(t, err)
		require.NotEmpty(t, entries)
		assert.Equal(t, "Ada followed you", entries[0].Action)
	})
}

func TestSocialService_Unfollow(t *testing.T) {
	db := setupTestDB(t)
	service := NewSocialService(db, nil)

	ada := models.User{ID: uuid.New(), Email: "ada@example.com", Name: "Ada"}
	grace := models.User{ID: uuid.New(), Email: "grace@example.com", Name: "Grace"}
	require.NoError(t, db.Create(&ada).Error)
	require.NoError(t, db.Create(&grace).Error)

	require.NoError(t, service.Follow(ada.ID, grace.ID))

	t.Run("unfollow clears both views", func(t *testing.T) {
		require.NoError(t, service.Unfollow(ada.ID, grace.ID))

		following, err := service.Following(ada.ID)
		require.NoError(t, err)
		assert.Empty(t, following)

		followers, err := service.Followers(grace.ID)
		require.NoError(t, err)
		assert.Empty(t, followers)
	})

	t.Run("unfollow when not following is a no-op", func(t *testing.T) {
		require.NoError(t, service.Unfollow(ada.ID, grace.ID))

		ok, err := service.IsFollowing(ada.ID, grace.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("self unfollow is a silent no-op", func(t *testing.T) {
		require.NoError(t, service.Unfollow(ada.ID, ada.ID))

		// Only the earlier real unfollow is in the log
		var entries int64
		db.Model(&models.Activity{}).
			Where("user_id = ? AND action LIKE ?", ada.ID, "Unfollowed%").
			Count(&entries)
		assert.Equal(t, int64(1), entries)
	})
}

func TestSocialService_FollowCounts(t *testing.T) {
	db := setupTestDB(t)
	service := NewSocialService(db, nil)

	users := make([]models.User, 4)
	for i := range users {
		users[i] = models.User{
			ID:    uuid.New(),
			Email: uuid.NewString() + "@example.com",
			Name:  "User",
		}
		require.NoError(t, db.Create(&users[i]).Error)
	}

	// Three users follow users[0]; users[0] follows one back
	for _, u := range users[1:] {
		require.NoError(t, service.Follow(u.ID, users[0].ID))
	}
	require.NoError(t, service.Follow(users[0].ID, users[1].ID))

	followers, following, err := service.FollowCounts(users[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), followers)
	assert.Equal(t, int64(1), following)
}
