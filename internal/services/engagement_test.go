package services

import (
	"testing"

	"sharecase/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngagementService_CalculatePoints(t *testing.T) {
	service := NewEngagementService(nil)

	assert.Equal(t, 0, service.calculatePoints(0, 0, 0))
	assert.Equal(t, 5, service.calculatePoints(1, 0, 0))
	assert.Equal(t, 3, service.calculatePoints(0, 1, 0))
	assert.Equal(t, 0, service.calculatePoints(0, 0, 9))
	assert.Equal(t, 1, service.calculatePoints(0, 0, 10))
	assert.Equal(t, 5*10+3*4+2, service.calculatePoints(10, 4, 25))

	// Capped
	assert.Equal(t, maxProjectPts, service.calculatePoints(100000, 0, 0))
}

func TestEngagementService_UpdateAllProjectPoints(t *testing.T) {
	db := setupTestDB(t)
	service := NewEngagementService(db)

	owner := models.User{ID: uuid.New(), Email: "ada@example.com", Name: "Ada"}
	require.NoError(t, db.Create(&owner).Error)

	published := models.Project{
		ID: uuid.New(), OwnerID: owner.ID, Title: "Robot Arm",
		IsPublished: true, LikesCount: 4, ViewsCount: 30,
	}
	draft := models.Project{
		ID: uuid.New(), OwnerID: owner.ID, Title: "Draft",
		IsPublished: false, LikesCount: 100,
	}
	require.NoError(t, db.Create(&published).Error)
	require.NoError(t, db.Create(&draft).Error)

	comment := models.Comment{
		ProjectID: published.ID, AuthorID: owner.ID,
		AuthorName: "Ada", Text: "note to self",
	}
	require.NoError(t, db.Create(&comment).Error)

	require.NoError(t, service.UpdateAllProjectPoints())

	var got models.Project
	require.NoError(t, db.First(&got, "id = ?", published.ID).Error)
	assert.Equal(t, 4*likeWeight+1*commentWeight+30/viewsPerPoint, got.Points)

	// Drafts are not scored
	require.NoError(t, db.First(&got, "id = ?", draft.ID).Error)
	assert.Equal(t, 0, got.Points)
}
