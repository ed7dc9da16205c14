package services

import (
	"testing"

	"sharecase/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_PublishedProjects(t *testing.T) {
	db := setupTestDB(t)
	service := NewProjectService(db, nil)

	owner := models.User{ID: uuid.New(), Email: "ada@example.com", Name: "Ada"}
	require.NoError(t, db.Create(&owner).Error)

	published1 := models.Project{
		ID: uuid.New(), OwnerID: owner.ID, Title: "Robot Arm",
		IsPublished: true, Tags: pq.StringArray{"robotics"},
	}
	published2 := models.Project{
		ID: uuid.New(), OwnerID: owner.ID, Title: "Sensor Rig",
		IsPublished: true,
	}
	draft := models.Project{
		ID: uuid.New(), OwnerID: owner.ID, Title: "Draft",
		IsPublished: false,
	}
	require.NoError(t, db.Create(&published1).Error)
	require.NoError(t, db.Create(&published2).Error)
	require.NoError(t, db.Create(&draft).Error)

	projects, err := service.PublishedProjects(owner.ID)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	// Persisted creation order, drafts excluded
	assert.Equal(t, "Robot Arm", projects[0].Title)
	assert.Equal(t, "Sensor Rig", projects[1].Title)
}

func TestProjectService_Like(t *testing.T) {
	db := setupTestDB(t)
	service := NewProjectService(db, nil)

	owner := models.User{ID: uuid.New(), Email: "ada@example.com", Name: "Ada"}
	liker := models.User{ID: uuid.New(), Email: "grace@example.com", Name: "Grace"}
	require.NoError(t, db.Create(&owner).Error)
	require.NoError(t, db.Create(&liker).Error)

	project := models.Project{ID: uuid.New(), OwnerID: owner.ID, Title: "Robot Arm", IsPublished: true}
	require.NoError(t, db.Create(&project).Error)

	require.NoError(t, service.Like(project.ID, liker.ID))
	require.NoError(t, service.Like(project.ID, liker.ID))

	var got models.Project
	require.NoError(t, db.First(&got, "id = ?", project.ID).Error)
	assert.Equal(t, 2, got.LikesCount)

	// Owner's activity log records the likes
	var entries int64
	db.Model(&models.Activity{}).Where("user_id = ?", owner.ID).Count(&entries)
	assert.Equal(t, int64(2), entries)

	assert.ErrorIs(t, service.Like(uuid.New(), liker.ID), ErrProjectNotFound)
}

func TestProjectService_AddComment(t *testing.T) {
	db := setupTestDB(t)
	service := NewProjectService(db, nil)

	owner := models.User{ID: uuid.New(), Email: "ada@example.com", Name: "Ada"}
	author := models.User{
		ID: uuid.New(), Email: "grace@example.com", Name: "Grace",
		ProfileImage: "https://images.example.com/grace.png",
	}
	require.NoError(t, db.Create(&owner).Error)
	require.NoError(t, db.Create(&author).Error)

	project := models.Project{ID: uuid.New(), OwnerID: owner.ID, Title: "Robot Arm", IsPublished: true}
	require.NoError(t, db.Create(&project).Error)

	comment, err := service.AddComment(project.ID, author.ID, "Very cool build!")
	require.NoError(t, err)

	// Author profile is snapshotted onto the comment
	assert.Equal(t, "Grace", comment.AuthorName)
	assert.Equal(t, "https://images.example.com/grace.png", comment.AuthorImage)

	// Snapshot survives a later profile edit
	require.NoError(t, db.Model(&author).Update("name", "G. Hopper").Error)
	var got models.Comment
	require.NoError(t, db.First(&got, "id = ?", comment.ID).Error)
	assert.Equal(t, "Grace", got.AuthorName)

	_, err = service.AddComment(project.ID, author.ID, "")
	assert.Error(t, err)
}

func TestProjectService_RecordView(t *testing.T) {
	db := setupTestDB(t)
	service := NewProjectService(db, nil)

	owner := models.User{ID: uuid.New(), Email: "ada@example.com", Name: "Ada"}
	require.NoError(t, db.Create(&owner).Error)
	project := models.Project{ID: uuid.New(), OwnerID: owner.ID, Title: "Robot Arm"}
	require.NoError(t, db.Create(&project).Error)

	require.NoError(t, service.RecordView(project.ID))

	var got models.Project
	require.NoError(t, db.First(&got, "id = ?", project.ID).Error)
	assert.Equal(t, 1, got.ViewsCount)

	assert.ErrorIs(t, service.RecordView(uuid.New()), ErrProjectNotFound)
}
