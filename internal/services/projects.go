package services

import (
	"errors"
	"fmt"
	"log"

	"sharecase/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService handles project engagement and publication state
type ProjectService struct {
	db     *gorm.DB
	events EventPublisher
}

// NewProjectService creates a new ProjectService
func NewProjectService(db *gorm.DB, events EventPublisher) *ProjectService {
	return &ProjectService{
		db:     db,
		events: events,
	}
}

// PublishedProjects returns a user's published projects in persisted
// creation order, with collaborator profiles expanded. This is the project
// set the portfolio export operates on.
func (p *ProjectService) PublishedProjects(ownerID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := p.db.Preload("Collaborators").
		Where("owner_id = ? AND is_published = ?", ownerID, true).
		Order("created_at ASC, id ASC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load published projects: %w", err)
	}
	return projects, nil
}

// SetPublished flips a project's publication flag
func (p *ProjectService) SetPublished(projectID uuid.UUID, published bool) error {
	res := p.db.Model(&models.Project{}).
		Where("id = ?", projectID).
		Update("is_published", published)
	if res.Error != nil {
		return fmt.Errorf("failed to update publication flag: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// Like increments a project's like counter and logs activity for the owner
func (p *ProjectService) Like(projectID, likerID uuid.UUID) error {
	liker, err := p.loadUser(likerID)
	if err != nil {
		return err
	}

	var project models.Project
	err = p.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, "id = ?", projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProjectNotFound
			}
			return fmt.Errorf("failed to query project: %w", err)
		}

		res := tx.Model(&project).Update("likes_count", gorm.Expr("likes_count + 1"))
		if res.Error != nil {
			return fmt.Errorf("failed to increment likes: %w", res.Error)
		}

		entry := models.Activity{
			UserID: project.OwnerID,
			Action: fmt.Sprintf("%s liked %q", liker.Name, project.Title),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to log like activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if p.events != nil {
		p.events.Publish(ActivityEvent{
			UserID: project.OwnerID,
			Action: fmt.Sprintf("%s liked %q", liker.Name, project.Title),
		})
	}
	return nil
}

// AddComment appends an immutable comment to a project, snapshotting the
// author's current name and profile image
func (p *ProjectService) AddComment(projectID, authorID uuid.UUID, text string) (*models.Comment, error) {
	if text == "" {
		return nil, fmt.Errorf("comment text is required")
	}

	author, err := p.loadUser(authorID)
	if err != nil {
		return nil, err
	}

	var project models.Project
	comment := models.Comment{
		ProjectID:   projectID,
		AuthorID:    authorID,
		AuthorName:  author.Name,
		AuthorImage: author.ProfileImage,
		Text:        text,
	}

	err = p.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, "id = ?", projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProjectNotFound
			}
			return fmt.Errorf("failed to query project: %w", err)
		}

		if err := tx.Create(&comment).Error; err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}

		entry := models.Activity{
			UserID: project.OwnerID,
			Action: fmt.Sprintf("%s commented on %q", author.Name, project.Title),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to log comment activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("💬 %s commented on %q", author.Name, project.Title)
	if p.events != nil {
		p.events.Publish(ActivityEvent{
			UserID: project.OwnerID,
			Action: fmt.Sprintf("%s commented on %q", author.Name, project.Title),
		})
	}
	return &comment, nil
}

// RecordView increments a project's view counter
func (p *ProjectService) RecordView(projectID uuid.UUID) error {
	res := p.db.Model(&models.Project{}).
		Where("id = ?", projectID).
		Update("views_count", gorm.Expr("views_count + 1"))
	if res.Error != nil {
		return fmt.Errorf("failed to record view: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// ProjectsForOwner returns all of a user's projects, newest first
func (p *ProjectService) ProjectsForOwner(ownerID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := p.db.Preload("Collaborators").Preload("Comments").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (p *ProjectService) loadUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := p.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}
