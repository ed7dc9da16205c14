package services

import (
	"log"
	"math"

	"sharecase/internal/models"

	"gorm.io/gorm"
)

// Weights for the engagement score. Likes are the strongest signal,
// comments carry more intent than views.
const (
	likeWeight    = 5
	commentWeight = 3
	viewsPerPoint = 10
	maxProjectPts = 1000
)

// EngagementService recomputes per-project points from accumulated
// engagement. It runs from the background worker; project points are a
// derived value, unlike user totals which only move through AwardPoints.
type EngagementService struct {
	db *gorm.DB
}

// NewEngagementService creates a new EngagementService
func NewEngagementService(db *gorm.DB) *EngagementService {
	return &EngagementService{db: db}
}

// UpdateAllProjectPoints recalculates points for every published project
func (e *EngagementService) UpdateAllProjectPoints() error {
	log.Println("🔄 Starting project points update...")

	var projects []models.Project
	if err := e.db.Where("is_published = ?", true).Find(&projects).Error; err != nil {
		return err
	}

	updated := 0
	for _, project := range projects {
		var commentCount int64
		if err := e.db.Model(&models.Comment{}).
			Where("project_id = ?", project.ID).
			Count(&commentCount).Error; err != nil {
			log.Printf("Failed to count comments for %q: %v", project.Title, err)
			continue
		}

		points := e.calculatePoints(project.LikesCount, int(commentCount), project.ViewsCount)
		if points == project.Points {
			continue
		}

		if err := e.db.Model(&project).Update("points", points).Error; err != nil {
			log.Printf("Failed to update points for %q: %v", project.Title, err)
			continue
		}
		updated++
	}

	log.Printf("✅ Project points update completed (%d of %d changed)", updated, len(projects))
	return nil
}

// calculatePoints derives a project's point value from its engagement
// counters, capped so a single viral project cannot dominate rankings
func (e *EngagementService) calculatePoints(likes, comments, views int) int {
	raw := likes*likeWeight + comments*commentWeight + views/viewsPerPoint
	return int(math.Min(float64(raw), maxProjectPts))
}
