package handlers

import (
	"net/http"
	"os"

	"sharecase/internal/models"
	"sharecase/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminHandler serves the aggregate analytics consumed by the admin UI
type AdminHandler struct {
	db         *gorm.DB
	engagement *services.EngagementService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{
		db:         db,
		engagement: services.NewEngagementService(db),
	}
}

// AdminAuth middleware for basic password protection
func (h *AdminHandler) AdminAuth() gin.HandlerFunc {
	return gin.BasicAuth(gin.Accounts{
		"admin": getAdminPassword(),
	})
}

// getAdminPassword returns the admin password from environment or default
func getAdminPassword() string {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123" // Default password for development
	}
	return password
}

// GetAnalytics handles GET /admin/analytics
func (h *AdminHandler) GetAnalytics(c *gin.Context) {
	var userCount, projectCount, publishedCount, commentCount, followCount int64
	h.db.Model(&models.User{}).Count(&userCount)
	h.db.Model(&models.Project{}).Count(&projectCount)
	h.db.Model(&models.Project{}).Where("is_published = ?", true).Count(&publishedCount)
	h.db.Model(&models.Comment{}).Count(&commentCount)
	h.db.Model(&models.UserFollow{}).Count(&followCount)

	var totalLikes int64
	h.db.Model(&models.Project{}).Select("COALESCE(SUM(likes_count), 0)").Scan(&totalLikes)

	var topUsers []models.User
	h.db.Order("total_points DESC").Limit(5).Find(&topUsers)

	var recentActivity []models.Activity
	h.db.Order("created_at DESC").Limit(20).Find(&recentActivity)

	c.JSON(http.StatusOK, gin.H{
		"users":              userCount,
		"projects":           projectCount,
		"published_projects": publishedCount,
		"comments":           commentCount,
		"follows":            followCount,
		"total_likes":        totalLikes,
		"top_users":          topUsers,
		"recent_activity":    recentActivity,
	})
}

// RefreshEngagement handles POST /admin/refresh-engagement, forcing an
// immediate project points recompute outside the worker schedule
func (h *AdminHandler) RefreshEngagement(c *gin.Context) {
	if err := h.engagement.UpdateAllProjectPoints(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to refresh engagement points",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"refreshed": true})
}
