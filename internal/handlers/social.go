package handlers

import (
	"errors"
	"net/http"

	"sharecase/internal/models"
	"sharecase/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SocialHandler handles follow/unfollow, points and profile requests
type SocialHandler struct {
	db     *gorm.DB
	social *services.SocialService
	points *services.PointsService
}

// NewSocialHandler creates a new social handler
func NewSocialHandler(db *gorm.DB, events services.EventPublisher) *SocialHandler {
	return &SocialHandler{
		db:     db,
		social: services.NewSocialService(db, events),
		points: services.NewPointsService(db, events),
	}
}

// FollowUser handles POST /api/users/:id/follow
func (h *SocialHandler) FollowUser(c *gin.Context) {
	actorID, targetID, ok := h.resolvePair(c)
	if !ok {
		return
	}

	if err := h.social.Follow(actorID, targetID); err != nil {
		h.renderLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": true})
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (h *SocialHandler) UnfollowUser(c *gin.Context) {
	actorID, targetID, ok := h.resolvePair(c)
	if !ok {
		return
	}

	if err := h.social.Unfollow(actorID, targetID); err != nil {
		h.renderLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": false})
}

// AwardPoints handles POST /api/users/:id/points
func (h *SocialHandler) AwardPoints(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	var req struct {
		Amount int    `json:"amount" binding:"required"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.points.AwardPoints(targetID, req.Amount, req.Reason); err != nil {
		h.renderLedgerError(c, err)
		return
	}

	total, err := h.points.TotalPoints(targetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read point total"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_points": total})
}

// GetProfile handles GET /api/users/:id
func (h *SocialHandler) GetProfile(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}

	followers, following, err := h.social.FollowCounts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load follow counts"})
		return
	}

	activity, err := h.social.RecentActivity(userID, 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":            user,
		"followers_count": followers,
		"following_count": following,
		"recent_activity": activity,
	})
}

// resolvePair extracts the authenticated actor and the :id target
func (h *SocialHandler) resolvePair(c *gin.Context) (actorID, targetID uuid.UUID, ok bool) {
	actorStr := c.GetString("user_id")
	if actorStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User authentication required"})
		return
	}

	actorID, err := uuid.Parse(actorStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	targetID, err = uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target user ID format"})
		return
	}

	return actorID, targetID, true
}

// renderLedgerError maps ledger service errors onto HTTP statuses
func (h *SocialHandler) renderLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSelfFollow):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Users cannot follow themselves"})
	case errors.Is(err, services.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Point amount must be a positive integer"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, services.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Operation failed",
			"details": err.Error(),
		})
	}
}
