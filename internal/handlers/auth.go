package handlers

import (
	"errors"
	"net/http"

	"sharecase/internal/auth"
	"sharecase/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthHandler issues session tokens. Credential verification happens in
// the external identity provider; this endpoint only exchanges an already
// trusted email for a session.
type AuthHandler struct {
	db       *gorm.DB
	sessions *auth.SessionManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *gorm.DB, sessions *auth.SessionManager) *AuthHandler {
	return &AuthHandler{
		db:       db,
		sessions: sessions,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A valid email is required"})
		return
	}

	var user models.User
	if err := h.db.First(&user, "email = ? AND is_active = ?", req.Email, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}

	token, err := h.sessions.IssueToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}
