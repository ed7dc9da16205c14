package handlers

import (
	"net/http"

	"sharecase/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectHandler handles project engagement endpoints
type ProjectHandler struct {
	projects *services.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(db *gorm.DB, events services.EventPublisher) *ProjectHandler {
	return &ProjectHandler{
		projects: services.NewProjectService(db, events),
	}
}

// ListMyProjects handles GET /api/projects
func (h *ProjectHandler) ListMyProjects(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	projects, err := h.projects.ProjectsForOwner(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// PublishProject handles POST /api/projects/:id/publish
func (h *ProjectHandler) PublishProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	var req struct {
		Published *bool `json:"published" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.projects.SetPublished(projectID, *req.Published); err != nil {
		renderProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"published": *req.Published})
}

// LikeProject handles POST /api/projects/:id/like
func (h *ProjectHandler) LikeProject(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	if err := h.projects.Like(projectID, userID); err != nil {
		renderProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": true})
}

// CommentProject handles POST /api/projects/:id/comments
func (h *ProjectHandler) CommentProject(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
		return
	}

	comment, err := h.projects.AddComment(projectID, userID, req.Text)
	if err != nil {
		renderProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// ViewProject handles POST /api/projects/:id/view
func (h *ProjectHandler) ViewProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	if err := h.projects.RecordView(projectID); err != nil {
		renderProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recorded": true})
}

// authenticatedUser reads the user id placed in context by the session
// middleware
func authenticatedUser(c *gin.Context) (uuid.UUID, bool) {
	userIDStr := c.GetString("user_id")
	if userIDStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User authentication required"})
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return uuid.Nil, false
	}

	return userID, true
}

func renderProjectError(c *gin.Context, err error) {
	switch err {
	case services.ErrProjectNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
	case services.ErrUserNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Operation failed",
			"details": err.Error(),
		})
	}
}
