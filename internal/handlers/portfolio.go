package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"sharecase/internal/portfolio"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PortfolioHandler handles portfolio export requests
type PortfolioHandler struct {
	assembler *portfolio.Assembler
}

// NewPortfolioHandler creates a new portfolio handler
func NewPortfolioHandler(db *gorm.DB, fetcher portfolio.AssetFetcher) *PortfolioHandler {
	return &PortfolioHandler{
		assembler: portfolio.NewAssembler(db, fetcher),
	}
}

// ExportPortfolio handles GET /api/portfolio/export. The assembler writes
// nothing on failure, so the headers can still be replaced with a JSON
// error payload when generation does not start.
func (h *PortfolioHandler) ExportPortfolio(c *gin.Context) {
	userIDStr := c.GetString("user_id")
	if userIDStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User authentication required",
		})
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID format",
		})
		return
	}

	// Unknown styles silently fall back to the default
	style := portfolio.StyleFor(c.Query("style"))
	filename := fmt.Sprintf("sharecase_portfolio_%s.pdf", style.Name)

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	err = h.assembler.Generate(c.Request.Context(), userID, style.Name, c.Writer)
	if err == nil {
		return
	}

	// No bytes were written; reset the download headers before answering
	c.Writer.Header().Del("Content-Type")
	c.Writer.Header().Del("Content-Disposition")

	switch {
	case errors.Is(err, portfolio.ErrIdentityNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User not found",
		})
	case c.Request.Context().Err() != nil:
		// Client went away mid-request; nothing left to answer
		c.Abort()
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate portfolio",
			"details": err.Error(),
		})
	}
}
