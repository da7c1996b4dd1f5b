package httpapi

import (
	"errors"
	"net/http"
	"time"

	postEntity "clipcast/internal/core/scheduledpost"
	shareapp "clipcast/internal/core/share"

	"github.com/gin-gonic/gin"
)

type ShareController struct{ sc ShareUseCase }

func NewShareController(sc ShareUseCase) *ShareController { return &ShareController{sc: sc} }

func (ctl *ShareController) Share(c *gin.Context) {
	var req struct {
		Content   string          `json:"content" binding:"required"`
		Platforms map[string]bool `json:"platforms" binding:"required"`
		Scheduled bool            `json:"scheduled"`
		Date      string          `json:"date"` // YYYY-MM-DD, required when scheduled
		Time      string          `json:"time"` // HH:MM
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}

	shareReq := shareapp.ShareRequest{
		Content:   req.Content,
		Platforms: postEntity.PlatformSet(req.Platforms),
		Scheduled: req.Scheduled,
		Clock:     req.Time,
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		shareReq.Date = &date
	}

	res, err := ctl.sc.Share(c.Request.Context(), userID.(string), shareReq)
	if err != nil {
		if errors.Is(err, shareapp.ErrPlatformRequired) || errors.Is(err, shareapp.ErrDateRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not share post"})
		return
	}
	c.JSON(http.StatusOK, res)
}
