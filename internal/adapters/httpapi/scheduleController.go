package httpapi

import (
	"errors"
	"net/http"
	"time"

	"clipcast/internal/core/schedule"

	"github.com/gin-gonic/gin"
)

// ScheduleController exposes the schedule-page workflow: the composer form in
// front, the store-backed list behind it.
type ScheduleController struct {
	store *schedule.Store
	view  *schedule.ListView
}

func NewScheduleController(store *schedule.Store) *ScheduleController {
	return &ScheduleController{
		store: store,
		view:  schedule.NewListView(store),
	}
}

// Overview refreshes the store for the caller and renders the list items.
func (ctl *ScheduleController) Overview(c *gin.Context) {
	ident := identityFromContext(c)
	if err := ctl.store.Refresh(c.Request.Context(), ident); err != nil {
		// Last-known-good collection stays visible alongside the failure.
		c.JSON(http.StatusOK, gin.H{
			"items": ctl.view.Items(ident),
			"error": "failed to load scheduled posts",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": ctl.view.Items(ident)})
}

// Compose runs one composer submission from the request fields. Omitted
// fields keep the form defaults.
func (ctl *ScheduleController) Compose(c *gin.Context) {
	var req struct {
		Platform string `json:"platform"`
		Content  string `json:"content"`
		Date     string `json:"date"` // YYYY-MM-DD
		Time     string `json:"time"` // HH:MM
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	composer := schedule.NewComposer(ctl.store)
	if req.Platform != "" {
		if err := composer.SelectPlatform(req.Platform); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if req.Content != "" {
		composer.SetContent(req.Content)
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		composer.SetDate(date)
	}
	if req.Time != "" {
		composer.SetClock(req.Time)
	}

	created, err := composer.Submit(c.Request.Context(), identityFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrDateRequired), errors.Is(err, schedule.ErrInvalidClock):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, schedule.ErrAuthRequired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not schedule post"})
		}
		return
	}
	c.JSON(http.StatusCreated, toScheduledPostDTO(created))
}

// Remove forwards a delete intent from the list.
func (ctl *ScheduleController) Remove(c *gin.Context) {
	err := ctl.view.RequestDelete(c.Request.Context(), identityFromContext(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post removed"})
}
