package httpapi

import (
	"net/http"
	"time"

	postEntity "clipcast/internal/core/scheduledpost"
	postPort "clipcast/internal/ports/scheduledpost"

	"github.com/gin-gonic/gin"
)

type ScheduledPostController struct{ pc ScheduledPostUseCase }

func NewScheduledPostController(pc ScheduledPostUseCase) *ScheduledPostController {
	return &ScheduledPostController{pc: pc}
}

func (ctl *ScheduledPostController) CreatePost(c *gin.Context) {
	var req struct {
		Content      string          `json:"content" binding:"required"`
		ScheduledFor time.Time       `json:"scheduled_for" binding:"required"`
		Platforms    map[string]bool `json:"platforms" binding:"required"`
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
	post, err := ctl.pc.CreatePost(c.Request.Context(), userID.(string), req.Content, req.ScheduledFor, postEntity.PlatformSet(req.Platforms))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toScheduledPostDTO(post))
}

func (ctl *ScheduledPostController) ListPosts(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}
	posts, err := ctl.pc.ListPosts(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load scheduled posts"})
		return
	}
	dtos := make([]*postPort.ScheduledPostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, toScheduledPostDTO(p))
	}
	c.JSON(http.StatusOK, dtos)
}

func (ctl *ScheduledPostController) DeletePost(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}
	if err := ctl.pc.DeletePost(c.Request.Context(), userID.(string), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post removed"})
}

func toScheduledPostDTO(p *postEntity.ScheduledPost) *postPort.ScheduledPostDTO {
	return &postPort.ScheduledPostDTO{
		ID:           p.ID.String(),
		Content:      p.Content,
		Platforms:    p.Platforms,
		ScheduledFor: p.ScheduledFor.Format(time.RFC3339),
		Status:       p.Status,
		MediaURL:     p.MediaURL,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}
