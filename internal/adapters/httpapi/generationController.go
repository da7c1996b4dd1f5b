package httpapi

import (
	"errors"
	"net/http"

	generationapp "clipcast/internal/core/generation"

	"github.com/gin-gonic/gin"
)

type GenerationController struct{ gc GenerationUseCase }

func NewGenerationController(gc GenerationUseCase) *GenerationController {
	return &GenerationController{gc: gc}
}

func (ctl *GenerationController) GenerateCaption(c *gin.Context) {
	var req struct {
		Style  string `json:"style"`
		Length string `json:"length"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	caption, err := ctl.gc.GenerateCaption(c.Request.Context(), req.Style, req.Length)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate caption"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"caption": caption})
}

func (ctl *GenerationController) GenerateVideo(c *gin.Context) {
	var req struct {
		Title  string `json:"title"`
		Script string `json:"script" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	video, err := ctl.gc.GenerateVideo(c.Request.Context(), req.Title, req.Script)
	if err != nil {
		if errors.Is(err, generationapp.ErrScriptRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate video"})
		return
	}
	c.JSON(http.StatusOK, video)
}
