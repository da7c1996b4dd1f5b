package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProfileController struct{ pc ProfileUseCase }

func NewProfileController(pc ProfileUseCase) *ProfileController { return &ProfileController{pc: pc} }

func (ctl *ProfileController) GetProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}
	p, err := ctl.pc.GetProfile(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (ctl *ProfileController) SaveProfile(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Bio      string `json:"bio"`
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
	p, err := ctl.pc.SaveProfile(c.Request.Context(), userID.(string), req.Username, req.Bio)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save profile"})
		return
	}
	c.JSON(http.StatusOK, p)
}
