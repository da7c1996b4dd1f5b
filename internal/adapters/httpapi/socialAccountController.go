package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SocialAccountController struct{ ac SocialAccountUseCase }

func NewSocialAccountController(ac SocialAccountUseCase) *SocialAccountController {
	return &SocialAccountController{ac: ac}
}

func (ctl *SocialAccountController) ListAccounts(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}
	accounts, err := ctl.ac.ListAccounts(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load accounts"})
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func (ctl *SocialAccountController) ConnectAccount(c *gin.Context) {
	var req struct {
		Platform string `json:"platform" binding:"required"`
		Username string `json:"username" binding:"required"`
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
	account, err := ctl.ac.ConnectAccount(c.Request.Context(), userID.(string), req.Platform, req.Username)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, account)
}

func (ctl *SocialAccountController) DisconnectAccount(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}
	if err := ctl.ac.DisconnectAccount(c.Request.Context(), userID.(string), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not disconnect account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account disconnected"})
}
