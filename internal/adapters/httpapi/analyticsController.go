package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct{ ac AnalyticsUseCase }

func NewAnalyticsController(ac AnalyticsUseCase) *AnalyticsController {
	return &AnalyticsController{ac: ac}
}

func (ctl *AnalyticsController) WeeklyViews(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.ac.WeeklyViews(c.Request.Context()))
}

func (ctl *AnalyticsController) WeeklyEngagement(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.ac.WeeklyEngagement(c.Request.Context()))
}

func (ctl *AnalyticsController) PlatformBreakdown(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.ac.PlatformBreakdown(c.Request.Context()))
}
