package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Juggernaut7/Task-Tidy/config"
	"github.com/Juggernaut7/Task-Tidy/services"
)

// AnalyticsController serves the dashboard summary endpoint.
type AnalyticsController struct{}

// GetAnalytics returns the caller's aggregates for the trailing period,
// cache-aside in Redis.
func (an *AnalyticsController) GetAnalytics(c *gin.Context) {
	_, username := identity(c)

	period := 30
	if raw := c.Query("period"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "period must be a positive number of days"})
			return
		}
		period = p
	}

	ctx := c.Request.Context()
	if cached, ok := services.CachedAnalytics(ctx, username, period); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	resp, err := services.AnalyticsSummary(config.DB, username, period, time.Now())
	if err != nil {
		serverError(c, "analytics aggregation failed", err, "owner", username)
		return
	}

	services.StoreAnalytics(ctx, username, period, resp)

	c.JSON(http.StatusOK, resp)
}
