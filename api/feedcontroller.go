package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"legiswatch/feeds"
)

// RegisterFeedRoutes registers the recent-bills feed endpoint.
func RegisterFeedRoutes(r *gin.Engine) {
	g := r.Group("/api")
	g.GET("/recent", handleRecent)
}

// handleRecent serves the Congress.gov most-viewed bills feed. Unlike
// search, this convenience endpoint has no mock fallback: a feed outage
// surfaces as 503.
func handleRecent(c *gin.Context) {
	bills, err := feeds.FetchRecent(c.Request.Context(), feeds.MostViewedFeedURL, feeds.DefaultCount)
	if err != nil {
		log.Printf("recent bills feed failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Recent bills feed is unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"bills":   bills,
		"count":   len(bills),
	})
}
