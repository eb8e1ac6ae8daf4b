package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"legiswatch/tracker"
	"legiswatch/types"
)

// RegisterSearchRoutes registers the bill search endpoint.
func RegisterSearchRoutes(r *gin.Engine, t *tracker.Tracker) {
	g := r.Group("/api")
	g.POST("/search", func(c *gin.Context) {
		handleSearch(c, t)
	})
}

// handleSearch runs a bill search. Upstream failures never reach here as
// errors; only invalid input produces a non-200 response.
func handleSearch(c *gin.Context, t *tracker.Tracker) {
	var req types.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := t.Search(c.Request.Context(), req.Query, req.Type, req.IncludeAI)
	if err != nil {
		if errors.Is(err, tracker.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter is required"})
			return
		}
		log.Printf("search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while searching for bills"})
		return
	}

	c.JSON(http.StatusOK, result)
}
