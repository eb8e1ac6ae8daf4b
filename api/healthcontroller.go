package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"legiswatch/config"
)

// RegisterHealthRoutes registers health check endpoints.
func RegisterHealthRoutes(r *gin.Engine, cfg config.Config) {
	r.GET("/health", func(c *gin.Context) {
		handleHealth(c, cfg)
	})
}

func handleHealth(c *gin.Context, cfg config.Config) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"timestamp":      time.Now().Format(time.RFC3339),
		"api_configured": cfg.CongressAPIKey != "",
		"llm_configured": cfg.HuggingFaceAPIKey != "" || cfg.CohereAPIKey != "",
	})
}
