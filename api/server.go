package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"legiswatch/config"
	"legiswatch/tracker"
)

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(cfg config.Config, t *tracker.Tracker) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	// Register resource routers
	RegisterSearchRoutes(r, t)
	RegisterExportRoutes(r)
	RegisterFeedRoutes(r)
	RegisterHealthRoutes(r, cfg)

	// Single-page UI
	r.LoadHTMLGlob("templates/*")
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{})
	})

	return r
}
