package api

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"legiswatch/export"
	"legiswatch/types"
)

// ExportRequest carries the bills of a prior search back for download.
type ExportRequest struct {
	Bills []*types.Bill `json:"bills"`
}

// RegisterExportRoutes registers the CSV export endpoint.
func RegisterExportRoutes(r *gin.Engine) {
	g := r.Group("/api")
	g.POST("/export", handleExport)
}

func handleExport(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, req.Bills); err != nil {
		if errors.Is(err, export.ErrEmptyExport) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No bills to export"})
			return
		}
		log.Printf("export failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while exporting data"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename(time.Now())))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
