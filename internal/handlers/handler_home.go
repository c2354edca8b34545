package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/finwise/finance_tracker_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// registerHomeRoutes serves the landing page and the static frontend assets.
// Without a configured static dir the root route answers with a JSON banner.
func registerHomeRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.StaticDir != "" {
		r.Static("/static", cfg.StaticDir)
	}

	r.GET("/", func(c *gin.Context) {
		if cfg.StaticDir != "" {
			index := filepath.Join(cfg.StaticDir, "index.html")
			if _, err := os.Stat(index); err == nil {
				c.File(index)
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Finance Tracker API"})
	})
}
