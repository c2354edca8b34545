package handlers

import (
	"net/http"

	"github.com/finwise/finance_tracker_app/internal/dto"
	"github.com/finwise/finance_tracker_app/internal/middleware"
	"github.com/finwise/finance_tracker_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// configHandler relays third-party API credentials to the frontend so the
// keys never have to live in the served pages.
type configHandler struct {
	cfg *config.Config
}

func registerConfigRoutes(r *gin.Engine, cfg *config.Config) {
	h := &configHandler{cfg: cfg}
	r.GET("/api/config", h.getConfig)
}

// getConfig returns the Finnhub and Gemini keys. Missing keys are a server
// configuration error, surfaced as a 500 to the caller.
func (h *configHandler) getConfig(c *gin.Context) {
	if h.cfg.FinnhubAPIKey == "" || h.cfg.GeminiAPIKey == "" {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("API key relay requested but one or more keys are missing")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "One or more API keys are missing from environment variables."})
		return
	}

	c.JSON(http.StatusOK, dto.ConfigResponse{
		FinnhubAPIKey: h.cfg.FinnhubAPIKey,
		GeminiAPIKey:  h.cfg.GeminiAPIKey,
		Configured:    true,
	})
}
