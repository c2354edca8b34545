package handlers

import (
	portssvc "github.com/finwise/finance_tracker_app/internal/core/ports/services"
	"github.com/finwise/finance_tracker_app/internal/dto"
	"github.com/finwise/finance_tracker_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the ledger service facade.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, ledger portssvc.LedgerSvcFacade) {
	dto.RegisterValidations()

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Landing page and static assets
	registerHomeRoutes(r, cfg)

	// API credential relay, kept at its historical path outside /api/v1
	registerConfigRoutes(r, cfg)

	setupAPIV1Routes(r, ledger)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(r *gin.Engine, ledger portssvc.LedgerSvcFacade) {
	v1 := r.Group("/api/v1")

	registerTransactionRoutes(v1, ledger)
	registerAccountRoutes(v1, ledger)
	registerCategoryRoutes(v1, ledger)
	registerPortfolioRoutes(v1, ledger)
	registerStatsRoutes(v1, ledger)
	registerAdminRoutes(v1, ledger)
}
