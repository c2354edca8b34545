package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finwise/finance_tracker_app/internal/core/ports/services"
	"github.com/finwise/finance_tracker_app/internal/dto"
	"github.com/finwise/finance_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// categoryHandler serves the read-only category taxonomy.
type categoryHandler struct {
	ledger portssvc.LedgerSvcFacade
}

func registerCategoryRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := &categoryHandler{ledger: ledger}
	rg.GET("/categories", h.listCategories)
}

// listCategories returns the whole taxonomy, or a single group when the
// type query parameter is present.
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.CategoriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listCategories", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	if params.Type != "" {
		categories := h.ledger.CategoriesByType(c.Request.Context(), params.Type)
		c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryTaxonomyResponse(h.ledger.Categories(c.Request.Context())))
}
