package dto

import (
	"github.com/finwise/finance_tracker_app/internal/core/domain"
)

// CategoriesParams defines query parameters for the categories endpoint.
type CategoriesParams struct {
	Type string `form:"type" binding:"omitempty,oneof=income expense"`
}

// CategoryResponse defines the data returned for one taxonomy entry.
type CategoryResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// CategoryTaxonomyResponse returns the taxonomy partitioned by group.
type CategoryTaxonomyResponse struct {
	Income  []CategoryResponse `json:"income"`
	Expense []CategoryResponse `json:"expense"`
}

// ToListCategoryResponse converts a taxonomy group to response DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = CategoryResponse{ID: c.ID, Name: c.Name, Icon: c.Icon, Color: c.Color}
	}
	return res
}

// ToCategoryTaxonomyResponse converts the full taxonomy to its response DTO.
func ToCategoryTaxonomyResponse(t domain.CategoryTaxonomy) CategoryTaxonomyResponse {
	return CategoryTaxonomyResponse{
		Income:  ToListCategoryResponse(t.Income),
		Expense: ToListCategoryResponse(t.Expense),
	}
}
