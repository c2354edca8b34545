package domain

// Category is one entry in the fixed spending/earning taxonomy.
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`  // Frontend icon reference (e.g., "fas fa-home")
	Color string `json:"color"` // Display color, hex
}

// CategoryTaxonomy partitions the known categories into the two fixed groups.
// The taxonomy is read-only for the lifetime of a session.
type CategoryTaxonomy struct {
	Income  []Category `json:"income"`
	Expense []Category `json:"expense"`
}

// ByType returns the group for the given transaction type name ("income" or
// "expense"). Unknown types yield an empty slice, never an error.
func (c CategoryTaxonomy) ByType(kind string) []Category {
	switch kind {
	case string(Income):
		return c.Income
	case string(Expense):
		return c.Expense
	default:
		return []Category{}
	}
}
