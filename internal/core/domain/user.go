package domain

// User holds the profile of the tracker's single owner.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Currency string `json:"currency"` // Base currency code (e.g., "INR")
}
