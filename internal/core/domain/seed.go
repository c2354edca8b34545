package domain

import (
	"github.com/shopspring/decimal"
)

// SeedDataset returns the demo dataset the tracker ships with. It is used
// whenever no persisted snapshot exists (first run, reset, or unreadable
// snapshot). Callers receive a fresh copy on every call.
func SeedDataset() *Dataset {
	creditLimit := decimal.NewFromInt(50000)
	return &Dataset{
		User: User{
			Name:     "Demo User",
			Email:    "demo@example.com",
			Currency: "INR",
		},
		BankAccounts: []Account{
			{ID: 1, Name: "HDFC Savings", AccountNumber: "****1234", Type: Savings, Balance: decimal.NewFromInt(45000), Bank: "HDFC Bank"},
			{ID: 2, Name: "SBI Current", AccountNumber: "****5678", Type: Current, Balance: decimal.NewFromInt(25000), Bank: "State Bank of India"},
			{ID: 3, Name: "ICICI Credit Card", AccountNumber: "****9012", Type: CreditCard, Balance: decimal.NewFromInt(-8500), Bank: "ICICI Bank", CreditLimit: &creditLimit},
		},
		Transactions: []Transaction{
			{ID: 1, Type: Income, Amount: decimal.NewFromInt(45000), Category: "Salary", Description: "Monthly Salary", Date: "2024-08-01", AccountID: 1, IsRecurring: true},
			{ID: 2, Type: Expense, Amount: decimal.NewFromInt(12000), Category: "Rent", Description: "House Rent", Date: "2024-08-02", AccountID: 1, IsRecurring: true},
			{ID: 3, Type: Expense, Amount: decimal.NewFromInt(3500), Category: "Groceries", Description: "Monthly Groceries", Date: "2024-08-03", AccountID: 1},
			{ID: 4, Type: Expense, Amount: decimal.NewFromInt(1500), Category: "Utilities", Description: "Electricity Bill", Date: "2024-08-04", AccountID: 1, IsRecurring: true},
			{ID: 5, Type: Investment, Amount: decimal.NewFromInt(15000), Category: "Stocks", Description: "Purchased RELIANCE shares", Date: "2024-08-05", AccountID: 1, StockSymbol: "RELIANCE"},
			{ID: 6, Type: Expense, Amount: decimal.NewFromInt(2500), Category: "Food", Description: "Restaurant & Dining", Date: "2024-08-06", AccountID: 3},
			{ID: 7, Type: Income, Amount: decimal.NewFromInt(5000), Category: "Freelance", Description: "Web Development Project", Date: "2024-08-07", AccountID: 2},
			{ID: 8, Type: Expense, Amount: decimal.NewFromInt(800), Category: "Transportation", Description: "Fuel & Metro", Date: "2024-08-08", AccountID: 1},
			{ID: 9, Type: Expense, Amount: decimal.NewFromInt(450), Category: "Food", Description: "Lunch", Date: "2024-08-22", AccountID: 1},
			{ID: 10, Type: Expense, Amount: decimal.NewFromInt(2340), Category: "Groceries", Description: "Weekly Groceries", Date: "2024-08-21", AccountID: 1},
		},
		StockPortfolio: []StockHolding{
			{ID: 1, Symbol: "RELIANCE", CompanyName: "Reliance Industries Ltd", Quantity: 25, AvgPrice: decimal.NewFromFloat(2450.50), CurrentPrice: decimal.NewFromFloat(2678.25), Sector: "Energy"},
			{ID: 2, Symbol: "TCS", CompanyName: "Tata Consultancy Services", Quantity: 15, AvgPrice: decimal.NewFromFloat(3567.80), CurrentPrice: decimal.NewFromFloat(3789.45), Sector: "IT"},
			{ID: 3, Symbol: "HDFC", CompanyName: "HDFC Bank Limited", Quantity: 30, AvgPrice: decimal.NewFromFloat(1567.20), CurrentPrice: decimal.NewFromFloat(1634.75), Sector: "Banking"},
		},
		Categories: CategoryTaxonomy{
			Income: []Category{
				{ID: 1, Name: "Salary", Icon: "fas fa-briefcase", Color: "#28a745"},
				{ID: 2, Name: "Freelance", Icon: "fas fa-laptop-code", Color: "#17a2b8"},
				{ID: 3, Name: "Investment Returns", Icon: "fas fa-chart-line", Color: "#ffc107"},
				{ID: 4, Name: "Other", Icon: "fas fa-plus-circle", Color: "#6c757d"},
			},
			Expense: []Category{
				{ID: 1, Name: "Rent", Icon: "fas fa-home", Color: "#dc3545"},
				{ID: 2, Name: "Groceries", Icon: "fas fa-shopping-cart", Color: "#fd7e14"},
				{ID: 3, Name: "Utilities", Icon: "fas fa-bolt", Color: "#20c997"},
				{ID: 4, Name: "Food", Icon: "fas fa-utensils", Color: "#e83e8c"},
				{ID: 5, Name: "Transportation", Icon: "fas fa-car", Color: "#6f42c1"},
				{ID: 6, Name: "Entertainment", Icon: "fas fa-film", Color: "#fd7e14"},
				{ID: 7, Name: "Healthcare", Icon: "fas fa-heartbeat", Color: "#dc3545"},
				{ID: 8, Name: "Shopping", Icon: "fas fa-shopping-bag", Color: "#e83e8c"},
				{ID: 9, Name: "Other", Icon: "fas fa-ellipsis-h", Color: "#6c757d"},
			},
		},
	}
}
