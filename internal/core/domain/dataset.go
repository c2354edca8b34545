package domain

// Dataset is the aggregate: everything the tracker knows, held in memory and
// persisted as one serialized blob. Field tags match the persisted layout.
type Dataset struct {
	User           User             `json:"user"`
	BankAccounts   []Account        `json:"bankAccounts"`
	Transactions   []Transaction    `json:"transactions"`
	StockPortfolio []StockHolding   `json:"stockPortfolio"`
	Categories     CategoryTaxonomy `json:"categories"`
}

// AccountByID returns a pointer into the dataset's account slice, or nil when
// the id is unknown.
func (d *Dataset) AccountByID(id int) *Account {
	for i := range d.BankAccounts {
		if d.BankAccounts[i].ID == id {
			return &d.BankAccounts[i]
		}
	}
	return nil
}

// MaxTransactionID returns the highest transaction id in the dataset, or zero
// when there are no transactions.
func (d *Dataset) MaxTransactionID() int {
	max := 0
	for _, t := range d.Transactions {
		if t.ID > max {
			max = t.ID
		}
	}
	return max
}
