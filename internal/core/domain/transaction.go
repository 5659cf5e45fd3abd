package domain

// TransactionEntry is one line of an account's transaction history.
type TransactionEntry struct {
	Date   string `json:"date"`
	Amount int    `json:"montant"`
	Kind   string `json:"type"`
}

// PlaceholderHistory returns the canned transaction history served by the
// account detail view. No ledger is persisted; every account reports this
// exact list regardless of its real balance or deposit activity.
func PlaceholderHistory() []TransactionEntry {
	return []TransactionEntry{
		{Date: "2022-01-01", Amount: 5000, Kind: "Débit"},
		{Date: "2022-01-02", Amount: 2000, Kind: "Débit"},
		{Date: "2022-01-03", Amount: 300, Kind: "Débit"},
		{Date: "2022-01-04", Amount: 1000, Kind: "Crédit"},
	}
}
