package domain

// Snapshot is an immutable record of one archived period: the expenses
// that made it up and their total, frozen at archival time.
//
// Snapshots are produced only by the archival operation and are never
// mutated or deleted afterwards. Expenses is an independent copy of the
// period's entries, so later ledger activity cannot reach back into a
// snapshot.
type Snapshot struct {
	ID       string    `json:"id"`
	Date     string    `json:"date"`
	Total    float64   `json:"total"`
	Expenses []Expense `json:"records"`
}
