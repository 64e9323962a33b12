package domain

// Expense is a single spend entry in the active period.
//
// ID is an opaque unique token assigned at creation and never reused.
// Date is the creation instant in RFC 3339, assigned once; editing an
// expense keeps the original date. Amount is stored exactly as given;
// input validation belongs to the presentation layer, not here.
type Expense struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Note     string  `json:"note"`
	Date     string  `json:"date"`
}

// CopyExpenses returns an independent copy of the given expenses.
// Expense holds only value fields, so copying the slice is a deep copy.
func CopyExpenses(in []Expense) []Expense {
	if in == nil {
		return nil
	}
	return append([]Expense(nil), in...)
}
