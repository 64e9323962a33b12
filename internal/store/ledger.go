package store

import (
	"context"
	"time"

	"outgo/internal/domain"
)

// AddInput carries the caller-supplied fields of a new expense. ID and
// Date are assigned by the tracker.
type AddInput struct {
	Amount   float64
	Category string
	Note     string
}

// Add creates an expense with a fresh id and the current instant and
// prepends it to the live collection, keeping newest-first order. The
// in-memory insert happens before the durable write; a returned save
// error means the expense exists in memory but is not yet on disk.
func (t *Tracker) Add(ctx context.Context, in AddInput) (domain.Expense, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.loaded {
		return domain.Expense{}, ErrNotLoaded
	}

	e := domain.Expense{
		ID:       t.newID(),
		Amount:   in.Amount,
		Category: in.Category,
		Note:     in.Note,
		Date:     t.now().Format(time.RFC3339),
	}
	t.expenses = append([]domain.Expense{e}, t.expenses...)

	return e, saveKey(ctx, t, KeyLedger, t.expenses)
}

// Edit replaces the expense whose ID matches e.ID, leaving collection
// order unchanged. An unknown ID is a silent no-op; either way the
// current ledger state is persisted afterwards.
func (t *Tracker) Edit(ctx context.Context, e domain.Expense) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.loaded {
		return ErrNotLoaded
	}

	for i := range t.expenses {
		if t.expenses[i].ID == e.ID {
			t.expenses[i] = e
			break
		}
	}

	return saveKey(ctx, t, KeyLedger, t.expenses)
}

// Delete removes the expense with the given id. An unknown id is a
// silent no-op; either way the current ledger state is persisted
// afterwards.
func (t *Tracker) Delete(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.loaded {
		return ErrNotLoaded
	}

	kept := t.expenses[:0:0]
	for _, e := range t.expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	t.expenses = kept

	return saveKey(ctx, t, KeyLedger, t.expenses)
}

// Expenses returns a copy of the live collection, newest-first.
func (t *Tracker) Expenses() []domain.Expense {
	t.mu.Lock()
	defer t.mu.Unlock()
	return domain.CopyExpenses(t.expenses)
}

// CategoryTotals sums live expense amounts per category. It is derived
// on demand and never cached; categories without live expenses are
// absent from the result, and an empty ledger yields an empty map.
func (t *Tracker) CategoryTotals() map[string]float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	totals := make(map[string]float64, len(t.expenses))
	for _, e := range t.expenses {
		totals[e.Category] += e.Amount
	}
	return totals
}
