package store

import (
	"context"

	"outgo/internal/domain"
)

// Currency returns the active currency code.
func (t *Tracker) Currency() domain.Currency {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.currency
}

// SetCurrency stores and persists the given code as-is. Membership in
// the supported set is a presentation concern; an unsupported code is
// accepted here and reconciled back to the default on the next Load.
func (t *Tracker) SetCurrency(ctx context.Context, code domain.Currency) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.loaded {
		return ErrNotLoaded
	}

	t.currency = code
	return saveKey(ctx, t, KeyCurrency, string(code))
}
