package store

import (
	"context"
	"fmt"
	"time"

	"outgo/internal/domain"
)

// History returns a copy of the archived snapshots, newest-first.
// Snapshots are frozen; callers must not modify their contents.
func (t *Tracker) History() []domain.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]domain.Snapshot(nil), t.history...)
}

// ArchivePeriod freezes the current period into a snapshot and resets
// the live ledger. On an empty ledger it is a no-op and returns
// (nil, nil).
//
// The snapshot insert and the ledger clear happen under one lock
// acquisition, so no reader can observe the snapshot and the live
// records at the same time, or neither. Ledger and archive persist to
// independent keys with no shared transaction, so the archive key is
// written first: if the subsequent ledger write fails, the worst case
// on disk is stale ledger contents next to a durable snapshot, never
// records that vanished without one. The two failure modes are
// distinguished by ErrArchiveNotPersisted and ErrLedgerNotPersisted.
func (t *Tracker) ArchivePeriod(ctx context.Context) (*domain.Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.loaded {
		return nil, ErrNotLoaded
	}
	if len(t.expenses) == 0 {
		return nil, nil
	}

	var total float64
	for _, e := range t.expenses {
		total += e.Amount
	}

	snap := domain.Snapshot{
		ID:       t.newID(),
		Date:     t.now().Format(time.RFC3339),
		Total:    total,
		Expenses: domain.CopyExpenses(t.expenses),
	}
	t.history = append([]domain.Snapshot{snap}, t.history...)
	t.expenses = nil

	if err := saveKey(ctx, t, KeyArchive, t.history); err != nil {
		return &snap, fmt.Errorf("%w: %w", ErrArchiveNotPersisted, err)
	}
	if err := saveKey(ctx, t, KeyLedger, t.expenses); err != nil {
		return &snap, fmt.Errorf("%w: %w", ErrLedgerNotPersisted, err)
	}

	t.log.Info().
		Str("snapshot_id", snap.ID).
		Int("expenses", len(snap.Expenses)).
		Float64("total", snap.Total).
		Msg("period archived")
	return &snap, nil
}
