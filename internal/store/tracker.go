// Package store holds the expense tracker's data core: the live ledger
// for the current period, the archive of past periods, and the active
// currency. All state lives in memory behind one mutex and is written
// through to a Storage adapter on every mutation; Load must complete
// before any mutation is accepted.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"outgo/internal/domain"
)

// Tracker owns the live expense collection, the archive and the
// currency setting. It is the only writer to all three; collaborators
// reach the data exclusively through its methods.
type Tracker struct {
	storage Storage
	log     zerolog.Logger
	newID   func() string
	now     func() time.Time

	mu       sync.Mutex
	loaded   bool
	expenses []domain.Expense
	history  []domain.Snapshot
	currency domain.Currency
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithIDGenerator overrides the ULID id generator.
func WithIDGenerator(fn func() string) Option {
	return func(t *Tracker) { t.newID = fn }
}

// WithClock overrides the wall clock.
func WithClock(fn func() time.Time) Option {
	return func(t *Tracker) { t.now = fn }
}

// New creates a Tracker over the given storage adapter. The tracker
// starts empty and unloaded; call Load before mutating.
func New(storage Storage, log zerolog.Logger, opts ...Option) *Tracker {
	t := &Tracker{
		storage:  storage,
		log:      log,
		newID:    func() string { return ulid.Make().String() },
		now:      func() time.Time { return time.Now().UTC() },
		currency: domain.DefaultCurrency,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Load performs the one-time startup read of the three storage keys,
// concurrently. A missing key, a failed read or malformed bytes degrade
// to empty or default state with a logged warning; only context
// cancellation is returned as an error. Load is idempotent.
func (t *Tracker) Load(ctx context.Context) error {
	t.mu.Lock()
	if t.loaded {
		t.mu.Unlock()
		return nil
	}
	t.mu.Unlock()

	var (
		expenses []domain.Expense
		history  []domain.Snapshot
		currency domain.Currency
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		expenses, err = loadKey[[]domain.Expense](ctx, t, KeyLedger)
		return err
	})
	g.Go(func() (err error) {
		history, err = loadKey[[]domain.Snapshot](ctx, t, KeyArchive)
		return err
	})
	g.Go(func() error {
		code, err := loadKey[string](ctx, t, KeyCurrency)
		currency = domain.NormalizeCurrency(code)
		if code != "" && !domain.Currency(code).Supported() {
			t.log.Warn().Str("code", code).Str("fallback", string(currency)).
				Msg("persisted currency not supported, using default")
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.expenses = expenses
	t.history = history
	t.currency = currency
	t.loaded = true
	t.log.Debug().
		Int("expenses", len(expenses)).
		Int("snapshots", len(history)).
		Str("currency", string(currency)).
		Msg("store loaded")
	return nil
}

// Loaded reports whether the startup load has completed.
func (t *Tracker) Loaded() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loaded
}

// loadKey reads and decodes one storage key, degrading to the zero
// value on absence, read failure or malformed bytes. Cancellation is
// the only error it propagates.
func loadKey[T any](ctx context.Context, t *Tracker, key string) (T, error) {
	var zero T

	raw, err := t.storage.Load(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return zero, nil
		}
		if ctx.Err() != nil {
			return zero, err
		}
		t.log.Warn().Err(err).Str("key", key).Msg("load failed, starting empty")
		return zero, nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.log.Warn().Err(err).Str("key", key).Msg("malformed persisted data, starting empty")
		return zero, nil
	}
	return v, nil
}

// saveKey serializes the full current value for one key and writes it
// through. Callers hold t.mu, so writes to a key are issued strictly in
// mutation order and always carry the complete latest state. A failed
// write leaves memory ahead of storage until the next successful save;
// that condition is logged here.
func saveKey(ctx context.Context, t *Tracker, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := t.storage.Save(ctx, key, raw); err != nil {
		t.log.Error().Err(err).Str("key", key).
			Msg("save failed, in-memory state is ahead of storage")
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
