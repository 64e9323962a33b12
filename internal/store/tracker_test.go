package store_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"outgo/internal/adapter/storage/memory"
	"outgo/internal/store"
	"outgo/internal/store/mocks"
)

func TestLoadDegradesOnMalformedData(t *testing.T) {
	adapter := memory.New()
	adapter.Seed(store.KeyLedger, []byte("{not json"))
	adapter.Seed(store.KeyArchive, []byte("also not json"))
	adapter.Seed(store.KeyCurrency, []byte("EUR")) // missing JSON quotes

	tr := store.New(adapter, zerolog.Nop())
	if err := tr.Load(context.Background()); err != nil {
		t.Fatalf("load should degrade, not fail: %v", err)
	}

	if got := len(tr.Expenses()); got != 0 {
		t.Fatalf("expected empty ledger, got %d expenses", got)
	}
	if got := len(tr.History()); got != 0 {
		t.Fatalf("expected empty history, got %d snapshots", got)
	}
	if tr.Currency() != "USD" {
		t.Fatalf("expected default currency, got %s", tr.Currency())
	}
}

func TestLoadDegradesOnReadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mocks.NewMockStorage(ctrl)
	storage.EXPECT().Load(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("io error")).Times(3)

	tr := store.New(storage, zerolog.Nop())
	if err := tr.Load(context.Background()); err != nil {
		t.Fatalf("read failures must degrade to empty state, got %v", err)
	}
	if !tr.Loaded() {
		t.Fatalf("tracker should report loaded after degraded load")
	}
	if got := len(tr.Expenses()); got != 0 {
		t.Fatalf("expected empty ledger, got %d expenses", got)
	}
}

func TestLoadHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := store.New(memory.New(), zerolog.Nop())
	if err := tr.Load(ctx); err == nil {
		t.Fatalf("expected error from cancelled load")
	}
	if tr.Loaded() {
		t.Fatalf("tracker must not report loaded after cancelled load")
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	adapter := memory.New()
	tr := newTracker(t, adapter)
	addExpenses(t, tr, store.AddInput{Amount: 10, Category: "food"})

	// A second Load must not re-read storage over live state.
	if err := tr.Load(context.Background()); err != nil {
		t.Fatalf("second load: %v", err)
	}
	if got := len(tr.Expenses()); got != 1 {
		t.Fatalf("expected state to survive repeated Load, got %d expenses", got)
	}
}

func TestPersistedStateRoundTrips(t *testing.T) {
	adapter := memory.New()

	first := newTracker(t, adapter)
	addExpenses(t, first,
		store.AddInput{Amount: 12.5, Category: "food", Note: "lunch"},
		store.AddInput{Amount: 800, Category: "rent"},
		store.AddInput{Amount: 3.2, Category: "food"},
	)

	second := store.New(adapter, zerolog.Nop())
	if err := second.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}

	if !reflect.DeepEqual(first.Expenses(), second.Expenses()) {
		t.Fatalf("reloaded ledger differs:\n got %+v\nwant %+v", second.Expenses(), first.Expenses())
	}
}
