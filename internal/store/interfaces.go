package store

import "context"

// Storage keys. Each collection persists to its own key; the tracker
// never assumes cross-key atomicity from the adapter.
const (
	KeyLedger   = "ledger"
	KeyCurrency = "currency"
	KeyArchive  = "archive"
)

// Storage is the durable key/value facility backing the tracker. Values
// are opaque byte blobs; the tracker owns the encoding.
type Storage interface {
	// Load returns the value stored under key, or ErrKeyNotFound if the
	// key has never been written.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save durably replaces the value stored under key.
	Save(ctx context.Context, key string, value []byte) error
}
