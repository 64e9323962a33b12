package store

import "errors"

var (
	// ErrKeyNotFound is returned by Storage.Load for keys that have
	// never been written.
	ErrKeyNotFound = errors.New("storage key not found")

	// ErrNotLoaded is returned by mutating operations invoked before
	// Load has completed. Persisting before the initial load would
	// overwrite durable data with empty state.
	ErrNotLoaded = errors.New("store not loaded: call Load first")

	// ErrArchiveNotPersisted reports an archival whose snapshot could
	// not be written durably. The in-memory state already holds the
	// snapshot and the cleared ledger; on disk the previous ledger is
	// still intact, so no records were lost.
	ErrArchiveNotPersisted = errors.New("archive snapshot not persisted")

	// ErrLedgerNotPersisted reports an archival whose snapshot was
	// written but whose ledger reset was not. The stale ledger contents
	// remain on disk alongside the durable snapshot.
	ErrLedgerNotPersisted = errors.New("ledger reset not persisted")
)
