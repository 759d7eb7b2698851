package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEntryNotFound is returned when an update or delete targets a vault
	// entry id that does not exist.
	ErrEntryNotFound = errors.New("vault entry was not found")

	// ErrStorage wraps every failure of the underlying sqlite file or the
	// master credential file: I/O, locking, query building or scanning. The
	// driver error stays in the chain, see [IsRetryable].
	ErrStorage = errors.New("storage error")

	// ErrMasterCredentialNotFound is returned by [MasterCredentialStore.Load]
	// when the vault has not been initialised yet.
	ErrMasterCredentialNotFound = errors.New("master credential was not found")
)
