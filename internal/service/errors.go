package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

var (
	// ErrSessionLocked is returned by every Session operation after Lock.
	ErrSessionLocked = errors.New("vault session is locked")

	// ErrVaultNotInitialized is returned when unlocking a vault whose master
	// credential has not been created yet.
	ErrVaultNotInitialized = errors.New("vault is not initialized")

	// ErrVaultAlreadyInitialized is returned by Initialize when a master
	// credential already exists. It is never overwritten.
	ErrVaultAlreadyInitialized = errors.New("vault is already initialized")

	ErrEmptyMasterPassword = errors.New("master password must not be empty")

	// ErrEntryUndecryptable is returned when a stored secret fails
	// authentication under the session key. It matches
	// crypto.ErrAuthenticationFailed.
	ErrEntryUndecryptable = fmt.Errorf("%w: entry cannot be decrypted with the current session key", crypto.ErrAuthenticationFailed)
)
