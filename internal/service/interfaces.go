// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -destination=../client/mock_service_test.go -package=client github.com/MKhiriev/go-pass-vault/internal/service AuthService,VaultSession

// AuthService covers everything that can be done while the vault is locked.
type AuthService interface {
	// Initialize creates and persists the master credential on first run.
	// Returns ErrVaultAlreadyInitialized if one exists.
	Initialize(ctx context.Context, password string) error

	// Authenticate reports whether password matches the stored hash record.
	// A wrong password is (false, nil).
	Authenticate(ctx context.Context, password string) (bool, error)

	// Unlock verifies password and derives the session key from it. A wrong
	// password yields crypto.ErrAuthenticationFailed, a missing master
	// credential ErrVaultNotInitialized.
	Unlock(ctx context.Context, password string) (VaultSession, error)
}

// VaultSession is an unlocked vault: a session key bound to the entry store.
// Every secret passes through the field cipher on its way in and out.
type VaultSession interface {
	// AddCredential encrypts cred.Secret and stores a new entry.
	AddCredential(ctx context.Context, cred models.NewCredential) (string, error)

	// Get returns metadata and ciphertext only; (nil, nil) when absent.
	Get(ctx context.Context, id string) (*models.VaultEntry, error)

	// RevealCredential decrypts the entry's secret; (nil, nil) when absent.
	RevealCredential(ctx context.Context, id string) (*models.Credential, error)

	// UpdateCredential replaces the entry with update applied on top of the
	// stored row. The secret is re-encrypted only when update.Secret is set.
	UpdateCredential(ctx context.Context, id string, update models.CredentialUpdate) error

	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.VaultEntry, error)
	Search(ctx context.Context, query string) ([]models.VaultEntry, error)

	// CopySecret reveals the entry's secret and hands it to clipboard.
	CopySecret(ctx context.Context, id string, clipboard ClipboardWriter) error

	// Lock zeroes the session key. Every later call returns ErrSessionLocked.
	Lock()
}
