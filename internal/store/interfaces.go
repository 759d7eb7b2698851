// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultEntryRepository persists vault entries in the sqlite storage artifact.
// Secret ciphertexts are opaque strings to it; it never sees plaintext.
type VaultEntryRepository interface {
	// Create assigns a fresh id and timestamps to entry, inserts it and
	// returns the id.
	Create(ctx context.Context, entry models.VaultEntry) (string, error)

	// Get returns the entry with id, or (nil, nil) when there is none.
	Get(ctx context.Context, id string) (*models.VaultEntry, error)

	// Update replaces every mutable column of the entry with entry.ID.
	// Returns ErrEntryNotFound when the id is absent.
	Update(ctx context.Context, entry models.VaultEntry) error

	// Delete removes the entry with id. Returns ErrEntryNotFound when the id
	// is absent.
	Delete(ctx context.Context, id string) error

	// ListAll returns every entry ordered by service name (case-insensitive),
	// then creation time, then id.
	ListAll(ctx context.Context) ([]models.VaultEntry, error)

	// Search returns entries whose service, username or email contains
	// substring, case-insensitively, in ListAll order. An empty substring
	// matches everything.
	Search(ctx context.Context, substring string) ([]models.VaultEntry, error)
}

// MasterCredentialStore persists the master password hash record and the
// session key salt (the config artifact).
type MasterCredentialStore interface {
	Load(ctx context.Context) (models.MasterCredential, error)
	Save(ctx context.Context, cred models.MasterCredential) error
	Exists(ctx context.Context) (bool, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
