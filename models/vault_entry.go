// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultEntry is one credential record as it is persisted in the vault store.
// Only SecretCiphertext is confidential; every other field is plain text
// metadata that may be listed and searched.
type VaultEntry struct {
	// ID is the opaque unique identifier assigned by the store at creation.
	// It is never reused.
	ID string `json:"id"`

	// CreatedAt is the UTC timestamp of the initial insert.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the UTC timestamp of the last full-row replace. It equals
	// CreatedAt until the entry is updated for the first time.
	UpdatedAt time.Time `json:"updated_at"`

	// Service is the name of the service the credential belongs to
	// (e.g. "GitHub"). Required.
	Service string `json:"service"`

	// Username is the account name on the service.
	Username string `json:"username"`

	// URL is an optional address of the service login page.
	URL string `json:"url,omitempty"`

	// Email is an optional e-mail bound to the account.
	Email string `json:"email,omitempty"`

	// Notes is an optional free-form plain text annotation. nil means absent.
	Notes *string `json:"notes,omitempty"`

	// SecretCiphertext is the base64 AEAD envelope (nonce ‖ ciphertext ‖ tag)
	// of the credential password. The store never looks inside it.
	SecretCiphertext string `json:"secret_ciphertext"`
}

// TableName returns the name of the database table
// associated with the VaultEntry model.
func (e VaultEntry) TableName() string {
	return "vault_entries"
}
