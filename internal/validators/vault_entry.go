// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	FieldID               = "id"
	FieldService          = "service"
	FieldSecretCiphertext = "secret_ciphertext"
	FieldSecret           = "secret"
	FieldMetadata         = "metadata"
	FieldUpdate           = "update"
)

type VaultEntryValidator struct {
}

func NewVaultEntryValidator() Validator {
	return &VaultEntryValidator{}
}

func (v *VaultEntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.VaultEntry:
		return v.validateVaultEntry(ctx, value, fields...)
	case *models.VaultEntry:
		return v.validateVaultEntry(ctx, *value, fields...)

	case models.NewCredential:
		return v.validateNewCredential(ctx, value, fields...)
	case *models.NewCredential:
		return v.validateNewCredential(ctx, *value, fields...)

	case models.CredentialUpdate:
		return v.validateCredentialUpdate(ctx, value, fields...)
	case *models.CredentialUpdate:
		return v.validateCredentialUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateVaultEntry checks what the store is about to persist. The
// ciphertext is opaque here; only its length floor is enforced.
func (v *VaultEntryValidator) validateVaultEntry(_ context.Context, entry models.VaultEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldService, FieldSecretCiphertext, FieldMetadata}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(entry.ID) == "" {
				return ErrEmptyID
			}
		case FieldService:
			if strings.TrimSpace(entry.Service) == "" {
				return ErrEmptyService
			}
		case FieldSecretCiphertext:
			if len(entry.SecretCiphertext) < crypto.MinEnvelopeLen {
				return ErrShortCiphertext
			}
		case FieldMetadata:
			if hasNul(entry.Service, entry.Username, entry.URL, entry.Email) || (entry.Notes != nil && hasNul(*entry.Notes)) {
				return ErrFieldContainsNulls
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultEntryValidator) validateNewCredential(_ context.Context, cred models.NewCredential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldService, FieldMetadata}
	}

	for _, f := range fields {
		switch f {
		case FieldService:
			if strings.TrimSpace(cred.Service) == "" {
				return ErrEmptyService
			}
		case FieldMetadata:
			if hasNul(cred.Service, cred.Username, cred.URL, cred.Email) || (cred.Notes != nil && hasNul(*cred.Notes)) {
				return ErrFieldContainsNulls
			}
		case FieldSecret:
			// an empty secret is allowed; it is still encrypted
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultEntryValidator) validateCredentialUpdate(_ context.Context, update models.CredentialUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdate, FieldService}
	}

	for _, f := range fields {
		switch f {
		case FieldUpdate:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldService:
			if update.Service != nil && strings.TrimSpace(*update.Service) == "" {
				return ErrEmptyService
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func hasNul(values ...string) bool {
	for _, s := range values {
		if strings.IndexByte(s, 0) >= 0 {
			return true
		}
	}
	return false
}
