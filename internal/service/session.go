// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Session is the Unlocked state of a vault. It owns the session key until
// Lock; nothing else in the process holds a copy.
//
// Reads of the key take mu.RLock, Lock takes mu.Lock, so the key is never
// zeroed under a running operation. updateMu serializes the read-modify-write
// in UpdateCredential so concurrent partial updates do not drop fields; it is
// always taken before mu.
type Session struct {
	repo      store.VaultEntryRepository
	cipher    crypto.FieldCipher
	validator validators.Validator
	logger    *logger.Logger

	updateMu sync.Mutex

	mu  sync.RWMutex
	key []byte
}

var _ VaultSession = (*Session)(nil)

// NewSession binds key to repo. The session takes ownership of key and
// zeroes it on Lock.
func NewSession(key []byte, repo store.VaultEntryRepository, cipher crypto.FieldCipher, logger *logger.Logger) *Session {
	return &Session{
		repo:      repo,
		cipher:    cipher,
		validator: validators.NewVaultEntryValidator(),
		logger:    logger,
		key:       key,
	}
}

func (s *Session) AddCredential(ctx context.Context, cred models.NewCredential) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.key == nil {
		return "", ErrSessionLocked
	}

	if err := s.validator.Validate(ctx, cred); err != nil {
		return "", err
	}

	ciphertext, err := s.cipher.EncryptField(s.key, cred.Secret)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Session.AddCredential").Msg("failed to encrypt secret")
		return "", fmt.Errorf("encrypt secret: %w", err)
	}

	id, err := s.repo.Create(ctx, models.VaultEntry{
		Service:          cred.Service,
		Username:         cred.Username,
		URL:              cred.URL,
		Email:            cred.Email,
		Notes:            cred.Notes,
		SecretCiphertext: ciphertext,
	})
	if err != nil {
		return "", fmt.Errorf("store credential: %w", err)
	}

	return id, nil
}

func (s *Session) Get(ctx context.Context, id string) (*models.VaultEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.key == nil {
		return nil, ErrSessionLocked
	}

	return s.repo.Get(ctx, id)
}

func (s *Session) RevealCredential(ctx context.Context, id string) (*models.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.key == nil {
		return nil, ErrSessionLocked
	}

	return s.reveal(ctx, id)
}

// reveal expects the caller to hold mu.
func (s *Session) reveal(ctx context.Context, id string) (*models.Credential, error) {
	entry, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	secret, err := s.cipher.DecryptField(s.key, entry.SecretCiphertext)
	if errors.Is(err, crypto.ErrAuthenticationFailed) {
		logger.FromContext(ctx).Warn().Str("func", "*Session.reveal").Str("id", id).Msg("secret failed authentication")
		return nil, ErrEntryUndecryptable
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Session.reveal").Str("id", id).Msg("failed to decrypt secret")
		return nil, fmt.Errorf("decrypt secret: %w", err)
	}

	return &models.Credential{
		ID:        entry.ID,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
		Service:   entry.Service,
		Username:  entry.Username,
		URL:       entry.URL,
		Email:     entry.Email,
		Notes:     entry.Notes,
		Secret:    secret,
	}, nil
}

func (s *Session) UpdateCredential(ctx context.Context, id string, update models.CredentialUpdate) error {
	s.updateMu.Lock()
	defer s.updateMu.Unlock()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.key == nil {
		return ErrSessionLocked
	}

	if err := s.validator.Validate(ctx, update); err != nil {
		return err
	}

	entry, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("%w: id=%s", store.ErrEntryNotFound, id)
	}

	applyUpdate(entry, update)

	if update.Secret != nil {
		entry.SecretCiphertext, err = s.cipher.EncryptField(s.key, *update.Secret)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*Session.UpdateCredential").Str("id", id).Msg("failed to encrypt secret")
			return fmt.Errorf("encrypt secret: %w", err)
		}
	}

	return s.repo.Update(ctx, *entry)
}

func applyUpdate(entry *models.VaultEntry, update models.CredentialUpdate) {
	if update.Service != nil {
		entry.Service = *update.Service
	}
	if update.Username != nil {
		entry.Username = *update.Username
	}
	if update.URL != nil {
		entry.URL = *update.URL
	}
	if update.Email != nil {
		entry.Email = *update.Email
	}
	if update.Notes != nil {
		// an empty string clears the notes
		if *update.Notes == "" {
			entry.Notes = nil
		} else {
			notes := *update.Notes
			entry.Notes = &notes
		}
	}
}

func (s *Session) Delete(ctx context.Context, id string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.key == nil {
		return ErrSessionLocked
	}

	return s.repo.Delete(ctx, id)
}

func (s *Session) List(ctx context.Context) ([]models.VaultEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.key == nil {
		return nil, ErrSessionLocked
	}

	return s.repo.ListAll(ctx)
}

func (s *Session) Search(ctx context.Context, query string) ([]models.VaultEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.key == nil {
		return nil, ErrSessionLocked
	}

	return s.repo.Search(ctx, query)
}

func (s *Session) CopySecret(ctx context.Context, id string, clipboard ClipboardWriter) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.key == nil {
		return ErrSessionLocked
	}

	cred, err := s.reveal(ctx, id)
	if err != nil {
		return err
	}
	if cred == nil {
		return fmt.Errorf("%w: id=%s", store.ErrEntryNotFound, id)
	}

	if err = clipboard.WriteText(cred.Secret); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}

	return nil
}

// Lock zeroes the session key. Safe to call more than once.
func (s *Session) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()

	crypto.Zero(s.key)
	s.key = nil
}

// GenerateRandomPassword suggests a human credential of length characters.
// See [crypto.GenerateRandomPassword].
func GenerateRandomPassword(length int) (string, error) {
	return crypto.GenerateRandomPassword(length)
}
