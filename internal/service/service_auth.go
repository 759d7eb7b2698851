// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type authService struct {
	masterStore store.MasterCredentialStore
	repo        store.VaultEntryRepository
	keyChain    crypto.KeyChainService
	cipher      crypto.FieldCipher
	logger      *logger.Logger
}

func NewAuthService(
	masterStore store.MasterCredentialStore,
	repo store.VaultEntryRepository,
	keyChain crypto.KeyChainService,
	cipher crypto.FieldCipher,
	logger *logger.Logger,
) AuthService {
	return &authService{
		masterStore: masterStore,
		repo:        repo,
		keyChain:    keyChain,
		cipher:      cipher,
		logger:      logger,
	}
}

func (a *authService) Initialize(ctx context.Context, password string) error {
	log := logger.FromContext(ctx)

	if password == "" {
		return ErrEmptyMasterPassword
	}

	exists, err := a.masterStore.Exists(ctx)
	if err != nil {
		return fmt.Errorf("check master credential: %w", err)
	}
	if exists {
		return ErrVaultAlreadyInitialized
	}

	cred, err := a.keyChain.NewMasterCredential(password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Initialize").Msg("failed to build master credential")
		return fmt.Errorf("create master credential: %w", err)
	}

	if err = a.masterStore.Save(ctx, cred); err != nil {
		log.Err(err).Str("func", "*authService.Initialize").Msg("failed to save master credential")
		return fmt.Errorf("save master credential: %w", err)
	}

	log.Info().Str("func", "*authService.Initialize").Msg("vault initialized")

	return nil
}

func (a *authService) Authenticate(ctx context.Context, password string) (bool, error) {
	cred, err := a.loadMasterCredential(ctx)
	if err != nil {
		return false, err
	}

	ok, err := a.keyChain.VerifyMasterPassword(password, cred.Hash)
	if err != nil {
		return false, fmt.Errorf("verify master password: %w", err)
	}

	return ok, nil
}

func (a *authService) Unlock(ctx context.Context, password string) (VaultSession, error) {
	log := logger.FromContext(ctx)

	cred, err := a.loadMasterCredential(ctx)
	if err != nil {
		return nil, err
	}

	ok, err := a.keyChain.VerifyMasterPassword(password, cred.Hash)
	if err != nil {
		return nil, fmt.Errorf("verify master password: %w", err)
	}
	if !ok {
		log.Warn().Str("func", "*authService.Unlock").Msg("wrong master password")
		return nil, crypto.ErrAuthenticationFailed
	}

	key, err := a.keyChain.DeriveSessionKey(password, cred.KeySalt, cred.KeyParams)
	if err != nil {
		log.Err(err).Str("func", "*authService.Unlock").Msg("failed to derive session key")
		return nil, fmt.Errorf("derive session key: %w", err)
	}

	log.Debug().Str("func", "*authService.Unlock").Msg("vault unlocked")

	return NewSession(key, a.repo, a.cipher, a.logger), nil
}

func (a *authService) loadMasterCredential(ctx context.Context) (cred models.MasterCredential, err error) {
	cred, err = a.masterStore.Load(ctx)
	if errors.Is(err, store.ErrMasterCredentialNotFound) {
		return cred, ErrVaultNotInitialized
	}
	if err != nil {
		return cred, fmt.Errorf("load master credential: %w", err)
	}
	return cred, nil
}
