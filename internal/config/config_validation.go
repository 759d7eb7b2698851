// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The vault must live in a file: an in-memory sqlite DSN would silently
// lose every stored credential at exit. Argon2id requires at least one
// iteration, one thread and 8 KiB of memory per thread, and costs above
// [crypto.MaxKDFTime] or [crypto.MaxKDFMemory] are refused.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.MasterFile == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.PasswordLength < 1 {
		return ErrInvalidAppConfigs
	}

	if err := crypto.CheckKDFParams(cfg.KDF.Params()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidKDFConfigs, err)
	}

	return nil
}
