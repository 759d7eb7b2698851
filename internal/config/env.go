// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable the vault reads,
// e.g. VAULT_STORAGE_DB_DSN.
const EnvPrefix = "VAULT_"

// parseEnv populates cfg from the process environment. Struct fields are
// mapped via their `env` and `envPrefix` tags, all under [EnvPrefix].
func parseEnv(cfg any) error {
	return parseEnvWithOptions(cfg, env.Options{Prefix: EnvPrefix})
}

// parseEnvWithOptions is parseEnv with caller-supplied caarlos0/env options;
// tests pass Options.Environment instead of touching the process env.
func parseEnvWithOptions(cfg any, opts env.Options) error {
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
