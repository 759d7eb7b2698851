// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/go-pass-vault/models"

// Default values applied to every field left empty by all other sources.
const (
	DefaultDSN            = "vault.db"
	DefaultMasterFile     = "vault.master.json"
	DefaultPasswordLength = 16

	DefaultKDFTime    uint32 = 1
	DefaultKDFMemory  uint32 = 64 * 1024 // 64 MiB
	DefaultKDFThreads uint8  = 4

	// keyLen is fixed: the field cipher only accepts 256-bit keys.
	keyLen uint32 = 32
)

// StructuredConfig is the top-level configuration container for the
// go-pass-vault application. It aggregates all sub-configurations and is
// populated by merging values from command-line flags, environment
// variables, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env),
//     itself under the global [EnvPrefix].
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds user-facing application settings.
	App App `envPrefix:"APP_"`

	// Storage holds the locations of the storage artifact (sqlite file) and
	// the config artifact (master credential file).
	Storage Storage `envPrefix:"STORAGE_"`

	// KDF holds the Argon2id cost parameters used for new master
	// credentials. Existing credentials keep the parameters they were
	// created with.
	KDF KDF `envPrefix:"KDF_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the VAULT_CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// PasswordLength is the default length of generated passwords.
	// Env: VAULT_APP_PASSWORD_LENGTH
	PasswordLength int `env:"PASSWORD_LENGTH"`
}

// Storage groups the on-disk artifact locations.
type Storage struct {
	// DB holds the sqlite database settings.
	DB DB `envPrefix:"DB_"`

	// MasterFile is the path of the JSON file holding the master password
	// hash record and key-derivation salt.
	// Env: VAULT_STORAGE_MASTER_FILE
	MasterFile string `env:"MASTER_FILE"`
}

// DB holds connection settings for the sqlite storage artifact.
type DB struct {
	// DSN is the sqlite file path (or go-sqlite3 DSN) of the vault.
	// Env: VAULT_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// KDF holds Argon2id cost parameters.
type KDF struct {
	// Time is the number of iterations.
	// Env: VAULT_KDF_TIME
	Time uint32 `env:"TIME"`

	// Memory is the memory cost in KiB.
	// Env: VAULT_KDF_MEMORY
	Memory uint32 `env:"MEMORY"`

	// Threads is the degree of parallelism.
	// Env: VAULT_KDF_THREADS
	Threads uint8 `env:"THREADS"`
}

// Params converts the configured costs into [models.KDFParams] with the
// fixed 256-bit output length.
func (k KDF) Params() models.KDFParams {
	return models.KDFParams{
		Time:    k.Time,
		Memory:  k.Memory,
		Threads: k.Threads,
		KeyLen:  keyLen,
	}
}

// Log holds logging settings.
type Log struct {
	// File is the path of the JSON log file. Empty means "logs" next to the
	// executable.
	// Env: VAULT_LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. Sources are merged with mergo,
// which only fills fields that are still zero, so earlier sources win:
//  1. Command-line flags (parsed from args)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// The positional arguments left after flag parsing (the command and its
// operands) are returned alongside the config.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults()

	cfg, err := b.build()
	if err != nil {
		return nil, nil, err
	}

	return cfg, b.args, nil
}
