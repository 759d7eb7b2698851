package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Storages groups the two on-disk artifacts of a vault into a single value
// that can be passed to the service layer.
type Storages struct {
	// VaultEntryRepository is the sqlite-backed entry store.
	VaultEntryRepository VaultEntryRepository

	// MasterCredentialStore holds the master password hash record and the
	// session key salt.
	MasterCredentialStore MasterCredentialStore

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Opens the sqlite file at cfg.DB.DSN, creating it if it does not exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a [VaultEntryRepository] and a file-backed
//     [MasterCredentialStore] at cfg.MasterFile.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: migration failed: %w", ErrStorage, err)
	}

	return &Storages{
		VaultEntryRepository:  NewVaultEntryRepository(db, logger),
		MasterCredentialStore: NewMasterCredentialFileStore(cfg.MasterFile, logger),
		db:                    db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
