// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// vaultEntryRepository is the sqlite-backed implementation of
// [VaultEntryRepository] over the "vault_entries" table.
//
// A single RWMutex guards the whole store: mutations are exclusive, reads
// are shared. Every mutation is one SQL statement, so it is applied fully or
// not at all.
type vaultEntryRepository struct {
	db        *DB
	logger    *logger.Logger
	validator validators.Validator
	ids       utils.IDGenerator
	now       func() time.Time

	mu sync.RWMutex
}

// NewVaultEntryRepository constructs a [VaultEntryRepository] backed by db.
func NewVaultEntryRepository(db *DB, logger *logger.Logger) VaultEntryRepository {
	logger.Debug().Msg("creating vault entry repository")
	return &vaultEntryRepository{
		db:        db,
		logger:    logger,
		validator: validators.NewVaultEntryValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create validates entry, stamps it with a new v7 id and the current UTC
// time and inserts it. Validation failures are returned as-is (they wrap
// validators.ErrInvalidEntry); everything else wraps ErrStorage.
func (r *vaultEntryRepository) Create(ctx context.Context, entry models.VaultEntry) (string, error) {
	log := logger.FromContext(ctx)

	if err := r.validator.Validate(ctx, entry); err != nil {
		log.Err(err).Str("func", "*vaultEntryRepository.Create").Msg("invalid vault entry")
		return "", err
	}

	now := r.now()
	entry.ID = r.ids.Generate()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	query, args, err := buildInsertEntryQuery(entry)
	if err != nil {
		log.Err(err).Str("func", "*vaultEntryRepository.Create").Msg("error building insert query")
		return "", fmt.Errorf("%w: build insert query: %w", ErrStorage, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*vaultEntryRepository.Create").
			Str("id", entry.ID).
			Bool("retryable", r.db.IsRetryable(err)).
			Msg("failed to insert vault entry")
		return "", fmt.Errorf("%w: insert vault entry: %w", ErrStorage, err)
	}

	log.Debug().Str("func", "*vaultEntryRepository.Create").Str("id", entry.ID).Msg("vault entry created")

	return entry.ID, nil
}

// Get returns (nil, nil) when no entry has id.
func (r *vaultEntryRepository) Get(ctx context.Context, id string) (*models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEntryQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*vaultEntryRepository.Get").Msg("error building select query")
		return nil, fmt.Errorf("%w: build select query: %w", ErrStorage, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, err := scanVaultEntry(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "*vaultEntryRepository.Get").
			Str("id", id).
			Msg("failed to get vault entry")
		return nil, fmt.Errorf("%w: get vault entry: %w", ErrStorage, err)
	}

	return &entry, nil
}

// Update replaces service, username, url, email, notes and the secret
// ciphertext of the entry with entry.ID, and bumps updated_at.
func (r *vaultEntryRepository) Update(ctx context.Context, entry models.VaultEntry) error {
	log := logger.FromContext(ctx)

	err := r.validator.Validate(ctx, entry,
		validators.FieldID,
		validators.FieldService,
		validators.FieldSecretCiphertext,
		validators.FieldMetadata,
	)
	if err != nil {
		log.Err(err).Str("func", "*vaultEntryRepository.Update").Str("id", entry.ID).Msg("invalid vault entry")
		return err
	}

	entry.UpdatedAt = r.now()

	query, args, err := buildUpdateEntryQuery(entry)
	if err != nil {
		log.Err(err).Str("func", "*vaultEntryRepository.Update").Msg("error building update query")
		return fmt.Errorf("%w: build update query: %w", ErrStorage, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.execAffectingOne(ctx, "*vaultEntryRepository.Update", entry.ID, query, args)
}

func (r *vaultEntryRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntryQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*vaultEntryRepository.Delete").Msg("error building delete query")
		return fmt.Errorf("%w: build delete query: %w", ErrStorage, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.execAffectingOne(ctx, "*vaultEntryRepository.Delete", id, query, args)
}

func (r *vaultEntryRepository) ListAll(ctx context.Context) ([]models.VaultEntry, error) {
	query, args, err := buildListEntriesQuery()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*vaultEntryRepository.ListAll").Msg("error building select query")
		return nil, fmt.Errorf("%w: build select query: %w", ErrStorage, err)
	}

	return r.query(ctx, "*vaultEntryRepository.ListAll", query, args)
}

func (r *vaultEntryRepository) Search(ctx context.Context, substring string) ([]models.VaultEntry, error) {
	query, args, err := buildSearchEntriesQuery(substring)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*vaultEntryRepository.Search").Msg("error building search query")
		return nil, fmt.Errorf("%w: build search query: %w", ErrStorage, err)
	}

	return r.query(ctx, "*vaultEntryRepository.Search", query, args)
}

// execAffectingOne runs a single-row mutation and maps zero affected rows to
// ErrEntryNotFound. Callers hold the write lock.
func (r *vaultEntryRepository) execAffectingOne(ctx context.Context, fn, id, query string, args []any) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Str("id", id).
			Bool("retryable", r.db.IsRetryable(err)).
			Msg("failed to execute statement")
		return fmt.Errorf("%w: execute statement: %w", ErrStorage, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", fn).Str("id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: rows affected: %w", ErrStorage, err)
	}

	if affected == 0 {
		log.Debug().Str("func", fn).Str("id", id).Msg("vault entry not found")
		return fmt.Errorf("%w: id=%s", ErrEntryNotFound, id)
	}

	return nil
}

func (r *vaultEntryRepository) query(ctx context.Context, fn, query string, args []any) ([]models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: query vault entries: %w", ErrStorage, err)
	}
	defer rows.Close()

	entries := make([]models.VaultEntry, 0)
	for rows.Next() {
		entry, scanErr := scanVaultEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Msg("failed to scan vault entry row")
			return nil, fmt.Errorf("%w: scan vault entry: %w", ErrStorage, scanErr)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error iterating vault entry rows")
		return nil, fmt.Errorf("%w: iterate vault entries: %w", ErrStorage, err)
	}

	return entries, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanVaultEntry(row rowScanner) (models.VaultEntry, error) {
	var entry models.VaultEntry
	err := row.Scan(
		&entry.ID,
		&entry.CreatedAt,
		&entry.UpdatedAt,
		&entry.Service,
		&entry.Username,
		&entry.URL,
		&entry.Email,
		&entry.SecretCiphertext,
		&entry.Notes,
	)
	return entry, err
}
