package store

import (
	"database/sql"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an open connection. classificator decides which driver errors
// [DB.IsRetryable] reports as transient.
func NewDB(conn *sql.DB, classificator ErrorClassificator, logger *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: classificator,
		logger:             logger,
	}
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// IsRetryable reports whether err was caused by a transient database
// condition according to the connection's classifier.
func (db *DB) IsRetryable(err error) bool {
	return db.errorClassificator.Classify(err) == Retryable
}
