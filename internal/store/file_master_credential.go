package store

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/atomic"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// masterCredentialFileVersion is the only layout Load understands.
const masterCredentialFileVersion = 1

// masterCredentialFile is the on-disk JSON layout of the config artifact.
type masterCredentialFile struct {
	Version      int              `json:"version"`
	PasswordHash string           `json:"password_hash"`
	KeySalt      string           `json:"key_salt"`
	KDF          models.KDFParams `json:"kdf"`
}

// masterCredentialFileStore implements [MasterCredentialStore] on top of a
// single JSON file that is replaced atomically on every save.
type masterCredentialFileStore struct {
	path   string
	logger *logger.Logger

	mu sync.Mutex
}

// NewMasterCredentialFileStore returns a [MasterCredentialStore] keeping the
// master credential in the JSON file at path.
func NewMasterCredentialFileStore(path string, logger *logger.Logger) MasterCredentialStore {
	return &masterCredentialFileStore{
		path:   path,
		logger: logger,
	}
}

func (s *masterCredentialFileStore) Load(ctx context.Context) (models.MasterCredential, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.MasterCredential{}, ErrMasterCredentialNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*masterCredentialFileStore.Load").Str("path", s.path).Msg("failed to read master credential file")
		return models.MasterCredential{}, fmt.Errorf("%w: read master credential file: %w", ErrStorage, err)
	}

	cred, err := decodeMasterCredential(data)
	if err != nil {
		log.Err(err).Str("func", "*masterCredentialFileStore.Load").Str("path", s.path).Msg("malformed master credential file")
		return models.MasterCredential{}, err
	}

	return cred, nil
}

func (s *masterCredentialFileStore) Save(ctx context.Context, cred models.MasterCredential) error {
	log := logger.FromContext(ctx)

	data, err := encodeMasterCredential(cred)
	if err != nil {
		return fmt.Errorf("%w: encode master credential: %w", ErrStorage, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err = os.MkdirAll(dir, 0o700); err != nil {
			log.Err(err).Str("func", "*masterCredentialFileStore.Save").Str("path", s.path).Msg("failed to create directory")
			return fmt.Errorf("%w: create master credential directory: %w", ErrStorage, err)
		}
	}

	if err = atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		log.Err(err).Str("func", "*masterCredentialFileStore.Save").Str("path", s.path).Msg("failed to write master credential file")
		return fmt.Errorf("%w: write master credential file: %w", ErrStorage, err)
	}

	if err = os.Chmod(s.path, 0o600); err != nil {
		return fmt.Errorf("%w: chmod master credential file: %w", ErrStorage, err)
	}

	log.Debug().Str("func", "*masterCredentialFileStore.Save").Str("path", s.path).Msg("master credential saved")

	return nil
}

func (s *masterCredentialFileStore) Exists(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("%w: stat master credential file: %w", ErrStorage, err)
	}
}

func encodeMasterCredential(cred models.MasterCredential) ([]byte, error) {
	return json.MarshalIndent(masterCredentialFile{
		Version:      masterCredentialFileVersion,
		PasswordHash: crypto.EncodeHashRecord(cred.Hash),
		KeySalt:      base64.StdEncoding.EncodeToString(cred.KeySalt),
		KDF:          cred.KeyParams,
	}, "", "  ")
}

func decodeMasterCredential(data []byte) (models.MasterCredential, error) {
	var f masterCredentialFile
	if err := json.Unmarshal(data, &f); err != nil {
		return models.MasterCredential{}, fmt.Errorf("%w: decode master credential file: %v", crypto.ErrInvalidRecord, err)
	}

	if f.Version != masterCredentialFileVersion {
		return models.MasterCredential{}, fmt.Errorf("%w: unsupported master credential file version %d", crypto.ErrInvalidRecord, f.Version)
	}

	record, err := crypto.ParseHashRecord(f.PasswordHash)
	if err != nil {
		return models.MasterCredential{}, err
	}

	keySalt, err := base64.StdEncoding.DecodeString(f.KeySalt)
	if err != nil || len(keySalt) == 0 {
		return models.MasterCredential{}, fmt.Errorf("%w: bad key salt", crypto.ErrInvalidRecord)
	}

	if err = crypto.CheckKDFParams(f.KDF); err != nil {
		return models.MasterCredential{}, fmt.Errorf("%w: bad kdf parameters: %v", crypto.ErrInvalidRecord, err)
	}

	return models.MasterCredential{
		Hash:      record,
		KeySalt:   keySalt,
		KeyParams: f.KDF,
	}, nil
}
