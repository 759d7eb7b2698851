package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

func testMasterCredential() models.MasterCredential {
	params := models.KDFParams{Time: 1, Memory: 64, Threads: 1, KeyLen: 32}
	return models.MasterCredential{
		Hash: models.PasswordHashRecord{
			Algorithm: crypto.AlgorithmArgon2id,
			Version:   19,
			Params:    params,
			Salt:      []byte("0123456789abcdef"),
			Digest:    []byte("0123456789abcdef0123456789abcdef"),
		},
		KeySalt:   []byte("fedcba9876543210"),
		KeyParams: params,
	}
}

func TestMasterCredentialFileStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "vault.master.json")
	s := NewMasterCredentialFileStore(path, logger.Nop())
	ctx := context.Background()

	ok, err := s.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	want := testMasterCredential()
	require.NoError(t, s.Save(ctx, want))

	ok, err = s.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMasterCredentialFileStore_FileLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.master.json")
	s := NewMasterCredentialFileStore(path, logger.Nop())

	require.NoError(t, s.Save(context.Background(), testMasterCredential()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"version": 1,
		"password_hash": "$argon2id$v=19$m=64,t=1,p=1$MDEyMzQ1Njc4OWFiY2RlZg$MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY",
		"key_salt": "ZmVkY2JhOTg3NjU0MzIxMA==",
		"kdf": {"t": 1, "m": 64, "p": 1, "key_len": 32}
	}`, string(data))
}

func TestMasterCredentialFileStore_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.master.json")
	s := NewMasterCredentialFileStore(path, logger.Nop())
	ctx := context.Background()

	first := testMasterCredential()
	require.NoError(t, s.Save(ctx, first))

	second := testMasterCredential()
	second.KeySalt = []byte("another-key-salt")
	require.NoError(t, s.Save(ctx, second))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.KeySalt, got.KeySalt)
}

func TestMasterCredentialFileStore_LoadMissing(t *testing.T) {
	s := NewMasterCredentialFileStore(filepath.Join(t.TempDir(), "missing.json"), logger.Nop())

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrMasterCredentialNotFound)
}

func TestMasterCredentialFileStore_LoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "{"},
		{name: "wrong version", content: `{"version":2,"password_hash":"$argon2id$v=19$m=64,t=1,p=1$c2FsdA$YWJj","key_salt":"c2FsdA==","kdf":{}}`},
		{name: "bad hash", content: `{"version":1,"password_hash":"plain","key_salt":"c2FsdA==","kdf":{}}`},
		{name: "bad key salt", content: `{"version":1,"password_hash":"$argon2id$v=19$m=64,t=1,p=1$c2FsdA$YWJj","key_salt":"***","kdf":{}}`},
		{name: "empty key salt", content: `{"version":1,"password_hash":"$argon2id$v=19$m=64,t=1,p=1$c2FsdA$YWJj","key_salt":"","kdf":{}}`},
		{name: "missing kdf", content: `{"version":1,"password_hash":"$argon2id$v=19$m=64,t=1,p=1$c2FsdA$YWJj","key_salt":"c2FsdA=="}`},
		{name: "zero kdf costs", content: `{"version":1,"password_hash":"$argon2id$v=19$m=64,t=1,p=1$c2FsdA$YWJj","key_salt":"c2FsdA==","kdf":{"t":0,"m":0,"p":0,"key_len":7}}`},
		{name: "kdf memory above ceiling", content: `{"version":1,"password_hash":"$argon2id$v=19$m=64,t=1,p=1$c2FsdA$YWJj","key_salt":"c2FsdA==","kdf":{"t":1,"m":4294967295,"p":1,"key_len":32}}`},
		{name: "kdf short key", content: `{"version":1,"password_hash":"$argon2id$v=19$m=64,t=1,p=1$c2FsdA$YWJj","key_salt":"c2FsdA==","kdf":{"t":1,"m":64,"p":1,"key_len":7}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "vault.master.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := NewMasterCredentialFileStore(path, logger.Nop()).Load(context.Background())
			assert.ErrorIs(t, err, crypto.ErrInvalidRecord)
		})
	}
}

func TestMasterCredentialFileStore_LoadUnreadable(t *testing.T) {
	// a directory in place of the file cannot be read
	dir := t.TempDir()

	_, err := NewMasterCredentialFileStore(dir, logger.Nop()).Load(context.Background())
	assert.ErrorIs(t, err, ErrStorage)
}
