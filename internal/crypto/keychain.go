// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	// AlgorithmArgon2id is the only supported hash record algorithm tag.
	AlgorithmArgon2id = "argon2id"

	// MaxKDFTime and MaxKDFMemory (in KiB, 4 GiB) bound the costs accepted
	// from configuration and from stored records.
	MaxKDFTime   = 64
	MaxKDFMemory = 4 * 1024 * 1024

	saltLen      = 16
	keyLen       = 32
	maxDigestLen = 1024
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// params are the Argon2id costs used for new hash records and keys.
	// Stored in the struct so they can be adjusted per deployment target
	// (e.g. a slow laptop vs. a workstation).
	params models.KDFParams

	// random is the salt source; crypto/rand.Reader outside tests.
	random io.Reader
}

// DefaultKDFParams returns the Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func DefaultKDFParams() models.KDFParams {
	return models.KDFParams{
		Time:    1,
		Memory:  64 * 1024, // 64 MiB
		Threads: 4,
		KeyLen:  keyLen,
	}
}

// NewKeyChainService constructs a [KeyChainService] with [DefaultKDFParams].
func NewKeyChainService() KeyChainService {
	return NewKeyChainServiceWithParams(DefaultKDFParams())
}

// NewKeyChainServiceWithParams constructs a [KeyChainService] that creates
// new records and keys with params. A zero KeyLen is replaced with 32.
func NewKeyChainServiceWithParams(params models.KDFParams) KeyChainService {
	if params.KeyLen == 0 {
		params.KeyLen = keyLen
	}
	return &keyChainService{
		params: params,
		random: rand.Reader,
	}
}

// GenerateSalt implements [KeyChainService].
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(k.random, salt); err != nil {
		return nil, fmt.Errorf("%w: read salt: %v", ErrHashing, err)
	}
	return salt, nil
}

// HashMasterPassword implements [KeyChainService].
func (k *keyChainService) HashMasterPassword(password string) (models.PasswordHashRecord, error) {
	if err := CheckKDFParams(k.params); err != nil {
		return models.PasswordHashRecord{}, fmt.Errorf("%w: %v", ErrHashing, err)
	}

	salt, err := k.GenerateSalt()
	if err != nil {
		return models.PasswordHashRecord{}, err
	}

	digest := argon2.IDKey([]byte(password), salt, k.params.Time, k.params.Memory, k.params.Threads, k.params.KeyLen)

	return models.PasswordHashRecord{
		Algorithm: AlgorithmArgon2id,
		Version:   argon2.Version,
		Params:    k.params,
		Salt:      salt,
		Digest:    digest,
	}, nil
}

// VerifyMasterPassword implements [KeyChainService].
func (k *keyChainService) VerifyMasterPassword(password string, record models.PasswordHashRecord) (bool, error) {
	if err := checkRecord(record); err != nil {
		return false, err
	}

	p := record.Params
	computed := argon2.IDKey([]byte(password), record.Salt, p.Time, p.Memory, p.Threads, uint32(len(record.Digest)))
	defer Zero(computed)

	return subtle.ConstantTimeCompare(computed, record.Digest) == 1, nil
}

// DeriveSessionKey implements [KeyChainService]. The caller owns the
// returned key and must Zero it when the session ends.
func (k *keyChainService) DeriveSessionKey(password string, salt []byte, params models.KDFParams) ([]byte, error) {
	if len(salt) == 0 {
		return nil, fmt.Errorf("%w: empty key salt", ErrHashing)
	}
	if params.KeyLen == 0 {
		params.KeyLen = keyLen
	}
	if err := CheckKDFParams(params); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHashing, err)
	}

	return argon2.IDKey([]byte(password), salt, params.Time, params.Memory, params.Threads, params.KeyLen), nil
}

// NewMasterCredential implements [KeyChainService].
func (k *keyChainService) NewMasterCredential(password string) (models.MasterCredential, error) {
	record, err := k.HashMasterPassword(password)
	if err != nil {
		return models.MasterCredential{}, err
	}

	keySalt, err := k.GenerateSalt()
	if err != nil {
		return models.MasterCredential{}, err
	}

	return models.MasterCredential{
		Hash:      record,
		KeySalt:   keySalt,
		KeyParams: k.params,
	}, nil
}

// CheckKDFParams rejects parameters argon2.IDKey would panic on, costs
// above [MaxKDFTime] or [MaxKDFMemory], and key lengths other than 32 bytes.
func CheckKDFParams(p models.KDFParams) error {
	if err := checkCosts(p); err != nil {
		return err
	}
	if p.KeyLen != keyLen {
		return fmt.Errorf("key length must be %d bytes", keyLen)
	}
	return nil
}

func checkCosts(p models.KDFParams) error {
	switch {
	case p.Time < 1:
		return fmt.Errorf("time cost must be at least 1")
	case p.Time > MaxKDFTime:
		return fmt.Errorf("time cost must be at most %d", MaxKDFTime)
	case p.Threads < 1:
		return fmt.Errorf("parallelism must be at least 1")
	case p.Memory < 8*uint32(p.Threads):
		return fmt.Errorf("memory cost must be at least %d KiB", 8*uint32(p.Threads))
	case p.Memory > MaxKDFMemory:
		return fmt.Errorf("memory cost must be at most %d KiB", MaxKDFMemory)
	}
	return nil
}

func checkRecord(r models.PasswordHashRecord) error {
	if err := checkCosts(r.Params); err != nil {
		return fmt.Errorf("%w: bad cost parameters: %v", ErrInvalidRecord, err)
	}
	switch {
	case r.Algorithm != AlgorithmArgon2id:
		return fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidRecord, r.Algorithm)
	case r.Version != argon2.Version:
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidRecord, r.Version)
	case len(r.Salt) == 0:
		return fmt.Errorf("%w: empty salt", ErrInvalidRecord)
	case len(r.Digest) == 0:
		return fmt.Errorf("%w: empty digest", ErrInvalidRecord)
	case len(r.Digest) > maxDigestLen:
		return fmt.Errorf("%w: digest longer than %d bytes", ErrInvalidRecord, maxDigestLen)
	}
	return nil
}
