package crypto

import "github.com/MKhiriev/go-pass-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyChainService turns the master password into the two things the vault
// needs from it and nothing else. It knows nothing about files, databases or
// prompts.
//
// Scheme:
//
//	Record  = HashMasterPassword(password)                  (first run)
//	KeySalt = GenerateSalt()                                (first run)
//	ok      = VerifyMasterPassword(password, Record)        (every unlock)
//	Key     = DeriveSessionKey(password, KeySalt, params)   (every unlock)
//
// Both the record and the key come from Argon2id, each under its own salt, so
// brute-forcing the key costs as much as brute-forcing the stored hash.
type KeyChainService interface {
	// GenerateSalt reads 16 random bytes from the OS CSPRNG.
	// Salts are not secret; they are persisted next to the hash record.
	GenerateSalt() ([]byte, error)

	// HashMasterPassword derives a salted Argon2id hash record of password
	// with a fresh random salt. Returns ErrHashing if the salt cannot be read
	// or the configured cost parameters are unusable.
	HashMasterPassword(password string) (models.PasswordHashRecord, error)

	// VerifyMasterPassword recomputes the hash of password under the record's
	// own salt and parameters and compares in constant time. A wrong password
	// yields (false, nil). ErrInvalidRecord is returned only when the record
	// itself is malformed.
	VerifyMasterPassword(password string, record models.PasswordHashRecord) (bool, error)

	// DeriveSessionKey deterministically derives a 256-bit key from password
	// and the persisted salt with Argon2id. The key exists only in memory.
	DeriveSessionKey(password string, salt []byte, params models.KDFParams) ([]byte, error)

	// NewMasterCredential builds everything that is persisted about a new
	// master password: the hash record plus a separate key-derivation salt.
	NewMasterCredential(password string) (models.MasterCredential, error)
}

// FieldCipher encrypts and decrypts single secret strings with a 256-bit key
// using one-shot AES-256-GCM. Output is a self-contained base64 envelope:
// nonce (12 bytes) ‖ ciphertext ‖ tag (16 bytes).
type FieldCipher interface {
	// EncryptField seals plaintext under key with a fresh random nonce.
	EncryptField(key []byte, plaintext string) (string, error)

	// DecryptField opens an envelope produced by EncryptField. Malformed or
	// truncated envelopes yield ErrCorruptEnvelope; a wrong key or tampered
	// data yields ErrAuthenticationFailed and no plaintext at all.
	DecryptField(key []byte, envelope string) (string, error)
}
