// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PasswordHashRecord is the verifiable hash of the master password.
// Its textual form is the PHC string
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<digest>
//
// where salt and digest use unpadded standard base64.
type PasswordHashRecord struct {
	// Algorithm is the hash algorithm tag. Only "argon2id" is supported.
	Algorithm string

	// Version is the Argon2 algorithm version (19 for v1.3).
	Version int

	// Params are the cost parameters the digest was computed with.
	Params KDFParams

	// Salt is the random per-record salt.
	Salt []byte

	// Digest is the Argon2id output compared against on verification.
	Digest []byte
}

// KDFParams holds Argon2id cost parameters.
type KDFParams struct {
	// Time is the number of passes over the memory.
	Time uint32 `json:"t"`

	// Memory is the memory cost in KiB.
	Memory uint32 `json:"m"`

	// Threads is the degree of parallelism.
	Threads uint8 `json:"p"`

	// KeyLen is the output length in bytes.
	KeyLen uint32 `json:"key_len"`
}

// MasterCredential is everything persisted about the master password: the
// record used to authenticate it and the salt/params the session key is
// derived with. The key itself is never persisted.
//
// KeySalt is distinct from Hash.Salt so that the derived session key never
// equals the stored digest.
type MasterCredential struct {
	Hash      PasswordHashRecord
	KeySalt   []byte
	KeyParams KDFParams
}
