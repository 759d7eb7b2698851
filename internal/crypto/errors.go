// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by the key chain and field cipher. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrAuthenticationFailed is returned when the master password does not
	// match or an envelope's authentication tag does not verify. The two
	// causes are deliberately reported with the same value.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrCorruptEnvelope is returned when an envelope cannot be decoded or is
	// shorter than nonce + tag.
	ErrCorruptEnvelope = errors.New("corrupt cipher envelope")

	// ErrHashing is returned when the master password hash or session key
	// cannot be produced.
	ErrHashing = errors.New("password hashing failed")

	// ErrInvalidRecord is returned when a password hash record is malformed
	// (unknown algorithm, unsupported version, bad encoding or parameters).
	ErrInvalidRecord = errors.New("invalid password hash record")

	// ErrInvalidKeyLength is returned when a field cipher key is not 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidPasswordLength is returned when a random password of
	// non-positive length is requested.
	ErrInvalidPasswordLength = errors.New("invalid password length")
)
