// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

const (
	// NonceSize is the AES-GCM nonce length in bytes (96 bits).
	NonceSize = 12

	// TagSize is the AES-GCM authentication tag length in bytes.
	TagSize = 16
)

// MinEnvelopeLen is the length of the base64 text of the shortest envelope
// that can carry a nonce. The store uses it as its opaque-blob length floor.
var MinEnvelopeLen = base64.StdEncoding.EncodedLen(NonceSize)

// fieldCipher is the private implementation of [FieldCipher].
type fieldCipher struct {
	// random is the nonce source; crypto/rand.Reader outside tests.
	random io.Reader
}

// NewFieldCipher constructs an AES-256-GCM [FieldCipher].
func NewFieldCipher() FieldCipher {
	return &fieldCipher{random: rand.Reader}
}

// EncryptField implements [FieldCipher]. Every call reads a fresh nonce from
// the CSPRNG; nonces are never derived from content or counters.
// The output is Base64 (standard encoding) of nonce ‖ ciphertext ‖ tag.
func (c *fieldCipher) EncryptField(key []byte, plaintext string) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	plain := []byte(plaintext)
	defer Zero(plain)

	// Seal appends to nonce, so the blob is nonce || ciphertext || tag.
	blob := gcm.Seal(nonce, nonce, plain, nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptField implements [FieldCipher]. Any gcm.Open failure is reported as
// ErrAuthenticationFailed without the underlying cause, so a wrong key and
// tampered data look the same to the caller.
func (c *fieldCipher) DecryptField(key []byte, envelope string) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	blob, err := base64.StdEncoding.Strict().DecodeString(envelope)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrCorruptEnvelope, err)
	}

	if len(blob) < gcm.NonceSize()+gcm.Overhead() {
		return "", fmt.Errorf("%w: envelope too short (%d bytes)", ErrCorruptEnvelope, len(blob))
	}

	nonce, ciphertext := blob[:gcm.NonceSize()], blob[gcm.NonceSize():]

	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrAuthenticationFailed
	}
	defer Zero(plain)

	return string(plain), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != keyLen {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeyLength, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
