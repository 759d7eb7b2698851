package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// PasswordAlphabet is the character set of generated passwords: upper and
// lower case letters, digits and 26 symbols.
const PasswordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*()_+-=[]{}|;:,.<>?"

// GenerateRandomPassword returns a human credential suggestion of length
// characters, each drawn independently and uniformly from [PasswordAlphabet]
// with crypto/rand. It is never used as key material.
func GenerateRandomPassword(length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("%w: %d", ErrInvalidPasswordLength, length)
	}

	max := big.NewInt(int64(len(PasswordAlphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		out[i] = PasswordAlphabet[n.Int64()]
	}

	return string(out), nil
}
