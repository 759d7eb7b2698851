package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomPassword(t *testing.T) {
	for _, length := range []int{1, 16, 64} {
		pw, err := GenerateRandomPassword(length)
		require.NoError(t, err)
		assert.Len(t, pw, length)

		for _, r := range pw {
			assert.True(t, strings.ContainsRune(PasswordAlphabet, r), "unexpected rune %q", r)
		}
	}
}

func TestGenerateRandomPassword_Alphabet(t *testing.T) {
	assert.Len(t, PasswordAlphabet, 88)
}

func TestGenerateRandomPassword_Distinct(t *testing.T) {
	a, err := GenerateRandomPassword(16)
	require.NoError(t, err)
	b, err := GenerateRandomPassword(16)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerateRandomPassword_InvalidLength(t *testing.T) {
	for _, length := range []int{0, -1} {
		_, err := GenerateRandomPassword(length)
		assert.ErrorIs(t, err, ErrInvalidPasswordLength)
	}
}
