package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipboard_WriteText(t *testing.T) {
	var got string
	c := &Clipboard{write: func(s string) error { got = s; return nil }}

	require.NoError(t, c.WriteText("s3cr3t!"))
	assert.Equal(t, "s3cr3t!", got)
}

func TestClipboard_Unsupported(t *testing.T) {
	called := false
	c := &Clipboard{unsupported: true, write: func(string) error { called = true; return nil }}

	assert.ErrorIs(t, c.WriteText("x"), ErrClipboardUnsupported)
	assert.False(t, called)
}

func TestClipboard_WriteError(t *testing.T) {
	c := &Clipboard{write: func(string) error { return errors.New("exec: xclip not found") }}

	err := c.WriteText("x")
	assert.ErrorContains(t, err, "write clipboard")
}

func TestNewClipboard(t *testing.T) {
	c := NewClipboard()
	require.NotNil(t, c)
	assert.NotNil(t, c.write)
}
