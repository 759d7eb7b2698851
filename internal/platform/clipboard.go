// Package platform implements the operating system capabilities the vault
// core asks for through interfaces.
package platform

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnsupported is returned when no clipboard utility is available
// (for example a headless Linux box without xclip, xsel or wl-copy).
var ErrClipboardUnsupported = errors.New("clipboard is not supported on this system")

// Clipboard writes text to the system clipboard via atotto/clipboard.
type Clipboard struct {
	unsupported bool
	write       func(string) error
}

func NewClipboard() *Clipboard {
	return &Clipboard{
		unsupported: clipboard.Unsupported,
		write:       clipboard.WriteAll,
	}
}

// WriteText implements service.ClipboardWriter.
func (c *Clipboard) WriteText(text string) error {
	if c.unsupported {
		return ErrClipboardUnsupported
	}

	if err := c.write(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}

	return nil
}
