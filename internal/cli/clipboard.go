package cli

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnsupported is returned when no system clipboard tool is available.
var ErrClipboardUnsupported = errors.New("clipboard is not supported on this system")

// Clipboard receives copied report text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

// MemoryClipboard keeps the last copied text. Used where no system clipboard exists and in tests.
type MemoryClipboard struct {
	Text   string
	Writes int
}

// WriteAll records text.
func (m *MemoryClipboard) WriteAll(text string) error {
	m.Text = text
	m.Writes++
	return nil
}
