// Package clipboard copies query text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available, e.g. a
// headless Linux box without xclip, xsel or wl-copy.
var ErrUnsupported = errors.New("clipboard not available on this system")

var (
	writeAll    = clipboard.WriteAll
	unsupported = func() bool { return clipboard.Unsupported }
)

// Copy places text on the clipboard.
func Copy(text string) error {
	if unsupported() {
		return ErrUnsupported
	}
	if err := writeAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
