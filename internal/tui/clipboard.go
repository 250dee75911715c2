package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// copyToClipboard copies text to the system clipboard.
func copyToClipboard(text string) error {
	if err := writeClipboard(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}

// copyFlash copies text and returns the flash line to show.
func copyFlash(text, ok string) string {
	if err := copyToClipboard(text); err != nil {
		return "copy: " + err.Error()
	}
	return ok
}
