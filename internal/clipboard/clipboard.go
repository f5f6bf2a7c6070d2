// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"

	"twitchy/internal/log"
)

// Copy places text on the system clipboard.
func Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return err
	}
	log.Debugf("copied %q to clipboard", text)
	return nil
}
