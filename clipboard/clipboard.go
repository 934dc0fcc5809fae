package clipboard

import (
	"io"
	"os"

	"github.com/andareed/siftly-peaks/logging"
	"github.com/atotto/clipboard"
)

var (
	systemCopy = clipboard.WriteAll
	terminal   io.Writer = os.Stdout
)

// Copy puts text on the system clipboard, falling back to an OSC52 escape
// sequence when no clipboard tool is available (e.g. over SSH).
func Copy(text string) error {
	if !clipboard.Unsupported {
		err := systemCopy(text)
		if err == nil {
			logging.Infof("Clipboard: copied %d bytes", len(text))
			return nil
		}
		logging.Warnf("Clipboard: system copy failed, trying OSC52: %v", err)
	}
	return copyOSC52(text)
}
