package cli

import (
	"fmt"
	"io"

	"github.com/imalento/Arcane-Tracker/internal/client/models"
)

// printNotifier renders upload outcomes to the terminal, one line per
// terminal state.
type printNotifier struct {
	w io.Writer
}

func (n *printNotifier) UploadSucceeded(s models.GameSummary) {
	fmt.Fprintf(n.w, "replay uploaded: %s\n", s.RemoteURL)
}

func (n *printNotifier) UploadFailed(s models.GameSummary, err error) {
	fmt.Fprintf(n.w, "replay upload failed: %v\n", err)
}
