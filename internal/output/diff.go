package output

import (
	"io"
	"strings"

	"github.com/dshills/diffrec/internal/record"
)

// DiffWriter outputs only the unified diff text, suitable for piping
// into diff-aware tooling.
type DiffWriter struct{}

func (d *DiffWriter) Write(w io.Writer, rec *record.ChangeRecord) error {
	text := rec.UnifiedDiff
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := io.WriteString(w, text)
	return err
}
