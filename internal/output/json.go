package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/diffrec/internal/record"
)

// JSONWriter outputs the full record as indented JSON.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, rec *record.ChangeRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
