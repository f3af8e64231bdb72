package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/diffrec/internal/record"
)

// Writer writes a change record in a specific format.
type Writer interface {
	Write(w io.Writer, rec *record.ChangeRecord) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "diff":
		return &DiffWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteRecord writes the record to the specified output (file path or stdout).
func WriteRecord(rec *record.ChangeRecord, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, rec)
}
