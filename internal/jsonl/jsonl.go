package jsonl

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
)

// Writer appends records to a stream as line-delimited JSON.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter returns a Writer that appends to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Append serializes rec as one compact JSON object followed by a
// newline. Non-ASCII characters pass through unescaped.
func (jw *Writer) Append(rec any) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	enc := json.NewEncoder(jw.w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	return nil
}

// AppendFile opens path for appending, creating it if needed, and
// writes each record as one JSON line. O_APPEND gives line-granularity
// atomicity across processes; within a process the Writer mutex covers
// concurrent callers.
func AppendFile(path string, recs ...any) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}

	w := NewWriter(f)
	for _, rec := range recs {
		if err := w.Append(rec); err != nil {
			f.Close()
			return fmt.Errorf("appending to %s: %w", path, err)
		}
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
