package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// resetFlags resets all package-level flag variables to their zero values.
func resetFlags() {
	flagLeftName = ""
	flagRightName = ""
	flagContextLines = -1
	flagStripWS = false
	flagFormat = ""
	flagOut = ""
	flagAppend = false
	flagJSONLPath = ""
}

// --- readSide tests ---

func TestReadSide_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	if err := os.WriteFile(path, []byte("hello\nworld\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, name, err := readSide(path, "left.txt", 1<<20)
	if err != nil {
		t.Fatalf("readSide error: %v", err)
	}
	if text != "hello\nworld\n" {
		t.Errorf("text = %q, want file content", text)
	}
	if name != "sample.txt" {
		t.Errorf("name = %q, want basename %q", name, "sample.txt")
	}
}

func TestReadSide_Missing(t *testing.T) {
	_, _, err := readSide(filepath.Join(t.TempDir(), "nope.txt"), "left.txt", 1<<20)
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadSide_TooLarge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.txt")
	if err := os.WriteFile(path, []byte(strings.Repeat("x", 100)), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := readSide(path, "left.txt", 10)
	if err == nil {
		t.Error("expected error for oversized input")
	}
	if err != nil && !strings.Contains(err.Error(), "input limit") {
		t.Errorf("error = %v, want input limit message", err)
	}
}

func TestReadSide_DecodesLatin1(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "latin1.txt")
	if err := os.WriteFile(path, []byte{'c', 'a', 'f', 0xE9, '\n'}, 0o644); err != nil {
		t.Fatal(err)
	}

	text, _, err := readSide(path, "left.txt", 1<<20)
	if err != nil {
		t.Fatalf("readSide error: %v", err)
	}
	if text != "café\n" {
		t.Errorf("text = %q, want %q", text, "café\n")
	}
}

// --- buildOverrides tests ---

func TestBuildOverrides(t *testing.T) {
	resetFlags()
	defer resetFlags()

	flagFormat = "json"
	flagContextLines = 0
	flagJSONLPath = "out.jsonl"

	m := buildOverrides(compareCmd)
	if m["format"] != "json" {
		t.Errorf("format override = %q, want %q", m["format"], "json")
	}
	if m["contextLines"] != "0" {
		t.Errorf("contextLines override = %q, want %q (zero context is a valid choice)", m["contextLines"], "0")
	}
	if m["jsonlPath"] != "out.jsonl" {
		t.Errorf("jsonlPath override = %q, want %q", m["jsonlPath"], "out.jsonl")
	}
	if _, ok := m["stripWhitespace"]; ok {
		t.Error("stripWhitespace should only be set when the flag was used")
	}
}

func TestBuildOverrides_Empty(t *testing.T) {
	resetFlags()
	defer resetFlags()

	m := buildOverrides(compareCmd)
	if len(m) != 0 {
		t.Errorf("overrides = %v, want none with default flags", m)
	}
}

// --- firstNonEmpty tests ---

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"first wins", []string{"a", "b"}, "a"},
		{"skips empty", []string{"", "b"}, "b"},
		{"all empty", []string{"", ""}, ""},
		{"no values", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstNonEmpty(tt.values...); got != tt.want {
				t.Errorf("firstNonEmpty(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}
