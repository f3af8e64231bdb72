package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

type testRec struct {
	ID   string `json:"id"`
	Note string `json:"note"`
}

func TestWriter_Append(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.Append(testRec{ID: "a", Note: "first"}); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if err := w.Append(testRec{ID: "b", Note: "second"}); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
	for i, line := range lines {
		var rec testRec
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Errorf("line %d is not standalone JSON: %v", i, err)
		}
	}
}

func TestWriter_NonASCIIPreserved(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Append(testRec{ID: "x", Note: "héllo wörld — ünïcode"}); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if !strings.Contains(buf.String(), "héllo wörld — ünïcode") {
		t.Errorf("non-ASCII was escaped: %q", buf.String())
	}
}

func TestWriter_NoEmbeddedNewlines(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Append(testRec{ID: "x", Note: "line one\nline two"}); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	s := buf.String()
	if strings.Count(s, "\n") != 1 || !strings.HasSuffix(s, "\n") {
		t.Errorf("record must serialize to exactly one line, got %q", s)
	}
}

func TestWriter_ConcurrentAppends(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	var wg sync.WaitGroup
	const n = 25
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := w.Append(testRec{ID: "id", Note: strings.Repeat("x", 100+i)}); err != nil {
				t.Errorf("Append error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	sc := bufio.NewScanner(&buf)
	count := 0
	for sc.Scan() {
		var rec testRec
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			t.Errorf("interleaved line: %v", err)
		}
		count++
	}
	if count != n {
		t.Errorf("line count = %d, want %d", count, n)
	}
}

func TestAppendFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "changes.jsonl")

	if err := AppendFile(path, testRec{ID: "1"}, testRec{ID: "2"}); err != nil {
		t.Fatalf("AppendFile error: %v", err)
	}
	if err := AppendFile(path, testRec{ID: "3"}); err != nil {
		t.Fatalf("AppendFile error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	var last testRec
	if err := json.Unmarshal([]byte(lines[2]), &last); err != nil {
		t.Fatalf("last line invalid: %v", err)
	}
	if last.ID != "3" {
		t.Errorf("last record id = %q, want %q", last.ID, "3")
	}
}

func TestAppendFile_BadPath(t *testing.T) {
	err := AppendFile(filepath.Join(t.TempDir(), "missing", "dir", "out.jsonl"), testRec{ID: "x"})
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
