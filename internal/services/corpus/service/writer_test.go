package service

import (
	"os"
	"path/filepath"
	"testing"

	"cragsift/internal/core/sift"
)

func TestJSONLWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	w, err := NewJSONLWriter(path)
	if err != nil {
		t.Fatalf("NewJSONLWriter: %v", err)
	}

	recs := []sift.OutputRecord{
		{Body: "plain text"},
		{Body: `with "quotes" and a \ backslash`},
		{Body: "chalk & tape > skin"},
		{Body: "unicode: crimpé"},
	}
	for _, r := range recs {
		if err := w.Write(r); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := `{"body":"plain text"}
{"body":"with \"quotes\" and a \\ backslash"}
{"body":"chalk & tape > skin"}
{"body":"unicode: crimpé"}
`
	if string(b) != want {
		t.Fatalf("output:\n%q\nwant:\n%q", b, want)
	}
}

func TestJSONLWriter_CreateFailure(t *testing.T) {
	if _, err := NewJSONLWriter(filepath.Join(t.TempDir(), "missing-dir", "out.jsonl")); err == nil {
		t.Fatalf("expected create error for missing directory")
	}
}
