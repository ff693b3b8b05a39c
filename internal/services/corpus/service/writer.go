package service

import (
	"bufio"
	"encoding/json"
	"os"

	"cragsift/internal/core/sift"
)

// JSONLWriter appends one JSON object per line to a UTF-8 text file.
// Writes are buffered; Close flushes before releasing the file.
type JSONLWriter struct {
	f   *os.File
	bw  *bufio.Writer
	enc *json.Encoder
}

// NewJSONLWriter creates (or truncates) the output file at path
func NewJSONLWriter(path string) (*JSONLWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	bw := bufio.NewWriter(f)
	enc := json.NewEncoder(bw)
	// bodies are prose; keep &, < and > readable
	enc.SetEscapeHTML(false)
	return &JSONLWriter{f: f, bw: bw, enc: enc}, nil
}

// Write appends rec as one JSON line
func (w *JSONLWriter) Write(rec sift.OutputRecord) error {
	return w.enc.Encode(rec)
}

// Close flushes buffered records and closes the file, first error wins
func (w *JSONLWriter) Close() error {
	ferr := w.bw.Flush()
	if cerr := w.f.Close(); ferr == nil {
		ferr = cerr
	}
	return ferr
}
