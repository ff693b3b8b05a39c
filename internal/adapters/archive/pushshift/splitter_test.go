package pushshift

import (
	"bytes"
	"testing"
)

func TestLineSplitter_Feed(t *testing.T) {
	tests := []struct {
		name    string
		chunks  []string
		want    []string
		pending string
	}{
		{
			name:   "single chunk single line",
			chunks: []string{"one\n"},
			want:   []string{"one"},
		},
		{
			name:   "single chunk many lines",
			chunks: []string{"a\nb\nc\n"},
			want:   []string{"a", "b", "c"},
		},
		{
			name:    "line split across chunks",
			chunks:  []string{"he", "llo\nwor", "ld"},
			want:    []string{"hello"},
			pending: "world",
		},
		{
			name:    "terminator arrives alone",
			chunks:  []string{"abc", "\n"},
			want:    []string{"abc"},
			pending: "",
		},
		{
			name:   "empty lines preserved",
			chunks: []string{"\n\nx\n"},
			want:   []string{"", "", "x"},
		},
		{
			name:    "no terminator at all",
			chunks:  []string{"partial"},
			want:    nil,
			pending: "partial",
		},
		{
			name:   "byte at a time",
			chunks: []string{"a", "\n", "b", "c", "\n"},
			want:   []string{"a", "bc"},
		},
		{
			name:   "empty chunks ignored",
			chunks: []string{"", "x\n", ""},
			want:   []string{"x"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var s LineSplitter
			var got []string
			for _, c := range tc.chunks {
				for _, line := range s.Feed([]byte(c)) {
					got = append(got, string(line))
				}
			}
			if len(got) != len(tc.want) {
				t.Fatalf("lines = %q, want %q", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("line %d = %q, want %q", i, got[i], tc.want[i])
				}
			}
			if string(s.Pending()) != tc.pending {
				t.Fatalf("Pending() = %q, want %q", s.Pending(), tc.pending)
			}
		})
	}
}

// Arbitrary chunk boundaries must not change the recovered lines.
func TestLineSplitter_BoundaryInvariant(t *testing.T) {
	content := []byte("first line\nsecond\n\nfourth with spaces  \ntrailing partial")
	want := []string{"first line", "second", "", "fourth with spaces  "}

	for size := 1; size <= len(content); size++ {
		var s LineSplitter
		var got []string
		for off := 0; off < len(content); off += size {
			end := off + size
			if end > len(content) {
				end = len(content)
			}
			for _, line := range s.Feed(content[off:end]) {
				got = append(got, string(line))
			}
		}
		if len(got) != len(want) {
			t.Fatalf("chunk size %d: lines = %q, want %q", size, got, want)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("chunk size %d: line %d = %q, want %q", size, i, got[i], want[i])
			}
		}
		if !bytes.Equal(s.Pending(), []byte("trailing partial")) {
			t.Fatalf("chunk size %d: pending = %q", size, s.Pending())
		}
	}
}

// Returned lines must stay valid after further Feed calls.
func TestLineSplitter_ReturnedLinesAreStable(t *testing.T) {
	var s LineSplitter
	first := s.Feed([]byte("keep me\nleft"))
	s.Feed([]byte("over\nmore data that could clobber a shared buffer\n"))
	if string(first[0]) != "keep me" {
		t.Fatalf("earlier line mutated: %q", first[0])
	}
}
