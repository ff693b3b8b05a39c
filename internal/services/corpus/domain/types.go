package domain

import "cragsift/internal/core/sift"

// Stats summarizes one pipeline run
type Stats struct {
	Lines     int   // raw lines consumed from the dump
	Kept      int   // records written to the output file
	BytesRead int64 // decompressed bytes consumed

	// Per-reason skip counters
	Blank          int
	BadJSON        int
	WrongSubreddit int
	LowScore       int
	ShortBody      int
}

// CountSkip bumps the counter for the given reason
func (s *Stats) CountSkip(r sift.SkipReason) {
	switch r {
	case sift.SkipBlank:
		s.Blank++
	case sift.SkipBadJSON:
		s.BadJSON++
	case sift.SkipSubreddit:
		s.WrongSubreddit++
	case sift.SkipScore:
		s.LowScore++
	case sift.SkipShortBody:
		s.ShortBody++
	}
}

// Skipped returns the total number of dropped lines
func (s *Stats) Skipped() int {
	return s.Blank + s.BadJSON + s.WrongSubreddit + s.LowScore + s.ShortBody
}
