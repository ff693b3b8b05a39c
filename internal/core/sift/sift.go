// Package sift decides which dump records make it into the corpus and what
// their emitted shape is
package sift

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// Rules configures the record filter. Zero values are legal but useless;
// DefaultRules carries the compiled-in corpus settings.
type Rules struct {
	Subreddit    string // exact match, case sensitive
	MinScore     int64  // records must score strictly above this
	MinBodyRunes int    // trimmed body must reach this many code points
}

// DefaultRules returns the compiled-in corpus rules
func DefaultRules() Rules {
	return Rules{
		Subreddit:    "climbharder",
		MinScore:     20,
		MinBodyRunes: 120,
	}
}

// SkipReason says why a line produced no output record
type SkipReason int

const (
	// SkipNone marks a kept line
	SkipNone SkipReason = iota
	// SkipBlank is an empty or all-whitespace line
	SkipBlank
	// SkipBadJSON is a line that did not decode as a post object
	SkipBadJSON
	// SkipSubreddit is a post from a different subreddit
	SkipSubreddit
	// SkipScore is a post at or below the score threshold
	SkipScore
	// SkipShortBody is a post whose trimmed body is too short
	SkipShortBody
)

// String names the reason for logs and stats
func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "kept"
	case SkipBlank:
		return "blank"
	case SkipBadJSON:
		return "bad_json"
	case SkipSubreddit:
		return "wrong_subreddit"
	case SkipScore:
		return "low_score"
	case SkipShortBody:
		return "short_body"
	default:
		return "unknown"
	}
}

// Post is the slice of a Pushshift record the filter reads. Every field is
// optional in the dumps; absence decodes to the zero value. Title is a
// pointer because its presence, not its value, marks the submission variant.
type Post struct {
	Subreddit string  `json:"subreddit"`
	Score     int64   `json:"score"`
	Body      string  `json:"body"`
	Title     *string `json:"title"`
	Selftext  string  `json:"selftext"`
}

// OutputRecord is one emitted corpus line
type OutputRecord struct {
	Body string `json:"body"`
}

// Outcome is the result of evaluating one raw line: either a record to emit
// (Skip == SkipNone) or the reason it was dropped
type Outcome struct {
	Skip   SkipReason
	Record OutputRecord
}

// Kept reports whether the line produced a record
func (o Outcome) Kept() bool { return o.Skip == SkipNone }

// Evaluate applies the rules to one raw line, short-circuiting on the first
// failing gate: blank, JSON decode, subreddit, score, body length, then
// variant-dependent body assembly.
//
// The length gate reads the comment-style body field even for submissions,
// whose emitted text is title + " " + selftext. That matches how the
// published corpus cuts were produced; keep it.
func (r Rules) Evaluate(line []byte) Outcome {
	if len(bytes.TrimSpace(line)) == 0 {
		return Outcome{Skip: SkipBlank}
	}

	var p Post
	if err := json.Unmarshal(line, &p); err != nil {
		return Outcome{Skip: SkipBadJSON}
	}

	if p.Subreddit != r.Subreddit {
		return Outcome{Skip: SkipSubreddit}
	}
	if p.Score <= r.MinScore {
		return Outcome{Skip: SkipScore}
	}
	if utf8.RuneCountInString(strings.TrimSpace(p.Body)) < r.MinBodyRunes {
		return Outcome{Skip: SkipShortBody}
	}

	if p.Title != nil {
		// submission variant
		body := strings.TrimSpace(*p.Title) + " " + strings.TrimSpace(p.Selftext)
		return Outcome{Record: OutputRecord{Body: body}}
	}
	// comment variant
	return Outcome{Record: OutputRecord{Body: strings.TrimSpace(p.Body)}}
}
