// Package model defines shared data structures.
package model

import "time"

// Mode selects where target text comes from.
type Mode string

// Practice modes.
const (
	ModeText      Mode = "text"
	ModeChallenge Mode = "challenge"
)

// Config defines practice settings.
type Config struct {
	Mode      Mode
	TimeLimit time.Duration
	BonusSec  int
	Seed      int64
	Words     int
	TextPath  string
	VocabPath string
}

// SegmentResult captures one committed segment. Results are append-only
// and never mutated after commit.
type SegmentResult struct {
	Index        int
	CharsTyped   int
	CharsCorrect int
	Accuracy     int
	WordsTyped   int
}

// SessionTotals accumulates counts across committed segments. Totals only
// grow within a session and reset when a new session starts.
type SessionTotals struct {
	CharsTyped   int
	CharsCorrect int
	WordsTyped   int
}

// Summary describes a finished run for end-of-run reporting.
type Summary struct {
	Mode     Mode
	Elapsed  time.Duration
	Totals   SessionTotals
	Segments []SegmentResult
}
