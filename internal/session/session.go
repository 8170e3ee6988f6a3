// Package session implements the practice session state machine: clock,
// typed buffer, segment commits, and totals.
package session

import (
	"math"
	"time"

	"github.com/verte-zerg/keydrill/internal/model"
	"github.com/verte-zerg/keydrill/internal/scoring"
)

// Bonus seconds outside this range are clamped, not rejected.
const (
	minBonusSec = 0
	maxBonusSec = 60
)

// Limits outside this range are clamped when changed mid-session.
const (
	MinLimit = 15 * time.Second
	MaxLimit = 30 * time.Minute
)

// Provider supplies target text segments.
type Provider interface {
	// Current returns the segment the user is typing against.
	Current() string
	// Advance moves to the next segment, reporting false when none remain.
	Advance() bool
	// Reset rewinds the provider to its first segment.
	Reset()
}

// Session holds all mutable state for one practice run. Transitions take
// the current time explicitly so they can be driven by the UI tick or by
// tests without a clock.
type Session struct {
	mode  model.Mode
	limit time.Duration

	started  bool
	finished bool

	startedAt time.Time
	endedAt   time.Time
	deadline  time.Time

	provider Provider
	target   []rune
	buffer   []rune

	results []model.SegmentResult
	totals  model.SessionTotals
}

// New creates an idle session for the given mode, time limit, and provider.
func New(mode model.Mode, limit time.Duration, provider Provider) *Session {
	s := &Session{mode: mode, limit: limit, provider: provider}
	s.target = []rune(provider.Current())
	return s
}

// Started reports whether the session is running.
func (s *Session) Started() bool { return s.started }

// Finished reports whether the session has ended.
func (s *Session) Finished() bool { return s.finished }

// Active reports whether the session is running and not yet ended.
func (s *Session) Active() bool { return s.started && !s.finished }

// Mode returns the session mode.
func (s *Session) Mode() model.Mode { return s.mode }

// Limit returns the configured time limit.
func (s *Session) Limit() time.Duration { return s.limit }

// Buffer returns the typed-so-far runes for the current segment.
func (s *Session) Buffer() []rune { return s.buffer }

// Target returns the current segment's target runes.
func (s *Session) Target() []rune { return s.target }

// Results returns the committed segment results in commit order.
func (s *Session) Results() []model.SegmentResult { return s.results }

// Totals returns the running totals across committed segments.
func (s *Session) Totals() model.SessionTotals { return s.totals }

// Start marks the session active and fixes the deadline at now + limit.
// Starting an already started session is a no-op.
func (s *Session) Start(now time.Time) {
	if s.started {
		return
	}
	s.started = true
	s.finished = false
	s.startedAt = now
	s.deadline = now.Add(s.limit)
}

// Elapsed returns how long the session has been running. After the session
// ends the value is frozen at the ending time.
func (s *Session) Elapsed(now time.Time) time.Duration {
	if !s.started && !s.finished {
		return 0
	}
	if s.finished {
		return s.endedAt.Sub(s.startedAt)
	}
	return now.Sub(s.startedAt)
}

// Remaining returns the time left before the deadline, never negative.
func (s *Session) Remaining(now time.Time) time.Duration {
	if !s.Active() {
		return 0
	}
	rem := s.deadline.Sub(now)
	if rem < 0 {
		return 0
	}
	return rem
}

// Tick ends the session when the deadline has passed. Ticks observed after
// the session ended are no-ops.
func (s *Session) Tick(now time.Time) {
	if !s.Active() {
		return
	}
	if !now.Before(s.deadline) {
		s.end(now)
	}
}

// End stops the session immediately. Ending is idempotent.
func (s *Session) End(now time.Time) {
	if !s.started || s.finished {
		return
	}
	s.end(now)
}

func (s *Session) end(now time.Time) {
	s.finished = true
	s.started = false
	s.endedAt = now
}

// ChangeLimit applies a new time limit, preserving elapsed time. If the
// time already spent exceeds the new limit the session ends immediately.
// On an idle session only the limit is updated.
func (s *Session) ChangeLimit(now time.Time, limit time.Duration) {
	if limit < MinLimit {
		limit = MinLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	old := s.limit
	s.limit = limit
	if !s.Active() {
		return
	}
	spent := now.Sub(s.startedAt)
	if spent > old {
		spent = old
	}
	rem := limit - spent
	if rem <= 0 {
		s.end(now)
		return
	}
	s.deadline = now.Add(rem)
}

// AddBonus extends the deadline by the given number of seconds, clamped to
// the valid range. Bonuses apply only while the session is active.
func (s *Session) AddBonus(seconds int) {
	if !s.Active() {
		return
	}
	if seconds < minBonusSec {
		seconds = minBonusSec
	}
	if seconds > maxBonusSec {
		seconds = maxBonusSec
	}
	s.deadline = s.deadline.Add(time.Duration(seconds) * time.Second)
}

// Type appends a rune to the buffer and reports whether the buffer has
// reached the target length. The caller commits in a separate step so the
// buffer mutation and the commit side effects stay two discrete phases.
func (s *Session) Type(r rune) bool {
	if !s.Active() {
		return false
	}
	s.buffer = append(s.buffer, r)
	return len(s.buffer) >= len(s.target)
}

// Backspace removes the last buffered rune. No-op on an empty buffer.
func (s *Session) Backspace() {
	if !s.Active() || len(s.buffer) == 0 {
		return
	}
	s.buffer = s.buffer[:len(s.buffer)-1]
}

// Commit finalizes the current segment, folds it into the totals, clears
// the buffer, and advances to the next segment. When no segments remain
// the session ends.
func (s *Session) Commit(now time.Time) {
	if !s.Active() {
		return
	}
	result := scoring.Commit(len(s.results), s.buffer, s.target)
	s.results = append(s.results, result)
	s.totals.CharsTyped += result.CharsTyped
	s.totals.CharsCorrect += result.CharsCorrect
	s.totals.WordsTyped += result.WordsTyped
	s.buffer = nil
	if !s.provider.Advance() {
		s.end(now)
		return
	}
	s.target = []rune(s.provider.Current())
}

// WPM returns the rounded words-per-minute rate across committed segments.
func (s *Session) WPM(now time.Time) int {
	return scoring.WPM(s.totals.WordsTyped, s.Elapsed(now))
}

// SegmentAccuracy returns the live accuracy of the current buffer.
func (s *Session) SegmentAccuracy() int {
	return scoring.Accuracy(s.buffer, s.target)
}

// TotalAccuracy returns accuracy across all committed segments, or 100
// before anything has been committed.
func (s *Session) TotalAccuracy() int {
	if s.totals.CharsTyped == 0 {
		return 100
	}
	return int(math.Round(100 * float64(s.totals.CharsCorrect) / float64(s.totals.CharsTyped)))
}

// Reset rewinds the session to idle: buffer, results, and totals cleared,
// provider back at its first segment. The limit and mode are kept.
func (s *Session) Reset() {
	s.started = false
	s.finished = false
	s.startedAt = time.Time{}
	s.endedAt = time.Time{}
	s.deadline = time.Time{}
	s.buffer = nil
	s.results = nil
	s.totals = model.SessionTotals{}
	s.provider.Reset()
	s.target = []rune(s.provider.Current())
}

// Replace swaps in a new provider and mode and resets the session. Used
// when a text file is loaded mid-run.
func (s *Session) Replace(mode model.Mode, provider Provider) {
	s.mode = mode
	s.provider = provider
	s.Reset()
}

// Summary snapshots the session for end-of-run reporting.
func (s *Session) Summary(now time.Time) model.Summary {
	segments := make([]model.SegmentResult, len(s.results))
	copy(segments, s.results)
	return model.Summary{
		Mode:     s.mode,
		Elapsed:  s.Elapsed(now),
		Totals:   s.totals,
		Segments: segments,
	}
}
