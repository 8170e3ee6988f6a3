package session

import (
	"testing"
	"time"

	"github.com/verte-zerg/keydrill/internal/model"
	"github.com/verte-zerg/keydrill/internal/text"
)

var epoch = time.Unix(1_700_000_000, 0)

func newTestSession(limit time.Duration, paragraphs ...string) *Session {
	if len(paragraphs) == 0 {
		paragraphs = []string{"hello world", "second paragraph"}
	}
	return New(model.ModeText, limit, text.New(paragraphs))
}

func TestStartAndTick(t *testing.T) {
	s := newTestSession(time.Minute)
	if s.Started() || s.Finished() {
		t.Fatalf("new session must be idle")
	}

	s.Start(epoch)
	if !s.Active() {
		t.Fatalf("expected active session after start")
	}
	s.Start(epoch.Add(time.Second)) // no-op
	if got := s.Remaining(epoch.Add(10 * time.Second)); got != 50*time.Second {
		t.Fatalf("expected 50s remaining, got %s", got)
	}

	s.Tick(epoch.Add(30 * time.Second))
	if s.Finished() {
		t.Fatalf("session ended before the deadline")
	}
	s.Tick(epoch.Add(time.Minute))
	if !s.Finished() || s.Started() {
		t.Fatalf("expected finished=true started=false at deadline, got finished=%v started=%v", s.Finished(), s.Started())
	}
}

func TestTickAfterEndIsNoop(t *testing.T) {
	s := newTestSession(time.Minute)
	s.Start(epoch)
	s.End(epoch.Add(10 * time.Second))
	if !s.Finished() {
		t.Fatalf("expected finished session")
	}
	elapsed := s.Elapsed(epoch.Add(time.Hour))
	s.Tick(epoch.Add(time.Hour))
	s.End(epoch.Add(time.Hour))
	if got := s.Elapsed(epoch.Add(2 * time.Hour)); got != elapsed {
		t.Fatalf("elapsed changed after end: %s != %s", got, elapsed)
	}
}

func TestChangeLimitPreservesElapsed(t *testing.T) {
	s := newTestSession(time.Minute)
	s.Start(epoch)

	now := epoch.Add(20 * time.Second)
	s.ChangeLimit(now, 90*time.Second)
	if got := s.Remaining(now); got != 70*time.Second {
		t.Fatalf("expected 70s remaining after raise, got %s", got)
	}
}

func TestChangeLimitBelowElapsedEndsImmediately(t *testing.T) {
	s := newTestSession(2 * time.Minute)
	s.Start(epoch)

	now := epoch.Add(40 * time.Second)
	s.ChangeLimit(now, 30*time.Second)
	if !s.Finished() || s.Started() {
		t.Fatalf("expected immediate end, got finished=%v started=%v", s.Finished(), s.Started())
	}
}

func TestChangeLimitClampsRange(t *testing.T) {
	s := newTestSession(time.Minute)
	s.ChangeLimit(epoch, time.Second)
	if s.Limit() != MinLimit {
		t.Fatalf("expected clamp to %s, got %s", MinLimit, s.Limit())
	}
	s.ChangeLimit(epoch, 5*time.Hour)
	if s.Limit() != MaxLimit {
		t.Fatalf("expected clamp to %s, got %s", MaxLimit, s.Limit())
	}
}

func TestAddBonus(t *testing.T) {
	s := newTestSession(time.Minute)
	s.AddBonus(10) // inactive: no-op
	s.Start(epoch)

	s.AddBonus(10)
	if got := s.Remaining(epoch); got != 70*time.Second {
		t.Fatalf("expected 70s remaining after bonus, got %s", got)
	}

	s.AddBonus(1000) // clamped to 60
	if got := s.Remaining(epoch); got != 130*time.Second {
		t.Fatalf("expected clamp to 60s bonus, got %s remaining", got)
	}
	s.AddBonus(-5) // clamped to 0
	if got := s.Remaining(epoch); got != 130*time.Second {
		t.Fatalf("negative bonus must be a no-op, got %s remaining", got)
	}
}

func TestTypeBackspaceAndCommit(t *testing.T) {
	s := newTestSession(time.Minute, "hello world", "next")
	s.Start(epoch)

	for _, r := range "helko" {
		if s.Type(r) {
			t.Fatalf("buffer should not be complete at %q", r)
		}
	}
	s.Backspace()
	s.Backspace()
	if got := string(s.Buffer()); got != "hel" {
		t.Fatalf("expected buffer \"hel\", got %q", got)
	}

	s.Commit(epoch.Add(5 * time.Second))
	results := s.Results()
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].CharsTyped != 3 || results[0].CharsCorrect != 3 || results[0].Accuracy != 100 {
		t.Fatalf("unexpected result: %+v", results[0])
	}
	if string(s.Target()) != "next" {
		t.Fatalf("expected advance to next segment, got %q", string(s.Target()))
	}
	if len(s.Buffer()) != 0 {
		t.Fatalf("expected cleared buffer after commit")
	}
}

func TestCommitFoldsTotals(t *testing.T) {
	s := newTestSession(time.Minute, "hello world", "ab cd")
	s.Start(epoch)

	for _, r := range "hello" {
		s.Type(r)
	}
	s.Commit(epoch)
	for _, r := range "ab cd" {
		s.Type(r)
	}
	s.Commit(epoch)

	totals := s.Totals()
	if totals.CharsTyped != 10 || totals.CharsCorrect != 10 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
	if totals.WordsTyped != 3 {
		t.Fatalf("expected 3 words total, got %d", totals.WordsTyped)
	}
	if !s.Finished() {
		t.Fatalf("expected session end after last segment")
	}
}

func TestAutoCompletePredicate(t *testing.T) {
	s := newTestSession(time.Minute, "ab")
	s.Start(epoch)
	if s.Type('a') {
		t.Fatalf("buffer not yet at target length")
	}
	if !s.Type('x') {
		t.Fatalf("expected completion at target length")
	}
	// The commit is a separate phase; the buffer is still observable.
	if got := string(s.Buffer()); got != "ax" {
		t.Fatalf("expected buffer intact before commit, got %q", got)
	}
}

func TestResetClearsEverything(t *testing.T) {
	s := newTestSession(time.Minute, "hello world", "next")
	s.Start(epoch)
	for _, r := range "hello" {
		s.Type(r)
	}
	s.Commit(epoch)
	s.End(epoch)

	s.Reset()
	if s.Started() || s.Finished() {
		t.Fatalf("expected idle session after reset")
	}
	if len(s.Results()) != 0 || s.Totals() != (model.SessionTotals{}) {
		t.Fatalf("expected cleared results and totals")
	}
	if string(s.Target()) != "hello world" {
		t.Fatalf("expected provider rewound, got %q", string(s.Target()))
	}
}

func TestReplaceSwitchesProvider(t *testing.T) {
	s := newTestSession(time.Minute)
	s.Start(epoch)
	s.Type('h')
	s.Replace(model.ModeText, text.New([]string{"fresh"}))
	if s.Started() || s.Finished() {
		t.Fatalf("expected idle session after replace")
	}
	if string(s.Target()) != "fresh" {
		t.Fatalf("expected new target, got %q", string(s.Target()))
	}
}

func TestTotalAccuracyBeforeCommit(t *testing.T) {
	s := newTestSession(time.Minute)
	if got := s.TotalAccuracy(); got != 100 {
		t.Fatalf("expected 100%% before any commit, got %d", got)
	}
}
