package stats

import (
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/keydrill/internal/model"
)

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline for no values, got %q", got)
	}
	flat := Sparkline([]float64{5, 5, 5})
	if len(flat) != 3 {
		t.Fatalf("expected one char per value, got %q", flat)
	}
	ramp := Sparkline([]float64{0, 50, 100})
	if len(ramp) != 3 {
		t.Fatalf("expected one char per value, got %q", ramp)
	}
	if ramp[0] != ' ' || ramp[2] != '@' {
		t.Fatalf("expected min/max glyphs at the extremes, got %q", ramp)
	}
}

func TestFormatTableAlignment(t *testing.T) {
	lines := formatTable(
		[]string{"Name", "Count"},
		[][]string{{"abc", "1"}, {"d", "100"}},
		map[int]bool{1: true},
	)
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[1] != "abc      1" {
		t.Fatalf("unexpected row formatting: %q", lines[1])
	}
	if lines[2] != "d      100" {
		t.Fatalf("unexpected right alignment: %q", lines[2])
	}
}

func TestRenderSummary(t *testing.T) {
	sum := model.Summary{
		Mode:    model.ModeText,
		Elapsed: 30 * time.Second,
		Totals:  model.SessionTotals{CharsTyped: 100, CharsCorrect: 90, WordsTyped: 20},
		Segments: []model.SegmentResult{
			{Index: 0, CharsTyped: 50, CharsCorrect: 45, Accuracy: 90, WordsTyped: 10},
			{Index: 1, CharsTyped: 50, CharsCorrect: 45, Accuracy: 90, WordsTyped: 10},
		},
	}
	var b strings.Builder
	if err := RenderSummary(&b, sum, 80); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out := b.String()
	for _, want := range []string{"Mode: text", "Segments: 2", "WPM: 40", "Accuracy: 90.0%", "Segment", "Accuracy per segment"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var b strings.Builder
	if err := RenderSummary(&b, model.Summary{}, 80); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if !strings.Contains(b.String(), "No segments committed.") {
		t.Fatalf("expected empty-run notice, got %q", b.String())
	}
}
