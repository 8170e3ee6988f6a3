// Package stats renders the end-of-run report.
package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/keydrill/internal/model"
	"github.com/verte-zerg/keydrill/internal/scoring"
)

const (
	sparkChars          = " .:-=+*#%@"
	terminalWidthBackup = 80
)

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// TerminalWidth returns the current terminal width or a backup value.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

// RenderSummary prints the end-of-run report: totals, per-segment table,
// and an accuracy sparkline scaled to the given width (0 uses the
// terminal width).
func RenderSummary(w io.Writer, sum model.Summary, width int) error {
	if len(sum.Segments) == 0 {
		_, err := fmt.Fprintln(w, "No segments committed.")
		return err
	}
	if width <= 0 {
		width = TerminalWidth()
	}

	wpm := scoring.WPM(sum.Totals.WordsTyped, sum.Elapsed)
	accuracy := 100.0
	if sum.Totals.CharsTyped > 0 {
		accuracy = 100 * float64(sum.Totals.CharsCorrect) / float64(sum.Totals.CharsTyped)
	}

	lines := []string{
		"Summary",
		fmt.Sprintf("Mode: %s", sum.Mode),
		fmt.Sprintf("Elapsed: %.1fs", sum.Elapsed.Seconds()),
		fmt.Sprintf("Segments: %d", len(sum.Segments)),
		fmt.Sprintf("Words: %d", sum.Totals.WordsTyped),
		fmt.Sprintf("WPM: %d", wpm),
		fmt.Sprintf("Accuracy: %.1f%%", accuracy),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	headers := []string{"Segment", "Chars", "Correct", "Accuracy", "Words"}
	rows := make([][]string, 0, len(sum.Segments))
	for _, seg := range sum.Segments {
		rows = append(rows, []string{
			fmt.Sprintf("%d", seg.Index+1),
			fmt.Sprintf("%d", seg.CharsTyped),
			fmt.Sprintf("%d", seg.CharsCorrect),
			fmt.Sprintf("%d%%", seg.Accuracy),
			fmt.Sprintf("%d", seg.WordsTyped),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if len(sum.Segments) > 1 {
		accs := make([]float64, len(sum.Segments))
		for i, seg := range sum.Segments {
			accs[i] = float64(seg.Accuracy)
		}
		if len(accs) > width {
			accs = accs[len(accs)-width:]
		}
		if _, err := fmt.Fprintf(w, "\nAccuracy per segment: %s\n", Sparkline(accs)); err != nil {
			return err
		}
	}
	return nil
}
