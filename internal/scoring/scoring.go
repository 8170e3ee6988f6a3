// Package scoring computes typing metrics from buffers and elapsed time.
package scoring

import (
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/keydrill/internal/model"
)

// epsilonMinutes floors elapsed time so WPM stays finite before any time
// has elapsed.
const epsilonMinutes = 1.0 / 600.0

// CorrectCount returns the number of positions where the typed rune equals
// the target rune at the same index. Strict positional comparison, no
// alignment.
func CorrectCount(typed, target []rune) int {
	n := 0
	for i, r := range typed {
		if i >= len(target) {
			break
		}
		if r == target[i] {
			n++
		}
	}
	return n
}

// Accuracy returns the percentage of correct runes in the typed buffer,
// rounded to the nearest integer. An empty buffer counts as 100.
func Accuracy(typed, target []rune) int {
	if len(typed) == 0 {
		return 100
	}
	correct := CorrectCount(typed, target)
	return int(math.Round(100 * float64(correct) / float64(len(typed))))
}

// CountWords counts whitespace-separated words, ignoring leading and
// trailing whitespace runs.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// WPM returns rounded words per minute for the given word count and
// elapsed time. Elapsed time is floored to a small positive epsilon.
func WPM(words int, elapsed time.Duration) int {
	minutes := elapsed.Minutes()
	if minutes < epsilonMinutes {
		minutes = epsilonMinutes
	}
	return int(math.Round(float64(words) / minutes))
}

// Commit finalizes a segment result from the typed buffer and its target.
func Commit(index int, typed, target []rune) model.SegmentResult {
	return model.SegmentResult{
		Index:        index,
		CharsTyped:   len(typed),
		CharsCorrect: CorrectCount(typed, target),
		Accuracy:     Accuracy(typed, target),
		WordsTyped:   CountWords(string(typed)),
	}
}
