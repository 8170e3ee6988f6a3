// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// cell is one target rune rendered with its style applied.
type cell struct {
	s       string
	width   int
	isSpace bool
}

// buildCells styles every target rune against the typed buffer: typed
// positions are correct or incorrect, the caret position is underlined,
// and untyped runes in the word under the caret get the current-word
// style. A mistyped space renders as a visible dot.
func buildCells(target, input []rune, caret int) []cell {
	words := findWords(target)
	currentWord := wordForCaret(words, caret)

	out := make([]cell, 0, len(target))
	for i, tr := range target {
		displayed := tr
		style := pendingStyle
		if i < len(input) {
			switch {
			case tr == ' ' && input[i] != ' ':
				displayed = '•'
				style = incorrectStyle
			case input[i] == tr:
				style = correctStyle
			default:
				style = incorrectStyle
			}
		} else if tr != ' ' && currentWord != nil && i >= currentWord.start && i < currentWord.end {
			style = currentWordStyle
		}
		if i == caret && i >= len(input) {
			style = style.Underline(true)
		}
		out = append(out, cell{
			s:       style.Render(string(displayed)),
			width:   runewidth.RuneWidth(displayed),
			isSpace: tr == ' ',
		})
	}
	return out
}

type wordRange struct {
	start int
	end   int
}

func findWords(target []rune) []wordRange {
	words := []wordRange{}
	start := -1
	for i, r := range target {
		if r == ' ' {
			if start != -1 {
				words = append(words, wordRange{start: start, end: i})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		words = append(words, wordRange{start: start, end: len(target)})
	}
	return words
}

func wordForCaret(words []wordRange, caret int) *wordRange {
	if len(words) == 0 {
		return nil
	}
	if caret < 0 {
		return &words[0]
	}
	for i, w := range words {
		if caret < w.end {
			return &words[i]
		}
	}
	return &words[len(words)-1]
}

func renderCells(cells []cell) string {
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(c.s)
	}
	return b.String()
}

// wrapCells word-wraps styled cells to the given display width, breaking
// at the last space when possible.
func wrapCells(cells []cell, width int) string {
	if width <= 0 {
		return renderCells(cells)
	}
	var out strings.Builder
	line := make([]cell, 0, len(cells))
	lineWidth := 0
	lastSpace := -1

	for i := 0; i < len(cells); {
		c := cells[i]
		if lineWidth+c.width > width && len(line) > 0 {
			if lastSpace >= 0 {
				out.WriteString(renderCells(line[:lastSpace]))
				out.WriteRune('\n')
				line = append([]cell{}, line[lastSpace+1:]...)
				lineWidth = 0
				lastSpace = -1
				for j, rest := range line {
					lineWidth += rest.width
					if rest.isSpace {
						lastSpace = j
					}
				}
			} else {
				out.WriteString(renderCells(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpace = -1
			}
			continue
		}
		line = append(line, c)
		lineWidth += c.width
		if c.isSpace {
			lastSpace = len(line) - 1
		}
		i++
	}
	out.WriteString(renderCells(line))
	return out.String()
}
