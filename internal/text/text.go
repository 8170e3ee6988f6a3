// Package text supplies fixed-text targets and plain-text file parsing.
package text

import (
	"os"
	"regexp"
	"strings"
)

var defaultParagraphs = []string{
	"The quick brown fox jumps over the lazy dog while the rain settles on the quiet hills beyond the river.",
	"Practice does not make perfect, but it makes permanent, so every careful keystroke today shapes the habits of tomorrow.",
	"A good typist reads a few words ahead, letting the hands follow the eyes instead of chasing one letter at a time.",
	"Speed comes from rhythm rather than rush; an even pace with few mistakes beats a fast burst followed by corrections.",
}

var blankLines = regexp.MustCompile(`\n\s*\n`)

// Paragraphs is an ordered fixed-text segment provider.
type Paragraphs struct {
	list []string
	idx  int
}

// Default returns a provider over the built-in paragraphs.
func Default() *Paragraphs {
	return New(defaultParagraphs)
}

// New returns a provider over the given paragraph list.
func New(list []string) *Paragraphs {
	return &Paragraphs{list: list}
}

// Current returns the paragraph at the current index.
func (p *Paragraphs) Current() string {
	if p.idx >= len(p.list) {
		return ""
	}
	return p.list[p.idx]
}

// Advance moves to the next paragraph, reporting false when exhausted.
func (p *Paragraphs) Advance() bool {
	p.idx++
	return p.idx < len(p.list)
}

// Reset rewinds to the first paragraph.
func (p *Paragraphs) Reset() {
	p.idx = 0
}

// Len returns the number of paragraphs.
func (p *Paragraphs) Len() int { return len(p.list) }

// Index returns the current paragraph index.
func (p *Paragraphs) Index() int { return p.idx }

// ParseParagraphs splits plain text into trimmed paragraphs. Line endings
// are normalized to LF, paragraphs are separated by one or more blank
// lines, and internal whitespace runs collapse to single spaces. Empty
// results are discarded; fully empty input yields nil.
func ParseParagraphs(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	var out []string
	for _, chunk := range blankLines.Split(s, -1) {
		para := strings.Join(strings.Fields(chunk), " ")
		if para == "" {
			continue
		}
		out = append(out, para)
	}
	return out
}

// LoadFile reads a plain-text file and parses it into paragraphs. An
// unreadable file is an error; a readable but empty file returns nil so
// the caller can keep its previous paragraph set.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseParagraphs(string(data)), nil
}
