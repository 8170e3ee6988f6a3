// Package generator builds deterministic challenge text.
package generator

import "strings"

// Classic 32-bit linear congruential parameters. The generator must stay
// stable across releases: the same seed has to reproduce the same text.
const (
	lcgMul = 1664525
	lcgInc = 1013904223
)

// Punctuation probabilities per drawn word, mutually exclusive.
const (
	periodPct = 0.08
	commaPct  = 0.05
)

// LCG is a seeded linear congruential generator.
type LCG struct {
	state uint32
}

// NewLCG returns a generator seeded with the given value.
func NewLCG(seed int64) *LCG {
	return &LCG{state: uint32(seed)}
}

func (g *LCG) next() uint32 {
	g.state = g.state*lcgMul + lcgInc
	return g.state
}

// Intn returns a value in [0, n).
func (g *LCG) Intn(n int) int {
	return int(g.next() % uint32(n))
}

// Float64 returns a value in [0, 1).
func (g *LCG) Float64() float64 {
	return float64(g.next()) / (1 << 32)
}

// Challenge draws word-stream segments from a seeded generator. A fresh
// Challenge with the same seed, count, and vocabulary reproduces the same
// stream of segments.
type Challenge struct {
	seed  int64
	count int
	words []string
	rnd   *LCG
	cur   string
}

// NewChallenge creates a challenge provider drawing count words per
// segment from the vocabulary.
func NewChallenge(seed int64, count int, words []string) *Challenge {
	c := &Challenge{seed: seed, count: count, words: words}
	c.Reset()
	return c
}

// Current returns the active segment text.
func (c *Challenge) Current() string { return c.cur }

// Advance generates the next segment from the ongoing stream. The stream
// never runs out.
func (c *Challenge) Advance() bool {
	c.cur = c.generate()
	return true
}

// Reset re-seeds the generator and regenerates the first segment.
func (c *Challenge) Reset() {
	c.rnd = NewLCG(c.seed)
	c.cur = c.generate()
}

func (c *Challenge) generate() string {
	out := make([]string, 0, c.count)
	for i := 0; i < c.count; i++ {
		word := c.words[c.rnd.Intn(len(c.words))]
		switch u := c.rnd.Float64(); {
		case u < periodPct:
			word += "."
		case u < periodPct+commaPct:
			word += ","
		}
		out = append(out, word)
	}
	return strings.Join(out, " ")
}
