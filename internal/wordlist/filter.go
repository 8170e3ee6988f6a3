// Package wordlist provides word list filtering helpers.
package wordlist

// FilterFunc reports whether a word should be kept.
type FilterFunc func(string) bool

// Filter returns the words for which keep reports true.
func Filter(words []string, keep FilterFunc) []string {
	out := make([]string, 0, len(words))
	for _, word := range words {
		if keep(word) {
			out = append(out, word)
		}
	}
	return out
}

// Typable keeps words made of printable non-space ASCII, the characters
// the input capture accepts as single keystrokes.
func Typable(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch <= ' ' || ch > '~' {
			return false
		}
	}
	return true
}
