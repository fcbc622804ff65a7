// Package matcher finds dictionary words inside a growing run of letters.
//
// Two implementations share one contract: Push appends a letter and returns
// every word contained in the text pushed since the last Reset, each with the
// start of its earliest occurrence. The returned slice is owned by the
// matcher and valid until the next Push or Reset.
//
//   - Automaton: Aho–Corasick, cost per Push independent of dictionary size.
//   - Naive:     containment test of every word on every Push.
package matcher

import "fmt"

// Kinds selectable from the command line.
const (
	KindAutomaton = "automaton"
	KindNaive     = "naive"
)

// Hit is one word found in the current text.
type Hit struct {
	Word  string
	Start int // 0-based offset into the text since Reset
}

// Matcher is implemented by Automaton and Naive.
type Matcher interface {
	Push(b byte) []Hit
	Reset()
}

// New builds a matcher of the given kind over words.
func New(kind string, words []string) (Matcher, error) {
	switch kind {
	case KindAutomaton, "":
		return NewAutomaton(words), nil
	case KindNaive:
		return NewNaive(words), nil
	default:
		return nil, fmt.Errorf("unknown matcher %q (want %s or %s)", kind, KindAutomaton, KindNaive)
	}
}

// Best picks the canonical hit: longest word, then earliest start, then
// lexicographic order.
func Best(hits []Hit) (Hit, bool) {
	if len(hits) == 0 {
		return Hit{}, false
	}
	best := hits[0]
	for _, h := range hits[1:] {
		if better(h, best) {
			best = h
		}
	}
	return best, true
}

func better(a, b Hit) bool {
	if len(a.Word) != len(b.Word) {
		return len(a.Word) > len(b.Word)
	}
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	return a.Word < b.Word
}

func lettersOnly(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
