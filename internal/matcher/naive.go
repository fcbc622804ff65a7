package matcher

import "strings"

// Naive rescans every word against the whole text on each Push.
type Naive struct {
	words []string
	text  []byte
	hits  []Hit
}

func NewNaive(words []string) *Naive {
	n := &Naive{}
	for _, w := range words {
		if w != "" && lettersOnly(w) {
			n.words = append(n.words, w)
		}
	}
	return n
}

func (n *Naive) Push(b byte) []Hit {
	n.text = append(n.text, b)
	s := string(n.text)
	n.hits = n.hits[:0]
	for _, w := range n.words {
		if i := strings.Index(s, w); i >= 0 {
			n.hits = append(n.hits, Hit{Word: w, Start: i})
		}
	}
	return n.hits
}

func (n *Naive) Reset() {
	n.text = n.text[:0]
	n.hits = n.hits[:0]
}
