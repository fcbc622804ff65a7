package matcher

/*
Aho–Corasick word matcher, fed one letter at a time.

- NewAutomaton(words) builds a trie over a-z with failure links.
- Push(c) advances the state and records every word whose occurrence ends at c.
- Reset() returns to the root and forgets recorded hits.
*/

const alphabetSize = 26

// node is one state in the automaton.
type node struct {
	next [alphabetSize]int32 // 0 => absent (root is state 0)
	fail int32
	out  []int32 // word indexes that end at this state
}

// Automaton is the incremental matcher. Build once, reuse across resets.
type Automaton struct {
	nodes []node
	words []string

	state int32
	pos   int // letters pushed since Reset
	seen  map[int32]struct{}
	hits  []Hit
}

// NewAutomaton constructs the automaton for words. Words containing anything
// outside a-z are ignored.
func NewAutomaton(words []string) *Automaton {
	a := &Automaton{nodes: make([]node, 1), seen: make(map[int32]struct{})}

	// 1) Build trie edges
	for _, w := range words {
		if !lettersOnly(w) || w == "" {
			continue
		}
		idx := int32(len(a.words))
		a.words = append(a.words, w)
		cur := int32(0)
		for i := 0; i < len(w); i++ {
			c := w[i] - 'a'
			if a.nodes[cur].next[c] == 0 {
				a.nodes = append(a.nodes, node{})
				a.nodes[cur].next[c] = int32(len(a.nodes) - 1)
			}
			cur = a.nodes[cur].next[c]
		}
		a.nodes[cur].out = append(a.nodes[cur].out, idx)
	}

	// 2) BFS to set fail links and propagate outputs
	queue := make([]int32, 0, len(a.nodes))
	for c := 0; c < alphabetSize; c++ {
		if child := a.nodes[0].next[c]; child != 0 {
			a.nodes[child].fail = 0
			queue = append(queue, child)
		}
	}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		for c := 0; c < alphabetSize; c++ {
			s := a.nodes[r].next[c]
			if s == 0 {
				continue
			}
			queue = append(queue, s)
			f := a.nodes[r].fail
			for f > 0 && a.nodes[f].next[c] == 0 {
				f = a.nodes[f].fail
			}
			if a.nodes[f].next[c] != 0 {
				f = a.nodes[f].next[c]
			}
			a.nodes[s].fail = f
			if len(a.nodes[f].out) > 0 {
				a.nodes[s].out = append(a.nodes[s].out, a.nodes[f].out...)
			}
		}
	}
	return a
}

// States returns the number of automaton states, root included.
func (a *Automaton) States() int { return len(a.nodes) }

// Words returns the number of patterns compiled in.
func (a *Automaton) Words() int { return len(a.words) }

// Push feeds one letter. A byte outside a-z cannot be part of any word, so
// it drops the state back to the root.
func (a *Automaton) Push(b byte) []Hit {
	a.pos++
	if b < 'a' || b > 'z' {
		a.state = 0
		return a.hits
	}
	c := b - 'a'
	for a.state > 0 && a.nodes[a.state].next[c] == 0 {
		a.state = a.nodes[a.state].fail
	}
	if next := a.nodes[a.state].next[c]; next != 0 {
		a.state = next
	}
	for _, idx := range a.nodes[a.state].out {
		if _, dup := a.seen[idx]; dup {
			continue
		}
		a.seen[idx] = struct{}{}
		w := a.words[idx]
		a.hits = append(a.hits, Hit{Word: w, Start: a.pos - len(w)})
	}
	return a.hits
}

func (a *Automaton) Reset() {
	a.state = 0
	a.pos = 0
	a.hits = a.hits[:0]
	clear(a.seen)
}
