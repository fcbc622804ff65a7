// internal/lettermap/lettermap.go
package lettermap

import (
	"errors"
	"fmt"
	"sort"
)

// Alphabet is the cycle the map is generated from.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// DefaultSize is the number of slots in the default map.
const DefaultSize = 300

// ErrIndexOutOfRange is matched (errors.Is) by every *IndexError.
var ErrIndexOutOfRange = errors.New("reading maps outside the letter map")

// IndexError reports a reading whose index (reading-1) has no slot.
type IndexError struct {
	Reading int
	Index   int
	Size    int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("reading %d: index %d outside [0,%d]", e.Reading, e.Index, e.Size-1)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }

// Map is the sorted, cyclically generated letter table. Immutable after New.
type Map struct {
	slots []byte
}

// New builds a map of n slots: slot i starts as Alphabet[i%26], then the
// whole sequence is sorted.
func New(n int) (*Map, error) {
	if n < 1 {
		return nil, fmt.Errorf("letter map size must be >= 1, got %d", n)
	}
	slots := make([]byte, n)
	for i := range slots {
		slots[i] = Alphabet[i%len(Alphabet)]
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return &Map{slots: slots}, nil
}

// Len returns the number of slots.
func (m *Map) Len() int { return len(m.slots) }

// Letter maps a reading to its letter. Readings outside [1, Len()] fail
// with an *IndexError; nothing wraps around.
func (m *Map) Letter(reading int) (byte, error) {
	idx := reading - 1
	if idx < 0 || idx >= len(m.slots) {
		return 0, &IndexError{Reading: reading, Index: idx, Size: len(m.slots)}
	}
	return m.slots[idx], nil
}

// Span returns the inclusive range of readings that map to letter.
// ok is false when the letter has no slot.
func (m *Map) Span(letter byte) (lo, hi int, ok bool) {
	i := sort.Search(len(m.slots), func(i int) bool { return m.slots[i] >= letter })
	if i == len(m.slots) || m.slots[i] != letter {
		return 0, 0, false
	}
	j := sort.Search(len(m.slots), func(j int) bool { return m.slots[j] > letter })
	return i + 1, j, true
}

// ReadingsFor returns one reading per letter of word (the lowest reading for
// each letter), so that feeding them in order reproduces word.
func (m *Map) ReadingsFor(word string) ([]int, error) {
	out := make([]int, 0, len(word))
	for i := 0; i < len(word); i++ {
		lo, _, ok := m.Span(word[i])
		if !ok {
			return nil, fmt.Errorf("letter %q of %q has no reading in a %d-slot map", word[i], word, len(m.slots))
		}
		out = append(out, lo)
	}
	return out, nil
}
