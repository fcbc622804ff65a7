// internal/dictionary/dictionary.go
package dictionary

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
)

//go:embed lists/*.txt
var lists embed.FS

// Built-in list names, in menu order.
const (
	Default    = "default"
	Paranormal = "paranormal"
	Short      = "short"
	Fallback   = "fallback"
)

// ErrUnknownList is returned by Builtin for a name with no embedded list.
var ErrUnknownList = errors.New("unknown word list")

// Provider is the read-only view the scanner needs.
type Provider interface {
	Words() []string
}

// Dictionary is an immutable, normalised word set.
type Dictionary struct {
	name    string
	words   []string // sorted, unique
	set     map[string]struct{}
	dropped int
}

// New normalises words: trims, lowercases, drops duplicates and anything
// outside a-z.
func New(name string, words []string) *Dictionary {
	d := &Dictionary{name: name, set: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if !lettersOnly(w) {
			d.dropped++
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.words = append(d.words, w)
	}
	sort.Strings(d.words)
	return d
}

func lettersOnly(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

func (d *Dictionary) Name() string { return d.name }

func (d *Dictionary) Len() int { return len(d.words) }

// Dropped counts entries rejected for containing characters outside a-z.
func (d *Dictionary) Dropped() int { return d.dropped }

// Words returns the words in lexicographic order. The slice is a copy.
func (d *Dictionary) Words() []string { return append([]string(nil), d.words...) }

func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[w]
	return ok
}

// Eligible returns the words with minLen < len(w) <= maxLen. maxLen <= 0
// means no upper bound.
func Eligible(p Provider, minLen, maxLen int) []string {
	var out []string
	for _, w := range p.Words() {
		if len(w) <= minLen {
			continue
		}
		if maxLen > 0 && len(w) > maxLen {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Read parses one word per line; blank lines and '#' comments are skipped.
func Read(r io.Reader, name string) (*Dictionary, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return New(name, words), nil
}

// Load reads a word list file.
func Load(path string) (*Dictionary, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return Read(fh, path)
}

// Builtin returns an embedded list by name.
func Builtin(name string) (*Dictionary, error) {
	fh, err := lists.Open("lists/" + name + ".txt")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownList, name, strings.Join(BuiltinNames(), ", "))
		}
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return Read(fh, name)
}

// BuiltinNames lists the selectable embedded lists.
func BuiltinNames() []string { return []string{Default, Paranormal, Short} }

// IsBuiltin reports whether name selects an embedded list.
func IsBuiltin(name string) bool {
	for _, n := range append(BuiltinNames(), Fallback) {
		if n == name {
			return true
		}
	}
	return false
}

// Open resolves ref as a built-in list name or a file path. When the file
// cannot be read and strict is false, the fallback list is returned together
// with the read error so the caller can warn.
func Open(ref string, strict bool) (*Dictionary, error) {
	if ref == "" {
		ref = Default
	}
	if IsBuiltin(ref) {
		return Builtin(ref)
	}
	d, err := Load(ref)
	if err == nil {
		return d, nil
	}
	if strict {
		return nil, err
	}
	fb, ferr := Builtin(Fallback)
	if ferr != nil {
		return nil, ferr
	}
	return fb, &FallbackError{Path: ref, Err: err}
}

// FallbackError reports that Open substituted the fallback list.
type FallbackError struct {
	Path string
	Err  error
}

func (e *FallbackError) Error() string {
	return fmt.Sprintf("word list %s unreadable (%v); using fallback list", e.Path, e.Err)
}

func (e *FallbackError) Unwrap() error { return e.Err }

// Merge unions several dictionaries under one name.
func Merge(name string, ds ...*Dictionary) *Dictionary {
	var words []string
	dropped := 0
	for _, d := range ds {
		words = append(words, d.words...)
		dropped += d.dropped
	}
	m := New(name, words)
	m.dropped = dropped
	return m
}
