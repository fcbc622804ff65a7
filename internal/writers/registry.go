// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"ghostradar/internal/scanner"
)

// Sink is a scanner.Sink that can close its stream with a summary.
type Sink interface {
	scanner.Sink
	Finish(scanner.Stats) error
}

// Options shared by every writer.
type Options struct {
	Color   string // auto | always | never (text only)
	Newline bool   // newline after each matched word (text only)
	RunID   string
}

// Factory builds a Sink over w.
type Factory func(w io.Writer, o Options) (Sink, error)

// Writer registry (format → factory). Register in init() blocks from the
// writer files.
var factories = map[string]Factory{}

// Register is idempotent last-wins.
func Register(format string, fn Factory) { factories[format] = fn }

// Formats lists registered formats in sorted order.
func Formats() []string {
	out := make([]string, 0, len(factories))
	for k := range factories {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// New dispatches to the registered factory.
func New(format string, w io.Writer, o Options) (Sink, error) {
	fn, ok := factories[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, o)
}
