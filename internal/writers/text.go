// internal/writers/text.go
package writers

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"ghostradar/internal/scanner"
)

const FormatText = "text"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

func init() {
	Register(FormatText, func(w io.Writer, o Options) (Sink, error) { return NewText(w, o.Color, o.Newline) })
}

// Text prints matched words in green and a red dot for every miss.
type Text struct {
	w       io.Writer
	hit     *color.Color
	miss    *color.Color
	newline bool
	dirty   bool // something written since the last newline
}

func NewText(w io.Writer, mode string, newline bool) (*Text, error) {
	t := &Text{
		w:       w,
		hit:     color.New(color.FgGreen, color.Bold),
		miss:    color.New(color.FgRed),
		newline: newline,
	}
	switch mode {
	case ColorAuto, "":
		// fatih/color decides from the terminal and NO_COLOR
	case ColorAlways:
		t.hit.EnableColor()
		t.miss.EnableColor()
	case ColorNever:
		t.hit.DisableColor()
		t.miss.DisableColor()
	default:
		return nil, fmt.Errorf("invalid color mode %q", mode)
	}
	return t, nil
}

func (t *Text) Emit(ev scanner.Event) error {
	var err error
	if ev.Kind == scanner.Match {
		_, err = t.hit.Fprint(t.w, ev.Word)
		if err == nil && t.newline {
			_, err = io.WriteString(t.w, "\n")
			t.dirty = false
			return err
		}
	} else {
		_, err = t.miss.Fprint(t.w, ".")
	}
	t.dirty = true
	return err
}

// Finish terminates the current line.
func (t *Text) Finish(scanner.Stats) error {
	if !t.dirty {
		return nil
	}
	t.dirty = false
	_, err := io.WriteString(t.w, "\n")
	return err
}
