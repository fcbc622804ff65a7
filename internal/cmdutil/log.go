// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// NewLogger returns a tint handler logger on w. Color follows the writer:
// only terminals get ANSI codes unless color is forced.
func NewLogger(w io.Writer, level slog.Leveler, color string) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !useColor(w, color),
	}))
}

func useColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Warnf logs a formatted warning unless quiet is set.
func Warnf(log *slog.Logger, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	log.Warn(fmt.Sprintf(format, a...))
}
