package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tebeka/atexit"
)

// Main runs run under a signal-aware context and exits with its code.
// Exit hooks registered with atexit run before the process ends.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	atexit.Register(stop)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	atexit.Exit(Normalize(ctx, code))
}

// Normalize maps a clean return after cancellation to 130.
func Normalize(ctx context.Context, code int) int {
	if ctx.Err() != nil && code == 0 {
		return 130
	}
	return code
}
