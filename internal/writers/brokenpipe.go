package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// Flusher is satisfied by *bufio.Writer.
type Flusher interface {
	Flush() error
}

// Flush flushes f and treats a closed downstream as success.
func Flush(f Flusher) error {
	if err := f.Flush(); err != nil && !IsBrokenPipe(err) {
		return err
	}
	return nil
}
