package sensor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Replay yields a fixed list of readings, then io.EOF.
type Replay struct {
	readings []int
	pos      int
}

func NewReplay(readings ...int) *Replay {
	return &Replay{readings: append([]int(nil), readings...)}
}

func (r *Replay) Next(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if r.pos >= len(r.readings) {
		return 0, io.EOF
	}
	v := r.readings[r.pos]
	r.pos++
	return v, nil
}

// Remaining reports how many readings are left.
func (r *Replay) Remaining() int { return len(r.readings) - r.pos }

// LoadReplay reads whitespace-separated integers; '#' starts a comment.
func LoadReplay(path string) (*Replay, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return ReadReplay(fh, path)
}

// ReadReplay parses readings from rd; name is used in error messages.
func ReadReplay(rd io.Reader, name string) (*Replay, error) {
	var list []int
	sc := bufio.NewScanner(rd)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, f := range strings.Fields(line) {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%s:%d bad reading %q", name, ln, f)
			}
			list = append(list, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &Replay{readings: list}, nil
}
