// internal/scanner/scanner.go
package scanner

//go:generate mockgen -destination=mock_sink.go -package=scanner -write_package_comment=false ghostradar/internal/scanner Sink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"ghostradar/internal/dictionary"
	"ghostradar/internal/lettermap"
	"ghostradar/internal/matcher"
	"ghostradar/internal/sensor"
)

// ErrBufferInvariant means the buffer grew past MaxLength. It indicates a bug.
var ErrBufferInvariant = errors.New("buffer length out of bounds")

// Kind of a scan event.
type Kind int

const (
	NoMatch Kind = iota
	Match
)

func (k Kind) String() string {
	if k == Match {
		return "match"
	}
	return "no_match"
}

// Event is emitted once per processed step.
type Event struct {
	Step    int // 1-based
	Kind    Kind
	Word    string // set for Match
	Start   int    // offset of Word in Buffer
	Reading int
	Letter  byte
	Buffer  string // contents when the decision was made
	Reset   bool   // buffer was emptied after this step
}

// Sink receives events. It must return in bounded time.
type Sink interface {
	Emit(Event) error
}

// RangePolicy says what an out-of-range reading does to the run.
type RangePolicy int

const (
	Skip  RangePolicy = iota // drop the reading, emit nothing, continue
	Abort                    // fail the run
)

func (p RangePolicy) String() string {
	if p == Abort {
		return "abort"
	}
	return "skip"
}

func ParseRangePolicy(s string) (RangePolicy, error) {
	switch strings.ToLower(s) {
	case "skip", "":
		return Skip, nil
	case "abort":
		return Abort, nil
	}
	return Skip, fmt.Errorf("invalid range policy %q (want skip or abort)", s)
}

// Config holds scan parameters.
type Config struct {
	MaxLength     int    // buffer bound; reaching it without a match resets
	WordMinLength int    // words must be strictly longer than this
	Matcher       string // matcher.KindAutomaton | matcher.KindNaive
	OnRangeError  RangePolicy
	MaxSteps      int           // events to emit before Run returns (0 = unbounded)
	Interval      time.Duration // pause between steps (0 = none)
	Logger        *slog.Logger
}

// DefaultConfig returns the demo defaults.
func DefaultConfig() Config {
	return Config{MaxLength: 25, WordMinLength: 3, Matcher: matcher.KindAutomaton}
}

// Stats counts delivered events and skipped readings.
type Stats struct {
	Steps     int
	Matches   int
	NoMatches int
	Overflows int
	Skipped   int
	Words     map[string]int
}

// StepError is a fatal scan failure.
type StepError struct {
	Step   int // step being processed
	LastOK int // last step whose event reached the sink (0 = none)
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: %v (last good step %d)", e.Step, e.Err, e.LastOK)
}

func (e *StepError) Unwrap() error { return e.Err }

// Scanner owns the letter buffer and the matcher state. Not safe for
// concurrent use.
type Scanner struct {
	cfg   Config
	src   sensor.Source
	lm    *lettermap.Map
	m     matcher.Matcher
	words int

	buf   []byte
	step  int
	stats Stats
	log   *slog.Logger
	sleep func(context.Context, time.Duration) error
}

// New compiles the eligible words of dict and returns a scanner with an
// empty buffer.
func New(cfg Config, src sensor.Source, lm *lettermap.Map, dict dictionary.Provider) (*Scanner, error) {
	if cfg.MaxLength < 1 {
		return nil, fmt.Errorf("max length must be >= 1, got %d", cfg.MaxLength)
	}
	if cfg.WordMinLength < 0 {
		return nil, fmt.Errorf("word min length must be >= 0, got %d", cfg.WordMinLength)
	}
	if cfg.MaxSteps < 0 {
		return nil, fmt.Errorf("max steps must be >= 0, got %d", cfg.MaxSteps)
	}
	words := dictionary.Eligible(dict, cfg.WordMinLength, cfg.MaxLength)
	m, err := matcher.New(cfg.Matcher, words)
	if err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scanner{
		cfg:   cfg,
		src:   src,
		lm:    lm,
		m:     m,
		words: len(words),
		buf:   make([]byte, 0, cfg.MaxLength),
		stats: Stats{Words: map[string]int{}},
		log:   log,
		sleep: sleepCtx,
	}, nil
}

// Buffer returns the current buffer contents.
func (s *Scanner) Buffer() string { return string(s.buf) }

// EligibleWords is the number of dictionary words that can match.
func (s *Scanner) EligibleWords() int { return s.words }

// LastStep is the last step whose event was delivered (0 = none).
func (s *Scanner) LastStep() int { return s.step }

// Stats returns a snapshot of the counters.
func (s *Scanner) Stats() Stats {
	st := s.stats
	st.Words = make(map[string]int, len(s.stats.Words))
	for w, n := range s.stats.Words {
		st.Words[w] = n
	}
	return st
}

// Step pulls one reading, decides its event and counts it as delivered.
// Source errors and out-of-range readings are returned unchanged and leave
// the buffer as it was.
func (s *Scanner) Step(ctx context.Context) (Event, error) {
	ev, err := s.next(ctx)
	if err != nil {
		return Event{}, err
	}
	s.commit(ev)
	return ev, nil
}

// next decides the event for one reading without touching the counters.
func (s *Scanner) next(ctx context.Context) (Event, error) {
	r, err := s.src.Next(ctx)
	if err != nil {
		return Event{}, err
	}
	l, err := s.lm.Letter(r)
	if err != nil {
		return Event{}, err
	}

	s.buf = append(s.buf, l)
	if err := s.check(); err != nil {
		return Event{}, err
	}
	hits := s.m.Push(l)

	ev := Event{Step: s.step + 1, Kind: NoMatch, Reading: r, Letter: l, Buffer: string(s.buf)}
	if best, ok := matcher.Best(hits); ok {
		ev.Kind = Match
		ev.Word = best.Word
		ev.Start = best.Start
		ev.Reset = true
	} else if len(s.buf) >= s.cfg.MaxLength {
		ev.Reset = true
	}
	if ev.Reset {
		s.reset()
		if err := s.check(); err != nil {
			return Event{}, err
		}
	}
	return ev, nil
}

func (s *Scanner) commit(ev Event) {
	s.step = ev.Step
	s.stats.Steps++
	if ev.Kind == Match {
		s.stats.Matches++
		s.stats.Words[ev.Word]++
		return
	}
	s.stats.NoMatches++
	if ev.Reset {
		s.stats.Overflows++
	}
}

func (s *Scanner) reset() {
	s.buf = s.buf[:0]
	s.m.Reset()
}

func (s *Scanner) check() error {
	if n := len(s.buf); n > s.cfg.MaxLength {
		return fmt.Errorf("%w: %d > %d", ErrBufferInvariant, n, s.cfg.MaxLength)
	}
	return nil
}

// Run steps until MaxSteps events were emitted, the source reports io.EOF,
// or ctx is done. Cancellation is returned as ctx.Err(); every other failure
// is a *StepError.
func (s *Scanner) Run(ctx context.Context, sink Sink) error {
	for s.cfg.MaxSteps == 0 || s.step < s.cfg.MaxSteps {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev, err := s.next(ctx)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			s.log.Debug("reading source exhausted", "last_step", s.step)
			return nil
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		case errors.Is(err, lettermap.ErrIndexOutOfRange) && s.cfg.OnRangeError == Skip:
			s.stats.Skipped++
			s.log.Warn("reading skipped", "err", err, "last_step", s.step)
			continue
		default:
			return &StepError{Step: s.step + 1, LastOK: s.step, Err: err}
		}

		if ev.Kind == Match {
			s.log.Debug("word matched", "step", ev.Step, "word", ev.Word, "buffer", ev.Buffer)
		}
		if err := sink.Emit(ev); err != nil {
			return &StepError{Step: ev.Step, LastOK: s.step, Err: err}
		}
		s.commit(ev)
		if s.cfg.MaxSteps > 0 && s.step >= s.cfg.MaxSteps {
			return nil
		}
		if s.cfg.Interval > 0 {
			if err := s.sleep(ctx, s.cfg.Interval); err != nil {
				return err
			}
		}
	}
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
