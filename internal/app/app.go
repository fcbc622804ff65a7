// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/rs/xid"

	"ghostradar/internal/bringup"
	"ghostradar/internal/cli"
	"ghostradar/internal/cmdutil"
	"ghostradar/internal/dictionary"
	"ghostradar/internal/lettermap"
	"ghostradar/internal/scanner"
	"ghostradar/internal/sensor"
	"ghostradar/internal/settings"
	"ghostradar/internal/version"
	"ghostradar/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitRuntime  = 3
	ExitCanceled = 130
)

// stdin feeds '-' word lists and '--replay -'.
var stdin io.Reader = os.Stdin

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("ghostradar")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, cli.ErrPrintedAndExitOK) {
			cli.PrintExamples(outw, "ghostradar")
			return flushed(outw, stderr, ExitOK)
		}
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushed(outw, stderr, ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushed(outw, stderr, ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "ghostradar version %s\n", version.Version)
		return flushed(outw, stderr, ExitOK)
	}

	runID := xid.New().String()
	level, cfgErr := logLevel(opts)
	log := cmdutil.NewLogger(stderr, level, opts.Color).With("run", runID)
	if cfgErr != nil {
		log.Warn("device config unreadable; using defaults", "path", opts.DeviceConfig, "err", cfgErr)
	}

	if !opts.Quiet {
		if _, err := bringup.New().Run(stderr); err != nil {
			log.Error("bring-up failed", "err", err)
			return ExitRuntime
		}
	}

	dict, err := openDictionary(opts, log)
	if err != nil {
		log.Error("word list", "err", err)
		return ExitUsage
	}

	lm, err := lettermap.New(opts.Letters)
	if err != nil {
		log.Error("letter map", "err", err)
		return ExitUsage
	}

	src, err := openSource(opts, log)
	if err != nil {
		log.Error("reading source", "err", err)
		return ExitUsage
	}
	retrying := sensor.NewRetrying(src, sensor.Policy{
		MaxRetries: opts.SensorRetries,
		Backoff:    opts.SensorBackoff,
		MaxBackoff: 2 * time.Second,
	})
	retrying.OnRetry = func(attempt int, wait time.Duration, err error) {
		log.Warn("sensor read failed; retrying", "attempt", attempt, "wait", wait, "err", err)
	}

	sink, err := writers.New(opts.Output, outw, writers.Options{
		Color:   opts.Color,
		Newline: opts.Newline,
		RunID:   runID,
	})
	if err != nil {
		log.Error("output", "err", err)
		return ExitUsage
	}

	sc, err := scanner.New(scanner.Config{
		MaxLength:     opts.MaxLength,
		WordMinLength: opts.MinWordLength,
		Matcher:       opts.Matcher,
		OnRangeError:  opts.OnRangeError,
		MaxSteps:      opts.Steps,
		Interval:      opts.Interval,
		Logger:        log,
	}, retrying, lm, dict)
	if err != nil {
		log.Error("scanner", "err", err)
		return ExitUsage
	}
	log.Info("scanning", "dictionary", dict.Name(), "words", sc.EligibleWords(),
		"max_length", opts.MaxLength, "matcher", opts.Matcher)

	runErr := sc.Run(parent, sink)
	stats := sc.Stats()

	if writers.IsBrokenPipe(runErr) {
		log.Debug("output closed", "last_good_step", sc.LastStep())
		return ExitOK
	}

	code := ExitOK
	var se *scanner.StepError
	switch {
	case runErr == nil:
	case errors.Is(runErr, context.Canceled) || errors.Is(runErr, context.DeadlineExceeded):
		log.Info("interrupted", "step", sc.LastStep())
		code = ExitCanceled
	case errors.As(runErr, &se):
		log.Error("scan failed", "step", se.Step, "last_good_step", se.LastOK, "err", se.Err)
		code = ExitRuntime
	default:
		log.Error("scan failed", "last_good_step", sc.LastStep(), "err", runErr)
		code = ExitRuntime
	}

	if err := sink.Finish(stats); err != nil && !writers.IsBrokenPipe(err) {
		log.Error("output", "err", err)
		return ExitRuntime
	}
	if err := writers.Flush(outw); err != nil {
		log.Error("output", "err", err)
		return ExitRuntime
	}
	log.Info("done", "steps", stats.Steps, "matches", stats.Matches,
		"no_matches", stats.NoMatches, "overflows", stats.Overflows, "skipped", stats.Skipped)
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func flushed(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := writers.Flush(outw); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitRuntime
	}
	return code
}

// logLevel prefers --log-level, then the device config, then info.
// --quiet never goes below warn.
func logLevel(opts cli.Options) (slog.Level, error) {
	level := slog.LevelInfo
	var err error
	switch {
	case opts.LogLevel != "":
		level = settings.ParseLevel(opts.LogLevel)
	case opts.DeviceConfig != "":
		var s settings.Settings
		s, err = settings.Load(opts.DeviceConfig)
		level = s.LogLevel()
	}
	if opts.Quiet && level < slog.LevelWarn {
		level = slog.LevelWarn
	}
	return level, err
}

func openDictionary(opts cli.Options, log *slog.Logger) (*dictionary.Dictionary, error) {
	refs := opts.WordLists
	if len(refs) == 0 {
		refs = []string{dictionary.Default}
	}
	var ds []*dictionary.Dictionary
	for _, ref := range refs {
		var d *dictionary.Dictionary
		var err error
		if ref == "-" {
			d, err = dictionary.Read(stdin, "stdin")
		} else {
			d, err = dictionary.Open(ref, opts.StrictDictionary)
		}
		var fe *dictionary.FallbackError
		if errors.As(err, &fe) {
			log.Warn(fe.Error())
			err = nil
		}
		if err != nil {
			return nil, err
		}
		if d.Dropped() > 0 {
			cmdutil.Warnf(log, opts.Quiet, "%s: dropped %d word(s) with characters outside a-z", d.Name(), d.Dropped())
		}
		ds = append(ds, d)
	}
	if len(ds) == 1 {
		return ds[0], nil
	}
	names := make([]string, len(ds))
	for i, d := range ds {
		names[i] = d.Name()
	}
	return dictionary.Merge(strings.Join(names, "+"), ds...), nil
}

func openSource(opts cli.Options, log *slog.Logger) (sensor.Source, error) {
	switch opts.Replay {
	case "":
	case "-":
		return sensor.ReadReplay(stdin, "stdin")
	default:
		return sensor.LoadReplay(opts.Replay)
	}
	seed := opts.Seed
	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("simulated sensors", "seed", seed)
	return sensor.NewSimulated(seed), nil
}
