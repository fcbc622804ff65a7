// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"ghostradar/internal/cliutil"
	"ghostradar/internal/lettermap"
	"ghostradar/internal/matcher"
	"ghostradar/internal/scanner"
	"ghostradar/internal/writers"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Scan parameters
	MaxLength     int
	MinWordLength int
	Letters       int
	Steps         int
	Matcher       string
	OnRangeError  scanner.RangePolicy

	// Input
	Seed          int64 // -1 = derive from the clock
	Replay        string
	SensorRetries int
	SensorBackoff time.Duration
	Interval      time.Duration

	// Dictionary: built-in names or paths, '-' for stdin
	WordLists        []string
	StrictDictionary bool

	// Output
	Output  string
	Color   string
	Newline bool

	// Logging
	LogLevel     string // "" = device config or info
	DeviceConfig string
	Quiet        bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	installUsage(fs, name)
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var showExamples bool
	var rangePolicy string

	def := scanner.DefaultConfig()

	// Scan parameters
	fs.IntVar(&opt.MaxLength, "max-length", def.MaxLength, fmt.Sprintf("buffer length before an unmatched reset [%d]", def.MaxLength))
	fs.IntVar(&opt.MinWordLength, "min-word-length", def.WordMinLength, fmt.Sprintf("only words longer than this can match [%d]", def.WordMinLength))
	fs.IntVar(&opt.Letters, "letters", lettermap.DefaultSize, fmt.Sprintf("letter map size; readings 1..N map to letters [%d]", lettermap.DefaultSize))
	fs.IntVar(&opt.Steps, "steps", 0, "stop after N emitted events (0 = run until interrupted) [0]")
	fs.StringVar(&opt.Matcher, "matcher", matcher.KindAutomaton, "matcher: automaton | naive ["+matcher.KindAutomaton+"]")
	fs.StringVar(&rangePolicy, "on-range-error", "skip", "reading outside the letter map: skip | abort [skip]")

	// Input
	fs.Int64Var(&opt.Seed, "seed", -1, "simulated sensor seed (-1 = time based) [-1]")
	fs.StringVar(&opt.Replay, "replay", "", "read readings from file instead of the simulated sensors ('-' = stdin)")
	fs.IntVar(&opt.SensorRetries, "sensor-retries", 3, "retries after a failed sensor read (0 = abort at once) [3]")
	fs.DurationVar(&opt.SensorBackoff, "sensor-backoff", 50*time.Millisecond, "wait before the first sensor retry; doubles per retry [50ms]")
	fs.DurationVar(&opt.Interval, "interval", 0, "pause between readings (device samples every 200ms) [0]")

	// Dictionary
	var lists stringSlice
	fs.Var(&lists, "dictionary", "word list name or file (repeatable; positionals are added) [default]")
	fs.BoolVar(&opt.StrictDictionary, "strict-dictionary", false, "fail instead of using the fallback list when a file is unreadable [false]")

	// Output
	fs.StringVar(&opt.Output, "output", writers.FormatText, "output format: "+strings.Join(writers.Formats(), " | ")+" ["+writers.FormatText+"]")
	fs.StringVar(&opt.Color, "color", writers.ColorAuto, "color: auto | always | never ["+writers.ColorAuto+"]")
	fs.BoolVar(&opt.Newline, "newline", false, "newline after each matched word (text) [false]")

	// Logging
	fs.StringVar(&opt.LogLevel, "log-level", "", "log level: debug | info | warn | error [info]")
	fs.StringVar(&opt.DeviceConfig, "device-config", "", "device system.json; its logging section sets the log level")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress bring-up messages and info logs [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "suppress bring-up messages and info logs (shorthand) [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if showExamples {
		return opt, ErrPrintedAndExitOK
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	posArgs = append(posArgs, fs.Args()...)

	expanded, err := cliutil.ExpandWordLists(append([]string(lists), posArgs...))
	if err != nil {
		return opt, err
	}
	opt.WordLists = expanded

	// Validation
	if opt.MaxLength < 1 {
		return opt, errors.New("--max-length must be ≥ 1")
	}
	if opt.MinWordLength < 0 {
		return opt, errors.New("--min-word-length must be ≥ 0")
	}
	if opt.Letters < 1 {
		return opt, errors.New("--letters must be ≥ 1")
	}
	if opt.Steps < 0 {
		return opt, errors.New("--steps must be ≥ 0")
	}
	if opt.Seed < -1 {
		return opt, errors.New("--seed must be ≥ 0 (or -1)")
	}
	if opt.SensorRetries < 0 {
		return opt, errors.New("--sensor-retries must be ≥ 0")
	}
	if opt.SensorBackoff < 0 || opt.Interval < 0 {
		return opt, errors.New("--sensor-backoff and --interval must be ≥ 0")
	}
	if opt.Matcher != matcher.KindAutomaton && opt.Matcher != matcher.KindNaive {
		return opt, fmt.Errorf("invalid --matcher %q", opt.Matcher)
	}
	if opt.OnRangeError, err = scanner.ParseRangePolicy(rangePolicy); err != nil {
		return opt, err
	}
	if !contains(writers.Formats(), opt.Output) {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	switch opt.Color {
	case writers.ColorAuto, writers.ColorAlways, writers.ColorNever:
	default:
		return opt, fmt.Errorf("invalid --color %q", opt.Color)
	}
	switch strings.ToLower(opt.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return opt, fmt.Errorf("invalid --log-level %q", opt.LogLevel)
	}
	if opt.Replay == "-" && contains(opt.WordLists, "-") {
		return opt, errors.New("stdin cannot feed both --replay and a word list")
	}
	return opt, nil
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
