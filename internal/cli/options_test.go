// internal/cli/options_test.go
package cli

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ghostradar/internal/scanner"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t)
	if o.MaxLength != 25 || o.MinWordLength != 3 || o.Letters != 300 {
		t.Errorf("bad scan defaults %+v", o)
	}
	if o.Seed != -1 || o.Steps != 0 || o.Output != "text" || o.Color != "auto" {
		t.Errorf("bad io defaults %+v", o)
	}
	if o.OnRangeError != scanner.Skip || o.Matcher != "automaton" {
		t.Errorf("bad policy defaults %+v", o)
	}
	if len(o.WordLists) != 0 {
		t.Errorf("want no word lists, got %v", o.WordLists)
	}
}

func TestFlagsAndPositionalsInterleave(t *testing.T) {
	o := mustParse(t,
		"paranormal",
		"--steps", "40",
		"--dictionary", "short",
		"-q",
		"--interval=200ms",
		"custom.txt",
	)
	want := []string{"short", "paranormal", "custom.txt"}
	if len(o.WordLists) != len(want) {
		t.Fatalf("word lists = %v, want %v", o.WordLists, want)
	}
	for i := range want {
		if o.WordLists[i] != want[i] {
			t.Fatalf("word lists = %v, want %v", o.WordLists, want)
		}
	}
	if o.Steps != 40 || !o.Quiet || o.Interval != 200*time.Millisecond {
		t.Errorf("bad parse %+v", o)
	}
}

func TestGlobWordLists(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.txt", "b.txt"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("ghost\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	o := mustParse(t, filepath.Join(dir, "*.txt"))
	if len(o.WordLists) != 2 {
		t.Fatalf("want 2 expanded lists, got %v", o.WordLists)
	}
	if _, err := ParseArgs(newFS(), []string{filepath.Join(dir, "*.csv")}); err == nil {
		t.Fatalf("expected error for glob with no matches")
	}
}

func TestAbortPolicy(t *testing.T) {
	o := mustParse(t, "--on-range-error", "abort")
	if o.OnRangeError != scanner.Abort {
		t.Errorf("want abort, got %v", o.OnRangeError)
	}
}

func TestHelp(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want ErrHelp, got %v", err)
	}
}

func TestExamples(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--examples", "--steps", "-1"})
	if !errors.Is(err, ErrPrintedAndExitOK) {
		t.Fatalf("want ErrPrintedAndExitOK, got %v", err)
	}
}

func TestUsageGroups(t *testing.T) {
	var buf bytes.Buffer
	fs := NewFlagSet("ghostradar")
	fs.SetOutput(&buf)
	if _, err := ParseArgs(fs, nil); err != nil {
		t.Fatal(err)
	}
	fs.Usage()
	for _, want := range []string{"Usage of ghostradar", "Scan:", "--max-length int", "[25]", "paranormal"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("usage missing %q", want)
		}
	}
}

func TestVersionSkipsValidation(t *testing.T) {
	o := mustParse(t, "--version", "--max-length", "0")
	if !o.Version {
		t.Fatalf("want version flag set")
	}
}

func TestValidationErrors(t *testing.T) {
	cases := map[string][]string{
		"max-length":      {"--max-length", "0"},
		"min-word-length": {"--min-word-length", "-1"},
		"letters":         {"--letters", "0"},
		"steps":           {"--steps", "-3"},
		"seed":            {"--seed", "-2"},
		"retries":         {"--sensor-retries", "-1"},
		"backoff":         {"--sensor-backoff", "-1s"},
		"matcher":         {"--matcher", "regex"},
		"range":           {"--on-range-error", "wrap"},
		"output":          {"--output", "xml"},
		"color":           {"--color", "rainbow"},
		"log-level":       {"--log-level", "loud"},
		"stdin twice":     {"--replay", "-", "-"},
		"unknown flag":    {"--bogus"},
	}
	for name, args := range cases {
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Errorf("%s: expected error for %v", name, args)
		}
	}
}
