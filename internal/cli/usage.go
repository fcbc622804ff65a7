// internal/cli/usage.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"ghostradar/internal/dictionary"
	"ghostradar/internal/version"
	"ghostradar/internal/writers"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested examples.
// Apps should catch this and exit 0 after printing examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples prints a small quickstart followed by a one-line tip to
// discover full help.
func PrintExamples(out io.Writer, name string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s quickstart\n\n", name)
	_, _ = fmt.Fprintln(out, "Watch the sensors spell words from the paranormal list:")
	_, _ = fmt.Fprintf(out, "  %s --interval 200ms paranormal\n", name)
	_, _ = fmt.Fprintln(out, "\nReproducible run, one word per line:")
	_, _ = fmt.Fprintf(out, "  %s --seed 42 --steps 500 --newline\n", name)
	_, _ = fmt.Fprintln(out, "\nReplay recorded readings against your own list, as JSON lines:")
	_, _ = fmt.Fprintf(out, "  %s --replay readings.txt --output jsonl words.txt\n", name)
	_, _ = fmt.Fprintln(out, "\nTip: run with -h for all flags.")
}

// installUsage puts a grouped Usage() handler on fs.
func installUsage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – spell words out of a stream of sensor readings\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage of %s:\n  %s [flags] [word-list ...]\n\n", name, name)
		fmt.Fprintf(out, "Word lists are built-in names (%s), files, globs or '-' for STDIN.\n", strings.Join(dictionary.BuiltinNames(), ", "))
		fmt.Fprintln(out, "Flags may appear before or after word lists.")

		fmt.Fprintln(out, "\nScan:")
		fmt.Fprintf(out, "      --max-length int         Buffer length before an unmatched reset [%s]\n", def("max-length"))
		fmt.Fprintf(out, "      --min-word-length int    Only words longer than this can match [%s]\n", def("min-word-length"))
		fmt.Fprintf(out, "      --letters int            Letter map size; readings 1..N map to letters [%s]\n", def("letters"))
		fmt.Fprintf(out, "      --steps int              Stop after N emitted events (0=until interrupted) [%s]\n", def("steps"))
		fmt.Fprintf(out, "      --matcher string         automaton | naive [%s]\n", def("matcher"))
		fmt.Fprintf(out, "      --on-range-error string  Reading outside the letter map: skip | abort [%s]\n", def("on-range-error"))

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintf(out, "      --seed int               Simulated sensor seed (-1=time based) [%s]\n", def("seed"))
		fmt.Fprintln(out, "      --replay file            Read readings from file instead of the sensors ('-'=STDIN)")
		fmt.Fprintf(out, "      --sensor-retries int     Retries after a failed sensor read (0=abort at once) [%s]\n", def("sensor-retries"))
		fmt.Fprintf(out, "      --sensor-backoff dur     Wait before the first retry; doubles per retry [%s]\n", def("sensor-backoff"))
		fmt.Fprintf(out, "      --interval dur           Pause between readings (device: 200ms) [%s]\n", def("interval"))

		fmt.Fprintln(out, "\nDictionary:")
		fmt.Fprintln(out, "      --dictionary name|file   Word list (repeatable; positionals are added) [default]")
		fmt.Fprintf(out, "      --strict-dictionary      Fail instead of using the fallback list [%s]\n", def("strict-dictionary"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "      --output string          %s [%s]\n", strings.Join(writers.Formats(), " | "), def("output"))
		fmt.Fprintf(out, "      --color string           auto | always | never [%s]\n", def("color"))
		fmt.Fprintf(out, "      --newline                Newline after each matched word (text) [%s]\n", def("newline"))

		fmt.Fprintln(out, "\nLogging:")
		fmt.Fprintln(out, "      --log-level string       debug | info | warn | error [info]")
		fmt.Fprintln(out, "      --device-config file     Device system.json; its logging section sets the level")
		fmt.Fprintf(out, "  -q, --quiet                  Skip bring-up messages and info logs [%s]\n", def("quiet"))

		fmt.Fprintln(out, "\nMisc:")
		fmt.Fprintln(out, "      --examples               Show quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version                Print version and exit")
		fmt.Fprintln(out, "  -h                           Show this help")
	}
}
