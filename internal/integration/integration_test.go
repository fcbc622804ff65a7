// internal/integration/integration_test.go
package integration

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"ghostradar/internal/app"
	"ghostradar/pkg/api"
)

func TestEndToEnd(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"--seed", "11",
		"--steps", "200",
		"--color", "never",
		"paranormal",
	}, &out, &errBuf)

	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	if out.Len() == 0 {
		t.Fatalf("expected text output")
	}
	if !strings.Contains(errBuf.String(), "Setting up WiFi...") {
		t.Fatalf("expected bring-up on stderr, got %q", errBuf.String())
	}
}

func events(t *testing.T, out string) []api.EventV1 {
	t.Helper()
	var evs []api.EventV1
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var ev api.EventV1
		if err := json.Unmarshal(sc.Bytes(), &ev); err != nil {
			t.Fatalf("decode %q: %v", sc.Text(), err)
		}
		if ev.Type == api.TypeSummary {
			continue
		}
		ev.Run = ""
		evs = append(evs, ev)
	}
	return evs
}

func TestNaiveMatchesAutomaton(t *testing.T) {
	run := func(kind string) []api.EventV1 {
		var out, errB bytes.Buffer
		code := app.Run([]string{
			"-q",
			"--seed", "5",
			"--steps", "2000",
			"--min-word-length", "1",
			"--matcher", kind,
			"--output", "jsonl",
			"short", "default",
		}, &out, &errB)
		if code != 0 {
			t.Fatalf("exit %d err %s", code, errB.String())
		}
		return events(t, out.String())
	}

	auto := run("automaton")
	naive := run("naive")

	if len(auto) != len(naive) {
		t.Fatalf("event counts differ: %d vs %d", len(auto), len(naive))
	}
	for i := range auto {
		if auto[i] != naive[i] {
			t.Fatalf("event %d differs\nautomaton: %+v\nnaive:     %+v", i, auto[i], naive[i])
		}
	}
}

func TestMaxLengthBoundsBuffer(t *testing.T) {
	for _, n := range []int{1, 4, 25} {
		var out, errB bytes.Buffer
		code := app.Run([]string{
			"-q", "--seed", "9", "--steps", "500", "--output", "jsonl",
			"--max-length", fmt.Sprint(n),
		}, &out, &errB)
		if code != 0 {
			t.Fatalf("max-length %d: exit %d err %s", n, code, errB.String())
		}
		for _, ev := range events(t, out.String()) {
			if len(ev.Buffer) > n {
				t.Fatalf("max-length %d: buffer %q too long", n, ev.Buffer)
			}
			if len(ev.Buffer) == n && !ev.Reset {
				t.Fatalf("max-length %d: full buffer %q did not reset", n, ev.Buffer)
			}
		}
	}
}
