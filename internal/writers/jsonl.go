// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"ghostradar/internal/scanner"
	"ghostradar/pkg/api"
)

const FormatJSONL = "jsonl"

func init() {
	Register(FormatJSONL, func(w io.Writer, o Options) (Sink, error) { return NewJSONL(w, o.RunID), nil })
}

// JSONL writes one api.EventV1 per line and a closing api.SummaryV1.
type JSONL struct {
	enc *json.Encoder
	run string
}

func NewJSONL(w io.Writer, runID string) *JSONL {
	return &JSONL{enc: json.NewEncoder(w), run: runID}
}

func (j *JSONL) Emit(ev scanner.Event) error {
	v := ToAPIEvent(ev)
	v.Run = j.run
	return j.enc.Encode(v)
}

func (j *JSONL) Finish(st scanner.Stats) error {
	s := ToAPISummary(st)
	s.Run = j.run
	return j.enc.Encode(s)
}

// ToAPIEvent converts a scanner event to the v1 wire type.
func ToAPIEvent(ev scanner.Event) api.EventV1 {
	v := api.EventV1{
		Type:    api.TypeNoMatch,
		Step:    ev.Step,
		Reading: ev.Reading,
		Letter:  string([]byte{ev.Letter}),
		Buffer:  ev.Buffer,
		Reset:   ev.Reset,
	}
	if ev.Kind == scanner.Match {
		v.Type = api.TypeMatch
		v.Word = ev.Word
		v.Start = ev.Start
	}
	return v
}

func ToAPISummary(st scanner.Stats) api.SummaryV1 {
	s := api.SummaryV1{
		Type:      api.TypeSummary,
		Steps:     st.Steps,
		Matches:   st.Matches,
		NoMatches: st.NoMatches,
		Overflows: st.Overflows,
		Skipped:   st.Skipped,
	}
	if len(st.Words) > 0 {
		s.Words = st.Words
	}
	return s
}
