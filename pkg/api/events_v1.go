// pkg/api/events_v1.go
package api

// EventV1 is the stable JSONL schema for one scan step.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type EventV1 struct {
	Type    string `json:"type"` // "match" | "no_match"
	Step    int    `json:"step"`
	Reading int    `json:"reading"`
	Letter  string `json:"letter"`
	Buffer  string `json:"buffer"`
	Word    string `json:"word,omitempty"`
	Start   int    `json:"start,omitempty"`
	Reset   bool   `json:"reset,omitempty"`
	Run     string `json:"run,omitempty"`
}

// SummaryV1 closes a JSONL stream.
type SummaryV1 struct {
	Type      string         `json:"type"` // "summary"
	Run       string         `json:"run,omitempty"`
	Steps     int            `json:"steps"`
	Matches   int            `json:"matches"`
	NoMatches int            `json:"no_matches"`
	Overflows int            `json:"overflows"`
	Skipped   int            `json:"skipped"`
	Words     map[string]int `json:"words,omitempty"`
}

const (
	TypeMatch   = "match"
	TypeNoMatch = "no_match"
	TypeSummary = "summary"
)
