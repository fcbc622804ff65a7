package writers

import "testing"

func TestFormats_Stable(t *testing.T) {
	if FormatText != "text" || FormatJSONL != "jsonl" {
		t.Fatalf("output format constants changed")
	}
	if ColorAuto != "auto" || ColorAlways != "always" || ColorNever != "never" {
		t.Fatalf("color mode constants changed")
	}
}
