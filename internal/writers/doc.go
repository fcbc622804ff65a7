// Package writers renders scan events.
//
// Design:
//   • Writers own all presentation knowledge (colored text, JSONL).
//   • Scanner stays domain-only; it sees a writer only as scanner.Sink.
//   • JSONL goes through pkg/api (v1) for a stable wire format.
package writers
