// Package redact keeps secrets out of formatted output.
//
// It has two halves. The compile-time half is [Value], a generic wrapper
// whose formatting paths (fmt verbs, log/slog, JSON, text and YAML
// encoding) emit a policy-chosen placeholder instead of the wrapped
// value, while Get, Ptr and the Unmarshal methods keep the value fully
// usable inside the program. The runtime half is [Scrubber], which
// removes registered secret literals and patterns from text, streams
// and log fields produced by code that never saw the wrapper.
package redact
