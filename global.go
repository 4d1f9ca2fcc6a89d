package redact

import "sync/atomic"

var defaultScrubber atomic.Pointer[Scrubber]

func init() {
	defaultScrubber.Store(NewScrubber())
}

// SetDefault makes s the default [Scrubber], which is used by the
// top-level functions [Register] and [Scrub].
func SetDefault(s *Scrubber) {
	if s == nil {
		return
	}
	defaultScrubber.Store(s)
}

// Default returns the default [Scrubber].
func Default() *Scrubber { return defaultScrubber.Load() }

// Register adds literal secrets to the default Scrubber. Like all
// Scrubber registration it belongs in program start-up; it is not
// concurrency-safe against Scrub.
func Register(secrets ...string) {
	Default().Add(secrets...)
}

// Scrub removes registered secrets from text using the default
// Scrubber.
func Scrub(text string) string {
	return Default().Scrub(text)
}
