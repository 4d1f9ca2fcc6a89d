package redact

import (
	"regexp"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// DefaultPlaceholder is what a Scrubber writes over each secret it
// finds, unless [Scrubber.SetPlaceholder] chose something else.
const DefaultPlaceholder = "<redacted>"

// A Scrubber removes registered secrets from already-formatted text.
// It is the runtime complement to [Value]: the wrapper protects values
// the program knows are secret at compile time, the Scrubber catches
// the ones that reach output some other way, through error strings,
// subprocess output or third-party log lines.
//
// Literals are replaced longest first, so when one registered secret
// contains another the longer match wins and no fragment of it
// survives. Registration is meant for program start-up: Add,
// MustPattern and SetPlaceholder are not concurrency-safe against
// Scrub. Concurrent Scrub calls on a configured Scrubber are fine.
type Scrubber struct {
	placeholder string
	literals    []string
	patterns    []*regexp.Regexp
}

// NewScrubber returns a Scrubber with the given literal secrets
// registered and the default placeholder.
func NewScrubber(secrets ...string) *Scrubber {
	s := &Scrubber{placeholder: DefaultPlaceholder}
	return s.Add(secrets...)
}

// Add registers literal secrets and returns s for chaining. Empty
// literals are ignored, they would match everywhere.
func (s *Scrubber) Add(secrets ...string) *Scrubber {
	for _, sec := range secrets {
		if sec == "" {
			continue
		}
		s.literals = append(s.literals, sec)
	}
	slices.SortStableFunc(s.literals, func(a, b string) int {
		return len(b) - len(a)
	})
	return s
}

// AddPattern compiles expr and registers it; every match is replaced
// by the placeholder. Patterns are applied after literals.
func (s *Scrubber) AddPattern(expr string) error {
	re, err := regexp.Compile(expr)
	if err != nil {
		return errors.Wrapf(err, "redact: compile pattern %q", expr)
	}
	s.patterns = append(s.patterns, re)
	return nil
}

// MustPattern is like [Scrubber.AddPattern] but panics on an invalid
// expression and returns s for chaining, for patterns known at
// start-up:
//
//	s := redact.NewScrubber().MustPattern(`hvs\.[A-Za-z0-9._-]+`)
func (s *Scrubber) MustPattern(expr string) *Scrubber {
	if err := s.AddPattern(expr); err != nil {
		panic(err)
	}
	return s
}

// SetPlaceholder replaces the placeholder text and returns s for
// chaining. An empty placeholder is ignored, scrubbing to nothing
// would silently join the text around each secret.
func (s *Scrubber) SetPlaceholder(placeholder string) *Scrubber {
	if placeholder != "" {
		s.placeholder = placeholder
	}
	return s
}

// Scrub returns text with every registered literal and pattern match
// replaced by the placeholder. A nil or empty Scrubber returns text
// unchanged.
func (s *Scrubber) Scrub(text string) string {
	if s == nil || text == "" {
		return text
	}
	for _, lit := range s.literals {
		text = strings.ReplaceAll(text, lit, s.placeholder)
	}
	for _, re := range s.patterns {
		text = re.ReplaceAllString(text, s.placeholder)
	}
	return text
}
