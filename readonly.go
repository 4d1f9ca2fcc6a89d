package redact

import (
	"io"
	"log/slog"

	"github.com/nexuer/log"
)

// Readonly is a Scrubber view that restricts modifications to the
// underlying Scrubber. Hand it to components that should be able to
// scrub output but not register secrets or change the placeholder.
// All methods delegate to the wrapped Scrubber.
type Readonly struct {
	s *Scrubber
}

// NewReadonly creates a read-only view of s. If s is nil, it wraps the
// default Scrubber as of the call.
func NewReadonly(s *Scrubber) *Readonly {
	if s == nil {
		s = Default()
	}
	return &Readonly{s: s}
}

func (r *Readonly) Scrub(text string) string {
	return r.s.Scrub(text)
}

func (r *Readonly) Writer(w io.Writer) io.WriteCloser {
	return r.s.Writer(w)
}

func (r *Readonly) ReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	return r.s.ReplaceAttr(groups, a)
}

func (r *Readonly) LogReplacer() log.Replacer {
	return r.s.LogReplacer()
}
