package redact

import (
	"context"
	"log/slog"

	"github.com/nexuer/log"
)

// ReplaceAttr is a drop-in for [slog.HandlerOptions].ReplaceAttr. It
// scrubs string attrs, including the message, replaces any attr value
// implementing [Redactor] by its redacted text, and scrubs the text of
// error values. slog resolves LogValuer attrs before calling it, so a
// [Value] arrives here already as its placeholder.
func (s *Scrubber) ReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		a.Value = slog.StringValue(s.Scrub(a.Value.String()))
	case slog.KindAny:
		switch x := a.Value.Any().(type) {
		case Redactor:
			a.Value = slog.StringValue(x.Redact())
		case error:
			a.Value = slog.StringValue(s.Scrub(x.Error()))
		}
	}
	return a
}

// LogReplacer returns a [log.Replacer] for github.com/nexuer/log
// handlers, applying the same rewriting as [Scrubber.ReplaceAttr] to
// their fields.
func (s *Scrubber) LogReplacer() log.Replacer {
	return func(ctx context.Context, groups []string, field log.Field) log.Field {
		switch field.Value.Kind() {
		case log.KindString:
			field.Value = log.StringValue(s.Scrub(field.Value.String()))
		case log.KindAny:
			switch x := field.Value.Any().(type) {
			case Redactor:
				field.Value = log.StringValue(x.Redact())
			case error:
				field.Value = log.StringValue(s.Scrub(x.Error()))
			}
		}
		return field
	}
}
