package logs

import "log/slog"

// Span identifies the log records of one unit of work, usually one compilation unit.
type Span string

type spanKey struct{}

var SpanKey spanKey

func (s Span) LogValue() slog.Value {
	return slog.StringValue(string(s))
}
