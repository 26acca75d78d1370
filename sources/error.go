package sources

import (
	"errors"
	"fmt"
	"strings"
)

// LineError anchors an analysis error to a line of a source.
type LineError struct {
	Err    error
	Source *Source
	Line   int
}

func (l *LineError) Error() string {
	if l.Source == nil {
		return l.Err.Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:%d: %s", l.Source.Name, l.Line, l.Err.Error())
	if snippet := l.Snippet(1); snippet != "" {
		sb.WriteString("\n")
		sb.WriteString(snippet)
	}
	return sb.String()
}

func (l *LineError) Unwrap() error {
	return l.Err
}

// Snippet renders the offending line with context lines around it, marking the offending one.
func (l *LineError) Snippet(context int) string {
	if l.Source == nil {
		return ""
	}
	if _, ok := l.Source.Line(l.Line); !ok {
		return ""
	}
	width := len(fmt.Sprint(l.Line + context))
	var sb strings.Builder
	for n := l.Line - context; n <= l.Line+context; n++ {
		text, ok := l.Source.Line(n)
		if !ok {
			continue
		}
		marker := " "
		if n == l.Line {
			marker = ">"
		}
		fmt.Fprintf(&sb, "%s %*d | %s\n", marker, width, n, text)
	}
	return sb.String()
}

type lineReporter interface {
	ErrorLine() int
}

// WithLine wraps err with src and the line reported by err itself.
// Errors without a line and errors already anchored are returned unchanged.
func WithLine(err error, src *Source) error {
	if err == nil {
		return nil
	}
	var lineErr *LineError
	if errors.As(err, &lineErr) {
		return err
	}
	var reporter lineReporter
	if !errors.As(err, &reporter) {
		return err
	}
	return &LineError{
		Err:    err,
		Source: src,
		Line:   reporter.ErrorLine(),
	}
}
