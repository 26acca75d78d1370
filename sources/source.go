package sources

import (
	"io"
	"strings"
)

// Source is one compilation unit.
type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

func (s *Source) Reader() io.Reader {
	return strings.NewReader(s.Content)
}

// Line returns the text of the 1-based line n, or false when out of range.
func (s *Source) Line(n int) (string, bool) {
	idx := n - 1
	if idx < 0 || idx >= len(s.Lines) {
		return "", false
	}
	return strings.TrimRight(s.Lines[idx], "\r"), true
}
