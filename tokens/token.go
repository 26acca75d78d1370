package tokens

import (
	"log/slog"
	"strconv"
)

// Token is one lexical unit. Which payload field is meaningful depends on Kind:
// Identifier and StringLiteral use Text, IntLiteral uses Int, FloatLiteral uses Float.
type Token struct {
	Kind  Kind
	Line  int
	Text  string
	Int   int64
	Float float64
}

func (t Token) Lexeme() string {
	switch t.Kind {
	case Identifier, StringLiteral:
		return t.Text
	case IntLiteral:
		return strconv.FormatInt(t.Int, 10)
	case FloatLiteral:
		return strconv.FormatFloat(t.Float, 'g', -1, 64)
	}
	return t.Kind.Lexeme()
}

func (t Token) String() string {
	switch t.Kind {
	case Identifier, StringLiteral, IntLiteral, FloatLiteral:
		return t.Kind.String() + " [" + t.Lexeme() + "]"
	}
	if lexeme := t.Kind.Lexeme(); lexeme != "" {
		return t.Kind.String() + ` "` + lexeme + `"`
	}
	return t.Kind.String()
}

var _ slog.LogValuer = Token{}

func (t Token) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", t.Kind.String()),
		slog.Int("line", t.Line),
	}
	if t.Kind.HasPayload() {
		attrs = append(attrs, slog.String("lexeme", t.Lexeme()))
	}
	return slog.GroupValue(attrs...)
}
