package lexers

import "github.com/reusee/classcheck/tokens"

type Option func(*Lexer)

// LineComments makes "//" start a comment running to the end of the line.
// Without it "//" lexes as two division operators.
func LineComments(enabled bool) Option {
	return func(l *Lexer) {
		l.lineComments = enabled
	}
}

// OnToken registers a callback invoked with every token produced.
// Callbacks run in registration order.
func OnToken(fn func(tokens.Token)) Option {
	return func(l *Lexer) {
		l.onToken = append(l.onToken, fn)
	}
}
