package lexers

import (
	"bufio"
	"io"
	"iter"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/reusee/classcheck/symbols"
	"github.com/reusee/classcheck/tokens"
)

// eof is the end-of-input sentinel, distinct from every rune a reader can produce.
const eof rune = -1

// badByte stands for a byte that does not start valid UTF-8.
// Only comments may contain it.
const badByte rune = -2

type Lexer struct {
	source *bufio.Reader
	table  *symbols.Table
	line   int

	// single slot of pushback
	pending    rune
	hasPending bool

	lineComments bool
	onToken      []func(tokens.Token)
}

// New creates a lexer reading from source.
// Every identifier produced gets a row in table.
func New(source io.Reader, table *symbols.Table, options ...Option) *Lexer {
	l := &Lexer{
		source: bufio.NewReader(source),
		table:  table,
		line:   1,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// Line returns the current line counter, starting at 1.
func (l *Lexer) Line() int {
	return l.line
}

func (l *Lexer) Table() *symbols.Table {
	return l.table
}

func (l *Lexer) read() (rune, error) {
	if l.hasPending {
		l.hasPending = false
		return l.pending, nil
	}
	r, size, err := l.source.ReadRune()
	if err == io.EOF {
		return eof, nil
	}
	if err != nil {
		return 0, err
	}
	if r == utf8.RuneError && size == 1 {
		return badByte, nil
	}
	return r, nil
}

func (l *Lexer) unread(r rune) {
	if l.hasPending {
		panic("lexer pushback slot already taken")
	}
	l.pending = r
	l.hasPending = true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Next returns the next token, or an *Error.
// At end of input it keeps returning EOF tokens.
func (l *Lexer) Next() (tokens.Token, error) {
	token, err := l.next()
	if err != nil {
		return tokens.Token{}, err
	}
	for _, fn := range l.onToken {
		fn(token)
	}
	return token, nil
}

func (l *Lexer) next() (tokens.Token, error) {
	st := stateStart
	var lexeme strings.Builder

	for {
		c, err := l.read()
		if err != nil {
			return tokens.Token{}, err
		}

		switch st {

		case stateStart:
			switch {
			case c == eof:
				return l.emit(tokens.EOF), nil
			case c == '\n':
				l.line++
			case c == ' ' || c == '\t' || c == '\r':
			case unicode.IsLetter(c):
				lexeme.WriteRune(c)
				st = stateIdentifier
			case c == '0':
				lexeme.WriteRune(c)
				st = stateLeadingZero
			case isDigit(c):
				lexeme.WriteRune(c)
				st = stateInteger
			case c == '"':
				st = stateString
			case c == '&':
				lexeme.WriteRune(c)
				st = stateAmpersand
			case c == '/':
				lexeme.WriteRune(c)
				st = stateSlash
			case c == '|':
				lexeme.WriteRune(c)
				st = statePipe
			case c == '<' || c == '>' || c == '=' || c == '!':
				lexeme.WriteRune(c)
				st = stateRelop
			case strings.ContainsRune("(){};+-*,", c):
				kind, _ := tokens.Lookup(string(c))
				return l.emit(kind), nil
			default:
				return tokens.Token{}, l.fail(ErrInvalidToken, lexeme.String(), c)
			}

		case stateIdentifier:
			if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' {
				lexeme.WriteRune(c)
				continue
			}
			l.unread(c)
			text := lexeme.String()
			if kind, ok := tokens.Lookup(text); ok && kind.IsKeyword() {
				return l.emit(kind), nil
			}
			l.table.DeclareIfAbsent(text, l.line)
			token := l.emit(tokens.Identifier)
			token.Text = text
			return token, nil

		case stateLeadingZero:
			if c == '.' {
				lexeme.WriteRune(c)
				st = stateFloat
				continue
			}
			l.unread(c)
			return l.integer(lexeme.String())

		case stateInteger:
			if isDigit(c) {
				lexeme.WriteRune(c)
				continue
			}
			if c == '.' {
				lexeme.WriteRune(c)
				st = stateFloat
				continue
			}
			l.unread(c)
			return l.integer(lexeme.String())

		case stateFloat:
			if isDigit(c) {
				lexeme.WriteRune(c)
				continue
			}
			l.unread(c)
			return l.float(lexeme.String())

		case stateString:
			if c == badByte {
				return tokens.Token{}, l.fail(ErrInvalidToken, lexeme.String(), c)
			}
			if c == '"' {
				token := l.emit(tokens.StringLiteral)
				token.Text = lexeme.String()
				return token, nil
			}
			if c == '\n' {
				l.line++
			}
			if c != eof {
				lexeme.WriteRune(c)
			}

		case stateAmpersand:
			if c == '&' {
				return l.emit(tokens.And), nil
			}
			l.unread(c)
			return tokens.Token{}, l.fail(ErrInvalidToken, lexeme.String(), c)

		case statePipe:
			if c == '|' {
				return l.emit(tokens.Or), nil
			}
			l.unread(c)
			return tokens.Token{}, l.fail(ErrInvalidToken, lexeme.String(), c)

		case stateSlash:
			if c == '*' {
				st = stateBlockComment
				continue
			}
			if c == '/' && l.lineComments {
				st = stateLineComment
				continue
			}
			l.unread(c)
			return l.emit(tokens.Div), nil

		case stateLineComment:
			if c == '\n' {
				l.line++
				lexeme.Reset()
				st = stateStart
			} else if c == eof {
				l.unread(c)
				lexeme.Reset()
				st = stateStart
			}
			continue

		case stateBlockComment:
			if c == '*' {
				st = stateBlockCommentStar
			} else if c == '\n' {
				l.line++
			}

		case stateBlockCommentStar:
			switch c {
			case '/':
				lexeme.Reset()
				st = stateStart
			case '*':
			case '\n':
				l.line++
				st = stateBlockComment
			default:
				st = stateBlockComment
			}

		case stateRelop:
			if c == '=' {
				lexeme.WriteRune(c)
			} else {
				l.unread(c)
			}
			kind, _ := tokens.Lookup(lexeme.String())
			return l.emit(kind), nil

		}

		if c == eof {
			return tokens.Token{}, l.fail(ErrUnexpectedEndOfInput, lexeme.String(), c)
		}
	}
}

func (l *Lexer) emit(kind tokens.Kind) tokens.Token {
	return tokens.Token{
		Kind: kind,
		Line: l.line,
	}
}

func (l *Lexer) integer(text string) (tokens.Token, error) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		e := l.fail(ErrInvalidToken, text, 0)
		e.Cause = err
		return tokens.Token{}, e
	}
	token := l.emit(tokens.IntLiteral)
	token.Int = v
	return token, nil
}

func (l *Lexer) float(text string) (tokens.Token, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		e := l.fail(ErrInvalidToken, text, 0)
		e.Cause = err
		return tokens.Token{}, e
	}
	token := l.emit(tokens.FloatLiteral)
	token.Float = v
	return token, nil
}

func (l *Lexer) fail(err error, lexeme string, c rune) *Error {
	near := lexeme
	if near == "" || c == badByte {
		switch c {
		case eof:
			near = "EOF"
		case badByte:
			near = lexeme + string(utf8.RuneError)
		default:
			near = string(c)
		}
	}
	ret := &Error{
		Err:  err,
		Line: l.line,
		Near: near,
	}
	if c == badByte {
		ret.Cause = ErrInvalidEncoding
	}
	return ret
}

// Tokens iterates tokens up to and including EOF, stopping at the first error.
func Tokens(l *Lexer) iter.Seq2[tokens.Token, error] {
	return func(yield func(tokens.Token, error) bool) {
		for {
			token, err := l.Next()
			if err != nil {
				yield(token, err)
				return
			}
			if !yield(token, nil) {
				return
			}
			if token.Kind == tokens.EOF {
				return
			}
		}
	}
}
