package analyzers

import (
	"io"
	"slices"

	"github.com/reusee/classcheck/lexers"
	"github.com/reusee/classcheck/semantics"
	"github.com/reusee/classcheck/symbols"
	"github.com/reusee/classcheck/tokens"
)

// Analyzer is a predictive recursive-descent parser with one token of lookahead.
// Semantic checks run as each production is recognized; the first error stops the run.
type Analyzer struct {
	lexer    *lexers.Lexer
	table    *symbols.Table
	current  tokens.Token
	previous tokens.Token
}

func New(lexer *lexers.Lexer) *Analyzer {
	return &Analyzer{
		lexer: lexer,
		table: lexer.Table(),
	}
}

// Check analyzes a whole compilation unit read from r.
// The returned table is populated even when an error is returned.
func Check(r io.Reader, options ...lexers.Option) (*symbols.Table, error) {
	table := symbols.New()
	analyzer := New(lexers.New(r, table, options...))
	return table, analyzer.Run()
}

// Run analyzes the program and requires the input to end right after it.
func (a *Analyzer) Run() error {
	if err := a.advance(); err != nil {
		return err
	}
	if err := a.program(); err != nil {
		return err
	}
	if !a.at(tokens.EOF) {
		return a.unexpected(tokens.EOF)
	}
	return nil
}

func (a *Analyzer) Table() *symbols.Table {
	return a.table
}

func (a *Analyzer) advance() error {
	token, err := a.lexer.Next()
	if err != nil {
		return err
	}
	a.previous = a.current
	a.current = token
	return nil
}

func (a *Analyzer) at(kinds ...tokens.Kind) bool {
	return slices.Contains(kinds, a.current.Kind)
}

func (a *Analyzer) eat(kind tokens.Kind) error {
	if a.current.Kind != kind {
		return a.unexpected(kind)
	}
	return a.advance()
}

func (a *Analyzer) unexpected(expected ...tokens.Kind) error {
	return &SyntaxError{
		Line:     a.current.Line,
		Expected: expected,
		Found:    a.current,
	}
}

// declare fills the row of a declaration site, which must still be empty.
func (a *Analyzer) declare(ident tokens.Token, typ semantics.Type, class semantics.Class) error {
	if a.table.Declared(ident.Text) {
		return &SemanticError{
			Err:    ErrDuplicateDeclaration,
			Line:   ident.Line,
			Lexeme: ident.Text,
		}
	}
	a.table.SetType(ident.Text, typ)
	a.table.SetClass(ident.Text, class)
	return nil
}

// use resolves a use site, which must name a declared variable.
func (a *Analyzer) use(ident tokens.Token) (semantics.Type, error) {
	entry, _ := a.table.Lookup(ident.Text)
	if !entry.Declared() {
		return semantics.Error, &SemanticError{
			Err:    ErrUndeclaredIdentifier,
			Line:   ident.Line,
			Lexeme: ident.Text,
		}
	}
	if !entry.HasClass || entry.Class != semantics.Variable {
		return semantics.Error, &SemanticError{
			Err:      ErrWrongDeclarationClass,
			Line:     ident.Line,
			Lexeme:   ident.Text,
			Expected: semantics.Variable.String(),
		}
	}
	return entry.Type, nil
}

func operandError(op tokens.Token, types ...semantics.Type) error {
	return &SemanticError{
		Err:      ErrIncompatibleOperands,
		Line:     op.Line,
		Operator: op.Kind.Lexeme(),
		Types:    types,
	}
}
