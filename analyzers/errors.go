package analyzers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reusee/classcheck/semantics"
	"github.com/reusee/classcheck/tokens"
)

var (
	ErrUnexpectedToken = errors.New("unexpected token")

	ErrDuplicateDeclaration   = errors.New("duplicate declaration")
	ErrUndeclaredIdentifier   = errors.New("undeclared identifier")
	ErrWrongDeclarationClass  = errors.New("wrong declaration class")
	ErrConditionNotBoolean    = errors.New("condition not boolean")
	ErrIncompatibleAssignment = errors.New("incompatible assignment")
	ErrIncompatibleOperands   = errors.New("incompatible operands")
)

type SyntaxError struct {
	Line     int
	Expected []tokens.Kind
	Found    tokens.Token
}

func (s *SyntaxError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "unexpected token at line %d", s.Line)
	if len(s.Expected) > 0 {
		sb.WriteString(": expecting ")
		for i, kind := range s.Expected {
			if i > 0 {
				if i == len(s.Expected)-1 {
					sb.WriteString(" or ")
				} else {
					sb.WriteString(", ")
				}
			}
			sb.WriteString(kind.Describe())
		}
		sb.WriteString(" but got ")
	} else {
		sb.WriteString(": ")
	}
	sb.WriteString(describeToken(s.Found))
	return sb.String()
}

func (s *SyntaxError) Unwrap() error {
	return ErrUnexpectedToken
}

func (s *SyntaxError) ErrorLine() int {
	return s.Line
}

func describeToken(token tokens.Token) string {
	switch token.Kind {
	case tokens.Identifier:
		return "identifier '" + token.Text + "'"
	case tokens.StringLiteral:
		return `string literal "` + token.Text + `"`
	case tokens.IntLiteral, tokens.FloatLiteral:
		return token.Kind.Describe() + " " + token.Lexeme()
	}
	return token.Kind.Describe()
}

type SemanticError struct {
	Err  error
	Line int
	// Lexeme is the identifier involved, if any.
	Lexeme string
	// Operator is the operator lexeme for operand errors.
	Operator string
	// Types are the offending types, left to right.
	Types []semantics.Type
	// Expected is the required type or class, for diagnostics.
	Expected string
}

func (s *SemanticError) Error() string {
	var detail string
	switch s.Err {
	case ErrDuplicateDeclaration:
		detail = fmt.Sprintf("identifier '%s' is already defined", s.Lexeme)
	case ErrUndeclaredIdentifier:
		detail = fmt.Sprintf("identifier '%s' is not defined", s.Lexeme)
	case ErrWrongDeclarationClass:
		detail = fmt.Sprintf("'%s' is not a %s", s.Lexeme, s.Expected)
	case ErrConditionNotBoolean:
		detail = fmt.Sprintf("condition must be boolean, got %s", joinTypes(s.Types))
	case ErrIncompatibleAssignment:
		detail = fmt.Sprintf("%s cannot be assigned to '%s' of type %s", joinTypes(s.Types), s.Lexeme, s.Expected)
	case ErrIncompatibleOperands:
		if s.Operator != "" {
			detail = fmt.Sprintf("bad operand types (%s) for operator '%s'", joinTypes(s.Types), s.Operator)
		} else {
			detail = fmt.Sprintf("incompatible types (%s)", joinTypes(s.Types))
		}
	default:
		detail = s.Err.Error()
	}
	return fmt.Sprintf("%s at line %d: %s", s.Err.Error(), s.Line, detail)
}

func (s *SemanticError) Unwrap() error {
	return s.Err
}

func (s *SemanticError) ErrorLine() int {
	return s.Line
}

func joinTypes(types []semantics.Type) string {
	strs := make([]string, len(types))
	for i, t := range types {
		strs[i] = t.String()
	}
	return strings.Join(strs, " and ")
}
