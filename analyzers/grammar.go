package analyzers

import (
	"github.com/reusee/classcheck/semantics"
	"github.com/reusee/classcheck/tokens"
)

// program ::= "class" IDENT [decl-list] body
func (a *Analyzer) program() error {
	if err := a.eat(tokens.Class); err != nil {
		return err
	}
	if err := a.eat(tokens.Identifier); err != nil {
		return err
	}
	if err := a.declare(a.previous, semantics.Void, semantics.ClassName); err != nil {
		return err
	}
	if a.at(typeKinds...) {
		if err := a.declList(); err != nil {
			return err
		}
	}
	return a.body()
}

// decl-list ::= decl ";" { decl ";" }
func (a *Analyzer) declList() error {
	for {
		if err := a.decl(); err != nil {
			return err
		}
		if err := a.eat(tokens.SemiColon); err != nil {
			return err
		}
		if !a.at(typeKinds...) {
			return nil
		}
	}
}

// decl ::= type ident-list
func (a *Analyzer) decl() error {
	typ, err := a.typ()
	if err != nil {
		return err
	}
	return a.identList(typ)
}

// ident-list ::= IDENT { "," IDENT }
func (a *Analyzer) identList(typ semantics.Type) error {
	for {
		if err := a.eat(tokens.Identifier); err != nil {
			return err
		}
		if err := a.declare(a.previous, typ, semantics.Variable); err != nil {
			return err
		}
		if !a.at(tokens.Comma) {
			return nil
		}
		if err := a.advance(); err != nil {
			return err
		}
	}
}

// type ::= "int" | "string" | "float"
func (a *Analyzer) typ() (semantics.Type, error) {
	var ret semantics.Type
	switch a.current.Kind {
	case tokens.Int:
		ret = semantics.Int
	case tokens.String:
		ret = semantics.String
	case tokens.Float:
		ret = semantics.Float
	default:
		return semantics.Error, a.unexpected(typeKinds...)
	}
	return ret, a.advance()
}

// body ::= "{" [decl-list] stmt-list "}"
// Declarations may also open the body, as in "class A { int x; x = 1; }".
func (a *Analyzer) body() error {
	if err := a.eat(tokens.OpenCurly); err != nil {
		return err
	}
	if a.at(typeKinds...) {
		if err := a.declList(); err != nil {
			return err
		}
	}
	if err := a.stmtList(); err != nil {
		return err
	}
	return a.eat(tokens.CloseCurly)
}

func (a *Analyzer) block() error {
	if err := a.eat(tokens.OpenCurly); err != nil {
		return err
	}
	if err := a.stmtList(); err != nil {
		return err
	}
	return a.eat(tokens.CloseCurly)
}

// stmt-list ::= stmt ";" { stmt ";" }
func (a *Analyzer) stmtList() error {
	for {
		if err := a.stmt(); err != nil {
			return err
		}
		if err := a.eat(tokens.SemiColon); err != nil {
			return err
		}
		if !a.at(stmtStarts...) {
			return nil
		}
	}
}

// stmt ::= assign | if-stmt | do-stmt | read-stmt | write-stmt
func (a *Analyzer) stmt() error {
	switch a.current.Kind {
	case tokens.Identifier:
		return a.assign()
	case tokens.If:
		return a.ifStmt()
	case tokens.Do:
		return a.doStmt()
	case tokens.Read:
		return a.readStmt()
	case tokens.Write:
		return a.writeStmt()
	}
	return a.unexpected(stmtStarts...)
}

// assign ::= IDENT "=" simple-expr
func (a *Analyzer) assign() error {
	if err := a.eat(tokens.Identifier); err != nil {
		return err
	}
	target := a.previous
	targetType, err := a.use(target)
	if err != nil {
		return err
	}
	if err := a.eat(tokens.Assign); err != nil {
		return err
	}
	valueType, err := a.simpleExpr()
	if err != nil {
		return err
	}
	if valueType != targetType {
		return &SemanticError{
			Err:      ErrIncompatibleAssignment,
			Line:     target.Line,
			Lexeme:   target.Text,
			Types:    []semantics.Type{valueType},
			Expected: targetType.String(),
		}
	}
	return nil
}

// if-stmt ::= "if" "(" condition ")" "{" stmt-list "}" [ "else" "{" stmt-list "}" ]
func (a *Analyzer) ifStmt() error {
	if err := a.eat(tokens.If); err != nil {
		return err
	}
	if err := a.parenCondition(); err != nil {
		return err
	}
	if err := a.block(); err != nil {
		return err
	}
	if !a.at(tokens.Else) {
		return nil
	}
	if err := a.advance(); err != nil {
		return err
	}
	return a.block()
}

// do-stmt ::= "do" "{" stmt-list "}" "while" "(" condition ")"
func (a *Analyzer) doStmt() error {
	if err := a.eat(tokens.Do); err != nil {
		return err
	}
	if err := a.block(); err != nil {
		return err
	}
	if err := a.eat(tokens.While); err != nil {
		return err
	}
	return a.parenCondition()
}

// read-stmt ::= "read" "(" IDENT ")"
func (a *Analyzer) readStmt() error {
	if err := a.eat(tokens.Read); err != nil {
		return err
	}
	if err := a.eat(tokens.OpenParen); err != nil {
		return err
	}
	if err := a.eat(tokens.Identifier); err != nil {
		return err
	}
	if _, err := a.use(a.previous); err != nil {
		return err
	}
	return a.eat(tokens.CloseParen)
}

// write-stmt ::= "write" "(" simple-expr ")"
func (a *Analyzer) writeStmt() error {
	if err := a.eat(tokens.Write); err != nil {
		return err
	}
	if err := a.eat(tokens.OpenParen); err != nil {
		return err
	}
	if _, err := a.simpleExpr(); err != nil {
		return err
	}
	return a.eat(tokens.CloseParen)
}

func (a *Analyzer) parenCondition() error {
	if err := a.eat(tokens.OpenParen); err != nil {
		return err
	}
	if err := a.condition(); err != nil {
		return err
	}
	return a.eat(tokens.CloseParen)
}

// condition ::= expression
func (a *Analyzer) condition() error {
	line := a.current.Line
	typ, err := a.expression()
	if err != nil {
		return err
	}
	if typ != semantics.Boolean {
		return &SemanticError{
			Err:      ErrConditionNotBoolean,
			Line:     line,
			Types:    []semantics.Type{typ},
			Expected: semantics.Boolean.String(),
		}
	}
	return nil
}

// expression ::= simple-expr [ relop simple-expr ]
func (a *Analyzer) expression() (semantics.Type, error) {
	left, err := a.simpleExpr()
	if err != nil {
		return semantics.Error, err
	}
	if !a.at(relOps...) {
		return left, nil
	}
	op := a.current
	if err := a.advance(); err != nil {
		return semantics.Error, err
	}
	right, err := a.simpleExpr()
	if err != nil {
		return semantics.Error, err
	}
	result, ok := BinaryResult(op.Kind, left, right)
	if !ok {
		return semantics.Error, operandError(op, left, right)
	}
	return result, nil
}

// simple-expr ::= term simple-expr-rest
func (a *Analyzer) simpleExpr() (semantics.Type, error) {
	line := a.current.Line
	left, err := a.term()
	if err != nil {
		return semantics.Error, err
	}
	rest, err := a.simpleExprRest(left)
	if err != nil {
		return semantics.Error, err
	}
	if !semantics.Compatible(left, rest) {
		return semantics.Error, &SemanticError{
			Err:   ErrIncompatibleOperands,
			Line:  line,
			Types: []semantics.Type{left, rest},
		}
	}
	return left, nil
}

// simple-expr-rest ::= ("+"|"-"|"||") term simple-expr-rest | λ
func (a *Analyzer) simpleExprRest(left semantics.Type) (semantics.Type, error) {
	if !a.at(addOps...) {
		return semantics.Void, nil
	}
	op := a.current
	if err := a.advance(); err != nil {
		return semantics.Error, err
	}
	right, err := a.term()
	if err != nil {
		return semantics.Error, err
	}
	result, ok := BinaryResult(op.Kind, left, right)
	if !ok {
		return semantics.Error, operandError(op, left, right)
	}
	rest, err := a.simpleExprRest(result)
	if err != nil {
		return semantics.Error, err
	}
	if !semantics.Compatible(result, rest) {
		return semantics.Error, operandError(op, result, rest)
	}
	return result, nil
}

// term ::= factor-a term-rest
func (a *Analyzer) term() (semantics.Type, error) {
	left, err := a.factorA()
	if err != nil {
		return semantics.Error, err
	}
	rest, err := a.termRest(left)
	if err != nil {
		return semantics.Error, err
	}
	if rest == semantics.Void {
		return left, nil
	}
	return rest, nil
}

// term-rest ::= ("*"|"/"|"&&") factor-a term-rest | λ
func (a *Analyzer) termRest(left semantics.Type) (semantics.Type, error) {
	if !a.at(mulOps...) {
		return semantics.Void, nil
	}
	op := a.current
	if err := a.advance(); err != nil {
		return semantics.Error, err
	}
	right, err := a.factorA()
	if err != nil {
		return semantics.Error, err
	}
	result, ok := BinaryResult(op.Kind, left, right)
	if !ok {
		return semantics.Error, operandError(op, left, right)
	}
	rest, err := a.termRest(result)
	if err != nil {
		return semantics.Error, err
	}
	if !semantics.Compatible(result, rest) {
		return semantics.Error, operandError(op, result, rest)
	}
	return result, nil
}

// factor-a ::= factor | "!" factor | "-" factor
func (a *Analyzer) factorA() (semantics.Type, error) {
	switch a.current.Kind {
	case tokens.Not, tokens.Sub:
		op := a.current
		if err := a.advance(); err != nil {
			return semantics.Error, err
		}
		operand, err := a.factor()
		if err != nil {
			return semantics.Error, err
		}
		result, ok := UnaryResult(op.Kind, operand)
		if !ok {
			return semantics.Error, operandError(op, operand)
		}
		return result, nil
	}
	if a.at(factorStart...) {
		return a.factor()
	}
	return semantics.Error, a.unexpected(append([]tokens.Kind{tokens.Not, tokens.Sub}, factorStart...)...)
}

// factor ::= IDENT | INT-LIT | FLOAT-LIT | STRING-LIT | "(" expression ")"
func (a *Analyzer) factor() (semantics.Type, error) {
	switch a.current.Kind {
	case tokens.Identifier:
		if err := a.advance(); err != nil {
			return semantics.Error, err
		}
		return a.use(a.previous)
	case tokens.IntLiteral:
		return semantics.Int, a.advance()
	case tokens.FloatLiteral:
		return semantics.Float, a.advance()
	case tokens.StringLiteral:
		return semantics.String, a.advance()
	case tokens.OpenParen:
		if err := a.advance(); err != nil {
			return semantics.Error, err
		}
		typ, err := a.expression()
		if err != nil {
			return semantics.Error, err
		}
		return typ, a.eat(tokens.CloseParen)
	}
	return semantics.Error, a.unexpected(factorStart...)
}
