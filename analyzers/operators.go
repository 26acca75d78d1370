package analyzers

import (
	"github.com/reusee/classcheck/semantics"
	"github.com/reusee/classcheck/tokens"
)

type binaryRule struct {
	accepts func(semantics.Type) bool
	result  func(semantics.Type) semantics.Type
}

func notBoolean(t semantics.Type) bool {
	return t != semantics.Boolean
}

func arithmetic(t semantics.Type) bool {
	return t != semantics.Boolean && t != semantics.String
}

func boolean(t semantics.Type) bool {
	return t == semantics.Boolean
}

func ordered(t semantics.Type) bool {
	return t != semantics.Boolean && t != semantics.String
}

func anyType(semantics.Type) bool {
	return true
}

func same(t semantics.Type) semantics.Type {
	return t
}

func toFloat(semantics.Type) semantics.Type {
	return semantics.Float
}

func toBoolean(semantics.Type) semantics.Type {
	return semantics.Boolean
}

// both operands must have the same type, which the rule then inspects
var binaryRules = map[tokens.Kind]binaryRule{
	tokens.Add: {notBoolean, same},
	tokens.Sub: {arithmetic, same},
	tokens.Or:  {boolean, same},

	tokens.Mul: {arithmetic, same},
	tokens.Div: {arithmetic, toFloat},
	tokens.And: {boolean, same},

	tokens.Lower:        {ordered, toBoolean},
	tokens.Greater:      {ordered, toBoolean},
	tokens.LowerEqual:   {ordered, toBoolean},
	tokens.GreaterEqual: {ordered, toBoolean},
	tokens.Equals:       {anyType, toBoolean},
	tokens.NotEquals:    {anyType, toBoolean},
}

// BinaryResult returns the type of left op right, or false when the operands are rejected.
func BinaryResult(op tokens.Kind, left, right semantics.Type) (semantics.Type, bool) {
	rule, ok := binaryRules[op]
	if !ok {
		return semantics.Error, false
	}
	if left != right || !rule.accepts(left) {
		return semantics.Error, false
	}
	return rule.result(left), true
}

// UnaryResult returns the type of op operand, or false when the operand is rejected.
func UnaryResult(op tokens.Kind, operand semantics.Type) (semantics.Type, bool) {
	switch op {
	case tokens.Not:
		if operand == semantics.Boolean {
			return semantics.Boolean, true
		}
	case tokens.Sub:
		if operand.Numeric() {
			return operand, true
		}
	}
	return semantics.Error, false
}

var (
	addOps      = []tokens.Kind{tokens.Add, tokens.Sub, tokens.Or}
	mulOps      = []tokens.Kind{tokens.Mul, tokens.Div, tokens.And}
	relOps      = []tokens.Kind{tokens.Greater, tokens.GreaterEqual, tokens.Lower, tokens.LowerEqual, tokens.NotEquals, tokens.Equals}
	typeKinds   = []tokens.Kind{tokens.Int, tokens.Float, tokens.String}
	stmtStarts  = []tokens.Kind{tokens.Identifier, tokens.If, tokens.Do, tokens.Read, tokens.Write}
	factorStart = []tokens.Kind{tokens.Identifier, tokens.IntLiteral, tokens.FloatLiteral, tokens.StringLiteral, tokens.OpenParen}
)
