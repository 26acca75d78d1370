package debugs

import (
	"testing"

	"github.com/reusee/classcheck/semantics"
	"github.com/reusee/classcheck/symbols"
	"github.com/reusee/classcheck/tokens"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	dict := func(kvs ...any) starlark.Value {
		d := starlark.NewDict(len(kvs) / 2)
		for i := 0; i < len(kvs); i += 2 {
			d.SetKey(kvs[i].(starlark.Value), kvs[i+1].(starlark.Value))
		}
		return d
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"string", "hello", starlark.String("hello")},
		{"int", 42, starlark.MakeInt(42)},
		{"int64", int64(42), starlark.MakeInt64(42)},
		{"float64", 3.14, starlark.Float(3.14)},
		{"kind", tokens.Add, starlark.String("ADD")},
		{"type", semantics.Float, starlark.String("float")},
		{"class", semantics.Variable, starlark.String("variable")},
		{"int token", tokens.Token{Kind: tokens.IntLiteral, Line: 2, Int: 7}, dict(
			starlark.String("kind"), starlark.String("INTEGER_CONST"),
			starlark.String("line"), starlark.MakeInt(2),
			starlark.String("lexeme"), starlark.String("7"),
			starlark.String("value"), starlark.MakeInt(7),
		)},
		{"entry", symbols.Entry{Lexeme: "x", Line: 3, Type: semantics.Int, HasType: true, Offset: 1}, dict(
			starlark.String("lexeme"), starlark.String("x"),
			starlark.String("line"), starlark.MakeInt(3),
			starlark.String("type"), starlark.String("int"),
			starlark.String("class"), starlark.None,
			starlark.String("offset"), starlark.MakeInt(1),
		)},
		{"keyword token", tokens.Token{Kind: tokens.Class, Line: 1}, dict(
			starlark.String("kind"), starlark.String("CLASS"),
			starlark.String("line"), starlark.MakeInt(1),
			starlark.String("lexeme"), starlark.String("class"),
		)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue([]int{1, 2})
	})
}
