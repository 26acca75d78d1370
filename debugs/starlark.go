package debugs

import (
	"fmt"

	"github.com/reusee/classcheck/semantics"
	"github.com/reusee/classcheck/symbols"
	"github.com/reusee/classcheck/tokens"
	"go.starlark.net/starlark"
)

// toStarlarkValue converts the values Globals exposes. Other types panic.
func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case starlark.Value:
		return v

	case tokens.Kind:
		return starlark.String(v.String())
	case semantics.Type:
		return starlark.String(v.String())
	case semantics.Class:
		return starlark.String(v.String())

	case tokens.Token:
		d := starlark.NewDict(4)
		d.SetKey(starlark.String("kind"), starlark.String(v.Kind.String()))
		d.SetKey(starlark.String("line"), starlark.MakeInt(v.Line))
		d.SetKey(starlark.String("lexeme"), starlark.String(v.Lexeme()))
		switch v.Kind {
		case tokens.IntLiteral:
			d.SetKey(starlark.String("value"), starlark.MakeInt64(v.Int))
		case tokens.FloatLiteral:
			d.SetKey(starlark.String("value"), starlark.Float(v.Float))
		case tokens.StringLiteral, tokens.Identifier:
			d.SetKey(starlark.String("value"), starlark.String(v.Text))
		}
		return d

	case symbols.Entry:
		d := starlark.NewDict(5)
		d.SetKey(starlark.String("lexeme"), starlark.String(v.Lexeme))
		d.SetKey(starlark.String("line"), starlark.MakeInt(v.Line))
		if v.HasType {
			d.SetKey(starlark.String("type"), starlark.String(v.Type.String()))
		} else {
			d.SetKey(starlark.String("type"), starlark.None)
		}
		if v.HasClass {
			d.SetKey(starlark.String("class"), starlark.String(v.Class.String()))
		} else {
			d.SetKey(starlark.String("class"), starlark.None)
		}
		d.SetKey(starlark.String("offset"), starlark.MakeInt(v.Offset))
		return d

	case bool:
		return starlark.Bool(v)
	case string:
		return starlark.String(v)
	case int:
		return starlark.MakeInt(v)
	case int64:
		return starlark.MakeInt64(v)
	case float64:
		return starlark.Float(v)

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}
