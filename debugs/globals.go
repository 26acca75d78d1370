package debugs

import (
	"github.com/reusee/classcheck/symbols"
	"github.com/reusee/classcheck/tokens"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// Globals exposes the result of one analysis to starlark code.
//
//	tokens      list of token dicts, in input order
//	symbols     list of symbol table rows, in insertion order
//	lookup(n)   the row of lexeme n, or None
//	type_of(n)  the declared type name of n, or ""
//	class_of(n) the declared class name of n, or ""
func Globals(toks []tokens.Token, table *symbols.Table) starlark.StringDict {
	tokenValues := make([]starlark.Value, 0, len(toks))
	for _, token := range toks {
		tokenValues = append(tokenValues, toStarlarkValue(token))
	}

	var entryValues []starlark.Value
	for entry := range table.Entries() {
		entryValues = append(entryValues, toStarlarkValue(entry))
	}

	lookup := starlark.NewBuiltin("lookup", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var name string
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &name); err != nil {
			return nil, err
		}
		entry, ok := table.Lookup(name)
		if !ok {
			return starlark.None, nil
		}
		return toStarlarkValue(entry), nil
	})

	return starlark.StringDict{
		"tokens":  starlark.NewList(tokenValues),
		"symbols": starlark.NewList(entryValues),
		"lookup":  lookup,
		"type_of": starlarkutil.MakeFunc("type_of", func(name string) string {
			typ, ok := table.Type(name)
			if !ok {
				return ""
			}
			return typ.String()
		}),
		"class_of": starlarkutil.MakeFunc("class_of", func(name string) string {
			class, ok := table.Class(name)
			if !ok {
				return ""
			}
			return class.String()
		}),
	}
}
