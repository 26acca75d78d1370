package debugs

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Eval evaluates one starlark expression against globals.
func Eval(expr string, globals starlark.StringDict) (starlark.Value, error) {
	thread := &starlark.Thread{
		Name: "query",
	}
	return starlark.EvalOptions(fileOptions, thread, "query", expr, globals)
}
