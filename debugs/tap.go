package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/classcheck/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
)

// Tap opens an interactive starlark session on stdin with globals predeclared.
type Tap func(ctx context.Context, what string, globals starlark.StringDict)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals starlark.StringDict) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, globals)
	}
}
