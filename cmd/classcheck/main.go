package main

import (
	"context"
	"os"

	"github.com/reusee/classcheck/cmds"
	"github.com/reusee/classcheck/modes"
	"github.com/reusee/dscope"
)

// actions run in command line order after all commands are parsed.
var actions []func(ctx context.Context, scope dscope.Scope) (ok bool)

func main() {
	cmds.Execute(os.Args[1:])
	if len(actions) == 0 {
		cmds.PrintUsage()
		os.Exit(2)
	}

	ctx := context.Background()
	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	failed := false
	for _, action := range actions {
		if !action(ctx, scope) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
