package main

import (
	"context"
	"os"

	"github.com/reusee/classcheck/cmds"
	"github.com/reusee/classcheck/debugs"
	"github.com/reusee/classcheck/symbols"
	"github.com/reusee/dscope"
)

func init() {
	cmds.Define("inspect", cmds.Func(func(path string) {
		actions = append(actions, func(ctx context.Context, scope dscope.Scope) bool {
			return runInspect(ctx, scope, path)
		})
	}).Desc("analyze a source then explore tokens and symbols in a starlark session"))

	cmds.Define("query", cmds.Func(func(path string, expr string) {
		actions = append(actions, func(ctx context.Context, scope dscope.Scope) bool {
			return runQuery(ctx, scope, path, expr)
		})
	}).Desc("analyze a source then print the value of a starlark expression"))
}

func runInspect(ctx context.Context, scope dscope.Scope, path string) bool {
	out := newOutput(os.Stderr)
	src, toks, table, err := analyzeOne(ctx, scope, path)
	if src == nil {
		out.fail(err)
		return false
	}
	if err != nil {
		// the tap still opens on partial results
		out.fail(err)
	}
	if table == nil {
		table = symbols.New()
	}
	scope.Call(func(
		tap debugs.Tap,
	) {
		tap(ctx, src.Name, debugs.Globals(toks, table))
	})
	return err == nil
}

func runQuery(ctx context.Context, scope dscope.Scope, path string, expr string) bool {
	out := newOutput(os.Stderr)
	src, toks, table, err := analyzeOne(ctx, scope, path)
	if src == nil {
		out.fail(err)
		return false
	}
	if table == nil {
		table = symbols.New()
	}
	value, evalErr := debugs.Eval(expr, debugs.Globals(toks, table))
	if evalErr != nil {
		out.fail(evalErr)
		return false
	}
	pt("%s\n", value)
	if err != nil {
		out.fail(err)
		return false
	}
	return true
}
