package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/classcheck/analyzers"
	"github.com/reusee/classcheck/cmds"
	"github.com/reusee/classcheck/lexers"
	"github.com/reusee/classcheck/sources"
	"github.com/reusee/classcheck/symbols"
	"github.com/reusee/classcheck/tokens"
	"github.com/reusee/dscope"
)

func init() {
	cmds.Define("tokens", cmds.Func(func(path string) {
		actions = append(actions, func(ctx context.Context, scope dscope.Scope) bool {
			return runTokens(ctx, scope, path)
		})
	}).Desc("print the tokens and the symbol table of a source"))
}

// analyzeOne analyzes the first source found at path and records its tokens.
func analyzeOne(ctx context.Context, scope dscope.Scope, path string) (
	src *sources.Source,
	toks []tokens.Token,
	table *symbols.Table,
	err error,
) {
	scope.Call(func(
		provider sources.Provider,
		analyze analyzers.Analyze,
	) {
		for s, e := range provider.IterSources(ctx, []string{path}) {
			src, err = s, e
			break
		}
		if err != nil {
			return
		}
		if src == nil {
			err = fmt.Errorf("no source found at %s", path)
			return
		}
		table, err = analyze(ctx, src, lexers.OnToken(func(token tokens.Token) {
			toks = append(toks, token)
		}))
	})
	return
}

func runTokens(ctx context.Context, scope dscope.Scope, path string) bool {
	out := newOutput(os.Stdout)
	_, toks, table, err := analyzeOne(ctx, scope, path)
	for _, token := range toks {
		pt("%4d  %s\n", token.Line, token)
	}
	if table != nil {
		pt("\n%s", table)
	}
	if err != nil {
		out.fail(err)
		return false
	}
	return true
}
