package main

import (
	"context"
	"os"

	"github.com/reusee/classcheck/analyzers"
	"github.com/reusee/classcheck/cmds"
	"github.com/reusee/classcheck/logs"
	"github.com/reusee/classcheck/sources"
	"github.com/reusee/classcheck/syncs"
	"github.com/reusee/dscope"
)

func init() {
	cmds.Define("check", cmds.Func(func(path string, paths ...string) {
		actions = append(actions, func(ctx context.Context, scope dscope.Scope) bool {
			return runCheck(ctx, scope, append([]string{path}, paths...))
		})
	}).Desc("check files, directories or URLs; must be the last command"))
}

func runCheck(ctx context.Context, scope dscope.Scope, paths []string) (ok bool) {
	ok = true
	out := newOutput(os.Stdout)
	scope.Call(func(
		provider sources.Provider,
		analyze analyzers.Analyze,
		jobs Jobs,
		logger logs.Logger,
	) {
		var srcs []*sources.Source
		for src, err := range provider.IterSources(ctx, paths) {
			if err != nil {
				out.fail(err)
				ok = false
				break
			}
			srcs = append(srcs, src)
		}
		logger.InfoContext(ctx, "check", "sources", len(srcs), "jobs", jobs)

		sem := syncs.NewSemaphore(int(jobs))
		for src, err := range syncs.Ordered(ctx, sem, srcs, func(ctx context.Context, src *sources.Source) error {
			_, err := analyze(ctx, src)
			return err
		}) {
			if err != nil {
				out.fail(err)
				ok = false
				continue
			}
			out.ok(src.Name)
		}
	})
	return
}
