package main

import (
	"runtime"

	"github.com/reusee/classcheck/analyzers"
	"github.com/reusee/classcheck/cmds"
	"github.com/reusee/classcheck/configs"
	"github.com/reusee/classcheck/debugs"
	"github.com/reusee/classcheck/sources"
	"github.com/reusee/classcheck/vars"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Analyzers analyzers.Module
	Sources   sources.Module
	Debugs    debugs.Module
}

var jobsFlag = cmds.Var[int]("-jobs")

func init() {
	cmds.Define("-serial", cmds.Func(func() {
		*jobsFlag = 1
	}).Desc("check one source at a time"))
}

// Jobs is the maximum number of sources checked in parallel.
type Jobs int

func (Module) Jobs(
	loader configs.Loader,
) Jobs {
	return vars.FirstNonZero(
		Jobs(*jobsFlag),
		configs.First[Jobs](loader, "jobs"),
		Jobs(runtime.NumCPU()),
	)
}
