package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/reusee/classcheck/analyzers"
	"github.com/reusee/classcheck/cmds"
	"github.com/reusee/classcheck/sources"
	"github.com/reusee/dscope"
)

func init() {
	cmds.Define("repl", cmds.Func(func() {
		actions = append(actions, runREPL)
	}).Desc("check one program per input line"))
}

func runREPL(ctx context.Context, scope dscope.Scope) bool {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".classcheck_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return false
	}
	defer rl.Close()

	out := newOutput(os.Stdout)
	scope.Call(func(
		analyze analyzers.Analyze,
	) {
		for n := 1; ; n++ {
			line, err := rl.Readline()
			if err != nil { // Ctrl-C or Ctrl-D
				break
			}
			if line == "" {
				continue
			}
			src := sources.NewSource(fmt.Sprintf("<repl:%d>", n), line)
			table, err := analyze(ctx, src)
			if err != nil {
				out.fail(err)
				continue
			}
			out.ok(fmt.Sprintf("%s (%d symbols)", src.Name, table.Len()))
		}
	})
	return true
}
