package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.SetOutput(buf)
	executor.Define("check", Func(func(path string) {}).Desc("check a file"))
	executor.Define("tokens", Func(func(path string) {}).Desc("dump tokens").Alias("toks"))
	executor.Define("debug", Sub(map[string]*Command{
		"-trace": Func(func() {}).Desc("trace tokens"),
	}).Desc("debug commands"))
	executor.PrintUsage()

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %q", out)
	}
	if !strings.HasPrefix(lines[0], "-h, help, -help, --help") {
		t.Fatalf("got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "check") || !strings.Contains(lines[1], "check a file") {
		t.Fatalf("got %q", lines[1])
	}
	if !strings.HasPrefix(lines[3], "  -trace") {
		t.Fatalf("got %q", lines[3])
	}
	if !strings.HasPrefix(lines[4], "tokens, toks") {
		t.Fatalf("got %q", lines[4])
	}
}
