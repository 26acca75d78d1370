package cmds

import "testing"

func TestVar(t *testing.T) {
	match := Var[string]("-test-match")
	Execute([]string{"-test-match", `\.cls$`})
	if *match != `\.cls$` {
		t.Fatalf("got %v", *match)
	}
	Execute([]string{"-test-match."})
	if *match != "" {
		t.Fatalf("got %v", *match)
	}
}

func TestSwitch(t *testing.T) {
	trace := Switch("-test-trace")
	Execute([]string{"-test-trace"})
	if !*trace {
		t.Fatal()
	}
	Execute([]string{"!-test-trace"})
	if *trace {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	paths := Collect[string]("-test-path")
	Execute([]string{"-test-path", "a.cls", "-test-path", "b.cls"})
	if len(*paths) != 2 || (*paths)[0] != "a.cls" || (*paths)[1] != "b.cls" {
		t.Fatalf("got %v", *paths)
	}
}
