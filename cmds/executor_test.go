package cmds

import (
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var jobs int
	executor.Define("-serial", Func(func() {
		jobs = 1
	}))
	executor.Define("-jobs", Func(func(n int) {
		jobs = n
	}))

	if err := executor.Execute([]string{
		"-serial",
	}); err != nil {
		t.Fatal(err)
	}
	if jobs != 1 {
		t.Fatalf("got %v", jobs)
	}

	if err := executor.Execute([]string{
		"-jobs", "8",
	}); err != nil {
		t.Fatal(err)
	}
	if jobs != 8 {
		t.Fatalf("got %v", jobs)
	}

	err := executor.Execute([]string{
		"foo",
	})
	if err == nil || !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"-jobs", "many",
	})
	if err == nil || !strings.Contains(err.Error(), "convert many to int") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"-jobs",
	})
	if err == nil || !strings.Contains(err.Error(), "got nothing") {
		t.Fatalf("got %v", err)
	}
}

func TestArgumentTypes(t *testing.T) {
	executor := NewExecutor()
	var (
		b   bool
		u   uint8
		f   float64
		s   string
		opt *string
	)
	executor.Define("set", Func(func(b1 bool, u1 uint8, f1 float64, s1 string) {
		b, u, f, s = b1, u1, f1, s1
	}))
	executor.Define("opt", Func(func(p *string) {
		opt = p
	}))
	if err := executor.Execute([]string{"set", "yes", "7", "0.5", "x.cls"}); err != nil {
		t.Fatal(err)
	}
	if !b || u != 7 || f != 0.5 || s != "x.cls" {
		t.Fatalf("got %v %v %v %v", b, u, f, s)
	}
	if err := executor.Execute([]string{"opt"}); err != nil {
		t.Fatal(err)
	}
	if opt == nil || *opt != "" {
		t.Fatalf("got %v", opt)
	}
	if err := executor.Execute([]string{"opt", "a"}); err != nil {
		t.Fatal(err)
	}
	if *opt != "a" {
		t.Fatalf("got %v", *opt)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	executor.Define("fail", Func(func() error {
		return errBoom
	}))
	if err := executor.Execute([]string{"fail"}); err != errBoom {
		t.Fatalf("got %v", err)
	}
}

type boomError struct{}

func (boomError) Error() string {
	return "boom"
}

var errBoom error = boomError{}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var trace, path string
	executor.Define("check", Sub(map[string]*Command{
		"-trace": Func(func() {
			trace = "on"
		}),
		"file": Func(func(p string) {
			path = p
		}),
	}))

	if err := executor.Execute([]string{
		"check",
		"-trace",
		"file", "a.cls",
	}); err != nil {
		t.Fatal(err)
	}
	if trace != "on" {
		t.Fatalf("got %v", trace)
	}
	if path != "a.cls" {
		t.Fatalf("got %v", path)
	}

	// sub commands are not visible at top level
	if err := executor.Execute([]string{"file", "b.cls"}); err == nil {
		t.Fatal("should fail")
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{
		"foo", "bar",
	})
	if err == nil || !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestDuplicatedDefine(t *testing.T) {
	executor := NewExecutor()
	executor.Define("x", Func(func() {}))
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("should panic")
			}
		}()
		executor.Define("y", Func(func() {}).Alias("x"))
	}()
}

func TestBadFunc(t *testing.T) {
	for _, fn := range []any{
		42,
		func() int { return 0 },
		func() (error, error) { return nil, nil },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("should panic: %T", fn)
				}
			}()
			Func(fn)
		}()
	}
}

func TestVariadic(t *testing.T) {
	executor := NewExecutor()
	var jobs int
	var paths []string
	executor.Define("-jobs", Func(func(n int) {
		jobs = n
	}))
	executor.Define("check", Func(func(first string, rest ...string) {
		paths = append([]string{first}, rest...)
	}))
	if err := executor.Execute([]string{"-jobs", "2", "check", "a.cls", "dir", "b.cls"}); err != nil {
		t.Fatal(err)
	}
	if jobs != 2 {
		t.Fatalf("got %v", jobs)
	}
	if len(paths) != 3 || paths[0] != "a.cls" || paths[2] != "b.cls" {
		t.Fatalf("got %v", paths)
	}

	// trailing arguments are not parsed as commands
	if err := executor.Execute([]string{"check", "-jobs", "1"}); err != nil {
		t.Fatal(err)
	}
	if jobs != 2 || len(paths) != 3 || paths[1] != "-jobs" {
		t.Fatalf("got %v %v", jobs, paths)
	}

	if err := executor.Execute([]string{"check"}); err == nil {
		t.Fatal("should fail")
	}
}
