package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

var testSchema = `
str?: string
list?: [...int]
`

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "test.cue", `str: "bar", list: [1, 2, 3]`),
	}, testSchema)

	var str string
	err := loader.AssignFirst("str", &str)
	if err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	err = loader.AssignFirst("list", &list)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("not", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "test.cue", `str: "bar"`),
		writeFile(t, "empty.cue", ``),
		writeFile(t, "test2.cue", `str: "foo"`),
	}, testSchema)

	var strs []string
	for value, err := range loader.IterCueValues("str") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		strs = append(strs, s)
	}
	if str := fmt.Sprintf("%v", strs); str != "[bar foo]" {
		t.Fatalf("got %q", str)
	}

	files, err := loader.Files()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Fatalf("got %v", files)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "bad.cue", `unknown_field: "x"`),
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		filepath.Join(t.TempDir(), "none.cue"),
	}, testSchema)
	var str string
	if err := loader.AssignFirst("str", &str); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
}

func TestSchema(t *testing.T) {
	good := NewLoader([]string{
		writeFile(t, "good.cue", `
line_comments: true
jobs: 4
match: "\\.cls$"
proxy_addr: "socks5://127.0.0.1:1080"
`),
	}, Schema)
	if !First[bool](good, "line_comments") {
		t.Fatal()
	}
	if n := First[int](good, "jobs"); n != 4 {
		t.Fatalf("got %v", n)
	}
	if First[bool](good, "trace_tokens") {
		t.Fatal()
	}

	for _, content := range []string{
		`jobs: 0`,
		`jobs: "4"`,
		`line_comment: true`,
	} {
		loader := NewLoader([]string{
			writeFile(t, "bad.cue", content),
		}, Schema)
		var n int
		if err := loader.AssignFirst("jobs", &n); err == nil || errors.Is(err, ErrValueNotFound) {
			t.Fatalf("%s: got %v", content, err)
		}
	}
}
