package analyzers

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/classcheck/configs"
	"github.com/reusee/classcheck/lexers"
	"github.com/reusee/classcheck/logs"
	"github.com/reusee/classcheck/modes"
	"github.com/reusee/classcheck/sources"
	"github.com/reusee/classcheck/tokens"
	"github.com/reusee/dscope"
)

func testScope(t *testing.T, config string, buf *bytes.Buffer) dscope.Scope {
	t.Helper()
	var files []string
	if config != "" {
		path := filepath.Join(t.TempDir(), "classcheck.cue")
		if err := os.WriteFile(path, []byte(config), 0644); err != nil {
			t.Fatal(err)
		}
		files = append(files, path)
	}
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(files, configs.Schema)
		},
		func() logs.Writer {
			return buf
		},
	)
}

func TestModuleAnalyze(t *testing.T) {
	defer logs.SetLevel(logs.Level())
	logs.SetLevel(slog.LevelInfo)
	buf := new(bytes.Buffer)
	testScope(t, "", buf).Call(func(
		analyze Analyze,
	) {
		table, err := analyze(t.Context(), sources.NewSource("a.cls", "class A { int x; x = 1; }"))
		if err != nil {
			t.Fatal(err)
		}
		if !table.Declared("x") {
			t.Fatal()
		}

		_, err = analyze(t.Context(), sources.NewSource("b.cls", "class B\nint x;\n{ x = 1.5; }"))
		if !errors.Is(err, ErrIncompatibleAssignment) {
			t.Fatalf("got %v", err)
		}
		var lineErr *sources.LineError
		if !errors.As(err, &lineErr) {
			t.Fatalf("got %T", err)
		}
		if lineErr.Line != 3 || lineErr.Source.Name != "b.cls" {
			t.Fatalf("got %v", lineErr)
		}
		if !strings.HasPrefix(err.Error(), "b.cls:3: ") {
			t.Fatalf("got %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "check ok") || !strings.Contains(out, "source=a.cls") {
			t.Fatalf("got %q", out)
		}
		if !strings.Contains(out, "check failed") {
			t.Fatalf("got %q", out)
		}
		if strings.Count(out, "new span") != 2 {
			t.Fatalf("got %q", out)
		}
	})
}

func TestModuleOptions(t *testing.T) {
	testScope(t, "line_comments: true\ntrace_tokens: true\n", new(bytes.Buffer)).Call(func(
		options Options,
		analyze Analyze,
	) {
		if !options.LineComments || !options.TraceTokens {
			t.Fatalf("got %+v", options)
		}
		if _, err := analyze(t.Context(), sources.NewSource("a.cls", "class A int x; { x = 1; // note\n }")); err != nil {
			t.Fatal(err)
		}
	})

	testScope(t, "", new(bytes.Buffer)).Call(func(
		options Options,
		analyze Analyze,
	) {
		if options.LineComments || options.TraceTokens {
			t.Fatalf("got %+v", options)
		}
		_, err := analyze(t.Context(), sources.NewSource("a.cls", "class A int x; { x = 1; // note\n }"))
		if !errors.Is(err, ErrUnexpectedToken) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestModuleTraceTokens(t *testing.T) {
	defer logs.SetLevel(logs.Level())
	logs.SetLevel(slog.LevelDebug)
	buf := new(bytes.Buffer)
	testScope(t, "trace_tokens: true", buf).Call(func(
		analyze Analyze,
	) {
		var seen []tokens.Token
		_, err := analyze(
			t.Context(),
			sources.NewSource("a.cls", "class A { int x; x = 1; }"),
			lexers.OnToken(func(token tokens.Token) {
				seen = append(seen, token)
			}),
		)
		if err != nil {
			t.Fatal(err)
		}
		if len(seen) != 12 {
			t.Fatalf("got %v", seen)
		}
		if n := strings.Count(buf.String(), "msg=token"); n != 12 {
			t.Fatalf("got %v: %q", n, buf.String())
		}
	})
}
