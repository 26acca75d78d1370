package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

type output struct {
	w     io.Writer
	color bool
}

func newOutput(file *os.File) *output {
	return &output{
		w:     file,
		color: term.IsTerminal(int(file.Fd())),
	}
}

func (o *output) paint(code string, s string) string {
	if !o.color {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

func (o *output) ok(name string) {
	fmt.Fprintf(o.w, "%s %s\n", o.paint("32", "ok"), name)
}

func (o *output) fail(err error) {
	fmt.Fprintf(o.w, "%s %v\n", o.paint("31", "FAIL"), err)
}
