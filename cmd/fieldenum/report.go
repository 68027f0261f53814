package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/signadot/fieldenum/fieldenum"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diagnostics prints errors as file:line:col: message lines.
type diagnostics struct {
	w   io.Writer
	pos *color.Color
	msg *color.Color
}

func newDiagnostics(f *os.File) *diagnostics {
	d := &diagnostics{
		w:   f,
		pos: color.New(color.Bold),
		msg: color.New(color.FgRed),
	}
	setColor(f, d.pos, d.msg)
	return d
}

// setColor enables colors on cs when w is a terminal.
func setColor(w io.Writer, cs ...*color.Color) {
	f, ok := w.(*os.File)
	tty := ok && isatty.IsTerminal(f.Fd())
	for _, c := range cs {
		if tty {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

func (d *diagnostics) report(err error) {
	for _, e := range flatten(err) {
		var gerr *fieldenum.GenerateError
		if errors.As(e, &gerr) && gerr.Pos.IsValid() {
			fmt.Fprintf(d.w, "%s %s\n",
				d.pos.Sprintf("%s:", gerr.Pos),
				d.msg.Sprintf("%s for %s: %v", gerr.Kind, gerr.Record, gerr.Err))
			continue
		}
		fmt.Fprintln(d.w, d.msg.Sprint(e.Error()))
	}
}

// flatten splits errors.Join results into their parts.
func flatten(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		var res []error
		for _, e := range j.Unwrap() {
			res = append(res, flatten(e)...)
		}
		return res
	}
	return []error{err}
}

const diffContext = 3

// writeDiff prints a line diff from old to new under a header naming path.
func writeDiff(w io.Writer, path, old, new string) {
	add, del, hdr := color.New(color.FgGreen), color.New(color.FgRed), color.New(color.FgCyan)
	setColor(w, add, del, hdr)

	fmt.Fprintln(w, hdr.Sprintf("--- %s (on disk)\n+++ %s (generated)", path, path))
	for _, d := range lineDiff(old, new) {
		lines := splitLines(d.Text)
		switch d.Type {
		case diffpatch.DiffInsert:
			for _, l := range lines {
				fmt.Fprintln(w, add.Sprint("+"+l))
			}
		case diffpatch.DiffDelete:
			for _, l := range lines {
				fmt.Fprintln(w, del.Sprint("-"+l))
			}
		case diffpatch.DiffEqual:
			if len(lines) > 2*diffContext {
				for _, l := range lines[:diffContext] {
					fmt.Fprintln(w, " "+l)
				}
				fmt.Fprintln(w, hdr.Sprint("@@"))
				lines = lines[len(lines)-diffContext:]
			}
			for _, l := range lines {
				fmt.Fprintln(w, " "+l)
			}
		}
	}
}

func lineDiff(old, new string) []diffpatch.Diff {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(old, new)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
