/*
File    : lox-mix/diag/diag.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package diag centralizes the colored diagnostic output shared by
// cmd/lox and repl: red for errors, yellow for printed values, cyan
// for informational banners. One place keeps the file-mode CLI and
// the REPL consistent about what counts as an error versus a result.
package diag

import (
	"io"

	"github.com/fatih/color"
)

var (
	errorColor  = color.New(color.FgRed)
	valueColor  = color.New(color.FgYellow)
	infoColor   = color.New(color.FgCyan)
	bannerColor = color.New(color.FgGreen)
	lineColor   = color.New(color.FgBlue)
)

// Error prints a diagnostic (syntax, resolution, or runtime error) to
// w in red. Callers pass the already-rendered caret-highlighted text.
func Error(w io.Writer, text string) {
	errorColor.Fprintln(w, text)
}

// Errorf is the formatted variant of Error.
func Errorf(w io.Writer, format string, args ...interface{}) {
	errorColor.Fprintf(w, format+"\n", args...)
}

// Value prints a successful expression result (REPL mode) in yellow.
func Value(w io.Writer, text string) {
	valueColor.Fprintln(w, text)
}

// Info prints a banner/instructional line in cyan.
func Info(w io.Writer, format string, args ...interface{}) {
	infoColor.Fprintf(w, format+"\n", args...)
}

// Banner prints the ASCII-art banner in green.
func Banner(w io.Writer, text string) {
	bannerColor.Fprintln(w, text)
}

// Line prints a plain separator line in blue.
func Line(w io.Writer, text string) {
	lineColor.Fprintln(w, text)
}

// RenderableError is any error that can re-render itself with the
// program source text attached (the caret-highlighted diagnostic
// format). *interpreter.RuntimeError and *interpreter.ThrownValue
// both implement it.
type RenderableError interface {
	error
	Render(source string) string
}

// Report prints err to w: if it can render itself against source, the
// full caret-highlighted diagnostic is used; otherwise its plain
// Error() text is printed. Either way the text appears in red.
func Report(w io.Writer, err error, source string) {
	if r, ok := err.(RenderableError); ok {
		Error(w, r.Render(source))
		return
	}
	Error(w, err.Error())
}
