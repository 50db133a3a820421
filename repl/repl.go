/*
File    : lox-mix/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the interpreter.
It provides an interactive environment where users can enter Lox code
line by line, see immediate results, navigate history with the arrow
keys, and get colored feedback. Each line runs through the full
lex -> parse -> resolve -> interpret pipeline.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/akashmaji946/lox-mix/diag"
	"github.com/akashmaji946/lox-mix/interpreter"
	"github.com/akashmaji946/lox-mix/lexer"
	"github.com/akashmaji946/lox-mix/parser"
	"github.com/akashmaji946/lox-mix/preprocessor"
	"github.com/akashmaji946/lox-mix/resolver"
)

// Repl represents one interactive session. Unlike file mode, a Repl
// keeps one Interpreter (and one Resolver depth map) alive across
// every line so `var`/`fun`/`class` declarations from earlier lines
// stay visible to later ones, exactly like a real Lox toplevel would.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given banner and prompt configuration.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// printBanner shows the welcome banner and usage instructions.
func (r *Repl) printBanner(w io.Writer) {
	diag.Line(w, r.Line)
	diag.Banner(w, r.Banner)
	diag.Line(w, r.Line)
	diag.Info(w, "Version: %s | Author: %s | License: %s", r.Version, r.Author, r.License)
	diag.Line(w, r.Line)
	diag.Info(w, "Welcome to Lox-Mix!")
	diag.Info(w, "Type your code and press enter")
	diag.Info(w, "Type '.exit' to quit")
	diag.Info(w, "Use up/down arrows to navigate command history")
	diag.Line(w, r.Line)
}

// session carries the state that persists across REPL lines.
type session struct {
	depths *resolver.Resolver
	interp *interpreter.Interpreter
	text   strings.Builder // not written by run; error carets render against the current line only
}

func newSession(w io.Writer) *session {
	s := &session{depths: resolver.New()}
	s.interp = interpreter.New(s.depths.Depths, w, "")
	return s
}

// Start runs the REPL main loop until '.exit', EOF (Ctrl-D), or a
// readline error.
func (r *Repl) Start(_ io.Reader, w io.Writer) {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		diag.Errorf(w, "[REPL ERROR] could not start line editor: %v", err)
		return
	}
	defer rl.Close()

	pp := preprocessor.New()
	sess := newSession(w)

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			w.Write([]byte("Good Bye!\n"))
			return
		}

		rl.SaveHistory(line)
		sess.run(w, pp, line)
	}
}

// run lexes, parses, resolves, and interprets one line of input,
// reporting the first error encountered at whichever stage it
// occurred and leaving the session ready for the next line.
func (s *session) run(w io.Writer, pp *preprocessor.Preprocessor, line string) {
	expanded, err := pp.Expand(line, "")
	if err != nil {
		diag.Errorf(w, "[IMPORT ERROR] %v", err)
		return
	}

	toks, err := lexer.New(expanded).ScanTokens()
	if err != nil {
		diag.Error(w, err.Error())
		return
	}

	par := parser.New(toks, expanded)
	stmts := par.Parse()
	if par.HasErrors() {
		for _, e := range par.Errors() {
			diag.Error(w, e.Error())
		}
		return
	}

	s.depths.Reset()
	s.depths.Resolve(stmts)
	if s.depths.HasErrors() {
		for _, e := range s.depths.Errors() {
			diag.Error(w, e.Error())
		}
		return
	}

	if err := s.interp.Interpret(stmts); err != nil {
		diag.Report(w, err, expanded)
	}
}
