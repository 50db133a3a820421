/*
File    : lox-mix/cmd/lox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Lox-Mix interpreter. It
provides two modes of operation:
 1. REPL mode (default): interactive read-eval-print loop.
 2. File mode: execute a .lox source file given as the first argument.

Either way, the source runs through the preprocessor -> lexer ->
parser -> resolver -> interpreter pipeline.
*/
package main

import (
	"os"

	"github.com/akashmaji946/lox-mix/diag"
	"github.com/akashmaji946/lox-mix/interpreter"
	"github.com/akashmaji946/lox-mix/lexer"
	"github.com/akashmaji946/lox-mix/parser"
	"github.com/akashmaji946/lox-mix/preprocessor"
	"github.com/akashmaji946/lox-mix/repl"
	"github.com/akashmaji946/lox-mix/resolver"
)

// VERSION, AUTHOR, LICENSE describe this build for --version and the
// REPL banner.
const (
	VERSION = "v1.0.0"
	AUTHOR  = "akashmaji(@iisc.ac.in)"
	LICENSE = "MIT"
)

// PROMPT is the command prompt shown in REPL mode.
var PROMPT = "lox-mix >>> "

// BANNER is the ASCII-art logo shown when the REPL starts.
var BANNER = `
  __                      _
 / /  _____  __  /\/\ (_)_  __
/ /  / _ \ \/ /  /    \| \ \/ /
/ /__/ (_) >  <  / /\/\ \ |>  <
\____/\___/_/\_\ \/    \/_/_/\_\
`

// LINE is a separator used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

// Exit codes drawn from BSD sysexits: each error class carries a
// fixed code so wrapper scripts can distinguish fatal categories from
// one another.
const (
	exitOK           = 0
	exitUsageError   = 64 // syntax error: lex or parse
	exitDataError    = 65 // resolution (static scoping) error
	exitNoInput      = 66 // the named source file does not exist
	exitSoftwareFail = 70 // uncaught runtime error / uncaught throw
)

func main() {
	if len(os.Args) > 1 {
		switch arg := os.Args[1]; arg {
		case "--help", "-h":
			showHelp()
		case "--version", "-v":
			showVersion()
		default:
			os.Exit(runFile(arg))
		}
		return
	}

	repler := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	diag.Info(os.Stdout, "Lox-Mix - a tree-walking interpreter for the Lox language")
	diag.Info(os.Stdout, "")
	diag.Info(os.Stdout, "USAGE:")
	diag.Info(os.Stdout, "  lox                    Start interactive REPL mode")
	diag.Info(os.Stdout, "  lox <path-to-file>     Execute a .lox file")
	diag.Info(os.Stdout, "  lox --help             Display this help message")
	diag.Info(os.Stdout, "  lox --version          Display version information")
}

func showVersion() {
	diag.Info(os.Stdout, "Lox-Mix %s (%s, author %s)", VERSION, LICENSE, AUTHOR)
}

// runFile reads and executes a .lox source file, returning the
// sysexits-style exit code to use. The single recover() here is a
// last-resort net for a Go bug in the interpreter itself, not a Lox
// program error; those the pipeline always reports as ordinary
// error values.
func runFile(path string) (code int) {
	data, err := os.ReadFile(path)
	if err != nil {
		diag.Errorf(os.Stderr, "[FILE ERROR] could not read file '%s': %v", path, err)
		return exitNoInput
	}

	defer func() {
		if r := recover(); r != nil {
			diag.Errorf(os.Stderr, "[INTERNAL ERROR] %v", r)
			code = exitSoftwareFail
		}
	}()

	return run(string(data), path, os.Stdout, os.Stderr)
}

// run drives the full pipeline over one program's source text.
func run(source, path string, out, errOut *os.File) int {
	pp := preprocessor.New()
	expanded, err := pp.Expand(source, path)
	if err != nil {
		diag.Errorf(errOut, "[IMPORT ERROR] %v", err)
		return exitSoftwareFail
	}

	toks, err := lexer.New(expanded).ScanTokens()
	if err != nil {
		diag.Error(errOut, err.Error())
		return exitUsageError
	}

	par := parser.New(toks, expanded)
	stmts := par.Parse()
	if par.HasErrors() {
		for _, e := range par.Errors() {
			diag.Error(errOut, e.Error())
		}
		return exitUsageError
	}

	res := resolver.New()
	res.Resolve(stmts)
	if res.HasErrors() {
		for _, e := range res.Errors() {
			diag.Error(errOut, e.Error())
		}
		return exitDataError
	}

	in := interpreter.New(res.Depths, out, expanded)
	if err := in.Interpret(stmts); err != nil {
		diag.Report(errOut, err, expanded)
		return exitSoftwareFail
	}

	return exitOK
}
