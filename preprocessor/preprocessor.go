/*
File    : lox-mix/preprocessor/preprocessor.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package preprocessor expands `import` directives in Lox source text
// before it reaches the lexer, by plain source-text substitution.
package preprocessor

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var importLine = regexp.MustCompile(`^\s*import\s+(?:<([A-Za-z_][A-Za-z0-9_]*)>|"([^"]+\.lox)")\s*;?\s*$`)
var classHeader = regexp.MustCompile(`class\s+([A-Za-z_][A-Za-z0-9_]*)`)

// Preprocessor expands import directives, guarding against duplicate
// inclusion of the same resolved path (header-guard semantics).
type Preprocessor struct {
	// Skipped records import directives that named a file the
	// preprocessor could not find. Missing imports are silently
	// skipped rather than an error; this slice is kept so a future
	// strict-imports mode has something to report.
	Skipped []string

	seen map[string]bool
}

// New returns a Preprocessor ready to expand one program's imports.
func New() *Preprocessor {
	return &Preprocessor{seen: make(map[string]bool)}
}

// Expand replaces every `import` directive found in source with the
// textual contents of the file it names. basePath is the path source
// was read from, used to resolve `import "relative.lox"` directives
// against the importing file's own directory; pass "" for REPL input,
// which resolves quoted imports against the process's working
// directory instead.
func (p *Preprocessor) Expand(source, basePath string) (string, error) {
	baseDir := "."
	if basePath != "" {
		baseDir = filepath.Dir(basePath)
	}
	return p.expandLines(source, baseDir, false)
}

func (p *Preprocessor) expandLines(source, baseDir string, isHeader bool) (string, error) {
	lines := strings.Split(source, "\n")
	var out strings.Builder
	for i, line := range lines {
		if m := importLine.FindStringSubmatch(line); m != nil {
			expanded, err := p.expandImport(m[1], m[2], baseDir)
			if err != nil {
				return "", err
			}
			out.WriteString(expanded)
		} else {
			out.WriteString(line)
		}
		if i != len(lines)-1 {
			out.WriteByte('\n')
		}
	}
	text := out.String()
	if isHeader {
		text = appendDefaultInstances(text)
	}
	return text, nil
}

// expandImport resolves one `import` directive (either angle-bracket
// name or quoted path) and returns the fully expanded contents of the
// file it names, or "" if the file could not be found or was already
// included once (header-guard).
func (p *Preprocessor) expandImport(headerName, quotedPath, baseDir string) (string, error) {
	isHeader := headerName != ""
	var path string
	if isHeader {
		resolved, ok := resolveHeader(headerName)
		if !ok {
			p.Skipped = append(p.Skipped, headerName+".lox")
			return "", nil
		}
		path = resolved
	} else {
		resolved, ok := resolveQuoted(quotedPath, baseDir)
		if !ok {
			p.Skipped = append(p.Skipped, quotedPath)
			return "", nil
		}
		path = resolved
	}

	canon := canonicalize(path)
	if p.seen[canon] {
		return "", nil
	}
	p.seen[canon] = true

	data, err := os.ReadFile(path)
	if err != nil {
		p.Skipped = append(p.Skipped, path)
		return "", nil
	}

	expanded, err := p.expandLines(string(data), filepath.Dir(path), isHeader)
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(expanded, "\n") {
		expanded += "\n"
	}
	return expanded, nil
}

// resolveHeader resolves an `import <name>` directive against the
// fixed headers directory search order: $LOX_HOME/lib, the directory
// next to the running executable, then ./headers.
func resolveHeader(name string) (string, bool) {
	for _, dir := range headerDirs() {
		candidate := filepath.Join(dir, name+".lox")
		if isFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func headerDirs() []string {
	var dirs []string
	if home := os.Getenv("LOX_HOME"); home != "" {
		dirs = append(dirs, filepath.Join(home, "lib"))
	}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	dirs = append(dirs, "headers")
	return dirs
}

// resolveQuoted resolves an `import "path.lox"` directive against the
// importing file's own directory, falling back to the cwd so
// REPL-driven imports (which have no importing file) still work.
func resolveQuoted(path, baseDir string) (string, bool) {
	candidate := filepath.Join(baseDir, path)
	if isFile(candidate) {
		return candidate, true
	}
	if isFile(path) {
		return path, true
	}
	return "", false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func canonicalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		return real
	}
	return abs
}

// appendDefaultInstances gives a header that declares a class with no
// `init` method a trailing `var NAME = NAME();`, so the class name
// also refers to a default instance. This is a cheap brace-matching
// scan, not a full parse; the preprocessor runs before lexing and
// must not depend on the parser.
func appendDefaultInstances(text string) string {
	var out strings.Builder
	i := 0
	for i < len(text) {
		loc := classHeader.FindStringSubmatchIndex(text[i:])
		if loc == nil {
			out.WriteString(text[i:])
			break
		}
		nameStart, nameEnd := i+loc[2], i+loc[3]
		headerEnd := i + loc[1]
		out.WriteString(text[i:headerEnd])
		name := text[nameStart:nameEnd]

		openRel := strings.IndexByte(text[headerEnd:], '{')
		if openRel < 0 {
			i = headerEnd
			continue
		}
		openIdx := headerEnd + openRel
		closeIdx, ok := matchBrace(text, openIdx)
		if !ok {
			i = headerEnd
			continue
		}

		body := text[openIdx : closeIdx+1]
		out.WriteString(text[headerEnd : closeIdx+1])
		if !strings.Contains(body, "init(") && !strings.Contains(body, "init (") {
			out.WriteString("\nvar " + name + " = " + name + "();")
		}
		i = closeIdx + 1
	}
	return out.String()
}

// matchBrace returns the index of the `}` that closes the `{` at
// openIdx, accounting for nested braces.
func matchBrace(text string, openIdx int) (int, bool) {
	depth := 0
	for j := openIdx; j < len(text); j++ {
		switch text[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return j, true
			}
		}
	}
	return 0, false
}
