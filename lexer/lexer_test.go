package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox-mix/token"
)

func TestScanTokens_Operators(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []token.Kind
	}{
		{"arithmetic", "1 + 2 * 3 - 4 / 5", []token.Kind{
			token.NUMBER, token.PLUS, token.NUMBER, token.STAR, token.NUMBER,
			token.MINUS, token.NUMBER, token.SLASH, token.NUMBER, token.EOF,
		}},
		{"comparisons", "a <= b >= c != d == e", []token.Kind{
			token.IDENTIFIER, token.LESS_EQUAL, token.IDENTIFIER, token.GREATER_EQUAL,
			token.IDENTIFIER, token.BANG_EQUAL, token.IDENTIFIER, token.EQUAL_EQUAL,
			token.IDENTIFIER, token.EOF,
		}},
		{"floor div and mod", `7 \ 2 % 3`, []token.Kind{
			token.NUMBER, token.BACKSLASH, token.NUMBER, token.PERCENT, token.NUMBER, token.EOF,
		}},
		{"keywords", "if else while for fun class return break continue try catch finally throw", []token.Kind{
			token.IF, token.ELSE, token.WHILE, token.FOR, token.FUN, token.CLASS,
			token.RETURN, token.BREAK, token.CONTINUE, token.TRY, token.CATCH,
			token.FINALLY, token.THROW, token.EOF,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := New(tc.src).ScanTokens()
			require.NoError(t, err)
			got := make([]token.Kind, len(toks))
			for i, tok := range toks {
				got[i] = tok.Kind
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScanTokens_StringLiteral(t *testing.T) {
	toks, err := New(`"hello world"`).ScanTokens()
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestScanTokens_NumberLiterals(t *testing.T) {
	toks, err := New("42 3.14").ScanTokens()
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, int64(42), toks[0].Literal)
	assert.Equal(t, 3.14, toks[1].Literal)
}

func TestScanTokens_LineComment(t *testing.T) {
	toks, err := New("1 // a comment\n2").ScanTokens()
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, int64(1), toks[0].Literal)
	assert.Equal(t, int64(2), toks[1].Literal)
}

func TestScanTokens_BlockComment(t *testing.T) {
	toks, err := New("1 /* multi\nline */ 2").ScanTokens()
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, 2, toks[1].Line)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, err := New(`"oops`).ScanTokens()
	require.Error(t, err)
}

func TestScanTokens_UnterminatedBlockComment(t *testing.T) {
	_, err := New("/* never closes").ScanTokens()
	require.Error(t, err)
}

func TestScanTokens_UnknownCharacter(t *testing.T) {
	_, err := New("var x = @;").ScanTokens()
	require.Error(t, err)
}

func TestScanTokens_LineColumnTracking(t *testing.T) {
	toks, err := New("var x = 1;\nvar y = 2;").ScanTokens()
	require.NoError(t, err)
	// find the second 'var'
	count := 0
	for _, tok := range toks {
		if tok.Kind == token.VAR {
			count++
			if count == 2 {
				assert.Equal(t, 2, tok.Line)
				assert.Equal(t, 1, tok.Column)
			}
		}
	}
	assert.Equal(t, 2, count)
}
