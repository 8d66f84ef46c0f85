package eqscript_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/eolymp/go-eqscript"
	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	type tok = eqscript.Token

	tt := []struct {
		name   string
		input  string
		output []eqscript.Token
	}{
		{
			name:   "empty",
			input:  "",
			output: []tok{{Kind: eqscript.EOFToken, Pos: 0}},
		},
		{
			name:  "superscript",
			input: "x^2",
			output: []tok{
				{Kind: eqscript.TextToken, Value: "x", Pos: 0},
				{Kind: eqscript.SuperscriptToken, Value: "^", Pos: 1},
				{Kind: eqscript.NumberToken, Value: "2", Pos: 2},
				{Kind: eqscript.EOFToken, Pos: 3},
			},
		},
		{
			name:  "command with groups",
			input: "\\frac{a}{b}",
			output: []tok{
				{Kind: eqscript.CommandToken, Value: "frac", Pos: 0},
				{Kind: eqscript.OpenBraceToken, Value: "{", Pos: 5},
				{Kind: eqscript.TextToken, Value: "a", Pos: 6},
				{Kind: eqscript.CloseBraceToken, Value: "}", Pos: 7},
				{Kind: eqscript.OpenBraceToken, Value: "{", Pos: 8},
				{Kind: eqscript.TextToken, Value: "b", Pos: 9},
				{Kind: eqscript.CloseBraceToken, Value: "}", Pos: 10},
				{Kind: eqscript.EOFToken, Pos: 11},
			},
		},
		{
			name:  "whitespace collapses",
			input: "a  +\n3.14",
			output: []tok{
				{Kind: eqscript.TextToken, Value: "a", Pos: 0},
				{Kind: eqscript.WhitespaceToken, Value: " ", Pos: 1},
				{Kind: eqscript.OperatorToken, Value: "+", Pos: 3},
				{Kind: eqscript.WhitespaceToken, Value: " ", Pos: 4},
				{Kind: eqscript.NumberToken, Value: "3.14", Pos: 5},
				{Kind: eqscript.EOFToken, Pos: 9},
			},
		},
		{
			name:  "escaped symbols and row break",
			input: "\\{\\,\\\\&\\}",
			output: []tok{
				{Kind: eqscript.CommandToken, Value: "{", Pos: 0},
				{Kind: eqscript.CommandToken, Value: ",", Pos: 2},
				{Kind: eqscript.RowBreakToken, Value: "\\\\", Pos: 4},
				{Kind: eqscript.AmpersandToken, Value: "&", Pos: 6},
				{Kind: eqscript.CommandToken, Value: "}", Pos: 7},
				{Kind: eqscript.EOFToken, Pos: 9},
			},
		},
		{
			name:  "brackets parens and pipes",
			input: "|f(x)|[1]",
			output: []tok{
				{Kind: eqscript.PipeToken, Value: "|", Pos: 0},
				{Kind: eqscript.TextToken, Value: "f", Pos: 1},
				{Kind: eqscript.OpenParenToken, Value: "(", Pos: 2},
				{Kind: eqscript.TextToken, Value: "x", Pos: 3},
				{Kind: eqscript.CloseParenToken, Value: ")", Pos: 4},
				{Kind: eqscript.PipeToken, Value: "|", Pos: 5},
				{Kind: eqscript.OpenBracketToken, Value: "[", Pos: 6},
				{Kind: eqscript.NumberToken, Value: "1", Pos: 7},
				{Kind: eqscript.CloseBracketToken, Value: "]", Pos: 8},
				{Kind: eqscript.EOFToken, Pos: 9},
			},
		},
		{
			name:  "letter run is a single token",
			input: "αβ\\alpha",
			output: []tok{
				{Kind: eqscript.TextToken, Value: "αβ", Pos: 0},
				{Kind: eqscript.CommandToken, Value: "alpha", Pos: 2},
				{Kind: eqscript.EOFToken, Pos: 8},
			},
		},
		{
			name:  "subscript and operators",
			input: "a_1=b'",
			output: []tok{
				{Kind: eqscript.TextToken, Value: "a", Pos: 0},
				{Kind: eqscript.SubscriptToken, Value: "_", Pos: 1},
				{Kind: eqscript.NumberToken, Value: "1", Pos: 2},
				{Kind: eqscript.OperatorToken, Value: "=", Pos: 3},
				{Kind: eqscript.TextToken, Value: "b", Pos: 4},
				{Kind: eqscript.OperatorToken, Value: "'", Pos: 5},
				{Kind: eqscript.EOFToken, Pos: 6},
			},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, err := eqscript.Tokenize(tc.input)
			if err != nil {
				t.Fatalf("Unable to tokenize: %v", err)
			}

			if diff := cmp.Diff(tc.output, got); diff != "" {
				t.Errorf("Tokens do not match (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeError(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		char   rune
		offset int
	}{
		{name: "unknown character", input: "#", char: '#', offset: 0},
		{name: "unknown character after text", input: "x + $", char: '$', offset: 4},
		{name: "trailing backslash", input: "a\\", char: '\\', offset: 1},
		{name: "digit after backslash", input: "\\1", char: '1', offset: 1},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := eqscript.Tokenize(tc.input)

			var lexErr *eqscript.LexError
			if !errors.As(err, &lexErr) {
				t.Fatalf("Expected LexError, got %v", err)
			}

			if lexErr.Char != tc.char || lexErr.Offset != tc.offset {
				t.Errorf("Error does not match: want %q at %d, got %q at %d", tc.char, tc.offset, lexErr.Char, lexErr.Offset)
			}

			if lexErr.Source != tc.input {
				t.Errorf("Error source does not match: want %q, got %q", tc.input, lexErr.Source)
			}
		})
	}
}

func TestTokenizer_KeepsReturningEOF(t *testing.T) {
	lexer := eqscript.NewTokenizer(strings.NewReader("x"))

	for i := 0; i < 3; i++ {
		if _, err := lexer.Token(); err != nil {
			t.Fatalf("Unable to read token: %v", err)
		}
	}

	got, err := lexer.Token()
	if err != nil {
		t.Fatalf("Unable to read token: %v", err)
	}

	if got.Kind != eqscript.EOFToken {
		t.Errorf("Expected %v, got %v", eqscript.EOFToken, got.Kind)
	}
}
