package eqscript_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/eolymp/go-eqscript"
	"github.com/google/go-cmp/cmp"
)

func sym(name string) *eqscript.Symbol {
	return &eqscript.Symbol{Name: name}
}

func num(value string) *eqscript.Number {
	return &eqscript.Number{Value: value}
}

func seq(children ...eqscript.Node) *eqscript.Sequence {
	return &eqscript.Sequence{Children: children}
}

func TestParseLatex(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		output eqscript.Node
	}{
		{name: "empty", input: "", output: &eqscript.Sequence{}},
		{name: "whitespace only", input: "  \t ", output: &eqscript.Sequence{}},
		{name: "single letter", input: "x", output: sym("x")},
		{name: "letter run", input: "ab", output: seq(sym("a"), sym("b"))},
		{name: "number", input: "3.14", output: num("3.14")},
		{name: "group", input: "{a}", output: &eqscript.Group{Child: sym("a")}},
		{
			name:   "superscript",
			input:  "x^2",
			output: &eqscript.Superscript{Base: sym("x"), Sup: num("2")},
		},
		{
			name:   "subscript with group",
			input:  "x_{i+1}",
			output: &eqscript.Subscript{Base: sym("x"), Sub: seq(sym("i"), sym("+"), num("1"))},
		},
		{
			name:   "subscript then superscript",
			input:  "x_i^2",
			output: &eqscript.SubSuper{Base: sym("x"), Sub: sym("i"), Sup: num("2")},
		},
		{
			name:   "superscript then subscript",
			input:  "x^2 _i",
			output: &eqscript.SubSuper{Base: sym("x"), Sub: sym("i"), Sup: num("2")},
		},
		{
			name:   "fraction",
			input:  "\\frac{a}{b}",
			output: &eqscript.Fraction{Num: sym("a"), Den: sym("b")},
		},
		{
			name:   "fraction without braces",
			input:  "\\frac a b",
			output: &eqscript.Fraction{Num: sym("a"), Den: sym("b")},
		},
		{
			name:   "text style fraction",
			input:  "\\tfrac{1}{2}",
			output: &eqscript.Fraction{Num: num("1"), Den: num("2"), Style: eqscript.FractionSmall},
		},
		{
			name:   "binomial",
			input:  "\\binom{n}{k}",
			output: &eqscript.Fraction{Num: sym("n"), Den: sym("k"), Style: eqscript.FractionBinomial},
		},
		{
			name:   "square root",
			input:  "\\sqrt{x}",
			output: &eqscript.Root{Radicand: sym("x")},
		},
		{
			name:   "root with index",
			input:  "\\sqrt[3]{x}",
			output: &eqscript.Root{Radicand: sym("x"), Index: num("3")},
		},
		{
			name:   "root with empty index",
			input:  "\\sqrt[]{x}",
			output: &eqscript.Root{Radicand: sym("x")},
		},
		{
			name:   "big operator with limits",
			input:  "\\sum_{i=1}^{n}",
			output: &eqscript.BigOperator{Name: "sum", Lower: seq(sym("i"), sym("="), num("1")), Upper: sym("n")},
		},
		{
			name:   "big operator with limits in reverse order",
			input:  "\\int^{b}_{a}",
			output: &eqscript.BigOperator{Name: "int", Lower: sym("a"), Upper: sym("b")},
		},
		{
			name:   "function",
			input:  "\\sin x",
			output: seq(&eqscript.Function{Name: "sin"}, sym("x")),
		},
		{
			name:   "function with subscript",
			input:  "\\log_2 x",
			output: seq(&eqscript.Subscript{Base: &eqscript.Function{Name: "log"}, Sub: num("2")}, sym("x")),
		},
		{
			name:   "accent",
			input:  "\\hat x",
			output: &eqscript.Function{Name: "hat", Arg: sym("x")},
		},
		{
			name:   "accent with group",
			input:  "\\overline{AB}",
			output: &eqscript.Function{Name: "overline", Arg: seq(sym("A"), sym("B"))},
		},
		{
			name:   "left right",
			input:  "\\left( x \\right]",
			output: &eqscript.Delimiter{Left: "(", Right: "]", Content: sym("x")},
		},
		{
			name:   "left right with braces and none",
			input:  "\\left\\{ x \\right.",
			output: &eqscript.Delimiter{Left: "\\{", Right: ".", Content: sym("x")},
		},
		{
			name:   "left right with angle brackets",
			input:  "\\left\\langle x \\right\\rangle",
			output: &eqscript.Delimiter{Left: "<", Right: ">", Content: sym("x")},
		},
		{
			name:   "left without right",
			input:  "\\left[ x",
			output: &eqscript.Delimiter{Left: "[", Right: ")", Content: sym("x")},
		},
		{
			name:   "text",
			input:  "\\text{a b}",
			output: &eqscript.Text{Value: "a b"},
		},
		{
			name:   "text with nested braces",
			input:  "\\text{a{b}}",
			output: &eqscript.Text{Value: "a{b}"},
		},
		{
			name:   "font style is dropped",
			input:  "\\mathbf{v}",
			output: sym("v"),
		},
		{
			name:   "escaped braces",
			input:  "\\{ x \\}",
			output: seq(sym("{"), sym("x"), sym("}")),
		},
		{
			name:   "spacing commands",
			input:  "a\\,b\\;c\\!d",
			output: seq(sym("a"), sym("thinspace"), sym("b"), sym("thickspace"), sym("c"), sym("negthinspace"), sym("d")),
		},
		{
			name:   "plain punctuation stays literal",
			input:  "a,b;c!",
			output: seq(sym("a"), sym(","), sym("b"), sym(";"), sym("c"), sym("!")),
		},
		{
			name:   "brackets outside optional argument",
			input:  "[0,1]",
			output: seq(sym("["), num("0"), sym(","), num("1"), sym("]")),
		},
		{
			name:   "unknown command",
			input:  "\\foobar",
			output: sym("foobar"),
		},
		{
			name:  "nested fraction in root",
			input: "\\sqrt{\\frac{1}{x}}",
			output: &eqscript.Root{
				Radicand: &eqscript.Fraction{Num: num("1"), Den: sym("x")},
			},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, err := eqscript.ParseLatex(tc.input)
			if err != nil {
				t.Fatalf("Unable to parse: %v", err)
			}

			if diff := cmp.Diff(tc.output, got); diff != "" {
				t.Errorf("Tree does not match (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseLatexError(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		offset int
	}{
		{name: "missing denominator", input: "\\frac{a}", offset: 8},
		{name: "missing numerator", input: "\\frac", offset: 5},
		{name: "missing script argument", input: "x^", offset: 2},
		{name: "unclosed group", input: "{a", offset: 2},
		{name: "unclosed optional argument", input: "\\sqrt[3{x}", offset: 10},
		{name: "stray closing brace", input: "a}", offset: 1},
		{name: "stray right", input: "x \\right)", offset: 2},
		{name: "alignment outside of environment", input: "a & b", offset: 2},
		{name: "row break", input: "a \\\\ b", offset: 2},
		{name: "bad delimiter", input: "\\left x \\right)", offset: 6},
		{name: "unterminated text", input: "\\text{abc", offset: 9},
		{name: "text without group", input: "\\text abc", offset: 6},
		{name: "double superscript", input: "x^2^3", offset: 3},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := eqscript.ParseLatex(tc.input)

			var parseErr *eqscript.ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Expected ParseError, got %v", err)
			}

			if parseErr.Offset != tc.offset {
				t.Errorf("Error offset does not match: want %d, got %d (%v)", tc.offset, parseErr.Offset, err)
			}

			if parseErr.Source != tc.input {
				t.Errorf("Error source does not match: want %q, got %q", tc.input, parseErr.Source)
			}
		})
	}
}

func TestParseLatex_LexError(t *testing.T) {
	_, err := eqscript.ParseLatex("a # b")
	if !eqscript.IsLexError(err) {
		t.Fatalf("Expected LexError, got %v", err)
	}
}

func TestParser_MaxDepth(t *testing.T) {
	deep := strings.Repeat("{", 300) + "x" + strings.Repeat("}", 300)

	if _, err := eqscript.ParseLatex(deep); !eqscript.IsParseError(err) {
		t.Errorf("Expected ParseError for %d nested groups, got %v", 300, err)
	}

	p := eqscript.NewParser("{{x}}")
	p.SetMaxDepth(2)
	if _, err := p.Parse(); !eqscript.IsParseError(err) {
		t.Errorf("Expected ParseError with depth limit 2, got %v", err)
	}

	p = eqscript.NewParser("{x}")
	p.SetMaxDepth(2)
	if _, err := p.Parse(); err != nil {
		t.Errorf("Unable to parse within depth limit: %v", err)
	}

	accents := strings.Repeat("\\hat ", 300) + "x"
	if _, err := eqscript.ParseLatex(accents); !eqscript.IsParseError(err) {
		t.Errorf("Expected ParseError for %d nested accents, got %v", 300, err)
	}

	for _, marker := range []string{"^", "_"} {
		scripts := strings.Repeat("x"+marker+"{", 300) + "x" + strings.Repeat("}", 300)
		if _, err := eqscript.ParseLatex(scripts); !eqscript.IsParseError(err) {
			t.Errorf("Expected ParseError for %d nested %q scripts, got %v", 300, marker, err)
		}

		scripts = strings.Repeat("x"+marker+"{", 100) + "x" + strings.Repeat("}", 100)
		if _, err := eqscript.ParseLatex(scripts); err != nil {
			t.Errorf("Unable to parse %d nested %q scripts: %v", 100, marker, err)
		}
	}
}
