package eqscript

import (
	"fmt"
)

// DefaultMaxDepth limits nesting of groups, arguments and elements in both
// front-ends.
const DefaultMaxDepth = 256

// Parser converts LaTeX math into a tree. A parser is meant for one call to
// Parse and must not be shared.
type Parser struct {
	source   string
	tokens   []Token
	pos      int
	depth    int
	maxDepth int
	brackets int // number of enclosing optional arguments, "]" terminates a sequence only inside one
}

func ParseLatex(src string) (Node, error) {
	return NewParser(src).Parse()
}

func NewParser(src string) *Parser {
	return &Parser{source: src, maxDepth: DefaultMaxDepth}
}

// SetMaxDepth changes the nesting limit, values below 1 restore the default
func (p *Parser) SetMaxDepth(depth int) {
	if depth < 1 {
		depth = DefaultMaxDepth
	}

	p.maxDepth = depth
}

func (p *Parser) Parse() (Node, error) {
	tokens, err := Tokenize(p.source)
	if err != nil {
		return nil, err
	}

	p.tokens = tokens
	p.pos = 0

	node, err := p.sequence()
	if err != nil {
		return nil, err
	}

	if t := p.peek(); t.Kind != EOFToken {
		return nil, p.errorf(t.Pos, "unexpected %s", describe(t))
	}

	return node, nil
}

// sequence reads elements until a terminator, a single element is returned as is
func (p *Parser) sequence() (Node, error) {
	var children []Node
	for {
		p.whitespaces()
		if p.terminator() {
			break
		}

		node, err := p.element()
		if err != nil {
			return nil, err
		}

		children = append(children, node)
	}

	if len(children) == 1 {
		return children[0], nil
	}

	return &Sequence{Children: children}, nil
}

// nested reads a sequence in a fresh bracket context, used for {...} and \left...\right
func (p *Parser) nested() (Node, error) {
	brackets := p.brackets
	p.brackets = 0
	defer func() { p.brackets = brackets }()

	return p.sequence()
}

func (p *Parser) terminator() bool {
	t := p.peek()
	switch t.Kind {
	case EOFToken, CloseBraceToken, AmpersandToken, RowBreakToken:
		return true
	case CloseBracketToken:
		return p.brackets > 0
	case CommandToken:
		return t.Value == "right"
	default:
		return false
	}
}

// element reads an atom with optional sub- and superscript. Both scripts
// given in any order are merged into a single SubSuper node.
func (p *Parser) element() (Node, error) {
	base, err := p.atom()
	if err != nil {
		return nil, err
	}

	p.whitespaces()

	switch p.peek().Kind {
	case SuperscriptToken:
		p.next()
		sup, err := p.script()
		if err != nil {
			return nil, err
		}

		p.whitespaces()
		if p.peek().Kind != SubscriptToken {
			return &Superscript{Base: base, Sup: sup}, nil
		}

		p.next()
		sub, err := p.script()
		if err != nil {
			return nil, err
		}

		return &SubSuper{Base: base, Sub: sub, Sup: sup}, nil
	case SubscriptToken:
		p.next()
		sub, err := p.script()
		if err != nil {
			return nil, err
		}

		p.whitespaces()
		if p.peek().Kind != SuperscriptToken {
			return &Subscript{Base: base, Sub: sub}, nil
		}

		p.next()
		sup, err := p.script()
		if err != nil {
			return nil, err
		}

		return &SubSuper{Base: base, Sub: sub, Sup: sup}, nil
	default:
		return base, nil
	}
}

// script reads a sub- or superscript argument one nesting level below the base
func (p *Parser) script() (Node, error) {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > p.maxDepth {
		p.whitespaces()
		return nil, p.errorf(p.peek().Pos, "nesting is deeper than %d levels", p.maxDepth)
	}

	return p.argument()
}

func (p *Parser) atom() (Node, error) {
	p.depth++
	defer func() { p.depth-- }()

	p.whitespaces()
	t := p.peek()

	if p.depth > p.maxDepth {
		return nil, p.errorf(t.Pos, "nesting is deeper than %d levels", p.maxDepth)
	}

	switch t.Kind {
	case OpenBraceToken:
		return p.group()
	case CommandToken:
		return p.command()
	case TextToken:
		p.next()
		return letters(t.Value), nil
	case NumberToken:
		p.next()
		return &Number{Value: t.Value}, nil
	case OperatorToken, OpenParenToken, CloseParenToken, OpenBracketToken, CloseBracketToken, PipeToken:
		p.next()
		return &Symbol{Name: t.Value}, nil
	default:
		return nil, p.errorf(t.Pos, "unexpected %s", describe(t))
	}
}

// letters turns a run of letters into symbols, every letter is a variable on its own
func letters(text string) Node {
	runes := []rune(text)
	if len(runes) == 1 {
		return &Symbol{Name: text}
	}

	seq := &Sequence{}
	for _, r := range runes {
		seq.Children = append(seq.Children, &Symbol{Name: string(r)})
	}

	return seq
}

func (p *Parser) group() (Node, error) {
	if _, err := p.expect(OpenBraceToken); err != nil {
		return nil, err
	}

	content, err := p.nested()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(CloseBraceToken); err != nil {
		return nil, err
	}

	return &Group{Child: content}, nil
}

func (p *Parser) command() (Node, error) {
	t := p.next()
	name := t.Value

	switch name {
	case "frac", "dfrac":
		return p.fraction(t, FractionPlain)
	case "tfrac":
		return p.fraction(t, FractionSmall)
	case "binom":
		return p.fraction(t, FractionBinomial)
	case "sqrt":
		return p.sqrt(t)
	case "left":
		return p.leftRight(t)
	case "text", "mathrm", "textrm":
		return p.text(t)
	case "mathbf", "mathit", "boldsymbol":
		// font style is not represented in the script, keep the content only
		return p.parameter(t)
	}

	if _, ok := bigOperators[name]; ok {
		return p.bigOperator(name)
	}

	if _, ok := functionNames[name]; ok {
		// the operand follows naturally in the enclosing sequence
		return &Function{Name: name}, nil
	}

	if _, ok := accents[name]; ok {
		arg, err := p.argument()
		if err != nil {
			return nil, err
		}

		return &Function{Name: name, Arg: arg}, nil
	}

	if v, ok := spacingCommands[name]; ok {
		return &Symbol{Name: v}, nil
	}

	// greek letters, known symbols and unknown commands alike
	return &Symbol{Name: name}, nil
}

// fraction reads \frac{num}{den} and its variants
func (p *Parser) fraction(c Token, style FractionStyle) (Node, error) {
	num, err := p.parameter(c)
	if err != nil {
		return nil, err
	}

	den, err := p.parameter(c)
	if err != nil {
		return nil, err
	}

	return &Fraction{Num: num, Den: den, Style: style}, nil
}

// sqrt reads \sqrt[index]{radicand}
func (p *Parser) sqrt(c Token) (Node, error) {
	p.whitespaces()

	var index Node
	if p.peek().Kind == OpenBracketToken {
		p.next()

		p.brackets++
		content, err := p.sequence()
		p.brackets--

		if err != nil {
			return nil, err
		}

		if _, err := p.expect(CloseBracketToken); err != nil {
			return nil, err
		}

		if seq, ok := content.(*Sequence); !ok || len(seq.Children) > 0 {
			index = content
		}
	}

	radicand, err := p.parameter(c)
	if err != nil {
		return nil, err
	}

	return &Root{Radicand: radicand, Index: index}, nil
}

// bigOperator reads optional limits after \sum, \int and alike in either order
func (p *Parser) bigOperator(name string) (Node, error) {
	op := &BigOperator{Name: name}

	for {
		p.whitespaces()

		switch {
		case p.peek().Kind == SubscriptToken && op.Lower == nil:
			p.next()
			lower, err := p.argument()
			if err != nil {
				return nil, err
			}

			op.Lower = lower
		case p.peek().Kind == SuperscriptToken && op.Upper == nil:
			p.next()
			upper, err := p.argument()
			if err != nil {
				return nil, err
			}

			op.Upper = upper
		default:
			return op, nil
		}
	}
}

// leftRight reads \left<delim> ... \right<delim>, a missing \right closes with ")"
func (p *Parser) leftRight(c Token) (Node, error) {
	left, err := p.delimiter()
	if err != nil {
		return nil, err
	}

	content, err := p.nested()
	if err != nil {
		return nil, err
	}

	p.whitespaces()
	if t := p.peek(); t.Kind != CommandToken || t.Value != "right" {
		return &Delimiter{Left: left, Right: ")", Content: content}, nil
	}

	p.next()

	right, err := p.delimiter()
	if err != nil {
		return nil, err
	}

	return &Delimiter{Left: left, Right: right, Content: content}, nil
}

// delimiter reads the symbol following \left or \right
func (p *Parser) delimiter() (string, error) {
	p.whitespaces()
	t := p.peek()

	switch t.Kind {
	case OpenParenToken, CloseParenToken, OpenBracketToken, CloseBracketToken, PipeToken, OperatorToken:
		p.next()
		return t.Value, nil
	case CommandToken:
		p.next()
		switch t.Value {
		case "{", "lbrace":
			return "\\{", nil
		case "}", "rbrace":
			return "\\}", nil
		case "langle":
			return "<", nil
		case "rangle":
			return ">", nil
		default:
			return t.Value, nil
		}
	default:
		return "", p.errorf(t.Pos, "expected delimiter, got %s", describe(t))
	}
}

// text reads the parameter of \text and alike verbatim
func (p *Parser) text(c Token) (Node, error) {
	p.whitespaces()

	if t := p.peek(); t.Kind != OpenBraceToken {
		return nil, p.errorf(t.Pos, "expected '{' after \\%s, got %s", c.Value, describe(t))
	}

	p.next()

	value := ""
	depth := 0
	for {
		t := p.peek()
		switch {
		case t.Kind == EOFToken:
			return nil, p.errorf(t.Pos, "unterminated \\%s", c.Value)
		case t.Kind == CloseBraceToken && depth == 0:
			p.next()
			return &Text{Value: value}, nil
		case t.Kind == OpenBraceToken:
			depth++
		case t.Kind == CloseBraceToken:
			depth--
		}

		value += p.next().Value
	}
}

// parameter reads an obligatory parameter of command c: a {...} group, or
// a single atom when braces are omitted.
func (p *Parser) parameter(c Token) (Node, error) {
	p.whitespaces()

	if t := p.peek(); p.terminator() {
		return nil, p.errorf(t.Pos, "expected '{' after \\%s, got %s", c.Value, describe(t))
	}

	return p.argument()
}

// argument reads a script or accent argument: {...} content or a single atom
func (p *Parser) argument() (Node, error) {
	p.whitespaces()
	t := p.peek()

	if t.Kind == EOFToken {
		return nil, p.errorf(t.Pos, "expected argument, got %s", describe(t))
	}

	if t.Kind != OpenBraceToken {
		return p.atom()
	}

	p.next()

	content, err := p.nested()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(CloseBraceToken); err != nil {
		return nil, err
	}

	return content, nil
}

func (p *Parser) whitespaces() {
	for p.peek().Kind == WhitespaceToken {
		p.pos++
	}
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: EOFToken, Pos: len([]rune(p.source))}
	}

	return p.tokens[p.pos]
}

func (p *Parser) next() Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}

	return t
}

func (p *Parser) expect(kind TokenKind) (Token, error) {
	t := p.peek()
	if t.Kind != kind {
		return t, p.errorf(t.Pos, "expected %s, got %s", kind, describe(t))
	}

	return p.next(), nil
}

func (p *Parser) errorf(pos int, format string, args ...any) error {
	return &ParseError{Message: fmt.Sprintf(format, args...), Offset: pos, Source: p.source}
}

// describe names a token for error messages
func describe(t Token) string {
	switch t.Kind {
	case CommandToken:
		return "command \\" + t.Value
	case TextToken, NumberToken, OperatorToken:
		return fmt.Sprintf("%s %q", t.Kind, t.Value)
	default:
		return t.Kind.String()
	}
}
