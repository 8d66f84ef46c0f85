package eqscript

import (
	"encoding/xml"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Element is a generic MathML element.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []Element  `xml:",any"`
	Content  string     `xml:",chardata"`
}

// localName returns the tag name without namespace prefix
func (e *Element) localName() string {
	name := e.XMLName.Local
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		return name[i+1:]
	}

	return name
}

// attr returns the value of an attribute by local name
func (e *Element) attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}

	return "", false
}

// text returns the element's own character data, trimmed and NFC normalized
func (e *Element) text() string {
	return norm.NFC.String(strings.TrimSpace(e.Content))
}

// entities are named references accepted in MathML input
var entities = func() map[string]string {
	m := map[string]string{
		"ApplyFunction":     "\u2061",
		"af":                "\u2061",
		"InvisibleTimes":    "\u2062",
		"it":                "\u2062",
		"InvisibleComma":    "\u2063",
		"ic":                "\u2063",
		"PlusMinus":         "±",
		"MinusPlus":         "∓",
		"Sum":               "∑",
		"Product":           "∏",
		"Integral":          "∫",
		"Int":               "∬",
		"tint":              "∭",
		"conint":            "∮",
		"RightArrow":        "→",
		"LeftArrow":         "←",
		"Rightarrow":        "⇒",
		"Leftarrow":         "⇐",
		"PartialD":          "∂",
		"Del":               "∇",
		"le":                "≤",
		"ge":                "≥",
		"ne":                "≠",
		"LeftAngleBracket":  "⟨",
		"RightAngleBracket": "⟩",
		"langle":            "⟨",
		"rangle":            "⟩",
		"OverBar":           "¯",
		"UnderBar":          "_",
		"Hat":               "^",
		"DoubleVerticalBar": "‖",
		"VerticalBar":       "∣",
	}

	for k, v := range xml.HTMLEntity {
		if _, ok := m[k]; !ok {
			m[k] = v
		}
	}

	return m
}()

// DecodeMathML reads a MathML document into an element tree.
func DecodeMathML(src string) (*Element, error) {
	d := xml.NewDecoder(strings.NewReader(src))
	d.Entity = entities

	var root Element
	if err := d.Decode(&root); err != nil {
		return nil, &XMLError{Err: err}
	}

	for {
		t, err := d.Token()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, &XMLError{Err: err}
		}

		switch t := t.(type) {
		case xml.StartElement:
			return nil, &XMLError{Err: fmt.Errorf("unexpected element <%s> after document element", t.Name.Local)}
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return nil, &XMLError{Err: fmt.Errorf("unexpected text %q after document element", string(t))}
			}
		}
	}

	return &root, nil
}

// ParseMathML parses a Presentation MathML document into a tree.
func ParseMathML(src string) (Node, error) {
	return parseMathML(src, DefaultMaxDepth)
}

func parseMathML(src string, maxDepth int) (Node, error) {
	if strings.TrimSpace(src) == "" {
		return &Sequence{}, nil
	}

	root, err := DecodeMathML(src)
	if err != nil {
		return nil, err
	}

	return newMathMLParser(maxDepth).element(root)
}

type mathMLParser struct {
	depth    int
	maxDepth int
}

func newMathMLParser(maxDepth int) *mathMLParser {
	if maxDepth < 1 {
		maxDepth = DefaultMaxDepth
	}

	return &mathMLParser{maxDepth: maxDepth}
}

func (p *mathMLParser) element(e *Element) (Node, error) {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > p.maxDepth {
		return nil, &ParseError{Message: fmt.Sprintf("nesting is deeper than %d levels", p.maxDepth), Offset: -1}
	}

	switch e.localName() {
	case "mn":
		return &Number{Value: e.text()}, nil
	case "mi":
		return identifier(e.text()), nil
	case "mo":
		return operator(e.text()), nil
	case "mtext", "ms":
		return &Text{Value: e.text()}, nil
	case "mspace":
		return p.space(e), nil
	case "mfrac":
		return p.fraction(e)
	case "msqrt":
		radicand, err := p.children(e)
		if err != nil {
			return nil, err
		}

		return &Root{Radicand: radicand}, nil
	case "mroot":
		args, err := p.arguments(e, 2)
		if err != nil {
			return nil, err
		}

		return &Root{Radicand: args[0], Index: args[1]}, nil
	case "msup":
		return p.superscript(e)
	case "msub":
		return p.subscript(e)
	case "msubsup":
		return p.subsup(e)
	case "munder":
		return p.under(e)
	case "mover":
		return p.over(e)
	case "munderover":
		return p.underover(e)
	case "mfenced":
		return p.fenced(e)
	case "menclose":
		return p.enclose(e)
	case "annotation", "annotation-xml":
		return &Sequence{}, nil
	default:
		// math, mrow, mstyle, mpadded, mphantom, semantics and unknown tags
		return p.children(e)
	}
}

// children parses all child elements as a sequence. An element without
// children is read from its text.
func (p *mathMLParser) children(e *Element) (Node, error) {
	if len(e.Children) == 0 {
		text := e.text()
		if text == "" {
			return &Sequence{}, nil
		}

		return content(text), nil
	}

	nodes, err := p.list(e.Children)
	if err != nil {
		return nil, err
	}

	return sequence(nodes), nil
}

// list parses elements dropping the ones that produce nothing
func (p *mathMLParser) list(elements []Element) ([]Node, error) {
	var nodes []Node
	for i := range elements {
		node, err := p.element(&elements[i])
		if err != nil {
			return nil, err
		}

		if empty(node) {
			continue
		}

		nodes = append(nodes, node)
	}

	return nodes, nil
}

// arguments parses the first n children of a layout element that requires them
func (p *mathMLParser) arguments(e *Element, n int) ([]Node, error) {
	if len(e.Children) < n {
		return nil, &ParseError{Message: fmt.Sprintf("%s requires %d children, got %d", e.localName(), n, len(e.Children)), Offset: -1}
	}

	args := make([]Node, n)
	for i := 0; i < n; i++ {
		node, err := p.element(&e.Children[i])
		if err != nil {
			return nil, err
		}

		args[i] = node
	}

	return args, nil
}

func (p *mathMLParser) fraction(e *Element) (Node, error) {
	args, err := p.arguments(e, 2)
	if err != nil {
		return nil, err
	}

	return &Fraction{Num: args[0], Den: args[1], Style: FractionPlain}, nil
}

func (p *mathMLParser) superscript(e *Element) (Node, error) {
	args, err := p.arguments(e, 2)
	if err != nil {
		return nil, err
	}

	if op, ok := args[0].(*BigOperator); ok {
		return &BigOperator{Name: op.Name, Lower: op.Lower, Upper: args[1]}, nil
	}

	return &Superscript{Base: args[0], Sup: args[1]}, nil
}

func (p *mathMLParser) subscript(e *Element) (Node, error) {
	args, err := p.arguments(e, 2)
	if err != nil {
		return nil, err
	}

	switch base := args[0].(type) {
	case *BigOperator:
		return &BigOperator{Name: base.Name, Lower: args[1], Upper: base.Upper}, nil
	case *Function:
		// log_2 and alike, the function name becomes an ordinary base
		return &Subscript{Base: &Symbol{Name: base.Name}, Sub: args[1]}, nil
	default:
		return &Subscript{Base: base, Sub: args[1]}, nil
	}
}

func (p *mathMLParser) subsup(e *Element) (Node, error) {
	args, err := p.arguments(e, 3)
	if err != nil {
		return nil, err
	}

	if op, ok := args[0].(*BigOperator); ok {
		return &BigOperator{Name: op.Name, Lower: args[1], Upper: args[2]}, nil
	}

	return &SubSuper{Base: args[0], Sub: args[1], Sup: args[2]}, nil
}

func (p *mathMLParser) under(e *Element) (Node, error) {
	args, err := p.arguments(e, 2)
	if err != nil {
		return nil, err
	}

	if op, ok := args[0].(*BigOperator); ok {
		return &BigOperator{Name: op.Name, Lower: args[1], Upper: op.Upper}, nil
	}

	if accent, ok := underAccents[mark(&e.Children[1])]; ok {
		return &Function{Name: accent, Arg: args[0]}, nil
	}

	return &Subscript{Base: args[0], Sub: args[1]}, nil
}

func (p *mathMLParser) over(e *Element) (Node, error) {
	args, err := p.arguments(e, 2)
	if err != nil {
		return nil, err
	}

	if op, ok := args[0].(*BigOperator); ok {
		return &BigOperator{Name: op.Name, Lower: op.Lower, Upper: args[1]}, nil
	}

	if accent, ok := overAccents[mark(&e.Children[1])]; ok {
		return &Function{Name: accent, Arg: args[0]}, nil
	}

	return &Superscript{Base: args[0], Sup: args[1]}, nil
}

func (p *mathMLParser) underover(e *Element) (Node, error) {
	args, err := p.arguments(e, 3)
	if err != nil {
		return nil, err
	}

	if op, ok := args[0].(*BigOperator); ok {
		return &BigOperator{Name: op.Name, Lower: args[1], Upper: args[2]}, nil
	}

	return &SubSuper{Base: args[0], Sub: args[1], Sup: args[2]}, nil
}

// fenced reads <mfenced>, children are interleaved with separators
func (p *mathMLParser) fenced(e *Element) (Node, error) {
	left, _ := e.attr("open")
	if left == "" {
		left = "("
	}

	right, _ := e.attr("close")
	if right == "" {
		right = ")"
	}

	if v, ok := fences[left]; ok {
		left = v
	}

	if v, ok := fences[right]; ok {
		right = v
	}

	if len(e.Children) == 0 {
		content, err := p.children(e)
		if err != nil {
			return nil, err
		}

		return &Delimiter{Left: left, Right: right, Content: content}, nil
	}

	separators := []rune(",")
	if v, ok := e.attr("separators"); ok {
		separators = []rune(strings.Join(strings.Fields(v), ""))
	}

	nodes, err := p.list(e.Children)
	if err != nil {
		return nil, err
	}

	var items []Node
	for i, node := range nodes {
		if i > 0 && len(separators) > 0 {
			items = append(items, &Symbol{Name: string(separators[min(i-1, len(separators)-1)])})
		}

		items = append(items, node)
	}

	return &Delimiter{Left: left, Right: right, Content: sequence(items)}, nil
}

func (p *mathMLParser) enclose(e *Element) (Node, error) {
	content, err := p.children(e)
	if err != nil {
		return nil, err
	}

	notation, _ := e.attr("notation")
	notations := strings.Fields(notation)

	switch {
	case slices.Contains(notations, "top"), slices.Contains(notations, "overline"):
		return &Function{Name: "overline", Arg: content}, nil
	case slices.Contains(notations, "bottom"), slices.Contains(notations, "underline"):
		return &Function{Name: "underline", Arg: content}, nil
	case slices.Contains(notations, "radical"):
		return &Root{Radicand: content}, nil
	default:
		return content, nil
	}
}

// space turns <mspace width="..."/> into a spacing symbol, zero or unreadable widths produce nothing
func (p *mathMLParser) space(e *Element) Node {
	width, ok := e.attr("width")
	if !ok {
		return &Sequence{}
	}

	em, err := MeasureEm(width)
	if err != nil || em == 0 {
		return &Sequence{}
	}

	return &Symbol{Name: spacing(em)}
}

// identifier maps <mi> text
func identifier(text string) Node {
	if text == "" {
		return &Sequence{}
	}

	if v, ok := unicodeSymbols[text]; ok {
		return &Symbol{Name: v}
	}

	if _, ok := functionNames[text]; ok {
		return &Function{Name: text}
	}

	return &Symbol{Name: text}
}

// operator maps <mo> text
func operator(text string) Node {
	if text == "" || invisibleOperators[text] {
		return &Sequence{}
	}

	if v, ok := unicodeBigOperators[text]; ok {
		return &BigOperator{Name: v}
	}

	if v, ok := unicodeSymbols[text]; ok {
		return &Symbol{Name: v}
	}

	if _, ok := functionNames[text]; ok {
		return &Function{Name: text}
	}

	return &Symbol{Name: text}
}

// content maps bare text found in a layout element
func content(text string) Node {
	if isNumeric(text) {
		return &Number{Value: text}
	}

	if v, ok := unicodeSymbols[text]; ok {
		return &Symbol{Name: v}
	}

	if v, ok := unicodeBigOperators[text]; ok {
		return &BigOperator{Name: v}
	}

	return &Symbol{Name: text}
}

// mark returns the text of a token element used as an accent
func mark(e *Element) string {
	if len(e.Children) > 0 {
		return ""
	}

	return e.text()
}

func isNumeric(text string) bool {
	if text == "" {
		return false
	}

	for _, r := range text {
		if !unicode.IsDigit(r) && r != '.' {
			return false
		}
	}

	return true
}

// sequence wraps nodes, a single node is returned as is
func sequence(nodes []Node) Node {
	if len(nodes) == 1 {
		return nodes[0]
	}

	return &Sequence{Children: nodes}
}

func empty(node Node) bool {
	seq, ok := node.(*Sequence)
	return ok && len(seq.Children) == 0
}
