package eqscript

import (
	"strings"
)

const (
	DefaultVersion   = "Equation Version 60"
	DefaultTextColor = "#000000"
	DefaultBaseUnit  = 1100
	DefaultFont      = "HYhwpEQ"
)

// LineMode tells how the equation is aligned against surrounding text.
type LineMode string

const (
	LineModeChar     LineMode = "CHAR"
	LineModeLine     LineMode = "LINE"
	LineModeBaseline LineMode = "BASELINE"
)

// Equation is a converted equation ready to be embedded into a document.
type Equation struct {
	Version   string
	TextColor string
	BaseUnit  int
	LineMode  LineMode
	Font      string
	Script    string
}

// Converter turns LaTeX and MathML into equations. It holds no state between
// calls and is safe for concurrent use.
type Converter struct {
	version   string
	textColor string
	baseUnit  int
	lineMode  LineMode
	font      string
	maxDepth  int
}

func New(opts ...Option) *Converter {
	c := &Converter{
		version:   DefaultVersion,
		textColor: DefaultTextColor,
		baseUnit:  DefaultBaseUnit,
		lineMode:  LineModeChar,
		font:      DefaultFont,
		maxDepth:  DefaultMaxDepth,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ParseLatex parses LaTeX math within the converter's nesting limit
func (c *Converter) ParseLatex(src string) (Node, error) {
	p := NewParser(src)
	p.SetMaxDepth(c.maxDepth)

	return p.Parse()
}

func (c *Converter) ParseMathML(src string) (Node, error) {
	return parseMathML(src, c.maxDepth)
}

func (c *Converter) ParseHTML(src string) ([]Node, error) {
	return parseHTML(src, c.maxDepth)
}

// LatexToScript converts LaTeX math into equation script.
func (c *Converter) LatexToScript(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}

	node, err := c.ParseLatex(src)
	if err != nil {
		return "", err
	}

	return Generate(node)
}

// MathMLToScript converts a Presentation MathML document into equation script.
func (c *Converter) MathMLToScript(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}

	node, err := c.ParseMathML(src)
	if err != nil {
		return "", err
	}

	return Generate(node)
}

func (c *Converter) FromLatex(src string) (*Equation, error) {
	script, err := c.LatexToScript(src)
	if err != nil {
		return nil, err
	}

	return c.FromScript(script), nil
}

func (c *Converter) FromMathML(src string) (*Equation, error) {
	script, err := c.MathMLToScript(src)
	if err != nil {
		return nil, err
	}

	return c.FromScript(script), nil
}

// FromScript wraps ready equation script with metadata
func (c *Converter) FromScript(script string) *Equation {
	return &Equation{
		Version:   c.version,
		TextColor: c.textColor,
		BaseUnit:  c.baseUnit,
		LineMode:  c.lineMode,
		Font:      c.font,
		Script:    script,
	}
}

// FromHTML converts every <math> element of an HTML document, in document order.
func (c *Converter) FromHTML(src string) ([]*Equation, error) {
	nodes, err := c.ParseHTML(src)
	if err != nil {
		return nil, err
	}

	equations := make([]*Equation, 0, len(nodes))
	for _, node := range nodes {
		script, err := Generate(node)
		if err != nil {
			return nil, err
		}

		equations = append(equations, c.FromScript(script))
	}

	return equations, nil
}

var defaultConverter = New()

func LatexToScript(src string) (string, error) {
	return defaultConverter.LatexToScript(src)
}

func MathMLToScript(src string) (string, error) {
	return defaultConverter.MathMLToScript(src)
}

// FromLatex converts LaTeX into an equation with default metadata.
func FromLatex(src string) (*Equation, error) {
	return defaultConverter.FromLatex(src)
}

// FromMathML converts MathML into an equation with default metadata.
func FromMathML(src string) (*Equation, error) {
	return defaultConverter.FromMathML(src)
}

func FromScript(script string) *Equation {
	return defaultConverter.FromScript(script)
}

func FromHTML(src string) ([]*Equation, error) {
	return defaultConverter.FromHTML(src)
}
