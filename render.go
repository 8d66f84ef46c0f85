package eqscript

import (
	"fmt"
	"io"
)

// Render writes the script for the node to w
func Render(w io.Writer, node Node) error {
	script, err := Generate(node)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, script)
	return err
}

// Generate renders the node as equation script text
func Generate(node Node) (string, error) {
	b := &Builder{}
	if err := render(b, node); err != nil {
		return "", err
	}

	return b.Result(), nil
}

func render(b *Builder, node Node) error {
	switch n := node.(type) {
	case nil:
		return nil
	case *Sequence:
		return renderSequence(b, n)
	case *Number:
		b.Append(n.Value)
		return nil
	case *Symbol:
		renderSymbol(b, n)
		return nil
	case *Text:
		b.AppendWithSpace("\"" + n.Value + "\"")
		return nil
	case *Group:
		return renderBraced(b, n.Child)
	case *Fraction:
		return renderFraction(b, n)
	case *Root:
		return renderRoot(b, n)
	case *Superscript:
		if err := render(b, n.Base); err != nil {
			return err
		}

		return renderScript(b, "^", n.Sup)
	case *Subscript:
		if err := render(b, n.Base); err != nil {
			return err
		}

		return renderScript(b, "_", n.Sub)
	case *SubSuper:
		if err := render(b, n.Base); err != nil {
			return err
		}

		if err := renderScript(b, "_", n.Sub); err != nil {
			return err
		}

		return renderScript(b, "^", n.Sup)
	case *BigOperator:
		return renderBigOperator(b, n)
	case *Function:
		return renderFunction(b, n)
	case *Delimiter:
		return renderDelimiter(b, n)
	default:
		return &GenerationError{Message: fmt.Sprintf("unsupported node type %T", node)}
	}
}

func renderSequence(b *Builder, seq *Sequence) error {
	for i, child := range seq.Children {
		if i > 0 && needsSpace(seq.Children[i-1], child) {
			b.Space()
		}

		if err := render(b, child); err != nil {
			return err
		}
	}

	return nil
}

func renderSymbol(b *Builder, sym *Symbol) {
	text := symbolText(sym.Name)
	if isWord(text) {
		b.AppendWithSpace(text)
		return
	}

	b.Append(text)
}

// renderBraced writes node wrapped in { }
func renderBraced(b *Builder, node Node) error {
	b.OpenBrace()
	if err := render(b, node); err != nil {
		return err
	}

	b.CloseBrace()
	return nil
}

// renderScript writes " ^{node}" or " _{node}"
func renderScript(b *Builder, marker string, node Node) error {
	b.Space()
	b.Append(marker)
	return renderBraced(b, node)
}

func renderFraction(b *Builder, frac *Fraction) error {
	op := "over"
	switch frac.Style {
	case FractionSmall:
		op = "smallover"
	case FractionBinomial:
		b.AppendWithSpace("LEFT ( ")
		op = "atop"
	}

	if err := renderBraced(b, frac.Num); err != nil {
		return err
	}

	b.AppendWithSpace(op)
	b.Space()

	if err := renderBraced(b, frac.Den); err != nil {
		return err
	}

	if frac.Style == FractionBinomial {
		b.AppendWithSpace("RIGHT )")
	}

	return nil
}

func renderRoot(b *Builder, root *Root) error {
	if root.Index == nil {
		b.AppendWithSpace("sqrt")
		b.Space()
		return renderBraced(b, root.Radicand)
	}

	b.AppendWithSpace("root")
	b.Space()

	if err := render(b, root.Index); err != nil {
		return err
	}

	b.AppendWithSpace("of")
	b.Space()
	return renderBraced(b, root.Radicand)
}

func renderBigOperator(b *Builder, op *BigOperator) error {
	name, ok := bigOperators[op.Name]
	if !ok {
		name = op.Name
	}

	b.AppendWithSpace(name)

	if op.Lower != nil {
		if err := renderScript(b, "_", op.Lower); err != nil {
			return err
		}
	}

	if op.Upper != nil {
		if err := renderScript(b, "^", op.Upper); err != nil {
			return err
		}
	}

	return nil
}

func renderFunction(b *Builder, fn *Function) error {
	if accent, ok := accents[fn.Name]; ok {
		b.AppendWithSpace(accent)
		b.Space()
		return render(b, fn.Arg)
	}

	name, ok := functionNames[fn.Name]
	if !ok {
		name = fn.Name
	}

	b.AppendWithSpace(name)

	if fn.Arg == nil {
		return nil
	}

	b.Space()
	return render(b, fn.Arg)
}

func renderDelimiter(b *Builder, d *Delimiter) error {
	b.AppendWithSpace("LEFT")
	b.Space()
	b.Append(delimiter(d.Left))
	b.Space()

	if err := render(b, d.Content); err != nil {
		return err
	}

	b.Space()
	b.Append("RIGHT")
	b.Space()
	b.Append(delimiter(d.Right))
	return nil
}
