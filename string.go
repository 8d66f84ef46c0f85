package eqscript

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the tree as an S-expression, for example "(frac plain a (seq b c))".
// Absent optional children are written as nil.
func String(node Node) string {
	var b strings.Builder
	dump(&b, node)
	return b.String()
}

func dump(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case nil:
		b.WriteString("nil")
	case *Sequence:
		list(b, "seq", n.Children...)
	case *Number:
		b.WriteString(atom(n.Value))
	case *Symbol:
		b.WriteString(atom(n.Name))
	case *Text:
		b.WriteString(strconv.Quote(n.Value))
	case *Group:
		list(b, "group", n.Child)
	case *Fraction:
		list(b, "frac "+n.Style.String(), n.Num, n.Den)
	case *Root:
		if n.Index == nil {
			list(b, "sqrt", n.Radicand)
			return
		}

		list(b, "root", n.Index, n.Radicand)
	case *Superscript:
		list(b, "sup", n.Base, n.Sup)
	case *Subscript:
		list(b, "sub", n.Base, n.Sub)
	case *SubSuper:
		list(b, "subsup", n.Base, n.Sub, n.Sup)
	case *BigOperator:
		list(b, "op "+atom(n.Name), n.Lower, n.Upper)
	case *Function:
		if n.Arg == nil {
			list(b, "func "+atom(n.Name))
			return
		}

		list(b, "func "+atom(n.Name), n.Arg)
	case *Delimiter:
		list(b, "delim "+atom(n.Left)+" "+atom(n.Right), n.Content)
	default:
		fmt.Fprintf(b, "<%T>", node)
	}
}

func list(b *strings.Builder, head string, children ...Node) {
	b.WriteString("(" + head)
	for _, child := range children {
		b.WriteByte(' ')
		dump(b, child)
	}

	b.WriteByte(')')
}

// atom quotes names which would be ambiguous in the dump
func atom(s string) string {
	if s == "" || strings.ContainsAny(s, " ()\"") {
		return strconv.Quote(s)
	}

	return s
}
