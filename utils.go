package eqscript

import (
	"unicode"
	"unicode/utf8"
)

// needsSpace decides whether adjacent sequence items are separated by a space.
// Single character variables stay tight, anything structured, word-like or an
// infix operator gets a space around it.
func needsSpace(prev, next Node) bool {
	if isComplex(prev) || isComplex(next) {
		return true
	}

	if isWordNode(prev) || isWordNode(next) {
		return true
	}

	return isOperatorNode(prev) || isOperatorNode(next)
}

func isComplex(node Node) bool {
	switch node.(type) {
	case *Fraction, *Root, *BigOperator, *Function, *Delimiter, *Superscript, *Subscript, *SubSuper:
		return true
	default:
		return false
	}
}

func isWordNode(node Node) bool {
	switch n := node.(type) {
	case *Text:
		return true
	case *Symbol:
		if isSpacing(n.Name) {
			return false
		}

		return isWord(n.Name) || isWord(symbolText(n.Name))
	default:
		return false
	}
}

func isOperatorNode(node Node) bool {
	sym, ok := node.(*Symbol)
	if !ok {
		return false
	}

	switch sym.Name {
	case "+", "-", "=", "<", ">", ",":
		return true
	default:
		return false
	}
}

// isSpacing reports whether name is one of the short spacing symbols, those
// are written tight against their neighbours
func isSpacing(name string) bool {
	for _, v := range spacingCommands {
		if v == name {
			return true
		}
	}

	return false
}

// symbolText returns the script token for a symbol: Greek letters first, then
// other known symbols, unknown names are written as is
func symbolText(name string) string {
	if v, ok := greekLetters[name]; ok {
		return v
	}

	if v, ok := symbols[name]; ok {
		return v
	}

	return name
}

// isWord returns true for names longer than one character starting with a letter
func isWord(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && len(s) > size && unicode.IsLetter(r)
}
