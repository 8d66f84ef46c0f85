package eqscript

import (
	"encoding/xml"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// ExtractMathML finds every <math> element of an HTML document or fragment,
// in document order.
func ExtractMathML(src string) ([]*Element, error) {
	return extractMathML(src, DefaultMaxDepth)
}

func extractMathML(src string, maxDepth int) ([]*Element, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, &XMLError{Err: err}
	}

	var found []*Element
	var walk func(*html.Node) error
	walk = func(n *html.Node) error {
		if n.Type == html.ElementNode && n.Data == "math" {
			e, err := convertHTML(n, 1, maxDepth)
			if err != nil {
				return err
			}

			found = append(found, e)
			return nil
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := walk(c); err != nil {
				return err
			}
		}

		return nil
	}

	if err := walk(doc); err != nil {
		return nil, err
	}

	return found, nil
}

// ParseHTML parses every <math> element found in an HTML document.
func ParseHTML(src string) ([]Node, error) {
	return parseHTML(src, DefaultMaxDepth)
}

func parseHTML(src string, maxDepth int) ([]Node, error) {
	elements, err := extractMathML(src, maxDepth)
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, 0, len(elements))
	for _, e := range elements {
		node, err := newMathMLParser(maxDepth).element(e)
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, node)
	}

	return nodes, nil
}

// convertHTML copies an HTML element into a MathML element tree
func convertHTML(n *html.Node, depth, maxDepth int) (*Element, error) {
	if depth > maxDepth {
		return nil, &ParseError{Message: fmt.Sprintf("nesting is deeper than %d levels", maxDepth), Offset: -1}
	}

	e := &Element{XMLName: xml.Name{Space: n.Namespace, Local: n.Data}}
	for _, a := range n.Attr {
		e.Attrs = append(e.Attrs, xml.Attr{Name: xml.Name{Space: a.Namespace, Local: a.Key}, Value: a.Val})
	}

	var content strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			content.WriteString(c.Data)
		case html.ElementNode:
			child, err := convertHTML(c, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}

			e.Children = append(e.Children, *child)
		}
	}

	e.Content = norm.NFC.String(content.String())
	return e, nil
}
