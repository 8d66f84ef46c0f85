package eqscript

import (
	"errors"
	"fmt"
)

// LexError is returned when LaTeX input contains a character the tokenizer
// does not recognize.
type LexError struct {
	Char    rune
	Offset  int
	Source  string
	Message string
}

func (e *LexError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "unexpected character"
	}

	if e.Source == "" {
		return fmt.Sprintf("%s %q at position %d", msg, e.Char, e.Offset)
	}

	return fmt.Sprintf("%s %q at position %d in: %s", msg, e.Char, e.Offset, excerpt(e.Source, e.Offset))
}

// ParseError is returned when input is structurally invalid: an unexpected
// token, a missing group or argument, or trailing input.
type ParseError struct {
	Message string
	Offset  int
	Source  string
}

func (e *ParseError) Error() string {
	if e.Offset < 0 {
		return e.Message
	}

	if e.Source == "" {
		return fmt.Sprintf("%s at position %d", e.Message, e.Offset)
	}

	return fmt.Sprintf("%s at position %d in: %s", e.Message, e.Offset, excerpt(e.Source, e.Offset))
}

// excerptRadius is the number of runes of source shown on each side of an
// error position
const excerptRadius = 32

// excerpt cuts source down to a window around offset, elided ends are marked
// with "..."
func excerpt(source string, offset int) string {
	runes := []rune(source)
	if len(runes) <= 2*excerptRadius {
		return source
	}

	offset = min(max(offset, 0), len(runes))
	start := max(offset-excerptRadius, 0)
	end := min(offset+excerptRadius, len(runes))

	out := string(runes[start:end])
	if start > 0 {
		out = "..." + out
	}

	if end < len(runes) {
		out += "..."
	}

	return out
}

// GenerationError is returned by the generator for a node it cannot render.
type GenerationError struct {
	Message string
}

func (e *GenerationError) Error() string {
	return e.Message
}

// XMLError is returned when a MathML document is not well-formed.
type XMLError struct {
	Err error
}

func (e *XMLError) Error() string {
	return fmt.Sprintf("failed to parse MathML: %v", e.Err)
}

func (e *XMLError) Unwrap() error {
	return e.Err
}

// IsLexError reports whether the error is a LexError.
func IsLexError(err error) bool {
	var target *LexError
	return errors.As(err, &target)
}

// IsParseError reports whether the error is a ParseError.
func IsParseError(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var target *GenerationError
	return errors.As(err, &target)
}

// IsXMLError reports whether the error is an XMLError.
func IsXMLError(err error) bool {
	var target *XMLError
	return errors.As(err, &target)
}
