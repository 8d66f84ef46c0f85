package eqscript

import "fmt"

type TokenKind int

const (
	CommandToken TokenKind = iota
	OpenBraceToken
	CloseBraceToken
	OpenBracketToken
	CloseBracketToken
	OpenParenToken
	CloseParenToken
	SuperscriptToken
	SubscriptToken
	AmpersandToken
	RowBreakToken
	TextToken
	NumberToken
	WhitespaceToken
	PipeToken
	OperatorToken
	EOFToken
)

var tokenKindNames = [...]string{
	CommandToken:      "command",
	OpenBraceToken:    "'{'",
	CloseBraceToken:   "'}'",
	OpenBracketToken:  "'['",
	CloseBracketToken: "']'",
	OpenParenToken:    "'('",
	CloseParenToken:   "')'",
	SuperscriptToken:  "'^'",
	SubscriptToken:    "'_'",
	AmpersandToken:    "'&'",
	RowBreakToken:     "'\\\\'",
	TextToken:         "text",
	NumberToken:       "number",
	WhitespaceToken:   "whitespace",
	PipeToken:         "'|'",
	OperatorToken:     "operator",
	EOFToken:          "end of input",
}

func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}

	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a single lexical unit of LaTeX input. For commands Value holds the
// name without the leading backslash. Pos is the rune offset of the first
// character of the token in the source.
type Token struct {
	Kind  TokenKind
	Value string
	Pos   int
}
