package eqscript

import (
	"errors"
	"io"
	"strings"
	"unicode"
)

type Tokenizer struct {
	r   io.RuneScanner
	pos int
	eof bool
}

func NewTokenizer(r io.RuneScanner) *Tokenizer {
	return &Tokenizer{r: r}
}

// Tokenize splits LaTeX source into tokens. The result always ends with an
// EOF token.
func Tokenize(src string) ([]Token, error) {
	lexer := NewTokenizer(strings.NewReader(src))

	var tokens []Token
	for {
		token, err := lexer.Token()
		if err != nil {
			var lexErr *LexError
			if errors.As(err, &lexErr) {
				lexErr.Source = src
			}

			return nil, err
		}

		tokens = append(tokens, token)

		if token.Kind == EOFToken {
			return tokens, nil
		}
	}
}

// Token reads the next token. Once input is exhausted it keeps returning an
// EOF token.
func (l *Tokenizer) Token() (Token, error) {
	start := l.pos

	char, err := l.read()
	if err == io.EOF {
		l.eof = true
		return Token{Kind: EOFToken, Pos: start}, nil
	}

	if err != nil {
		return Token{}, err
	}

	switch char {
	case '{':
		return Token{Kind: OpenBraceToken, Value: "{", Pos: start}, nil
	case '}':
		return Token{Kind: CloseBraceToken, Value: "}", Pos: start}, nil
	case '[':
		return Token{Kind: OpenBracketToken, Value: "[", Pos: start}, nil
	case ']':
		return Token{Kind: CloseBracketToken, Value: "]", Pos: start}, nil
	case '(':
		return Token{Kind: OpenParenToken, Value: "(", Pos: start}, nil
	case ')':
		return Token{Kind: CloseParenToken, Value: ")", Pos: start}, nil
	case '^':
		return Token{Kind: SuperscriptToken, Value: "^", Pos: start}, nil
	case '_':
		return Token{Kind: SubscriptToken, Value: "_", Pos: start}, nil
	case '&':
		return Token{Kind: AmpersandToken, Value: "&", Pos: start}, nil
	case '|':
		return Token{Kind: PipeToken, Value: "|", Pos: start}, nil
	case '\\':
		return l.readBackslash(start)
	}

	switch {
	case unicode.IsSpace(char):
		return l.readWhitespace(start)
	case unicode.IsDigit(char):
		return l.readRun(start, NumberToken, char, isNumberChar)
	case unicode.IsLetter(char):
		return l.readRun(start, TextToken, char, unicode.IsLetter)
	case isOperator(char):
		return Token{Kind: OperatorToken, Value: string(char), Pos: start}, nil
	default:
		return Token{}, &LexError{Char: char, Offset: start}
	}
}

func (l *Tokenizer) readBackslash(start int) (Token, error) {
	next, err := l.read()
	if err == io.EOF {
		return Token{}, &LexError{Char: '\\', Offset: start, Message: "unexpected end of input after backslash"}
	}

	if err != nil {
		return Token{}, err
	}

	switch next {
	case '\\':
		return Token{Kind: RowBreakToken, Value: "\\\\", Pos: start}, nil
	case '{', '}', '|', ',', ';', '!', ' ':
		return Token{Kind: CommandToken, Value: string(next), Pos: start}, nil
	}

	if !unicode.IsLetter(next) {
		return Token{}, &LexError{Char: next, Offset: l.pos - 1, Message: "unexpected character after backslash"}
	}

	return l.readRun(start, CommandToken, next, unicode.IsLetter)
}

// readRun reads characters while accept returns true, first is already consumed
func (l *Tokenizer) readRun(start int, kind TokenKind, first rune, accept func(rune) bool) (Token, error) {
	runes := []rune{first}
	for {
		read, err := l.read()
		if err == io.EOF {
			return Token{Kind: kind, Value: string(runes), Pos: start}, nil
		}

		if err != nil {
			return Token{}, err
		}

		if !accept(read) {
			return Token{Kind: kind, Value: string(runes), Pos: start}, l.unread()
		}

		runes = append(runes, read)
	}
}

// readWhitespace collapses a run of whitespace into a single token
func (l *Tokenizer) readWhitespace(start int) (Token, error) {
	if _, err := l.readRun(start, WhitespaceToken, ' ', unicode.IsSpace); err != nil {
		return Token{}, err
	}

	return Token{Kind: WhitespaceToken, Value: " ", Pos: start}, nil
}

func (l *Tokenizer) read() (rune, error) {
	if l.eof {
		return 0, io.EOF
	}

	r, _, err := l.r.ReadRune()
	if err != nil {
		return 0, err
	}

	l.pos++
	return r, nil
}

func (l *Tokenizer) unread() error {
	if err := l.r.UnreadRune(); err != nil {
		return err
	}

	l.pos--
	return nil
}

func isNumberChar(r rune) bool {
	return unicode.IsDigit(r) || r == '.'
}

// isOperator returns true for characters which stand for themselves in math mode
func isOperator(r rune) bool {
	switch r {
	case '+', '-', '=', '<', '>', ',', ';', '!', '\'', ':', '/', '*', '.':
		return true
	default:
		return false
	}
}
