package eqscript

import "strings"

// Builder accumulates script text and normalizes spacing between tokens
type Builder struct {
	sb strings.Builder
}

// Append writes text as is
func (b *Builder) Append(text string) {
	b.sb.WriteString(text)
}

// AppendWithSpace writes text separated by a single space from preceding
// output, unless output is empty or ends with a space or an opening brace.
func (b *Builder) AppendWithSpace(text string) {
	if last := b.last(); last != 0 && last != ' ' && last != '{' {
		b.sb.WriteByte(' ')
	}

	b.sb.WriteString(text)
}

// Space writes a single space unless output is empty or already ends with one
func (b *Builder) Space() {
	if last := b.last(); last != 0 && last != ' ' {
		b.sb.WriteByte(' ')
	}
}

func (b *Builder) OpenBrace() {
	b.sb.WriteByte('{')
}

func (b *Builder) CloseBrace() {
	b.sb.WriteByte('}')
}

// Result returns accumulated text without leading and trailing spaces
func (b *Builder) Result() string {
	return strings.TrimSpace(b.sb.String())
}

// last returns the last byte written, or 0 if nothing was written yet
func (b *Builder) last() byte {
	s := b.sb.String()
	if s == "" {
		return 0
	}

	return s[len(s)-1]
}
