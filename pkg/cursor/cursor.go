// Package cursor provides character-level navigation over a type
// descriptor string: lookahead, class-aware tokenization, word-boundary
// keyword matching, and balanced delimiter extraction.
package cursor

import "strings"

// EOF is the marker returned by Peek and PeekAt past the end of input.
const EOF byte = 0

// Config parameterizes a Cursor with character classes and the set of
// delimiter pairs ConsumeUntilMatchingDelimiter understands.
type Config struct {
	IsSpace func(byte) bool
	IsWord  func(byte) bool
	Pairs   map[byte]byte // opener -> closer
}

// SQLTypeConfig returns the configuration used for SQL type descriptors:
// ASCII whitespace, identifier characters [A-Za-z0-9_], and the two
// bracket pairs the grammar uses.
func SQLTypeConfig() Config {
	return Config{
		IsSpace: func(ch byte) bool {
			return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
		},
		IsWord: func(ch byte) bool {
			return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' ||
				ch >= '0' && ch <= '9' || ch == '_'
		},
		Pairs: map[byte]byte{'(': ')', '<': '>'},
	}
}

// Cursor is a single-owner cursor over an immutable input string.
// It never backtracks past failed TryConsume calls and allocates only
// when assembling multi-run results.
type Cursor struct {
	input string
	pos   int
	cfg   Config
}

// New creates a Cursor over input with the given configuration.
func New(input string, cfg Config) *Cursor {
	return &Cursor{input: input, cfg: cfg}
}

// Pos returns the current byte offset into the input.
func (c *Cursor) Pos() int {
	return c.pos
}

// Input returns the full input string the cursor was created over.
func (c *Cursor) Input() string {
	return c.input
}

// IsEOF reports whether the cursor has consumed all input.
func (c *Cursor) IsEOF() bool {
	return c.pos >= len(c.input)
}

// Peek returns the current character, or EOF.
func (c *Cursor) Peek() byte {
	return c.PeekAt(0)
}

// PeekAt returns the character at pos+offset, or EOF for any
// out-of-bounds offset, including negative ones.
func (c *Cursor) PeekAt(offset int) byte {
	idx := c.pos + offset
	if idx < 0 || idx >= len(c.input) {
		return EOF
	}
	return c.input[idx]
}

// Consume returns the next n characters and advances past them.
func (c *Cursor) Consume(n int) (string, error) {
	if n <= 0 {
		return "", &Error{Offset: c.pos, Message: "consume length must be positive"}
	}
	if c.pos+n > len(c.input) {
		return "", &Error{Offset: c.pos, Message: "consume past end of input"}
	}
	s := c.input[c.pos : c.pos+n]
	c.pos += n
	return s, nil
}

// ConsumeWhile consumes the maximal run of characters satisfying pred,
// possibly empty, and returns it.
func (c *Cursor) ConsumeWhile(pred func(byte) bool) string {
	start := c.pos
	for c.pos < len(c.input) && pred(c.input[c.pos]) {
		c.pos++
	}
	return c.input[start:c.pos]
}

// SkipWhitespace consumes a maximal run of configured whitespace.
func (c *Cursor) SkipWhitespace() {
	c.ConsumeWhile(c.cfg.IsSpace)
}

// PeekWord returns the maximal word-class run starting at the cursor
// without consuming it. Empty if the current character is not word-class.
func (c *Cursor) PeekWord() string {
	return c.PeekWordAt(0)
}

// PeekWordAt returns the maximal word-class run starting at pos+offset
// without consuming it.
func (c *Cursor) PeekWordAt(offset int) string {
	start := c.pos + offset
	if start < 0 || start >= len(c.input) {
		return ""
	}
	end := start
	for end < len(c.input) && c.cfg.IsWord(c.input[end]) {
		end++
	}
	return c.input[start:end]
}

// ParseIdentifier consumes and returns a maximal word-class run.
func (c *Cursor) ParseIdentifier() string {
	return c.ConsumeWhile(c.cfg.IsWord)
}

// ParseIdentifierWithSpaces consumes space-separated word runs until stop
// reports true, the input ends, or a non-word character is reached.
// Internal whitespace runs collapse to a single space in the result.
func (c *Cursor) ParseIdentifierWithSpaces(stop func() bool) string {
	var b strings.Builder
	for !c.IsEOF() && !stop() {
		word := c.ConsumeWhile(c.cfg.IsWord)
		if word == "" {
			break
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
		c.SkipWhitespace()
	}
	return b.String()
}

// ParseUntilChar consumes up to, and excluding, the next occurrence of
// stopChar. If stopChar never occurs the rest of the input is consumed;
// callers detect that case via IsEOF.
func (c *Cursor) ParseUntilChar(stopChar byte) string {
	return c.ConsumeWhile(func(ch byte) bool { return ch != stopChar })
}

// ConsumeUntilMatchingDelimiter consumes openChar, which must be a
// configured opener the cursor is positioned at, then scans to the
// matching closer counting only nesting of this same pair. Unrelated
// delimiter types inside are inert. The interior is returned; the closer
// is left unconsumed.
func (c *Cursor) ConsumeUntilMatchingDelimiter(openChar byte) (string, error) {
	closer, ok := c.cfg.Pairs[openChar]
	if !ok {
		return "", &Error{Offset: c.pos, Message: "unconfigured delimiter " + quoteByte(openChar)}
	}
	if c.Peek() != openChar {
		return "", &Error{Offset: c.pos, Message: "cursor not positioned at " + quoteByte(openChar)}
	}
	openOffset := c.pos
	c.pos++ // consume the opener

	start := c.pos
	depth := 1
	for c.pos < len(c.input) {
		switch c.input[c.pos] {
		case openChar:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return c.input[start:c.pos], nil
			}
		}
		c.pos++
	}
	return "", &Error{
		Offset:  openOffset,
		Message: "no matching " + quoteByte(closer) + " for " + quoteByte(openChar),
	}
}

// TryConsume matches keyword at the cursor, ignoring ASCII case. For
// keywords longer than one character the next character after the match
// must not be word-class, so "NOT" never matches inside "NOTIFY". On
// success the cursor advances past the keyword; on failure it is
// unchanged.
func (c *Cursor) TryConsume(keyword string) bool {
	if keyword == "" || c.pos+len(keyword) > len(c.input) {
		return false
	}
	if !strings.EqualFold(c.input[c.pos:c.pos+len(keyword)], keyword) {
		return false
	}
	if len(keyword) > 1 {
		if next := c.PeekAt(len(keyword)); next != EOF && c.cfg.IsWord(next) {
			return false
		}
	}
	c.pos += len(keyword)
	return true
}

func quoteByte(ch byte) string {
	return "'" + string(ch) + "'"
}
