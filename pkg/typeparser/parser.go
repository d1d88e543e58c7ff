// Package typeparser parses the textual type descriptors a SQL
// stream-processing engine emits in its catalog metadata (the
// FULL_DATA_TYPE rendering) into a typetree.Node.
//
// # Usage
//
//	tree, err := typeparser.Parse("ROW<`id` BIGINT NOT NULL, `tags` ARRAY<VARCHAR(255)>>")
//	if err != nil {
//	    // handle error
//	}
//
// # Grammar Overview
//
// The parser implements a recursive descent parser over the type grammar:
//
//	type        → "ARRAY" "<" type ">" nullability
//	            | "MULTISET" "<" type ">" nullability
//	            | "ROW" "<" member ("," member)* ">" nullability
//	            | "MAP" "<" type "," type ">" nullability
//	            | scalar nullability
//	scalar      → identifier ["(" parameters ")"] [suffix words]
//	member      → (backtick-name | identifier) type [comment]
//	nullability → "NOT" "NULL" | "NULL" | ε
//	comment     → "'" (char | "''")* "'"
//
// Keywords are case-insensitive and matched on word boundaries, so NOT
// never matches inside NOTIFY. Nullability is parsed independently at
// every nesting level; a missing marker means nullable.
package typeparser

import (
	"fmt"
	"strings"

	"github.com/streamtype-labs/typetree/pkg/cursor"
	"github.com/streamtype-labs/typetree/pkg/typetree"
)

// DefaultMaxDepth bounds type nesting when Options does not override it.
// Recursion depth equals nesting depth, so this also bounds stack usage
// on adversarial input.
const DefaultMaxDepth = 64

// Options configures a parse.
type Options struct {
	// MaxDepth is the maximum type nesting depth. Zero or negative
	// selects DefaultMaxDepth.
	MaxDepth int
}

// Parse parses a type descriptor with default options.
func Parse(input string) (typetree.Node, error) {
	return ParseWithOptions(input, Options{})
}

// ParseWithOptions parses a type descriptor and returns the root node,
// or a typed error carrying the expectation that was not met. There is
// no partial result: malformed input yields no tree.
func ParseWithOptions(input string, opts Options) (typetree.Node, error) {
	if strings.TrimSpace(input) == "" {
		return nil, &EmptyInputError{}
	}
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	p := &parser{
		cur:      cursor.New(input, cursor.SQLTypeConfig()),
		maxDepth: maxDepth,
	}
	node, err := p.parseType(0)
	if err != nil {
		return nil, err
	}

	p.cur.SkipWhitespace()
	if !p.cur.IsEOF() {
		rest := p.cur.Input()[p.cur.Pos():]
		return nil, &SyntaxError{Offset: p.cur.Pos(), Message: fmt.Sprintf(errTrailingInput, rest)}
	}
	return node, nil
}

// parser holds the state of a single parse. Each call to Parse owns a
// private instance, so concurrent parses never share state.
type parser struct {
	cur      *cursor.Cursor
	maxDepth int
}

// parseType dispatches on the next keyword and parses one full type,
// including its trailing nullability marker.
func (p *parser) parseType(depth int) (typetree.Node, error) {
	if depth >= p.maxDepth {
		return nil, &DepthError{Max: p.maxDepth}
	}
	p.cur.SkipWhitespace()

	switch strings.ToUpper(p.cur.PeekWord()) {
	case "ARRAY", "MULTISET":
		return p.parseCollection(depth)
	case "ROW":
		return p.parseRow(depth)
	case "MAP":
		return p.parseMap(depth)
	}
	return p.parseScalar()
}

// parseNullability parses an optional trailing nullability marker.
// NOT NULL means not nullable, a bare NULL explicitly means nullable,
// and no marker defaults to nullable.
func (p *parser) parseNullability() (bool, error) {
	p.cur.SkipWhitespace()
	if p.cur.TryConsume("NOT") {
		p.cur.SkipWhitespace()
		if !p.cur.TryConsume("NULL") {
			return false, &SyntaxError{Offset: p.cur.Pos(), Message: errExpectedNull}
		}
		return false, nil
	}
	p.cur.TryConsume("NULL")
	return true, nil
}

// expectChar consumes ch or fails with a syntax error naming what the
// delimiter was for.
func (p *parser) expectChar(ch byte, format, context string) error {
	p.cur.SkipWhitespace()
	if p.cur.Peek() != ch {
		return &SyntaxError{
			Offset:  p.cur.Pos(),
			Message: fmt.Sprintf(format, context),
		}
	}
	p.advance()
	return nil
}

// advance consumes a single character known to be present.
func (p *parser) advance() {
	_, _ = p.cur.Consume(1)
}

// describeHere renders the character at the cursor for error messages.
func (p *parser) describeHere() string {
	if p.cur.IsEOF() {
		return "end of input"
	}
	return fmt.Sprintf("%q", string(p.cur.Peek()))
}
