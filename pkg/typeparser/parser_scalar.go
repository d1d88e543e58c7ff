package typeparser

import (
	"fmt"
	"strings"

	"github.com/streamtype-labs/typetree/pkg/typetree"
)

// parseScalar parses a scalar type: a base identifier, an optional
// balanced parenthesized parameter list embedded verbatim, and any
// further space-separated suffix words extending a multi-word type name
// (INTERVAL YEAR(4) TO MONTH, TIMESTAMP(3) WITH LOCAL TIME ZONE).
// Suffix consumption stops at the structural characters < > ( ) , a
// single quote, or a NOT/NULL keyword.
func (p *parser) parseScalar() (typetree.Node, error) {
	p.cur.SkipWhitespace()
	offset := p.cur.Pos()

	word := p.cur.PeekWord()
	if word == "" {
		return nil, &SyntaxError{Offset: offset, Message: fmt.Sprintf(errExpectedTypeName, p.describeHere())}
	}
	if isNullabilityKeyword(word) {
		return nil, &SyntaxError{Offset: offset, Message: errBareNullability}
	}

	var name strings.Builder
	name.WriteString(strings.ToUpper(p.cur.ParseIdentifier()))

	for {
		p.cur.SkipWhitespace()
		if p.cur.Peek() == '(' {
			params, err := p.cur.ConsumeUntilMatchingDelimiter('(')
			if err != nil {
				return nil, &SyntaxError{
					Offset:  offset,
					Message: fmt.Sprintf(errExpectedParamClose, name.String()),
				}
			}
			p.advance() // closing paren
			name.WriteByte('(')
			name.WriteString(params)
			name.WriteByte(')')
			continue
		}

		suffix := p.cur.ParseIdentifierWithSpaces(p.scalarStop)
		if suffix == "" {
			break
		}
		name.WriteByte(' ')
		name.WriteString(strings.ToUpper(suffix))
	}

	nullable, err := p.parseNullability()
	if err != nil {
		return nil, err
	}
	return &typetree.Scalar{Name: name.String(), IsNullable: nullable}, nil
}

// scalarStop reports whether suffix-word consumption must stop at the
// current cursor position.
func (p *parser) scalarStop() bool {
	switch p.cur.Peek() {
	case '<', '>', '(', ')', ',', '\'':
		return true
	}
	return isNullabilityKeyword(p.cur.PeekWord())
}

// isNullabilityKeyword matches NOT and NULL as whole words.
func isNullabilityKeyword(word string) bool {
	return strings.EqualFold(word, "NOT") || strings.EqualFold(word, "NULL")
}
