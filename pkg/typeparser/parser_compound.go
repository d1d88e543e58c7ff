package typeparser

import (
	"fmt"
	"strings"

	"github.com/streamtype-labs/typetree/pkg/cursor"
	"github.com/streamtype-labs/typetree/pkg/typetree"
)

// parseCollection parses ARRAY<type> or MULTISET<type> with trailing
// nullability. The element's own nullability lives on the element node.
func (p *parser) parseCollection(depth int) (typetree.Node, error) {
	keyword := strings.ToUpper(p.cur.PeekWord())
	p.cur.TryConsume(keyword)

	if err := p.expectChar('<', errExpectedOpenAngle, keyword); err != nil {
		return nil, err
	}
	elem, err := p.parseType(depth + 1)
	if err != nil {
		return nil, err
	}
	if err := p.expectChar('>', errExpectedCloseAngle, keyword); err != nil {
		return nil, err
	}
	nullable, err := p.parseNullability()
	if err != nil {
		return nil, err
	}

	if keyword == "MULTISET" {
		return &typetree.Multiset{Elem: elem, IsNullable: nullable}, nil
	}
	return &typetree.Array{Elem: elem, IsNullable: nullable}, nil
}

// parseMap parses MAP<keyType, valueType> with trailing nullability.
func (p *parser) parseMap(depth int) (typetree.Node, error) {
	p.cur.TryConsume("MAP")

	if err := p.expectChar('<', errExpectedOpenAngle, "MAP"); err != nil {
		return nil, err
	}
	key, err := p.parseType(depth + 1)
	if err != nil {
		return nil, err
	}

	p.cur.SkipWhitespace()
	if p.cur.Peek() != ',' {
		return nil, &SyntaxError{Offset: p.cur.Pos(), Message: errExpectedMapComma}
	}
	p.advance()

	value, err := p.parseType(depth + 1)
	if err != nil {
		return nil, err
	}
	if err := p.expectChar('>', errExpectedCloseAngle, "MAP"); err != nil {
		return nil, err
	}
	nullable, err := p.parseNullability()
	if err != nil {
		return nil, err
	}
	return &typetree.Map{Key: key, Value: value, IsNullable: nullable}, nil
}

// parseRow parses ROW<field type ['comment'], ...> with trailing
// nullability. A row must declare at least one field.
func (p *parser) parseRow(depth int) (typetree.Node, error) {
	p.cur.TryConsume("ROW")

	if err := p.expectChar('<', errExpectedOpenAngle, "ROW"); err != nil {
		return nil, err
	}

	var fields []typetree.Field
	for {
		p.cur.SkipWhitespace()
		if len(fields) == 0 && p.cur.Peek() == '>' {
			return nil, &SyntaxError{Offset: p.cur.Pos(), Message: errRowNeedsField}
		}

		name, err := p.parseFieldName()
		if err != nil {
			return nil, err
		}
		typ, err := p.parseType(depth + 1)
		if err != nil {
			return nil, err
		}

		p.cur.SkipWhitespace()
		var comment string
		if p.cur.Peek() == '\'' {
			comment, err = p.parseComment()
			if err != nil {
				return nil, err
			}
		}
		fields = append(fields, typetree.Field{Name: name, Comment: comment, Type: typ})

		p.cur.SkipWhitespace()
		switch p.cur.Peek() {
		case ',':
			p.advance()
			continue
		case '>':
			p.advance()
		default:
			return nil, &SyntaxError{
				Offset:  p.cur.Pos(),
				Message: fmt.Sprintf(errExpectedRowComma, name, p.describeHere()),
			}
		}
		break
	}

	nullable, err := p.parseNullability()
	if err != nil {
		return nil, err
	}
	return &typetree.Row{Fields: fields, IsNullable: nullable}, nil
}

// parseFieldName parses a row field name: either a backtick-quoted name
// accepting any characters, or a bare identifier matching
// [A-Za-z_][A-Za-z0-9_]*.
func (p *parser) parseFieldName() (string, error) {
	if p.cur.Peek() == '`' {
		openOffset := p.cur.Pos()
		p.advance()
		name := p.cur.ParseUntilChar('`')
		if p.cur.IsEOF() {
			return "", &UnterminatedError{Offset: openOffset, Token: "backtick-quoted field name"}
		}
		p.advance() // closing backtick
		return name, nil
	}

	offset := p.cur.Pos()
	name := p.cur.ParseIdentifier()
	if name == "" {
		found := "end of input"
		if !p.cur.IsEOF() {
			found = string(p.cur.Peek())
		}
		return "", &FieldNameError{Offset: offset, Found: found}
	}
	if name[0] >= '0' && name[0] <= '9' {
		return "", &FieldNameError{Offset: offset, Found: name}
	}
	return name, nil
}

// parseComment parses a single-quoted documentation comment. A doubled
// quote is an escaped literal quote; end of input before the closing
// quote is an error. A comment that trims to whitespace is absent.
func (p *parser) parseComment() (string, error) {
	openOffset := p.cur.Pos()
	p.advance() // opening quote

	var b strings.Builder
	for {
		ch := p.cur.Peek()
		if ch == cursor.EOF {
			return "", &UnterminatedError{Offset: openOffset, Token: "comment"}
		}
		p.advance()
		if ch == '\'' {
			if p.cur.Peek() == '\'' {
				p.advance()
				b.WriteByte('\'')
				continue
			}
			break
		}
		b.WriteByte(ch)
	}

	comment := b.String()
	if strings.TrimSpace(comment) == "" {
		return "", nil
	}
	return comment, nil
}
