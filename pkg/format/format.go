// Package format renders parsed type trees back into text: short human
// labels for display surfaces and full canonical descriptors. Both are
// pure functions over the tree; neither mutates it.
package format

import (
	"strings"

	"github.com/streamtype-labs/typetree/pkg/typetree"
)

// maxLengthDecoration is the parameter rendering engines emit for
// unbounded character types (VARCHAR(2147483647) for STRING). Labels
// strip it; canonical output keeps it.
const maxLengthDecoration = "(2147483647)"

// Label returns a short human-readable label for a node: arrays collapse
// to T[], maps show labeled key and value, rows collapse to ROW, and
// maximum-length decorations are stripped from scalar names.
func Label(n typetree.Node) string {
	switch t := n.(type) {
	case *typetree.Scalar:
		return strings.ReplaceAll(t.Name, maxLengthDecoration, "")
	case *typetree.Array:
		return Label(t.Elem) + "[]"
	case *typetree.Multiset:
		return "MULTISET<" + Label(t.Elem) + ">"
	case *typetree.Map:
		return "MAP<" + Label(t.Key) + ", " + Label(t.Value) + ">"
	case *typetree.Row:
		return "ROW"
	}
	return ""
}

// Canonical renders a node as a full type descriptor: backtick-quoted
// field names, comments re-escaped with doubled quotes, NOT NULL
// emitted, the default nullable marker omitted.
func Canonical(n typetree.Node) string {
	var b strings.Builder
	writeCanonical(&b, n)
	return b.String()
}

func writeCanonical(b *strings.Builder, n typetree.Node) {
	switch t := n.(type) {
	case *typetree.Scalar:
		b.WriteString(t.Name)
	case *typetree.Array:
		b.WriteString("ARRAY<")
		writeCanonical(b, t.Elem)
		b.WriteByte('>')
	case *typetree.Multiset:
		b.WriteString("MULTISET<")
		writeCanonical(b, t.Elem)
		b.WriteByte('>')
	case *typetree.Map:
		b.WriteString("MAP<")
		writeCanonical(b, t.Key)
		b.WriteString(", ")
		writeCanonical(b, t.Value)
		b.WriteByte('>')
	case *typetree.Row:
		b.WriteString("ROW<")
		for i, f := range t.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteByte('`')
			b.WriteString(f.Name)
			b.WriteString("` ")
			writeCanonical(b, f.Type)
			if f.Comment != "" {
				b.WriteString(" '")
				b.WriteString(strings.ReplaceAll(f.Comment, "'", "''"))
				b.WriteByte('\'')
			}
		}
		b.WriteByte('>')
	}
	if !n.Nullable() {
		b.WriteString(" NOT NULL")
	}
}
