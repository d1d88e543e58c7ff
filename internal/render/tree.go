// Package render draws parsed type trees on a terminal.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/muesli/termenv"

	"github.com/streamtype-labs/typetree/pkg/typetree"
)

// Styles holds the lipgloss styles applied to the parts of a rendered
// tree line.
type Styles struct {
	TypeName  lipgloss.Style
	FieldName lipgloss.Style
	Marker    lipgloss.Style // the NOT NULL marker
	Comment   lipgloss.Style
}

// DefaultStyles returns the colored style set.
func DefaultStyles() Styles {
	return Styles{
		TypeName:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		FieldName: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Marker:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Comment:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
	}
}

// PlainStyles returns styles that leave text unmodified.
func PlainStyles() Styles {
	return Styles{}
}

// AutoStyles picks colored or plain styles based on the noColor flag and
// the terminal's color profile.
func AutoStyles(noColor bool) Styles {
	if noColor || termenv.EnvColorProfile() == termenv.Ascii {
		return PlainStyles()
	}
	return DefaultStyles()
}

// Tree writes an indented tree view of the node to w, one line per
// tree node, members connected with box-drawing lines.
func Tree(w io.Writer, n typetree.Node, styles Styles) error {
	lw := list.NewWriter()
	lw.SetStyle(list.StyleConnectedLight)
	appendNode(lw, "", "", n, styles)
	_, err := fmt.Fprintln(w, lw.Render())
	return err
}

func appendNode(lw list.Writer, name, comment string, n typetree.Node, styles Styles) {
	lw.AppendItem(renderLine(name, comment, n, styles))
	if !typetree.IsCompound(n) {
		return
	}
	lw.Indent()
	for _, m := range typetree.Members(n) {
		memberName := m.Name
		if memberName == "" {
			memberName = "element"
		}
		appendNode(lw, memberName, m.Comment, m.Type, styles)
	}
	lw.UnIndent()
}

func renderLine(name, comment string, n typetree.Node, styles Styles) string {
	line := ""
	if name != "" {
		line = styles.FieldName.Render(name) + ": "
	}
	line += styles.TypeName.Render(n.TypeName())
	if !n.Nullable() {
		line += " " + styles.Marker.Render("NOT NULL")
	}
	if comment != "" {
		line += " " + styles.Comment.Render("-- "+comment)
	}
	return line
}
