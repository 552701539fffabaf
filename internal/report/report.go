// Package report prints the ancestor, subclass and method sections for one class.
package report

import (
	"fmt"
	"io"

	"github.com/teraspora/Manim-Tools/internal/hierarchy"
	"github.com/teraspora/Manim-Tools/internal/tint"
)

const (
	headerColor = 208
	entryColor  = 85
)

// Options controls what Render prints.
type Options struct {
	Name      string // name as typed by the user, shown in headers
	Filter    string
	NoMethods bool
	GroupSize int // method cells per row
	Pad       int // spaces after the longest cell
	Painter   tint.Painter
}

// DefaultOptions matches the layout of the original class-info script.
func DefaultOptions() Options {
	return Options{GroupSize: 4, Pad: 4}
}

// Render writes the report for c to w. Section headers are printed even when
// their list is empty.
func Render(w io.Writer, g *hierarchy.Graph, c *hierarchy.Class, opts Options) error {
	name := opts.Name
	if name == "" {
		name = c.Name()
	}
	p := opts.Painter
	pw := &printer{w: w}

	pw.println(p.Paint(fmt.Sprintf("\nParent classes of %s:\n", name), headerColor, tint.Underlined))
	for _, a := range g.Ancestors(c) {
		pw.println(p.Paint(a.Name(), entryColor))
	}

	pw.println(p.Paint(fmt.Sprintf("\nSubclasses of %s:\n", name), headerColor, tint.Underlined))
	for _, d := range g.Descendants(c) {
		pw.println(p.Paint(d.Name(), entryColor))
	}

	if !opts.NoMethods {
		title := "Methods of " + name
		if opts.Filter != "" {
			title += fmt.Sprintf(" containing '%s'", opts.Filter)
		}
		pw.println(p.Paint(fmt.Sprintf("\n%s:\n", title), headerColor, tint.Underlined))

		methods := g.Methods(c, opts.Filter)
		rows := tint.LayoutColumns(methods, opts.GroupSize, opts.Pad)
		colors := tint.RowColors(len(rows))
		for i, row := range rows {
			pw.println(p.Paint(row, colors[i]))
		}
	}
	return pw.err
}

// NotFound writes the message shown for a name that resolves to no class.
func NotFound(w io.Writer, name string) error {
	_, err := fmt.Fprintf(w, "\n# The name %s is not a valid class name.\n- please check your spelling and try again!\n", name)
	return err
}

// printer remembers the first write error so Render can report it once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}
