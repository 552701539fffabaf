package diagram

import (
	"fmt"
	"strings"

	"github.com/teraspora/Manim-Tools/internal/hierarchy"
)

// DiagramOptions controls Mermaid diagram generation.
type DiagramOptions struct {
	MaxMethodsPerBox int  // default 5, 0 means unlimited
	IncludeInit      bool // include %%{init:}%% directive (for standalone .mmd files)
}

// DefaultDiagramOptions returns sensible defaults for diagram generation.
func DefaultDiagramOptions() DiagramOptions {
	return DiagramOptions{MaxMethodsPerBox: 5, IncludeInit: true}
}

// GenerateMermaid produces a Mermaid classDiagram of c, its ancestors and its
// descendants, with one "Child --|> Parent" line per inheritance edge.
func GenerateMermaid(g *hierarchy.Graph, c *hierarchy.Class, opts DiagramOptions) string {
	var b strings.Builder

	// Ancestors first, then the class, then descendants.
	nodes := append(g.Ancestors(c), c)
	nodes = append(nodes, g.Descendants(c)...)

	if opts.IncludeInit {
		b.WriteString("%%{init: {'theme': 'base', 'themeVariables': {'primaryColor': '#ffffff', 'primaryBorderColor': '#cccccc', 'primaryTextColor': '#000000', 'lineColor': '#555555'}}%%\n")
	}
	b.WriteString("classDiagram\n")
	b.WriteString("    direction BT\n")
	b.WriteString("    classDef focusStyle fill:#2374ab,stroke:#1a5a8a,color:#fff,stroke-width:2px,font-weight:bold\n")
	b.WriteString("    classDef externalStyle fill:#eeeeee,stroke:#999999,color:#555555,stroke-dasharray:3 3")

	for _, n := range nodes {
		b.WriteString("\n")
		writeClassBlock(&b, n, opts)
	}

	edges := g.Edges(nodes)
	if len(edges) > 0 {
		b.WriteString("\n")
	}
	for _, e := range edges {
		b.WriteString(fmt.Sprintf("\n    %s --|> %s", NodeID(e[0]), NodeID(e[1])))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("\n    cssClass \"%s\" focusStyle", NodeID(c)))
	for _, n := range nodes {
		if n.External {
			b.WriteString(fmt.Sprintf("\n    cssClass \"%s\" externalStyle", NodeID(n)))
		}
	}
	b.WriteString("\n")

	return b.String()
}

// sanitizeID replaces /, ., - with _ in node identifiers.
func sanitizeID(s string) string {
	r := strings.NewReplacer("/", "_", ".", "_", "-", "_")
	return r.Replace(s)
}

// NodeID builds a sanitized node ID from the class's qualified ID.
func NodeID(c *hierarchy.Class) string {
	return sanitizeID(c.ID())
}

// writeClassBlock writes a Mermaid class block with the class's own methods.
// Inherited methods are left to the parent boxes.
func writeClassBlock(b *strings.Builder, c *hierarchy.Class, opts DiagramOptions) {
	b.WriteString(fmt.Sprintf("    class %s[\"%s\"] {\n", NodeID(c), c.Name()))
	if c.Def.Module != "" {
		b.WriteString("        %% module: " + c.Def.Module + "\n")
	}
	if c.Def.Doc != "" {
		b.WriteString("        %% " + strings.Join(strings.Fields(c.Def.Doc), " ") + "\n")
	}
	writeMethodLines(b, ownMethods(c), opts)
	b.WriteString("    }")
}

// writeMethodLines writes method lines with optional truncation.
func writeMethodLines(b *strings.Builder, methods []string, opts DiagramOptions) {
	limit := len(methods)
	truncated := false
	if opts.MaxMethodsPerBox > 0 && limit > opts.MaxMethodsPerBox {
		limit = opts.MaxMethodsPerBox
		truncated = true
	}

	for i := 0; i < limit; i++ {
		b.WriteString(fmt.Sprintf("        +%s()\n", methods[i]))
	}
	if truncated {
		b.WriteString("        ...\n")
	}
}

func ownMethods(c *hierarchy.Class) []string {
	var out []string
	for _, m := range c.Def.Methods {
		if !strings.HasPrefix(m, "__") {
			out = append(out, m)
		}
	}
	return out
}
