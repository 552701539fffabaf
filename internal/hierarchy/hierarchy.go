// Package hierarchy answers ancestor, descendant and method queries over a
// class catalog. All edges are computed once, when the graph is built.
package hierarchy

import (
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/teraspora/Manim-Tools/internal/catalog"
)

// Class is a node of the hierarchy graph.
type Class struct {
	Def      catalog.ClassDef
	External bool // referenced as a parent but not defined in the catalog

	parents  []*Class
	children []*Class
}

// Name returns the class's bare name.
func (c *Class) Name() string { return c.Def.Name }

// ID returns the class's qualified identifier.
func (c *Class) ID() string { return c.Def.ID() }

// Parents returns the direct parents in declaration order.
func (c *Class) Parents() []*Class { return c.parents }

// Children returns the direct subclasses in catalog order.
func (c *Class) Children() []*Class { return c.children }

// Graph is the class hierarchy built from a catalog.
type Graph struct {
	cat    *catalog.Catalog
	nodes  []*Class
	byID   map[string]*Class
	logger *slog.Logger
}

// New builds the graph for every class in cat. Parent references that match
// no catalog class become external leaf nodes.
func New(cat *catalog.Catalog, logger *slog.Logger) *Graph {
	g := &Graph{
		cat:    cat,
		byID:   make(map[string]*Class),
		logger: logger.With("component", "hierarchy"),
	}

	defs := cat.Classes()
	for _, def := range defs {
		g.add(&Class{Def: def})
	}

	for _, def := range defs {
		child := g.byID[def.ID()]
		for _, ref := range def.Parents {
			parent := g.parentNode(ref, def.ID())
			if parent == nil || containsClass(child.parents, parent) {
				continue
			}
			child.parents = append(child.parents, parent)
			parent.children = append(parent.children, child)
		}
	}

	g.logger.Debug("hierarchy built", "classes", len(defs), "nodes", len(g.nodes))
	return g
}

func (g *Graph) add(c *Class) {
	g.nodes = append(g.nodes, c)
	g.byID[c.ID()] = c
}

func (g *Graph) parentNode(ref, childID string) *Class {
	def, err := g.cat.Lookup(ref)
	if err == nil {
		return g.byID[def.ID()]
	}

	var ambiguous *catalog.AmbiguousError
	if errors.As(err, &ambiguous) {
		g.logger.Warn("ambiguous parent reference", "class", childID, "parent", ref, "candidates", ambiguous.Candidates)
		return nil
	}

	if ext, ok := g.byID[ref]; ok {
		return ext
	}
	g.logger.Info("parent not in catalog, treating as external", "class", childID, "parent", ref)
	ext := &Class{Def: externalDef(ref), External: true}
	g.add(ext)
	return ext
}

// externalDef splits a qualified reference such as "io.Reader" into module
// and name so the node's ID stays equal to the reference.
func externalDef(ref string) catalog.ClassDef {
	if i := strings.LastIndex(ref, "."); i > 0 && i < len(ref)-1 {
		return catalog.ClassDef{Module: ref[:i], Name: ref[i+1:]}
	}
	return catalog.ClassDef{Name: ref}
}

// Len returns the number of nodes, external ones included.
func (g *Graph) Len() int { return len(g.nodes) }

// Resolve finds a class by name or qualified ID. Unknown names produce an
// error matching catalog.ErrClassNotFound.
func (g *Graph) Resolve(name string) (*Class, error) {
	def, err := g.cat.Lookup(name)
	if err != nil {
		return nil, err
	}
	return g.byID[def.ID()], nil
}

// Ancestors returns every class c inherits from: each direct parent in
// declaration order followed by that parent's own ancestors. A class reached
// along several paths is listed once, at its first position.
func (g *Graph) Ancestors(c *Class) []*Class {
	return walk(c, (*Class).Parents)
}

// Descendants returns every class inheriting from c, walked the same way
// as Ancestors but along subclass edges.
func (g *Graph) Descendants(c *Class) []*Class {
	return walk(c, (*Class).Children)
}

func walk(start *Class, next func(*Class) []*Class) []*Class {
	out := []*Class{}
	seen := map[*Class]bool{start: true}
	var visit func(*Class)
	visit = func(c *Class) {
		for _, n := range next(c) {
			if seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
			visit(n)
		}
	}
	visit(start)
	return out
}

// Methods lists the callable names available on c, its own and those
// inherited from its ancestors, as one byte-wise sorted set. Names starting
// with "__" are skipped. A non-empty filter keeps names containing it,
// ignoring case.
func (g *Graph) Methods(c *Class, filter string) []string {
	seen := make(map[string]bool)
	var all []string
	for _, owner := range append([]*Class{c}, g.Ancestors(c)...) {
		for _, name := range owner.Def.Methods {
			if seen[name] || strings.HasPrefix(name, "__") {
				continue
			}
			seen[name] = true
			all = append(all, name)
		}
	}
	sort.Strings(all)

	filter = strings.ToLower(filter)
	out := []string{}
	for _, name := range all {
		if filter == "" || strings.Contains(strings.ToLower(name), filter) {
			out = append(out, name)
		}
	}
	return out
}

// Edges returns the child→parent edges whose endpoints both lie in set,
// in the order of set.
func (g *Graph) Edges(set []*Class) [][2]*Class {
	in := make(map[*Class]bool, len(set))
	for _, c := range set {
		in[c] = true
	}
	var edges [][2]*Class
	for _, c := range set {
		for _, p := range c.parents {
			if in[p] {
				edges = append(edges, [2]*Class{c, p})
			}
		}
	}
	return edges
}

func containsClass(list []*Class, c *Class) bool {
	for _, x := range list {
		if x == c {
			return true
		}
	}
	return false
}
