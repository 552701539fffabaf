package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrClassNotFound is matched by every lookup failure for an unknown name.
var ErrClassNotFound = errors.New("class not found")

// ClassDef describes one class of the inspected library.
type ClassDef struct {
	Name    string   `yaml:"name"`
	Module  string   `yaml:"module,omitempty"`
	Parents []string `yaml:"parents,omitempty"` // bare names or qualified IDs, declaration order
	Methods []string `yaml:"methods,omitempty"` // callable names declared on the class itself
	Doc     string   `yaml:"doc,omitempty"`
}

// ID returns the qualified identifier (module.Name), or the bare name when
// the class has no module.
func (d ClassDef) ID() string {
	if d.Module == "" {
		return d.Name
	}
	return d.Module + "." + d.Name
}

// ClassNotFoundError reports a name that matches no class in the catalog.
type ClassNotFoundError struct {
	Name string
}

func (e *ClassNotFoundError) Error() string {
	return fmt.Sprintf("no class named %q", e.Name)
}

func (e *ClassNotFoundError) Unwrap() error { return ErrClassNotFound }

// AmbiguousError reports a bare name declared in more than one module.
type AmbiguousError struct {
	Name       string
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("class name %q is ambiguous, use one of: %s", e.Name, strings.Join(e.Candidates, ", "))
}

// Catalog is an ordered, indexed set of class definitions.
type Catalog struct {
	Library string
	Version string

	classes []ClassDef
	byID    map[string]int
	byName  map[string][]int
}

// New returns an empty catalog for the named library.
func New(library, version string) *Catalog {
	return &Catalog{
		Library: library,
		Version: version,
		byID:    make(map[string]int),
		byName:  make(map[string][]int),
	}
}

// Add appends a class definition. Empty names and duplicate IDs are rejected.
func (c *Catalog) Add(def ClassDef) error {
	def.Name = strings.TrimSpace(def.Name)
	if def.Name == "" {
		return fmt.Errorf("class definition without a name (module %q)", def.Module)
	}
	id := def.ID()
	if _, dup := c.byID[id]; dup {
		return fmt.Errorf("duplicate class %s", id)
	}
	idx := len(c.classes)
	c.classes = append(c.classes, def)
	c.byID[id] = idx
	c.byName[def.Name] = append(c.byName[def.Name], idx)
	return nil
}

// Len returns the number of classes.
func (c *Catalog) Len() int { return len(c.classes) }

// Classes returns the definitions in declaration order.
func (c *Catalog) Classes() []ClassDef {
	out := make([]ClassDef, len(c.classes))
	copy(out, c.classes)
	return out
}

// Lookup finds a class by qualified ID, falling back to its bare name.
func (c *Catalog) Lookup(ref string) (*ClassDef, error) {
	if idx, ok := c.byID[ref]; ok {
		return &c.classes[idx], nil
	}
	matches := c.byName[ref]
	switch len(matches) {
	case 0:
		return nil, &ClassNotFoundError{Name: ref}
	case 1:
		return &c.classes[matches[0]], nil
	default:
		candidates := make([]string, len(matches))
		for i, idx := range matches {
			candidates[i] = c.classes[idx].ID()
		}
		return nil, &AmbiguousError{Name: ref, Candidates: candidates}
	}
}
