package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed manim.yaml
var builtinManim []byte

// document is the on-disk catalog layout.
type document struct {
	Library string     `yaml:"library"`
	Version string     `yaml:"version,omitempty"`
	Classes []ClassDef `yaml:"classes"`
}

// LoadYAML decodes a catalog document. Each class's method names are sorted
// byte-wise and deduplicated.
func LoadYAML(r io.Reader) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return New("", ""), nil
		}
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	cat := New(doc.Library, doc.Version)
	for _, def := range doc.Classes {
		def.Methods = normalizeMethods(def.Methods)
		if err := cat.Add(def); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	cat, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Builtin returns the embedded Manim catalog.
func Builtin() (*Catalog, error) {
	cat, err := LoadYAML(bytes.NewReader(builtinManim))
	if err != nil {
		return nil, fmt.Errorf("builtin catalog: %w", err)
	}
	return cat, nil
}

func normalizeMethods(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
