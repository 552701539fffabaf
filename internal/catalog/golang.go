package catalog

import (
	"context"
	"fmt"
	"go/token"
	"go/types"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

// GoOptions controls how a catalog is built from Go source.
type GoOptions struct {
	Filter            string // package path prefix filter
	IncludeUnexported bool
}

// LoadGoPackages loads every package under dir and turns each named type into
// a class. Embedded struct fields and embedded interfaces are its parents.
func LoadGoPackages(ctx context.Context, dir string, opts GoOptions, logger *slog.Logger) (*Catalog, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedImports |
			packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:     dir,
		Context: ctx,
	}

	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}
	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].PkgPath < pkgs[j].PkgPath })

	logger.Info("packages loaded", "packages_count", len(pkgs))

	// Log packages with errors but continue
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			logger.Warn("package load error", "package", pkg.PkgPath, "error", e.Msg)
		}
	}

	cat := New("go", "")
	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		if opts.Filter != "" && !strings.HasPrefix(pkg.PkgPath, opts.Filter) {
			continue
		}

		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			tn, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || tn.IsAlias() {
				continue
			}
			if !opts.IncludeUnexported && !token.IsExported(tn.Name()) {
				continue
			}
			named, ok := tn.Type().(*types.Named)
			if !ok {
				continue
			}

			def := ClassDef{
				Name:    tn.Name(),
				Module:  pkg.PkgPath,
				Parents: embeddedParents(named),
				Methods: declaredMethods(named, opts.IncludeUnexported),
			}
			if err := cat.Add(def); err != nil {
				logger.Warn("skipping type", "type", def.ID(), "error", err)
				continue
			}
			logger.Debug("found type", "name", def.Name, "package", def.Module,
				"parents", len(def.Parents), "methods", len(def.Methods))
		}
	}

	logger.Info("catalog built", "classes", cat.Len())
	return cat, nil
}

func embeddedParents(named *types.Named) []string {
	var parents []string
	switch u := named.Underlying().(type) {
	case *types.Struct:
		for i := 0; i < u.NumFields(); i++ {
			f := u.Field(i)
			if !f.Embedded() {
				continue
			}
			if id := namedID(f.Type()); id != "" {
				parents = append(parents, id)
			}
		}
	case *types.Interface:
		for i := 0; i < u.NumEmbeddeds(); i++ {
			if id := namedID(u.EmbeddedType(i)); id != "" {
				parents = append(parents, id)
			}
		}
	}
	return parents
}

func declaredMethods(named *types.Named, includeUnexported bool) []string {
	var names []string
	add := func(fn *types.Func) {
		if includeUnexported || fn.Exported() {
			names = append(names, fn.Name())
		}
	}
	if iface, ok := named.Underlying().(*types.Interface); ok {
		for i := 0; i < iface.NumExplicitMethods(); i++ {
			add(iface.ExplicitMethod(i))
		}
	} else {
		for i := 0; i < named.NumMethods(); i++ {
			add(named.Method(i))
		}
	}
	return normalizeMethods(names)
}

// namedID returns the qualified ID of a (possibly pointer to a) named type.
func namedID(t types.Type) string {
	t = types.Unalias(t)
	if p, ok := t.(*types.Pointer); ok {
		t = types.Unalias(p.Elem())
	}
	named, ok := t.(*types.Named)
	if !ok {
		return ""
	}
	obj := named.Obj()
	if obj.Pkg() == nil {
		return obj.Name() // universe types such as error
	}
	return obj.Pkg().Path() + "." + obj.Name()
}
