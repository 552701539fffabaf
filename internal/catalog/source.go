package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// Open resolves a catalog source: "" is the builtin Manim catalog, a .yaml or
// .yml file is a catalog document, and a directory is Go source inside a module.
func Open(ctx context.Context, source string, opts GoOptions, logger *slog.Logger) (*Catalog, error) {
	if source == "" {
		logger.Debug("using builtin catalog")
		return Builtin()
	}

	absPath, err := filepath.Abs(source)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", absPath, err)
	}

	if !info.IsDir() {
		switch strings.ToLower(filepath.Ext(absPath)) {
		case ".yaml", ".yml":
			logger.Info("loading catalog file", "path", absPath)
			return LoadFile(absPath)
		default:
			return nil, fmt.Errorf("%s is neither a directory nor a .yaml catalog", absPath)
		}
	}

	modRoot, modPath, err := findModuleRoot(absPath)
	if err != nil {
		return nil, err
	}
	logger.Info("resolved local directory", "input", source, "module_root", modRoot, "module", modPath)

	cat, err := LoadGoPackages(ctx, absPath, opts, logger)
	if err != nil {
		return nil, err
	}
	cat.Library = modPath
	return cat, nil
}

// findModuleRoot walks up from dir to the nearest go.mod and returns its
// directory and declared module path.
func findModuleRoot(dir string) (root, modulePath string, err error) {
	current := dir
	for {
		goMod := filepath.Join(current, "go.mod")
		data, readErr := os.ReadFile(goMod)
		if readErr == nil {
			modulePath = modfile.ModulePath(data)
			if modulePath == "" {
				return "", "", fmt.Errorf("could not determine module path from %s", goMod)
			}
			return current, modulePath, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", "", fmt.Errorf("no go.mod found in %s or any parent directory", dir)
		}
		current = parent
	}
}
