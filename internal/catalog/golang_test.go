package catalog

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

const geomPkg = "example.com/shapes/geom"

func TestLoadGoPackages(t *testing.T) {
	cat, err := LoadGoPackages(context.Background(), filepath.Join("testdata", "shapes"), GoOptions{}, testLogger())
	require.NoError(t, err)

	tests := []struct {
		ref     string
		parents []string
		methods []string
	}{
		{
			ref:     geomPkg + ".Shape",
			parents: []string{geomPkg + ".Drawable", "sync.Mutex"},
			methods: []string{"Name", "Rename"},
		},
		{
			ref:     geomPkg + ".Widget",
			parents: []string{geomPkg + ".Shape", geomPkg + ".Drawable"},
			methods: []string{"Draw", "SaveState"},
		},
		{
			ref:     geomPkg + ".RenderSizer",
			parents: []string{geomPkg + ".Drawable", geomPkg + ".Sizer"},
			methods: []string{"Render"},
		},
		{
			ref:     geomPkg + ".Drawable",
			methods: []string{"Draw"},
		},
		{
			ref:     "example.com/shapes/draw.Button",
			parents: []string{geomPkg + ".Widget"},
			methods: []string{"Click"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			def, err := cat.Lookup(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.parents, def.Parents)
			assert.Equal(t, tt.methods, def.Methods)
		})
	}

	_, err = cat.Lookup("hidden")
	assert.ErrorIs(t, err, ErrClassNotFound, "unexported types are skipped by default")
}

func TestLoadGoPackages_IncludeUnexported(t *testing.T) {
	cat, err := LoadGoPackages(context.Background(), filepath.Join("testdata", "shapes"),
		GoOptions{IncludeUnexported: true}, testLogger())
	require.NoError(t, err)

	_, err = cat.Lookup("hidden")
	require.NoError(t, err)

	shape, err := cat.Lookup("Shape")
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Rename", "validate"}, shape.Methods)
}

func TestLoadGoPackages_Filter(t *testing.T) {
	cat, err := LoadGoPackages(context.Background(), filepath.Join("testdata", "shapes"),
		GoOptions{Filter: "example.com/shapes/draw"}, testLogger())
	require.NoError(t, err)

	assert.Equal(t, 1, cat.Len())
	_, err = cat.Lookup("Button")
	require.NoError(t, err)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("builtin", func(t *testing.T) {
		cat, err := Open(ctx, "", GoOptions{}, testLogger())
		require.NoError(t, err)
		assert.Equal(t, "manim", cat.Library)
	})

	t.Run("yaml file", func(t *testing.T) {
		cat, err := Open(ctx, filepath.Join("testdata", "diamond.yaml"), GoOptions{}, testLogger())
		require.NoError(t, err)
		assert.Equal(t, "diamond", cat.Library)
	})

	t.Run("go module subdirectory", func(t *testing.T) {
		cat, err := Open(ctx, filepath.Join("testdata", "shapes", "geom"), GoOptions{}, testLogger())
		require.NoError(t, err)
		assert.Equal(t, "example.com/shapes", cat.Library)
		_, err = cat.Lookup("Widget")
		require.NoError(t, err)
		_, err = cat.Lookup("Button")
		assert.ErrorIs(t, err, ErrClassNotFound, "only packages under the given directory are loaded")
	})

	t.Run("unsupported file", func(t *testing.T) {
		_, err := Open(ctx, filepath.Join("testdata", "shapes", "go.mod"), GoOptions{}, testLogger())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "neither a directory nor a .yaml catalog")
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := Open(ctx, filepath.Join("testdata", "missing"), GoOptions{}, testLogger())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "stat")
	})
}

func TestFindModuleRoot(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "go.mod"), []byte("module example.com/root\n"), 0o644))
	deep := filepath.Join(tmp, "a", "b")
	require.NoError(t, os.MkdirAll(deep, 0o755))

	root, modPath, err := findModuleRoot(deep)
	require.NoError(t, err)
	assert.Equal(t, tmp, root)
	assert.Equal(t, "example.com/root", modPath)
}

func TestFindModuleRoot_NoModuleDirective(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "go.mod"), []byte("go 1.21\n"), 0o644))

	_, _, err := findModuleRoot(tmp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not determine module path")
}
