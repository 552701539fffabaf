package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/teraspora/Manim-Tools/internal/catalog"
	"github.com/teraspora/Manim-Tools/internal/diagram"
	"github.com/teraspora/Manim-Tools/internal/hierarchy"
	"github.com/teraspora/Manim-Tools/internal/logging"
	"github.com/teraspora/Manim-Tools/internal/report"
	"github.com/teraspora/Manim-Tools/internal/tint"
)

// noMethodsToken as a positional argument suppresses the methods section.
const noMethodsToken = "nomethods"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// query is what the positional arguments ask for.
type query struct {
	ClassName string
	Filter    string
	NoMethods bool
}

// parsePositional reads <class_name> [<filter> | nomethods]. The token
// nomethods anywhere after the class name suppresses the methods section.
func parsePositional(positional []string) (query, bool) {
	if len(positional) == 0 {
		return query{}, false
	}
	q := query{ClassName: positional[0]}
	if len(positional) > 1 {
		q.Filter = positional[1]
	}
	for _, arg := range positional[1:] {
		if arg == noMethodsToken {
			q.NoMethods = true
		}
	}
	if q.Filter == noMethodsToken {
		q.Filter = ""
	}
	return q, true
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// Flags may follow the positional arguments, so split them first.
	flags, positional := reorderArgs(args)

	fs := flag.NewFlagSet("classinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	catalogSrc := fs.String("catalog", "", "YAML catalog file or Go module directory (default: builtin Manim catalog)")
	pkgFilter := fs.String("pkg-filter", "", "package path prefix filter when loading Go source")
	includeUnexported := fs.Bool("include-unexported", false, "include unexported Go types and methods")
	colorFlag := fs.String("color", "auto", "colour output (auto, always, never)")
	columns := fs.Int("columns", 4, "method names per row")
	pad := fs.Int("pad", 4, "spaces after the longest method name")
	mermaidOut := fs.String("mermaid", "", "also write a Mermaid class diagram of the hierarchy to this file")
	logFile := fs.String("log-file", "", "log file path (logs always go to stderr)")
	logLevel := fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: classinfo [flags] <class_name> [<filter> | nomethods]")
		fmt.Fprintln(stderr, "Colour is only emitted on a terminal unless -color always is given.")
		fs.PrintDefaults()
	}

	if err := fs.Parse(flags); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	positional = append(positional, fs.Args()...)

	q, ok := parsePositional(positional)
	if !ok {
		fs.Usage()
		return 0
	}

	level, err := parseLogLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid log level %q: %v\n", *logLevel, err)
		return 1
	}
	mode, err := tint.ParseColorMode(*colorFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid -color: %v\n", err)
		return 1
	}

	logger, logCleanup, err := logging.Setup(*logFile, level)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to setup logging: %v\n", err)
		return 1
	}
	defer logCleanup()

	cat, err := catalog.Open(ctx, *catalogSrc, catalog.GoOptions{
		Filter:            *pkgFilter,
		IncludeUnexported: *includeUnexported,
	}, logger)
	if err != nil {
		logger.Error("failed to load catalog", "source", *catalogSrc, "error", err)
		fmt.Fprintf(stderr, "Error loading catalog: %v\n", err)
		return 1
	}

	logger.Info("catalog loaded", "library", cat.Library, "version", cat.Version, "classes", cat.Len())

	g := hierarchy.New(cat, logger)
	cls, err := g.Resolve(q.ClassName)
	if err != nil {
		var ambiguous *catalog.AmbiguousError
		if errors.As(err, &ambiguous) {
			fmt.Fprintf(stdout, "\n# %v\n", err)
			return 0
		}
		logger.Debug("class not found", "name", q.ClassName, "error", err)
		_ = report.NotFound(stdout, q.ClassName)
		// Kept at 0: existing scripts treat a misspelt name as a normal run.
		return 0
	}

	logger.Debug("class resolved", "id", cls.ID(), "doc", cls.Def.Doc)

	opts := report.DefaultOptions()
	opts.Name = q.ClassName
	opts.Filter = q.Filter
	opts.NoMethods = q.NoMethods
	opts.GroupSize = *columns
	opts.Pad = *pad
	opts.Painter = tint.NewPainter(stdout, mode)

	if err := report.Render(stdout, g, cls, opts); err != nil {
		logger.Error("failed to write report", "error", err)
		return 1
	}

	if *mermaidOut != "" {
		content := diagram.GenerateMermaid(g, cls, diagram.DefaultDiagramOptions())
		if err := os.WriteFile(*mermaidOut, []byte(content), 0o644); err != nil {
			logger.Error("failed to write output file", "error", err)
			fmt.Fprintf(stderr, "Error writing to %s: %v\n", *mermaidOut, err)
			return 1
		}
		logger.Info("wrote diagram", "path", *mermaidOut)
	}
	return 0
}

// reorderArgs separates flags and positional arguments so flags can appear
// in any position (before or after the class name).
// Flags that take a value (e.g., -catalog manim.yaml) consume the next arg.
func reorderArgs(args []string) (flags, positional []string) {
	// Set of flags that take a value argument
	valueFlagSet := map[string]bool{
		"-catalog": true, "-pkg-filter": true, "-color": true,
		"-columns": true, "-pad": true, "-mermaid": true,
		"-log-file": true, "-log-level": true,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			flags = append(flags, arg)
			// Check if this flag takes a value (and it's not using = syntax)
			name := "-" + strings.TrimLeft(arg, "-")
			if !strings.Contains(arg, "=") && valueFlagSet[name] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, arg)
		}
	}
	return flags, positional
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s (valid: debug, info, warn, error)", s)
	}
}
