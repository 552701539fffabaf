package tint

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorMode selects when escape sequences are emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses auto, always or never, case-insensitively.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode: %s (valid: auto, always, never)", s)
	}
}

// Painter applies Tint256 when Enabled and returns text unchanged otherwise.
type Painter struct {
	Enabled bool
}

// NewPainter decides colour for w under mode. Auto colours only terminals.
func NewPainter(w io.Writer, mode ColorMode) Painter {
	switch mode {
	case ColorAlways:
		return Painter{Enabled: true}
	case ColorNever:
		return Painter{Enabled: false}
	default:
		return Painter{Enabled: isTerminalWriter(w)}
	}
}

// Paint colours s if the painter is enabled.
func (p Painter) Paint(s string, color int, styles ...Style) string {
	if !p.Enabled {
		return s
	}
	return Tint256(s, color, styles...)
}

func isTerminalWriter(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
