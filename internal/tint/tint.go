// Package tint colours terminal text with 256-colour ANSI escape sequences.
package tint

import "fmt"

// Style is an SGR attribute combined with the foreground colour.
type Style int

const (
	Normal     Style = 0
	Bright     Style = 1
	Dim        Style = 2
	Underlined Style = 4
	Background Style = 7
	Hidden     Style = 8
	Strikeout  Style = 9
)

func (s Style) String() string {
	switch s {
	case Normal:
		return "NORMAL"
	case Bright:
		return "BRIGHT"
	case Dim:
		return "DIM"
	case Underlined:
		return "UNDERLINED"
	case Background:
		return "BACKGROUND"
	case Hidden:
		return "HIDDEN"
	case Strikeout:
		return "STRIKEOUT"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

const reset = "\x1b[0m"

// Tint256 wraps s in one escape sequence per style, the first style innermost.
// Each sequence selects color from the 256-colour palette. With no styles,
// Normal is used.
func Tint256(s string, color int, styles ...Style) string {
	if len(styles) == 0 {
		styles = []Style{Normal}
	}
	for _, st := range styles {
		s = fmt.Sprintf("\x1b[%d;38;5;%dm%s%s", int(st), color, s, reset)
	}
	return s
}
