package tint

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTint256(t *testing.T) {
	tests := []struct {
		name   string
		styles []Style
		want   string
	}{
		{"default is normal", nil, "\x1b[0;38;5;85mCircle\x1b[0m"},
		{"single style", []Style{Underlined}, "\x1b[4;38;5;85mCircle\x1b[0m"},
		{
			"first style innermost",
			[]Style{Bright, Underlined},
			"\x1b[4;38;5;85m\x1b[1;38;5;85mCircle\x1b[0m\x1b[0m",
		},
		{
			"three styles",
			[]Style{Dim, Strikeout, Hidden},
			"\x1b[8;38;5;85m\x1b[9;38;5;85m\x1b[2;38;5;85mCircle\x1b[0m\x1b[0m\x1b[0m",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tint256("Circle", 85, tt.styles...))
		})
	}
}

func TestStyleValues(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 4, 7, 8, 9},
		[]int{int(Normal), int(Bright), int(Dim), int(Underlined), int(Background), int(Hidden), int(Strikeout)})
	assert.Equal(t, "UNDERLINED", Underlined.String())
	assert.Equal(t, "Style(3)", Style(3).String())
}

func TestRowColors(t *testing.T) {
	assert.Equal(t, []int{39, 227, 39, 227, 39}, RowColors(5))
	assert.Empty(t, RowColors(0))

	colors := RowColors(10)
	for i := 0; i+2 < len(colors); i++ {
		assert.Equal(t, colors[i], colors[i+2])
		assert.NotEqual(t, colors[i], colors[i+1])
	}
}

func TestLayoutColumns(t *testing.T) {
	names := []string{"add", "add_updater", "become", "center", "copy", "fade"}
	lines := LayoutColumns(names, 4, 4)
	require.Len(t, lines, 2)

	width := len("add_updater") + 2 + 4
	assert.Equal(t, width, ColumnWidth(names, 4))
	assert.Equal(t, 4*width, len(lines[0]))
	assert.Equal(t, 2*width, len(lines[1]), "final group may be short")

	assert.True(t, strings.HasPrefix(lines[0], "add()"+strings.Repeat(" ", width-5)+"add_updater()"))
	assert.True(t, strings.HasPrefix(lines[1], "copy()"))
}

func TestLayoutColumns_EveryCellSameWidth(t *testing.T) {
	names := []string{"a", "bb", "ccc", "dddd", "eeeee", "f", "gg", "hhhhhhhhh", "i"}
	pad := 3
	width := ColumnWidth(names, pad)
	assert.Equal(t, 9+2+pad, width)

	lines := LayoutColumns(names, 4, pad)
	var cells []string
	for _, line := range lines {
		require.Zero(t, len(line)%width)
		for i := 0; i < len(line); i += width {
			cells = append(cells, line[i:i+width])
		}
	}
	require.Len(t, cells, len(names))
	for i, cell := range cells {
		assert.Equal(t, names[i]+"()", strings.TrimRight(cell, " "))
	}
}

func TestLayoutColumns_Edges(t *testing.T) {
	assert.Nil(t, LayoutColumns(nil, 4, 4))
	assert.Equal(t, []string{"x()  ", "y()  "}, LayoutColumns([]string{"x", "y"}, 0, 2))
}

func TestParseColorMode(t *testing.T) {
	for _, s := range []string{"auto", "ALWAYS", "Never"} {
		_, err := ParseColorMode(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseColorMode("sometimes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown color mode")
}

func TestPainter(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, NewPainter(&buf, ColorAuto).Enabled, "a buffer is not a terminal")
	assert.True(t, NewPainter(&buf, ColorAlways).Enabled)
	assert.False(t, NewPainter(&buf, ColorNever).Enabled)

	assert.Equal(t, "Arc", Painter{}.Paint("Arc", 85))
	assert.Equal(t, Tint256("Arc", 85, Dim), Painter{Enabled: true}.Paint("Arc", 85, Dim))
}
