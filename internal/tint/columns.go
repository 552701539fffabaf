package tint

import "strings"

// Call marks a method name in column output.
const Call = "()"

// FirstRowColor starts the alternating row colours.
const FirstRowColor = 39

// NextRowColor returns the colour of the row after one drawn in prev.
// Successive rows ping-pong between 39 and 227.
func NextRowColor(prev int) int {
	return 266 - prev
}

// RowColors returns the colours for n successive rows.
func RowColors(n int) []int {
	colors := make([]int, n)
	c := FirstRowColor
	for i := range colors {
		colors[i] = c
		c = NextRowColor(c)
	}
	return colors
}

// ColumnWidth is the cell width shared by every name in a layout.
func ColumnWidth(names []string, pad int) int {
	pad = max(pad, 0)
	longest := 0
	for _, n := range names {
		if len(n) > longest {
			longest = len(n)
		}
	}
	return longest + len(Call) + pad
}

// LayoutColumns renders names as "name()" cells, groupSize cells per line,
// each cell right-padded with spaces to ColumnWidth. The final line may hold
// fewer cells.
func LayoutColumns(names []string, groupSize, pad int) []string {
	if len(names) == 0 {
		return nil
	}
	if groupSize < 1 {
		groupSize = 1
	}
	width := ColumnWidth(names, pad)

	lines := make([]string, 0, (len(names)+groupSize-1)/groupSize)
	for start := 0; start < len(names); start += groupSize {
		end := min(start+groupSize, len(names))
		var b strings.Builder
		for _, n := range names[start:end] {
			cell := n + Call
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", width-len(cell)))
		}
		lines = append(lines, b.String())
	}
	return lines
}
