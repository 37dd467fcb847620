package life

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseText reads the text grid format: one row per line, only '0', '1'
// and whitespace. Whitespace is stripped, blank lines are skipped and short
// rows are padded with dead cells on the right.
func ParseText(content string) (*Grid, error) {
	rows := make([]string, 0)
	for n, line := range strings.Split(content, "\n") {
		var b strings.Builder
		for _, ch := range line {
			switch {
			case ch == '0' || ch == '1':
				b.WriteRune(ch)
			case unicode.IsSpace(ch):
			default:
				return nil, fmt.Errorf("%w: line %d: unexpected character %q", ErrInvalidText, n+1, ch)
			}
		}
		if b.Len() == 0 {
			continue
		}
		rows = append(rows, b.String())
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no grid data", ErrInvalidText)
	}

	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}

	g := NewGrid(width, len(rows))
	for row, r := range rows {
		for col := 0; col < len(r); col++ {
			if r[col] == '1' {
				g.cells[g.Index(row, col)] = 1
			}
		}
	}
	return g, nil
}

// FormatText writes g in the text grid format, one newline-terminated line per row.
func FormatText(g *Grid) string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.cells[g.Index(row, col)] != 0 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
