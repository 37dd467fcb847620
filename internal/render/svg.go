package render

import (
	"fmt"
	"strings"

	"github.com/san-kum/lifegif/internal/life"
)

// GridToSVG renders live cells as squares on a themed background.
func GridToSVG(g *life.Grid, cellSize float64, theme Theme) string {
	if g == nil {
		return ""
	}
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}

	width := float64(g.Width()) * cellSize
	height := float64(g.Height()) * cellSize

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, string(theme.Dead), string(theme.Alive)))

	// Inset squares slightly so neighboring cells stay distinguishable
	inset := cellSize * 0.05
	size := cellSize - 2*inset

	for _, p := range g.LivePoints() {
		x := float64(p.Col)*cellSize + inset
		y := float64(p.Row)*cellSize + inset
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, x, y, size, size))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
