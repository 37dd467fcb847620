package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/lifegif/internal/life"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"

	// maxCols and maxRows bound the visible window into large grids.
	maxCols = 120
	maxRows = 40
)

var (
	aliveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// LiveRenderer redraws the grid on each engine step, at most frameRate times
// per second.
type LiveRenderer struct {
	out       io.Writer
	title     string
	frameRate int
	lastFrame time.Time
	peak      int
}

func NewLiveRenderer(out io.Writer, title string, frameRate int) *LiveRenderer {
	if frameRate <= 0 {
		frameRate = 30
	}
	return &LiveRenderer{
		out:       out,
		title:     title,
		frameRate: frameRate,
	}
}

func (r *LiveRenderer) OnStep(generation int, g *life.Grid) {
	live := g.LiveCount()
	if live > r.peak {
		r.peak = live
	}

	elapsed := time.Since(r.lastFrame)
	if elapsed < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()

	fmt.Fprint(r.out, clearScreen+Frame(r.title, generation, g, r.peak))
}

// Frame renders one screen: a header line, the bordered grid window and a
// status line.
func Frame(title string, generation int, g *life.Grid, peak int) string {
	w, h := g.Dimensions()
	cols, rows := min(w, maxCols), min(h, maxRows)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %s  gen %d", title, generation)))
	b.WriteString("\n")
	b.WriteString("  +" + strings.Repeat("-", cols) + "+\n")

	for row := 0; row < rows; row++ {
		var line strings.Builder
		for col := 0; col < cols; col++ {
			if g.Cell(row, col) {
				line.WriteRune('█')
			} else {
				line.WriteRune(' ')
			}
		}
		b.WriteString("  |" + aliveStyle.Render(line.String()) + "|\n")
	}

	b.WriteString("  +" + strings.Repeat("-", cols) + "+\n")
	status := fmt.Sprintf("  live=%d peak=%d size=%dx%d", g.LiveCount(), peak, w, h)
	if cols < w || rows < h {
		status += fmt.Sprintf(" (showing %dx%d)", cols, rows)
	}
	b.WriteString(dimStyle.Render(status) + "\n")
	return b.String()
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
