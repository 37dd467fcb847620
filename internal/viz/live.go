package viz

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/lifegif/internal/life"
	"github.com/san-kum/lifegif/internal/recorder"
	"github.com/san-kum/lifegif/internal/render"
)

const (
	historyCapacity = 600

	// viewCols and viewRows bound the visible window; the window follows the cursor.
	viewCols = 60
	viewRows = 30
)

type TickMsg time.Time

// Options configures a Model. Zero values fall back to defaults.
type Options struct {
	Title        string
	TickRate     time.Duration
	FrameDelayMs uint16
	CellSize     int
	Theme        string
	GridLines    bool
	// OutDir receives GIFs recorded with the g key.
	OutDir string
	// WriteFile defaults to os.WriteFile.
	WriteFile func(name string, data []byte, perm os.FileMode) error
}

// Model is the interactive player and editor.
type Model struct {
	engine     *life.Engine
	rec        *recorder.Recorder
	raster     *render.Rasterizer
	opts       Options
	running    bool
	cursorRow  int
	cursorCol  int
	population []float64
	status     string
	showHelp   bool
	saved      []string
}

func NewModel(engine *life.Engine, rec *recorder.Recorder, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = time.Second / 10
	}
	if opts.FrameDelayMs == 0 {
		opts.FrameDelayMs = recorder.DefaultFrameDelay
	}
	if opts.Title == "" {
		opts.Title = "life"
	}
	if opts.WriteFile == nil {
		opts.WriteFile = os.WriteFile
	}
	if rec == nil {
		rec = recorder.New(logr.Discard())
	}
	raster := render.NewRasterizer(opts.CellSize, render.GetTheme(opts.Theme))
	raster.GridLines = opts.GridLines

	w, h := engine.Dimensions()
	m := Model{
		engine:     engine,
		rec:        rec,
		raster:     raster,
		opts:       opts,
		cursorRow:  h / 2,
		cursorCol:  w / 2,
		population: make([]float64, 0, historyCapacity),
	}
	m.sample()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.opts.TickRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the engine while playing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.rec.IsRecording() {
				m.stopRecording()
			}
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			m.running = false
			m.step()
		case "b":
			m.running = false
			if m.engine.StepBack() {
				m.changed()
			} else {
				m.status = "history empty"
			}
		case "r":
			m.engine.Reset()
			m.population = m.population[:0]
			m.changed()
		case "c":
			m.engine.Clear()
			m.changed()
		case "up", "k":
			m.moveCursor(-1, 0)
		case "down", "j":
			m.moveCursor(1, 0)
		case "left", "h":
			m.moveCursor(0, -1)
		case "right", "l":
			m.moveCursor(0, 1)
		case "enter", "x":
			m.engine.ToggleCell(m.cursorRow, m.cursorCol)
			m.changed()
		case "g":
			if m.rec.IsRecording() {
				m.stopRecording()
			} else {
				m.startRecording()
			}
		case "t":
			m.raster.Theme = render.NextTheme(m.raster.Theme.Name)
			m.status = "theme " + m.raster.Theme.Name
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		return m, nil
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.engine.Step()
	m.changed()
}

// changed samples the population and captures a frame while recording.
func (m *Model) changed() {
	m.sample()
	if m.rec.IsRecording() {
		if err := m.rec.Capture(m.raster.Render(m.engine.State())); err != nil {
			m.status = "capture failed: " + err.Error()
		}
	}
}

func (m *Model) sample() {
	m.population = append(m.population, float64(m.engine.LiveCount()))
	if len(m.population) > historyCapacity {
		m.population = m.population[1:]
	}
}

func (m *Model) moveCursor(dr, dc int) {
	w, h := m.engine.Dimensions()
	m.cursorRow = clamp(m.cursorRow+dr, 0, h-1)
	m.cursorCol = clamp(m.cursorCol+dc, 0, w-1)
}

func (m *Model) startRecording() {
	g := m.engine.State()
	w, h := m.raster.FrameSize(g)
	if err := m.rec.Start(w, h, m.opts.FrameDelayMs); err != nil {
		m.status = "record failed: " + err.Error()
		return
	}
	if err := m.rec.Capture(m.raster.Render(g)); err != nil {
		m.status = "capture failed: " + err.Error()
		return
	}
	m.status = "recording"
}

func (m *Model) stopRecording() {
	frames := m.rec.FrameCount()
	data, err := m.rec.Stop()
	if err != nil {
		m.status = "encode failed: " + err.Error()
		return
	}
	name := filepath.Join(m.opts.OutDir, fmt.Sprintf("%s_%d.gif", m.opts.Title, time.Now().UnixNano()))
	if err := m.opts.WriteFile(name, data, 0644); err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	m.saved = append(m.saved, name)
	m.status = fmt.Sprintf("saved %s (%d frames)", name, frames)
}

// Saved lists the GIFs written during the session.
func (m Model) Saved() []string { return m.saved }

func (m Model) Running() bool { return m.running }

func (m Model) Cursor() (int, int) { return m.cursorRow, m.cursorCol }

// View renders the grid window and the stats panel.
func (m Model) View() string {
	theme := m.raster.Theme
	gridView := canvasStyle.Render(m.renderGrid(theme))

	var s strings.Builder
	s.WriteString(headerStyle.Foreground(theme.Accent).Render(strings.ToUpper(m.opts.Title)) + "\n")

	status := "PAUSED"
	if m.running {
		status = "RUNNING"
	}
	if m.rec.IsRecording() {
		status += "  " + recordingStyle.Render(fmt.Sprintf("● REC %d", m.rec.FrameCount()))
	}
	s.WriteString(status + "\n\n")

	if len(m.population) > 1 {
		chart := asciigraph.Plot(m.population, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Population"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	w, h := m.engine.Dimensions()
	s.WriteString(labelStyle.Render("Generation") + valueStyle.Render(fmt.Sprintf("%d", m.engine.Generation())) + "\n")
	s.WriteString(labelStyle.Render("Live") + valueStyle.Render(fmt.Sprintf("%d", m.engine.LiveCount())) + "\n")
	s.WriteString(labelStyle.Render("Size") + valueStyle.Render(fmt.Sprintf("%dx%d", w, h)) + "\n")
	s.WriteString(labelStyle.Render("History") + valueStyle.Render(fmt.Sprintf("%d", m.engine.HistoryLen())) + "\n")
	s.WriteString(labelStyle.Render("Cursor") + valueStyle.Render(fmt.Sprintf("%d,%d", m.cursorRow, m.cursorCol)) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(theme.Name) + "\n")
	if m.status != "" {
		s.WriteString("\n" + valueStyle.Render(m.status) + "\n")
	}
	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Play N:Step B:Back R:Reset\nX:Toggle G:Record T:Theme ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, gridView, statsStyle.Render(s.String()))
	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

func (m Model) renderGrid(theme render.Theme) string {
	w, h := m.engine.Dimensions()
	cols, rows := min(w, viewCols), min(h, viewRows)
	top := clamp(m.cursorRow-rows/2, 0, h-rows)
	left := clamp(m.cursorCol-cols/2, 0, w-cols)

	alive := lipgloss.NewStyle().Foreground(theme.Alive)
	dead := lipgloss.NewStyle().Foreground(theme.Grid)
	cursor := lipgloss.NewStyle().Background(theme.Accent)

	var b strings.Builder
	for row := top; row < top+rows; row++ {
		for col := left; col < left+cols; col++ {
			cell := dead.Render("··")
			if m.engine.Cell(row, col) {
				cell = alive.Render("██")
			}
			if row == m.cursorRow && col == m.cursorCol {
				cell = cursor.Render(cell)
			}
			b.WriteString(cell)
		}
		if row < top+rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

const helpText = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Play/Pause               ║
║  N        - Step one generation      ║
║  B        - Step back                ║
║  R        - Reset to initial grid    ║
║  C        - Clear grid               ║
║  Arrows   - Move cursor (also hjkl)  ║
║  Enter/X  - Toggle cell              ║
║  G        - Start/stop GIF recording ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`
