package life

import (
	"errors"
	"testing"
)

func TestFromCells(t *testing.T) {
	g, err := FromCells([]uint8{0, 1, 0, 2, 0, 0}, 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.Cell(0, 1) || !g.Cell(1, 0) {
		t.Error("expected live cells at (0,1) and (1,0)")
	}
	cells := g.Cells()
	if cells[3] != 1 {
		t.Errorf("non-zero input should normalize to 1, got %d", cells[3])
	}

	_, err = FromCells([]uint8{0, 1, 0}, 2, 2)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestCellsIsCopy(t *testing.T) {
	g := NewGrid(2, 2)
	c := g.Cells()
	c[0] = 1
	if g.Cell(0, 0) {
		t.Error("Cells() must return a copy")
	}
}

func TestCountNeighbors(t *testing.T) {
	g, _ := ParseText("111\n111\n111\n")

	tests := []struct {
		row, col int
		expected int
	}{
		{1, 1, 8},
		{0, 0, 3},
		{0, 1, 5},
		{2, 2, 3},
		{1, 0, 5},
	}

	for _, tt := range tests {
		if got := CountNeighbors(g, tt.row, tt.col); got != tt.expected {
			t.Errorf("CountNeighbors(%d,%d) = %d, want %d", tt.row, tt.col, got, tt.expected)
		}
	}
}

func TestNextCellRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := uint8(0)
		if n == 2 || n == 3 {
			wantAlive = 1
		}
		if got := nextCell(1, n); got != wantAlive {
			t.Errorf("live with %d neighbors: got %d, want %d", n, got, wantAlive)
		}

		wantDead := uint8(0)
		if n == 3 {
			wantDead = 1
		}
		if got := nextCell(0, n); got != wantDead {
			t.Errorf("dead with %d neighbors: got %d, want %d", n, got, wantDead)
		}
	}
}

func TestParseText(t *testing.T) {
	g, err := ParseText("\n  1 0 1\n\n01\n  \n1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w, h := g.Dimensions(); w != 3 || h != 3 {
		t.Fatalf("dimensions %dx%d, want 3x3", w, h)
	}
	want := "101\n010\n100\n"
	if got := FormatText(g); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"only whitespace", "  \n\t\n"},
		{"bad character", "010\n0x0\n"},
		{"dots", "..O\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseText(tt.content)
			if !errors.Is(err, ErrInvalidText) {
				t.Errorf("expected ErrInvalidText, got %v", err)
			}
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	g := randomGrid(13, 7, 5)
	back, err := ParseText(FormatText(g))
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(g) {
		t.Error("text round trip changed the grid")
	}
}

func TestPad(t *testing.T) {
	g := Glider(3, 3)
	p := Pad(g, 2)
	if w, h := p.Dimensions(); w != 7 || h != 7 {
		t.Fatalf("padded dimensions %dx%d, want 7x7", w, h)
	}
	if p.LiveCount() != 5 {
		t.Errorf("expected 5 live cells, got %d", p.LiveCount())
	}
	if !p.Cell(2, 4) || !p.Cell(3, 2) {
		t.Error("pattern not shifted by the border")
	}
}

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		w, h  int
		valid bool
	}{
		{20, 20, true},
		{1, 1, true},
		{1000, 1000, true},
		{0, 10, false},
		{10, 0, false},
		{1001, 10, false},
		{-1, 5, false},
	}

	for _, tt := range tests {
		if got := ValidateDimensions(tt.w, tt.h); got != tt.valid {
			t.Errorf("ValidateDimensions(%d,%d) = %v, want %v", tt.w, tt.h, got, tt.valid)
		}
	}
}

func TestDiff(t *testing.T) {
	a := NewGrid(4, 4)
	b := a.Clone()
	b.Set(1, 1, true)
	b.Set(2, 3, true)
	if d := a.Diff(b); d != 2 {
		t.Errorf("Diff = %d, want 2", d)
	}
	if d := a.Diff(NewGrid(2, 2)); d != 16 {
		t.Errorf("Diff with other size = %d, want 16", d)
	}
}

func TestHistoryUnbounded(t *testing.T) {
	h := NewHistory(0)
	grids := make([]*Grid, 50)
	for i := range grids {
		grids[i] = NewGrid(1, 1)
		h.Push(grids[i])
	}
	if h.Len() != 50 {
		t.Fatalf("Len = %d, want 50", h.Len())
	}
	for i := 49; i >= 0; i-- {
		g, ok := h.Pop()
		if !ok || g != grids[i] {
			t.Fatalf("pop %d returned wrong snapshot", i)
		}
	}
	if _, ok := h.Pop(); ok {
		t.Error("pop on empty history should fail")
	}
}

func TestHistoryRing(t *testing.T) {
	h := NewHistory(2)
	a, b, c := NewGrid(1, 1), NewGrid(1, 1), NewGrid(1, 1)
	h.Push(a)
	h.Push(b)
	h.Push(c)

	if top, _ := h.Peek(); top != c {
		t.Error("peek should return newest")
	}
	if g, _ := h.Pop(); g != c {
		t.Error("expected c")
	}
	h.Push(a)
	if g, _ := h.Pop(); g != a {
		t.Error("expected a after re-push")
	}
	if g, _ := h.Pop(); g != b {
		t.Error("expected b")
	}
	if h.Len() != 0 {
		t.Errorf("Len = %d, want 0", h.Len())
	}

	h.Push(a)
	h.Clear()
	if _, ok := h.Peek(); ok {
		t.Error("peek after clear should fail")
	}
}
