package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/lifegif/internal/life"
)

func TestFrameShowsGenerationAndCounts(t *testing.T) {
	out := Frame("glider", 7, life.Glider(10, 6), 5)

	for _, want := range []string{"glider", "gen 7", "live=5", "peak=5", "size=10x6"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "█") != 5 {
		t.Errorf("expected 5 live glyphs, got %d", strings.Count(out, "█"))
	}
}

func TestFrameClipsLargeGrids(t *testing.T) {
	out := Frame("big", 0, life.NewGrid(maxCols+10, maxRows+5), 0)
	if !strings.Contains(out, "showing") {
		t.Error("expected clipped window notice")
	}
}

func TestLiveRendererThrottles(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, "test", 1)

	g := life.Glider(8, 8)
	r.OnStep(1, g)
	r.OnStep(2, g)
	r.OnStep(3, g)

	if n := strings.Count(buf.String(), clearScreen); n != 1 {
		t.Errorf("expected 1 redraw within a second, got %d", n)
	}
}
