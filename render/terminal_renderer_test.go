package render

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/microwave/constants"
	"github.com/lixenwraith/microwave/timer"
)

// gridSurface is an in-memory Surface for inspecting rendered frames
type gridSurface struct {
	w, h   int
	cells  []rune
	styles []tcell.Style
}

func newGridSurface(w, h int) *gridSurface {
	return &gridSurface{w: w, h: h, cells: make([]rune, w*h), styles: make([]tcell.Style, w*h)}
}

func (g *gridSurface) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		panic("write outside surface")
	}
	g.cells[y*g.w+x] = primary
	g.styles[y*g.w+x] = style
}

func (g *gridSurface) Size() (int, int) { return g.w, g.h }

func (g *gridSurface) row(y int) string {
	return string(g.cells[y*g.w : (y+1)*g.w])
}

func (g *gridSurface) contains(s string) bool {
	for y := 0; y < g.h; y++ {
		if strings.Contains(g.row(y), s) {
			return true
		}
	}
	return false
}

func idleView(ms int64) View {
	return View{
		Snapshot:    timer.Snapshot{RemainingMs: ms, DurationMs: ms, State: timer.StateIdle},
		Presets:     constants.DefaultPresetsMs,
		PresetIndex: 1,
	}
}

func TestRenderFrameReadout(t *testing.T) {
	r := NewTerminalRenderer(NewTheme(false))
	s := newGridSurface(80, 24)

	r.RenderFrame(s, idleView(30000))

	l := ComputeLayout(80, 24)
	dx, dy := l.DisplayOrigin()
	got := s.row(dy)[dx : dx+constants.DisplayWidth]
	if got != " 00:30.000 " {
		t.Errorf("Expected readout %q, got %q", " 00:30.000 ", got)
	}

	_, bg, _ := s.styles[dy*80+dx+1].Decompose()
	if bg != RgbDisplayBg {
		t.Errorf("Expected display background, got %v", bg)
	}
}

func TestRenderFrameReadoutEveryState(t *testing.T) {
	r := NewTerminalRenderer(NewTheme(false))
	states := []timer.State{timer.StateIdle, timer.StateRunning, timer.StateOpened, timer.StateEnded}

	for _, st := range states {
		s := newGridSurface(80, 24)
		v := idleView(30000)
		v.Snapshot = timer.Snapshot{RemainingMs: 12345, DurationMs: 30000, State: st}
		r.RenderFrame(s, v)

		if !s.contains("00:12.345") {
			t.Errorf("state %s: readout missing", st)
		}
		if !s.contains(StateLabel(st)) {
			t.Errorf("state %s: label %q missing", st, StateLabel(st))
		}
	}
}

func TestRenderFrameDialog(t *testing.T) {
	r := NewTerminalRenderer(NewTheme(false))

	s := newGridSurface(80, 24)
	r.RenderFrame(s, idleView(30000))
	if s.contains(constants.DialogDing) || s.contains("[c] close") {
		t.Error("Expected no dialog when Dialog is empty")
	}

	v := idleView(30000)
	v.Dialog = constants.DialogDing
	s = newGridSurface(80, 24)
	r.RenderFrame(s, v)
	if !s.contains(constants.DialogDing) {
		t.Error("Expected ding dialog text")
	}
	if !s.contains("[c] close") {
		t.Error("Expected dialog close hint")
	}
}

func TestRenderFramePresetSelection(t *testing.T) {
	r := NewTerminalRenderer(NewTheme(false))
	s := newGridSurface(80, 24)

	v := idleView(60000)
	v.PresetIndex = 2
	r.RenderFrame(s, v)

	if !s.contains("▶ 1:00") {
		t.Error("Expected marker on selected preset 1:00")
	}
	if !s.contains("  0:30") {
		t.Error("Expected unselected preset 0:30")
	}
}

func TestRenderFramePresetScroll(t *testing.T) {
	r := NewTerminalRenderer(NewTheme(false))
	s := newGridSurface(80, 24)

	v := idleView(30000)
	v.Presets = []int64{1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000, 9000, 10000}
	v.PresetIndex = 9
	r.RenderFrame(s, v)

	if !s.contains("▶ 0:10") {
		t.Error("Expected last preset scrolled into view")
	}
	if s.contains("0:01") {
		t.Error("Expected first preset scrolled out of view")
	}
}

func TestRenderFrameStatus(t *testing.T) {
	r := NewTerminalRenderer(NewTheme(false))
	s := newGridSurface(80, 24)

	v := idleView(30000)
	v.Status = "start rejected"
	v.StatusError = true
	v.Muted = true
	r.RenderFrame(s, v)

	if !s.contains("start rejected  [muted]") {
		t.Error("Expected status with mute marker")
	}
}

func TestRenderFrameFoodSpins(t *testing.T) {
	r := NewTerminalRenderer(NewTheme(false))
	frames := constants.FoodFrames

	for i := range frames {
		s := newGridSurface(80, 24)
		v := idleView(30000)
		v.Snapshot.State = timer.StateRunning
		v.Spin = float64(i)*math.Pi/2 + 0.01
		r.RenderFrame(s, v)

		if !s.contains(string(frames[i])) {
			t.Errorf("Expected food frame %d (%c)", i, frames[i])
		}
	}
}

func TestRenderFrameSmallSurface(t *testing.T) {
	r := NewTerminalRenderer(NewTheme(true))

	defer func() {
		if rec := recover(); rec != nil {
			t.Fatalf("Render on small surface panicked: %v", rec)
		}
	}()

	for _, size := range [][2]int{{0, 0}, {1, 1}, {10, 5}, {40, 12}} {
		s := newGridSurface(size[0], size[1])
		v := idleView(30000)
		v.Dialog = constants.DialogNotStarted
		r.RenderFrame(s, v)
	}
}

func TestRenderFrameLongReadoutTruncated(t *testing.T) {
	r := NewTerminalRenderer(NewTheme(false))
	s := newGridSurface(80, 24)

	v := idleView(30000)
	v.Snapshot.RemainingMs = 100 * 60000
	r.RenderFrame(s, v)

	if !s.contains("100:00.000") {
		t.Error("Expected three digit minutes to be shown")
	}
}

func TestFoodFrame(t *testing.T) {
	tests := []struct {
		spin float64
		want int
	}{
		{0, 0},
		{0.05, 0},
		{math.Pi/2 + 0.001, 1},
		{math.Pi + 0.001, 2},
		{2*math.Pi + 0.001, 0},
		{-0.1, 3},
	}
	for _, tt := range tests {
		if got := FoodFrame(tt.spin, 4); got != tt.want {
			t.Errorf("FoodFrame(%f) = %d, want %d", tt.spin, got, tt.want)
		}
	}
	if FoodFrame(1, 0) != 0 {
		t.Error("Expected zero frame count to yield 0")
	}
}

func TestPresetLabel(t *testing.T) {
	tests := map[int64]string{
		10000:  "0:10",
		30000:  "0:30",
		90000:  "1:30",
		300000: "5:00",
		999:    "0:00",
	}
	for ms, want := range tests {
		if got := PresetLabel(ms); got != want {
			t.Errorf("PresetLabel(%d) = %q, want %q", ms, got, want)
		}
	}
}
