package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/microwave/constants"
	"github.com/lixenwraith/microwave/timer"
)

const keyHints = "←/→ preset  ⏎ go  o open  c close  m mute  q quit"

// TerminalRenderer draws the microwave scene onto a terminal surface
type TerminalRenderer struct {
	theme Theme
}

// NewTerminalRenderer creates a renderer with the given theme
func NewTerminalRenderer(theme Theme) *TerminalRenderer {
	return &TerminalRenderer{theme: theme}
}

// Layout is the cabinet placement for a given surface size
type Layout struct {
	X, Y  int // cabinet top-left
	DoorW int // door width including the left border
}

// ComputeLayout centers the cabinet, leaving room for the hint and status rows
func ComputeLayout(width, height int) Layout {
	return Layout{
		X:     max((width-constants.CabinetWidth)/2, 0),
		Y:     max((height-constants.CabinetHeight-3)/2, 0),
		DoorW: constants.CabinetWidth - constants.PanelWidth,
	}
}

// PanelInner returns the first column and width of the panel interior
func (l Layout) PanelInner() (int, int) {
	return l.X + l.DoorW + 1, constants.CabinetWidth - l.DoorW - 2
}

// DisplayOrigin returns the first cell of the timer readout
func (l Layout) DisplayOrigin() (int, int) {
	px, pw := l.PanelInner()
	return px + (pw-constants.DisplayWidth)/2, l.Y + 2
}

// RenderFrame draws one complete frame
func (r *TerminalRenderer) RenderFrame(s Surface, v View) {
	w, h := s.Size()
	l := ComputeLayout(w, h)

	r.fill(s, 0, 0, w, h, ' ', r.theme.Background)
	r.drawCounter(s, l, w)
	r.drawCabinet(s, l)
	r.drawDoor(s, l, v)
	r.drawPanel(s, l, v)
	r.drawFooter(s, l, v)

	if v.Dialog != "" {
		r.drawDialog(s, l, v.Dialog)
	}
}

func (r *TerminalRenderer) drawCounter(s Surface, l Layout, w int) {
	y := l.Y + constants.CabinetHeight
	r.fill(s, 0, y, w, 1, '▀', r.theme.Counter)
}

func (r *TerminalRenderer) drawCabinet(s Surface, l Layout) {
	r.box(s, l.X, l.Y, constants.CabinetWidth, constants.CabinetHeight, r.theme.CabinetEdge)
	r.fill(s, l.X+1, l.Y+1, constants.CabinetWidth-2, constants.CabinetHeight-2, ' ', r.theme.Cabinet)

	// Door / panel seam
	sx := l.X + l.DoorW
	put(s, sx, l.Y, '┬', r.theme.CabinetEdge)
	for y := l.Y + 1; y < l.Y+constants.CabinetHeight-1; y++ {
		put(s, sx, y, '│', r.theme.CabinetEdge)
	}
	put(s, sx, l.Y+constants.CabinetHeight-1, '┴', r.theme.CabinetEdge)
}

func (r *TerminalRenderer) drawDoor(s Surface, l Layout, v View) {
	state := v.Snapshot.State
	r.fill(s, l.X+1, l.Y+1, l.DoorW-1, constants.CabinetHeight-2, ' ', r.theme.Door)

	// Window
	wx0, wy0 := l.X+4, l.Y+3
	wx1, wy1 := l.X+l.DoorW-5, l.Y+constants.CabinetHeight-4
	ws := r.theme.windowStyle(state == timer.StateRunning, state == timer.StateOpened)
	r.box(s, wx0-1, wy0-1, wx1-wx0+3, wy1-wy0+3, r.theme.Door)
	r.fill(s, wx0, wy0, wx1-wx0+1, wy1-wy0+1, ' ', ws)

	// Turntable and food
	cx := (wx0 + wx1) / 2
	ty := wy1 - 1
	for x := cx - 4; x <= cx+4; x++ {
		put(s, x, ty, '═', ws)
	}
	frames := constants.FoodFrames
	put(s, cx, ty-1, frames[FoodFrame(v.Spin, len(frames))], withBackground(r.theme.Food, ws))

	// Handle
	hx := l.X + l.DoorW - 2
	for y := l.Y + 5; y < l.Y+constants.CabinetHeight-5; y++ {
		put(s, hx, y, '┃', r.theme.Door)
	}
}

func (r *TerminalRenderer) drawPanel(s Surface, l Layout, v View) {
	px, pw := l.PanelInner()

	// Timer readout is redrawn every frame regardless of state
	dx, dy := l.DisplayOrigin()
	readout := " " + timer.Format(v.Snapshot.RemainingMs) + " "
	if n := px + pw - dx; len(readout) > n {
		readout = readout[:n]
	}
	r.fill(s, dx, dy, constants.DisplayWidth, 1, ' ', r.theme.Display)
	text(s, dx, dy, readout, r.theme.Display)

	label := StateLabel(v.Snapshot.State)
	text(s, px+(pw-len(label))/2, l.Y+4, label, r.theme.PanelText)

	// Presets, scrolled to keep the selection visible
	top := l.Y + 6
	rows := constants.CabinetHeight - 8
	first := 0
	if v.PresetIndex >= rows {
		first = v.PresetIndex - rows + 1
	}
	for i := 0; i < rows && first+i < len(v.Presets); i++ {
		idx := first + i
		style := r.theme.PanelText
		marker := "  "
		if idx == v.PresetIndex {
			style = r.theme.Selected
			marker = "▶ "
		}
		text(s, px+2, top+i, marker+PresetLabel(v.Presets[idx]), style)
	}
}

func (r *TerminalRenderer) drawFooter(s Surface, l Layout, v View) {
	hy := l.Y + constants.CabinetHeight + 1
	text(s, l.X, hy, keyHints, r.theme.Status)

	status := v.Status
	if v.Muted {
		status = strings.TrimSpace(status + "  [muted]")
	}
	style := r.theme.Status
	if v.StatusError {
		style = r.theme.StatusError
	}
	text(s, l.X, hy+1, status, style)
}

func (r *TerminalRenderer) drawDialog(s Surface, l Layout, msg string) {
	const height = 5
	w := constants.DialogWidth
	x := l.X + (constants.CabinetWidth-w)/2
	y := l.Y + (constants.CabinetHeight-height)/2

	r.fill(s, x, y, w, height, ' ', r.theme.Dialog)
	r.box(s, x, y, w, height, r.theme.Dialog)

	msgLen := len([]rune(msg))
	text(s, x+max((w-msgLen)/2, 1), y+1, msg, r.theme.Dialog)

	hint := "[c] close"
	text(s, x+(w-len(hint))/2, y+3, hint, r.theme.Dialog)
}

// box draws a single-line border
func (r *TerminalRenderer) box(s Surface, x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	for i := x + 1; i < x+w-1; i++ {
		put(s, i, y, '─', style)
		put(s, i, y+h-1, '─', style)
	}
	for j := y + 1; j < y+h-1; j++ {
		put(s, x, j, '│', style)
		put(s, x+w-1, j, '│', style)
	}
	put(s, x, y, '┌', style)
	put(s, x+w-1, y, '┐', style)
	put(s, x, y+h-1, '└', style)
	put(s, x+w-1, y+h-1, '┘', style)
}

func (r *TerminalRenderer) fill(s Surface, x, y, w, h int, ch rune, style tcell.Style) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			put(s, i, j, ch, style)
		}
	}
}

// put clips to the surface bounds
func put(s Surface, x, y int, ch rune, style tcell.Style) {
	w, h := s.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.SetContent(x, y, ch, nil, style)
}

func text(s Surface, x, y int, str string, style tcell.Style) {
	for _, ch := range str {
		put(s, x, y, ch, style)
		x++
	}
}
