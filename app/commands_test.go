package app

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestCommandFor(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Input
	}{
		{"left arrow", tcell.KeyLeft, 0, Input{Cmd: CmdPrevPreset}},
		{"right arrow", tcell.KeyRight, 0, Input{Cmd: CmdNextPreset}},
		{"h", tcell.KeyRune, 'h', Input{Cmd: CmdPrevPreset}},
		{"l", tcell.KeyRune, 'l', Input{Cmd: CmdNextPreset}},
		{"enter", tcell.KeyEnter, 0, Input{Cmd: CmdGo}},
		{"g", tcell.KeyRune, 'g', Input{Cmd: CmdGo}},
		{"o", tcell.KeyRune, 'o', Input{Cmd: CmdOpen}},
		{"c", tcell.KeyRune, 'c', Input{Cmd: CmdClose}},
		{"escape", tcell.KeyEscape, 0, Input{Cmd: CmdClose}},
		{"m", tcell.KeyRune, 'm', Input{Cmd: CmdMute}},
		{"q", tcell.KeyRune, 'q', Input{Cmd: CmdQuit}},
		{"ctrl-c", tcell.KeyCtrlC, 0, Input{Cmd: CmdQuit}},
		{"first preset", tcell.KeyRune, '1', Input{Cmd: CmdPreset, Arg: 0}},
		{"ninth preset", tcell.KeyRune, '9', Input{Cmd: CmdPreset, Arg: 8}},
		{"zero is unbound", tcell.KeyRune, '0', Input{}},
		{"unbound rune", tcell.KeyRune, 'x', Input{}},
		{"unbound key", tcell.KeyF5, 0, Input{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CommandFor(tt.key, tt.r); got != tt.want {
				t.Errorf("CommandFor(%v, %q) = %+v, want %+v", tt.key, tt.r, got, tt.want)
			}
		})
	}
}
