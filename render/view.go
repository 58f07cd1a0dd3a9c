package render

import (
	"fmt"

	"github.com/lixenwraith/microwave/timer"
)

// View is everything the renderer needs for one frame
type View struct {
	Snapshot    timer.Snapshot
	Presets     []int64
	PresetIndex int
	Spin        float64 // accumulated food rotation, radians
	Dialog      string  // empty hides the dialog
	Status      string
	StatusError bool
	Muted       bool
}

// PresetLabel renders a preset as m:ss
func PresetLabel(ms int64) string {
	total := ms / 1000
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// StateLabel is the panel caption for a machine state
func StateLabel(s timer.State) string {
	switch s {
	case timer.StateRunning:
		return "COOKING"
	case timer.StateOpened:
		return "DOOR OPEN"
	case timer.StateEnded:
		return "DONE"
	default:
		return "READY"
	}
}
