package constants

import "time"

// Cabinet Layout (terminal cells)
const (
	// CabinetWidth is the outer width of the microwave including the control panel
	CabinetWidth = 52

	// CabinetHeight is the outer height of the microwave
	CabinetHeight = 15

	// PanelWidth is the width of the control panel on the right of the door
	PanelWidth = 16

	// DisplayWidth fits the MM:SS.mmm readout plus one cell of padding per side
	DisplayWidth = 11

	// DialogWidth is the width of the door dialog box
	DialogWidth = 34
)

// UI Timing
const (
	// StatusMessageTimeout is how long a rejected-command notice stays on the status line
	StatusMessageTimeout = 2 * time.Second

	// FoodSpinStep is the spin advance per frame while running (radians)
	FoodSpinStep = 0.05
)

// Dialog text
const (
	DialogDing       = "Ding! Your food is ready!"
	DialogNotStarted = "Not started yet"
	DialogTimeLeft   = "Time left: "
)

// FoodFrames is the glyph cycle used to draw the spinning food
var FoodFrames = []rune{'◐', '◓', '◑', '◒'}
