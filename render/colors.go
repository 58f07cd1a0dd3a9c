package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// RGB color definitions, taken from the kitchen scene
var (
	RgbBackground  = tcell.NewRGBColor(240, 230, 214) // Warm kitchen wall
	RgbCounter     = tcell.NewRGBColor(139, 69, 19)   // Wooden counter
	RgbCabinet     = tcell.NewRGBColor(51, 51, 51)    // Microwave body
	RgbCabinetEdge = tcell.NewRGBColor(110, 110, 110) // Body outline
	RgbDoor        = tcell.NewRGBColor(68, 68, 68)    // Door panel
	RgbWindowDark  = tcell.NewRGBColor(34, 34, 34)    // Window, lamp off
	RgbWindowLit   = tcell.NewRGBColor(120, 96, 40)   // Window, magnetron on
	RgbWindowOpen  = tcell.NewRGBColor(200, 190, 150) // Cavity lamp with the door open
	RgbFood        = tcell.NewRGBColor(181, 101, 29)  // Food item
	RgbDisplayBg   = tcell.NewRGBColor(0, 0, 0)       // Display glass
	RgbDisplayFg   = tcell.NewRGBColor(0, 255, 0)     // Display segments
	RgbPanelText   = tcell.NewRGBColor(200, 200, 200) // Panel labels
	RgbSelected    = tcell.NewRGBColor(255, 165, 0)   // Selected preset
	RgbDialogBg    = tcell.NewRGBColor(255, 255, 255) // Dialog box
	RgbDialogText  = tcell.NewRGBColor(0, 0, 0)       // Dialog text
	RgbStatusText  = tcell.NewRGBColor(60, 60, 60)    // Status line
	RgbStatusError = tcell.NewRGBColor(200, 50, 50)   // Rejected command notice
)

// Theme holds the resolved styles for one frame
type Theme struct {
	Background  tcell.Style
	Counter     tcell.Style
	Cabinet     tcell.Style
	CabinetEdge tcell.Style
	Door        tcell.Style
	WindowDark  tcell.Style
	WindowLit   tcell.Style
	WindowOpen  tcell.Style
	Food        tcell.Style
	Display     tcell.Style
	PanelText   tcell.Style
	Selected    tcell.Style
	Dialog      tcell.Style
	Status      tcell.Style
	StatusError tcell.Style
}

// NewTheme builds the color theme, mono drops all colors and keeps only attributes
func NewTheme(mono bool) Theme {
	if mono {
		base := tcell.StyleDefault
		return Theme{
			Background:  base,
			Counter:     base,
			Cabinet:     base,
			CabinetEdge: base,
			Door:        base,
			WindowDark:  base,
			WindowLit:   base.Dim(true),
			WindowOpen:  base.Reverse(true),
			Food:        base.Bold(true),
			Display:     base.Reverse(true),
			PanelText:   base,
			Selected:    base.Bold(true).Underline(true),
			Dialog:      base.Reverse(true),
			Status:      base,
			StatusError: base.Bold(true),
		}
	}

	return Theme{
		Background:  tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusText),
		Counter:     tcell.StyleDefault.Background(RgbCounter).Foreground(RgbCounter),
		Cabinet:     tcell.StyleDefault.Background(RgbCabinet).Foreground(RgbPanelText),
		CabinetEdge: tcell.StyleDefault.Background(RgbCabinet).Foreground(RgbCabinetEdge),
		Door:        tcell.StyleDefault.Background(RgbDoor).Foreground(RgbCabinetEdge),
		WindowDark:  tcell.StyleDefault.Background(RgbWindowDark).Foreground(RgbCabinetEdge),
		WindowLit:   tcell.StyleDefault.Background(RgbWindowLit).Foreground(RgbCabinetEdge),
		WindowOpen:  tcell.StyleDefault.Background(RgbWindowOpen).Foreground(RgbCabinetEdge),
		Food:        tcell.StyleDefault.Foreground(RgbFood),
		Display:     tcell.StyleDefault.Background(RgbDisplayBg).Foreground(RgbDisplayFg).Bold(true),
		PanelText:   tcell.StyleDefault.Background(RgbCabinet).Foreground(RgbPanelText),
		Selected:    tcell.StyleDefault.Background(RgbCabinet).Foreground(RgbSelected).Bold(true),
		Dialog:      tcell.StyleDefault.Background(RgbDialogBg).Foreground(RgbDialogText),
		Status:      tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusText),
		StatusError: tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusError).Bold(true),
	}
}

// windowStyle picks the window fill for the lamp state
func (t Theme) windowStyle(lit, open bool) tcell.Style {
	switch {
	case open:
		return t.WindowOpen
	case lit:
		return t.WindowLit
	default:
		return t.WindowDark
	}
}

// withBackground keeps fg/attributes of s and takes the background of bg
func withBackground(s, bg tcell.Style) tcell.Style {
	_, b, _ := bg.Decompose()
	return s.Background(b)
}

// FoodFrame maps an accumulated spin angle to a glyph index in [0, n)
func FoodFrame(spin float64, n int) int {
	if n <= 0 {
		return 0
	}
	quarter := int(math.Floor(spin / (math.Pi / 2)))
	return ((quarter % n) + n) % n
}
