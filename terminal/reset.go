package terminal

import (
	"io"
	"os"
)

var (
	csiMouseOff      = []byte("\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	for _, seq := range [][]byte{csiMouseOff, csiCursorShow, csiAltScreenExit, csiSGR0, csiAutoWrapOn} {
		w.Write(seq)
	}

	if f, ok := w.(*os.File); ok {
		f.Sync()
		// Escape sequences alone don't restore termios
		resetTerminalMode()
	}
}
