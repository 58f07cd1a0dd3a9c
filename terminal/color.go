package terminal

import (
	"fmt"
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
	ColorModeMono                       // attributes only
)

// String returns the config name of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorMode256:
		return "256"
	case ColorModeTrueColor:
		return "truecolor"
	case ColorModeMono:
		return "mono"
	default:
		return "unknown"
	}
}

// ParseColorMode resolves a display.color setting, "auto" and "" detect from the environment
func ParseColorMode(name string) (ColorMode, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return DetectColorMode(), nil
	case "256":
		return ColorMode256, nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	case "mono", "none":
		return ColorModeMono, nil
	default:
		return ColorMode256, fmt.Errorf("unknown color mode %q", name)
	}
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return ColorModeMono
	}

	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// Prepare sets the variables tcell reads when the screen is created
// Must be called before tcell.NewScreen
func Prepare(mode ColorMode) error {
	switch mode {
	case ColorModeTrueColor:
		if err := os.Setenv("COLORTERM", "truecolor"); err != nil {
			return err
		}
		return os.Unsetenv("TCELL_TRUECOLOR")
	case ColorMode256:
		return os.Setenv("TCELL_TRUECOLOR", "disable")
	default:
		// Mono still draws through the palette, the theme drops the colors
		return os.Setenv("TCELL_TRUECOLOR", "disable")
	}
}
