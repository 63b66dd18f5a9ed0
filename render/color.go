package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorMode is the terminal color capability renderers target
type ColorMode int

const (
	ColorMode256 ColorMode = iota
	ColorModeTrueColor
)

func (m ColorMode) String() string {
	switch m {
	case ColorMode256:
		return "256"
	case ColorModeTrueColor:
		return "truecolor"
	default:
		return "unknown"
	}
}

// palette256 is the xterm cube and grayscale ramp; the 16 system colors are user-themable and skipped
var palette256 = func() []tcell.Color {
	p := make([]tcell.Color, 0, 240)
	for i := 16; i < 256; i++ {
		p = append(p, tcell.PaletteColor(i))
	}
	return p
}()

// Resolve maps an RGB color to what the mode can display
func (m ColorMode) Resolve(c tcell.Color) tcell.Color {
	if m == ColorModeTrueColor || !c.IsRGB() {
		return c
	}
	return tcell.FindColor(c, palette256)
}

// Style builds a style with both colors resolved for the mode
func (m ColorMode) Style(fg, bg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(m.Resolve(fg)).Background(m.Resolve(bg))
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
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

	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// ParseColorMode reads a -color flag value: auto, 256 or truecolor
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DetectColorMode(), nil
	case "256":
		return ColorMode256, nil
	case "truecolor", "24bit", "tc":
		return ColorModeTrueColor, nil
	default:
		return ColorMode256, fmt.Errorf("unknown color mode %q (want auto, 256 or truecolor)", s)
	}
}
