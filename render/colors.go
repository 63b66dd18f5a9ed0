package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(86, 95, 137)   // Muted blue-gray
	RgbHead       = tcell.NewRGBColor(158, 206, 106) // Bright green
	RgbSegment    = tcell.NewRGBColor(0, 160, 80)    // Darker green
	RgbFood       = tcell.NewRGBColor(247, 118, 142) // Red-pink

	// Status bar
	RgbStatusBg    = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText  = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbScoreBlink  = tcell.NewRGBColor(255, 255, 0)   // Bright yellow after eating
	RgbTimerText   = tcell.NewRGBColor(60, 60, 60)    // Dark gray
	RgbQuitHint    = tcell.NewRGBColor(80, 80, 120)   // Dim blue
	RgbGameOverBg  = tcell.NewRGBColor(200, 50, 50)   // Red
	RgbGameOverFg  = tcell.NewRGBColor(255, 255, 255) // White
	RgbGameOverDim = tcell.NewRGBColor(40, 20, 25)    // Dimmed field behind the banner
)
