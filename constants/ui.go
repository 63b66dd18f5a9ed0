package constants

import "time"

// UI Layout Constants
const (
	// StatusBarHeight is the number of rows reserved above the field
	StatusBarHeight = 1

	// MinScreenWidth and MinScreenHeight are the smallest usable terminal sizes
	MinScreenWidth  = 20
	MinScreenHeight = 8
)

// UI Text
const (
	ScorePrefix  = "Score: "
	GameOverText = "GAME OVER!"
	QuitHintText = "q/Esc quit"
)

// UI Glyphs
const (
	GlyphHeadRight = '▶'
	GlyphHeadLeft  = '◀'
	GlyphHeadUp    = '▲'
	GlyphHeadDown  = '▼'
	GlyphSegment   = '●'
	GlyphFood      = '◆'
	GlyphBorderH   = '─'
	GlyphBorderV   = '│'
	GlyphCornerTL  = '┌'
	GlyphCornerTR  = '┐'
	GlyphCornerBL  = '└'
	GlyphCornerBR  = '┘'
)

// UI Timing Constants
const (
	// ScoreBlinkTimeout is how long the score blinks after eating
	ScoreBlinkTimeout = 300 * time.Millisecond
)
