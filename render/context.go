package render

import (
	"time"

	"github.com/Lihanq/snake-game/constants"
	"github.com/Lihanq/snake-game/engine"
	"github.com/Lihanq/snake-game/vmath"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Time state
	Elapsed     time.Duration
	FrameNumber int64
	IsPaused    bool

	ColorMode ColorMode

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Game area: the cells inside the border, below the status bar
	GameX      int
	GameY      int
	GameWidth  int
	GameHeight int

	// Field dimensions (world units)
	FieldWidth  float64
	FieldHeight float64
}

// NewRenderContext creates a RenderContext from engine.GameContext for a screen of the given size
//
// Layout: status bar on the top rows, then the field framed by a one-cell border
func NewRenderContext(ctx *engine.GameContext, mode ColorMode, screenWidth, screenHeight int) RenderContext {
	gameY := constants.StatusBarHeight + 1
	return RenderContext{
		Elapsed:     ctx.Clock.Elapsed(),
		FrameNumber: ctx.GetFrameNumber(),
		IsPaused:    ctx.Clock.IsPaused(),

		ColorMode: mode,

		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,

		GameX:      1,
		GameY:      gameY,
		GameWidth:  max(screenWidth-2, 0),
		GameHeight: max(screenHeight-gameY-1, 0),

		FieldWidth:  ctx.Scene.Width(),
		FieldHeight: ctx.Scene.Height(),
	}
}

// FieldToScreen projects field coordinates onto the game area
// Returns visible=false when the game area has no cells
func (rc *RenderContext) FieldToScreen(x, y float64) (int, int, bool) {
	if rc.GameWidth <= 0 || rc.GameHeight <= 0 {
		return 0, 0, false
	}
	sx := rc.GameX + vmath.Scale(x, rc.FieldWidth, rc.GameWidth)
	sy := rc.GameY + vmath.Scale(y, rc.FieldHeight, rc.GameHeight)
	return sx, sy, true
}

// TooSmall reports whether the terminal is below the minimum playable size
func (rc *RenderContext) TooSmall() bool {
	return rc.ScreenWidth < constants.MinScreenWidth || rc.ScreenHeight < constants.MinScreenHeight
}
