package renderers

import (
	"fmt"
	"time"

	"github.com/Lihanq/snake-game/constants"
	"github.com/Lihanq/snake-game/engine"
	"github.com/Lihanq/snake-game/render"
)

// StatusBarRenderer draws the top bar: play time, score panel text centered, quit hint
type StatusBarRenderer struct {
	gameCtx *engine.GameContext

	// Play time of the last food, for the score blink
	lastFoodAt time.Duration
	blinking   bool
}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer(gameCtx *engine.GameContext) *StatusBarRenderer {
	return &StatusBarRenderer{gameCtx: gameCtx}
}

// Observe implements EventObserver
func (s *StatusBarRenderer) Observe(ev engine.GameEvent) {
	if ev.Type == engine.EventFoodEaten {
		s.lastFoodAt = s.gameCtx.Clock.Elapsed()
		s.blinking = true
	}
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	barStyle := ctx.ColorMode.Style(render.RgbStatusText, render.RgbStatusBg)
	for y := 0; y < constants.StatusBarHeight; y++ {
		for x := 0; x < ctx.ScreenWidth; x++ {
			buf.Set(x, y, ' ', barStyle)
		}
	}

	// Play time, left
	timerStyle := ctx.ColorMode.Style(render.RgbTimerText, render.RgbStatusBg)
	buf.SetString(1, 0, formatElapsed(ctx.Elapsed), timerStyle)

	// Quit hint, right
	hintStyle := ctx.ColorMode.Style(render.RgbQuitHint, render.RgbStatusBg)
	buf.SetString(ctx.ScreenWidth-len(constants.QuitHintText)-1, 0, constants.QuitHintText, hintStyle)

	// Score panel, center
	text := s.gameCtx.State.ScorePanel.Text
	scoreStyle := barStyle
	if s.blinking {
		if ctx.Elapsed-s.lastFoodAt < constants.ScoreBlinkTimeout {
			scoreStyle = ctx.ColorMode.Style(render.RgbStatusText, render.RgbScoreBlink)
		} else {
			s.blinking = false
		}
	}
	x := (ctx.ScreenWidth - len([]rune(text))) / 2
	buf.SetString(x, 0, text, scoreStyle)
}

// formatElapsed renders play time as mm:ss
func formatElapsed(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
