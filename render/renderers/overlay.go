package renderers

import (
	"github.com/Lihanq/snake-game/engine"
	"github.com/Lihanq/snake-game/render"
)

// GameOverRenderer dims the field and shows the game-over panel text once the game has ended
type GameOverRenderer struct {
	gameCtx *engine.GameContext
}

// NewGameOverRenderer creates a game-over overlay renderer
func NewGameOverRenderer(gameCtx *engine.GameContext) *GameOverRenderer {
	return &GameOverRenderer{gameCtx: gameCtx}
}

// IsVisible implements VisibilityToggle
func (g *GameOverRenderer) IsVisible() bool {
	return g.gameCtx.State.GameOver
}

// Render implements SystemRenderer
func (g *GameOverRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	// Dim everything inside the border, keep the glyphs
	for y := ctx.GameY; y < ctx.GameY+ctx.GameHeight; y++ {
		for x := ctx.GameX; x < ctx.GameX+ctx.GameWidth; x++ {
			cell := buf.Get(x, y)
			fg, _, _ := cell.Style.Decompose()
			buf.Set(x, y, cell.Rune, ctx.ColorMode.Style(fg, render.RgbGameOverDim))
		}
	}

	text := " " + g.gameCtx.State.GameOverPanel.Text + " "
	width := len([]rune(text))
	x := ctx.GameX + (ctx.GameWidth-width)/2
	y := ctx.GameY + ctx.GameHeight/2
	buf.SetString(x, y, text, ctx.ColorMode.Style(render.RgbGameOverFg, render.RgbGameOverBg))
}
