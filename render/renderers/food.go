package renderers

import (
	"github.com/Lihanq/snake-game/constants"
	"github.com/Lihanq/snake-game/engine"
	"github.com/Lihanq/snake-game/render"
)

// FoodRenderer draws the single food item
type FoodRenderer struct {
	gameCtx *engine.GameContext
}

// NewFoodRenderer creates a food renderer
func NewFoodRenderer(gameCtx *engine.GameContext) *FoodRenderer {
	return &FoodRenderer{gameCtx: gameCtx}
}

// Render implements SystemRenderer
func (f *FoodRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	food := f.gameCtx.State.Food
	sx, sy, ok := ctx.FieldToScreen(food.X, food.Y)
	if !ok {
		return
	}
	buf.Set(sx, sy, constants.GlyphFood, ctx.ColorMode.Style(render.RgbFood, render.RgbBackground))
}
