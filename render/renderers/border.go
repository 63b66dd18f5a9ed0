package renderers

import (
	"github.com/Lihanq/snake-game/constants"
	"github.com/Lihanq/snake-game/render"
)

// BorderRenderer frames the game area; the wall margin lies just inside it
type BorderRenderer struct{}

// NewBorderRenderer creates a border renderer
func NewBorderRenderer() *BorderRenderer {
	return &BorderRenderer{}
}

// Render implements SystemRenderer
func (b *BorderRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	style := ctx.ColorMode.Style(render.RgbBorder, render.RgbBackground)

	left := ctx.GameX - 1
	right := ctx.GameX + ctx.GameWidth
	top := ctx.GameY - 1
	bottom := ctx.GameY + ctx.GameHeight

	for x := left + 1; x < right; x++ {
		buf.Set(x, top, constants.GlyphBorderH, style)
		buf.Set(x, bottom, constants.GlyphBorderH, style)
	}
	for y := top + 1; y < bottom; y++ {
		buf.Set(left, y, constants.GlyphBorderV, style)
		buf.Set(right, y, constants.GlyphBorderV, style)
	}

	buf.Set(left, top, constants.GlyphCornerTL, style)
	buf.Set(right, top, constants.GlyphCornerTR, style)
	buf.Set(left, bottom, constants.GlyphCornerBL, style)
	buf.Set(right, bottom, constants.GlyphCornerBR, style)
}
