package renderers

import (
	"github.com/Lihanq/snake-game/components"
	"github.com/Lihanq/snake-game/constants"
	"github.com/Lihanq/snake-game/engine"
	"github.com/Lihanq/snake-game/render"
)

// BodyRenderer draws the segment chain
type BodyRenderer struct {
	gameCtx *engine.GameContext
}

// NewBodyRenderer creates a body renderer
func NewBodyRenderer(gameCtx *engine.GameContext) *BodyRenderer {
	return &BodyRenderer{gameCtx: gameCtx}
}

// Render implements SystemRenderer
// Drawn tail first so segments nearer the head win shared cells
func (b *BodyRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	style := ctx.ColorMode.Style(render.RgbSegment, render.RgbBackground)
	segments := b.gameCtx.State.Segments
	for i := len(segments) - 1; i >= 0; i-- {
		sx, sy, ok := ctx.FieldToScreen(segments[i].X, segments[i].Y)
		if !ok {
			continue
		}
		buf.Set(sx, sy, constants.GlyphSegment, style)
	}
}

// HeadRenderer draws the head as an arrow along the heading
type HeadRenderer struct {
	gameCtx *engine.GameContext
}

// NewHeadRenderer creates a head renderer
func NewHeadRenderer(gameCtx *engine.GameContext) *HeadRenderer {
	return &HeadRenderer{gameCtx: gameCtx}
}

// Render implements SystemRenderer
func (h *HeadRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	state := h.gameCtx.State
	sx, sy, ok := ctx.FieldToScreen(state.Head.X, state.Head.Y)
	if !ok {
		return
	}
	buf.Set(sx, sy, HeadGlyph(state.Heading), ctx.ColorMode.Style(render.RgbHead, render.RgbBackground))
}

// HeadGlyph returns the arrow glyph for a heading
func HeadGlyph(h components.Heading) rune {
	switch h {
	case components.HeadingRight:
		return constants.GlyphHeadRight
	case components.HeadingLeft:
		return constants.GlyphHeadLeft
	case components.HeadingUp:
		return constants.GlyphHeadUp
	case components.HeadingDown:
		return constants.GlyphHeadDown
	default:
		return constants.GlyphHeadRight
	}
}
