package renderers

import (
	"github.com/Lihanq/snake-game/engine"
	"github.com/Lihanq/snake-game/render"
)

// RegisterAll adds the game's renderers to the orchestrator at their priorities
func RegisterAll(o *render.RenderOrchestrator, gameCtx *engine.GameContext) {
	o.Register(NewBorderRenderer(), render.PriorityBorder)
	o.Register(NewFoodRenderer(gameCtx), render.PriorityFood)
	o.Register(NewBodyRenderer(gameCtx), render.PriorityBody)
	o.Register(NewHeadRenderer(gameCtx), render.PriorityHead)
	o.Register(NewStatusBarRenderer(gameCtx), render.PriorityUI)
	o.Register(NewGameOverRenderer(gameCtx), render.PriorityOverlay)
}
