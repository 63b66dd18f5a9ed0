package systems

import (
	"log"
	"math"

	"github.com/Lihanq/snake-game/components"
	"github.com/Lihanq/snake-game/constants"
	"github.com/Lihanq/snake-game/engine"
)

// GrowthSystem handles food consumption: relocation, body growth and scoring
type GrowthSystem struct {
	ctx      *engine.GameContext
	movement *MovementSystem
}

// NewGrowthSystem creates a growth system that re-runs movement after each growth
func NewGrowthSystem(ctx *engine.GameContext, movement *MovementSystem) *GrowthSystem {
	return &GrowthSystem{
		ctx:      ctx,
		movement: movement,
	}
}

// OnFoodEaten relocates the food, appends a segment batch, takes one extra movement
// step so the new tail joins the chain, and scores. No-op after game over
func (g *GrowthSystem) OnFoodEaten() {
	state := g.ctx.State
	if state.GameOver {
		return
	}

	g.RelocateFood()
	g.addSegments()
	g.movement.Advance()
	state.AddScore(constants.FoodScore)

	log.Printf("growth: score %d, %d segments, food at (%.0f,%.0f)",
		state.Score, len(state.Segments), state.Food.X, state.Food.Y)
	g.ctx.PushEvent(engine.EventFoodEaten, &engine.FoodPayload{
		Score:    state.Score,
		Segments: len(state.Segments),
		FoodX:    state.Food.X,
		FoodY:    state.Food.Y,
	})
}

// RelocateFood jumps the food a random distance along both axes,
// wrapping past the far edge margin
func (g *GrowthSystem) RelocateFood() {
	food := g.ctx.State.Food
	rng := g.ctx.Rand

	jumpX := float64(rng.Range(constants.FoodJumpMin, constants.FoodJumpMax))
	jumpY := float64(rng.Range(constants.FoodJumpMin, constants.FoodJumpMax))

	food.X = wrapFoodAxis(food.X+jumpX, g.ctx.Scene.Width(), rng)
	food.Y = wrapFoodAxis(food.Y+jumpY, g.ctx.Scene.Height(), rng)
}

// wrapFoodAxis folds v back into the field when it passes dim-margin;
// a wrap landing inside the near margin is nudged inward
func wrapFoodAxis(v, dim float64, rng engine.Rand) float64 {
	limit := dim - constants.FoodEdgeMargin
	if v <= limit {
		return v
	}

	v = math.Mod(v, limit)
	if v < constants.FoodEdgeMargin {
		v += float64(rng.Range(constants.FoodNudgeMin, constants.FoodNudgeMax))
	}
	return v
}

// addSegments appends one batch at the scene's spawn point; the chain shift pulls them into place
func (g *GrowthSystem) addSegments() {
	state := g.ctx.State
	for i := 0; i < constants.SegmentBatchSize; i++ {
		state.Segments = append(state.Segments, g.ctx.Scene.CreateImage(components.SpriteSegment))
	}
}
