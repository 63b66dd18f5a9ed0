package systems

import (
	"log"

	"github.com/Lihanq/snake-game/constants"
	"github.com/Lihanq/snake-game/engine"
	"github.com/Lihanq/snake-game/vmath"
)

// CollisionResult reports what the head touched this frame
type CollisionResult struct {
	Food      bool
	Wall      bool
	Body      bool
	BodyIndex int // First colliding segment, -1 if none
}

// Fatal reports whether the frame ends the game
func (r CollisionResult) Fatal() bool {
	return r.Wall || r.Body
}

// CollisionSystem checks the head against food, walls and the body
type CollisionSystem struct {
	ctx    *engine.GameContext
	growth *GrowthSystem
}

// NewCollisionSystem creates a collision system that hands food contact to growth
func NewCollisionSystem(ctx *engine.GameContext, growth *GrowthSystem) *CollisionSystem {
	return &CollisionSystem{
		ctx:    ctx,
		growth: growth,
	}
}

func (c *CollisionSystem) Name() string {
	return "collision"
}

// Priority returns the system's priority
func (c *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

// Update runs collision resolution once per frame
func (c *CollisionSystem) Update() {
	c.Resolve()
}

// Resolve runs the food check (growing on contact), then the wall and body checks
// on the resulting state. Wall or body contact ends the game. No-op after game over
func (c *CollisionSystem) Resolve() CollisionResult {
	result := CollisionResult{BodyIndex: -1}
	if c.ctx.State.GameOver {
		return result
	}

	if c.HeadHitsFood() {
		result.Food = true
		c.growth.OnFoodEaten()
	}

	result.Wall = c.HeadHitsWall()
	result.BodyIndex = c.HeadHitsBody()
	result.Body = result.BodyIndex >= 0

	switch {
	case result.Wall:
		c.endGame(engine.CauseWall, -1)
	case result.Body:
		c.endGame(engine.CauseBody, result.BodyIndex)
	}
	return result
}

// HeadHitsFood reports head and food box overlap
func (c *CollisionSystem) HeadHitsFood() bool {
	state := c.ctx.State
	return c.ctx.Scene.Overlap(state.Head, state.Food)
}

// HeadHitsWall reports the head coming within the wall margin of any edge
func (c *CollisionSystem) HeadHitsWall() bool {
	head := c.ctx.State.Head
	return !vmath.InsetContains(head.X, head.Y,
		c.ctx.Scene.Width(), c.ctx.Scene.Height(), constants.WallMargin)
}

// HeadHitsBody returns the index of the first segment overlapping the head, or -1
// Segments 0 and 1 trail the head by construction and are never tested
func (c *CollisionSystem) HeadHitsBody() int {
	state := c.ctx.State
	for i := constants.BodyCollisionSkip; i < len(state.Segments); i++ {
		if c.ctx.Scene.Overlap(state.Head, state.Segments[i]) {
			return i
		}
	}
	return -1
}

func (c *CollisionSystem) endGame(cause engine.CollisionCause, segment int) {
	state := c.ctx.State
	if !state.EndGame() {
		return
	}

	log.Printf("collision: game over by %v at (%.0f,%.0f), score %d", cause, state.Head.X, state.Head.Y, state.Score)
	c.ctx.PushEvent(engine.EventGameOver, &engine.GameOverPayload{
		Cause:   cause,
		Segment: segment,
		Score:   state.Score,
	})
}
