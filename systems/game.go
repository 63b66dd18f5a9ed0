package systems

import (
	"log"

	"github.com/Lihanq/snake-game/engine"
)

// Game holds the core systems wired onto a loop
//
// Per frame, in order: movement, then collision (food growth, wall, body),
// then the game-over pause trigger. Key presses go to the direction system.
type Game struct {
	Loop      *engine.Loop
	Direction *DirectionSystem
	Movement  *MovementSystem
	Growth    *GrowthSystem
	Collision *CollisionSystem
}

// NewGame creates the core systems for ctx and registers them on a new loop
func NewGame(ctx *engine.GameContext) *Game {
	movement := NewMovementSystem(ctx)
	growth := NewGrowthSystem(ctx, movement)
	collision := NewCollisionSystem(ctx, growth)
	direction := NewDirectionSystem(ctx)

	loop := engine.NewLoop(ctx)
	loop.AddSystem(movement)
	loop.AddSystem(collision)
	loop.AddTurnHandler(direction)
	loop.PauseWhen(
		func(c *engine.GameContext) bool { return c.State.GameOver },
		func(c *engine.GameContext) {
			log.Printf("game: paused at frame %d, final score %d", c.GetFrameNumber(), c.State.Score)
		},
	)

	return &Game{
		Loop:      loop,
		Direction: direction,
		Movement:  movement,
		Growth:    growth,
		Collision: collision,
	}
}
