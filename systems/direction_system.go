package systems

import (
	"log"

	"github.com/Lihanq/snake-game/components"
	"github.com/Lihanq/snake-game/engine"
)

// Turn applies the reversal rule to a heading request
// Returns the resulting heading and the head rotation in degrees;
// a direct reversal keeps the current heading with no rotation
func Turn(current, requested components.Heading) (components.Heading, int) {
	if requested == current.Reverse() {
		return current, 0
	}
	return requested, components.TurnDelta(current, requested)
}

// DirectionSystem owns heading changes; nothing else writes GameState.Heading
type DirectionSystem struct {
	ctx *engine.GameContext
}

// NewDirectionSystem creates a new direction system
func NewDirectionSystem(ctx *engine.GameContext) *DirectionSystem {
	return &DirectionSystem{ctx: ctx}
}

// RequestTurn applies a key press to the heading and head angle and returns the new heading
// No-op after game over
func (d *DirectionSystem) RequestTurn(requested components.Heading) components.Heading {
	state := d.ctx.State
	if state.GameOver {
		return state.Heading
	}

	current := state.Heading
	next, delta := Turn(current, requested)

	if next != requested {
		log.Printf("direction: rejected reversal %v -> %v", current, requested)
		d.ctx.PushEvent(engine.EventTurnRejected, &engine.TurnPayload{From: current, Requested: requested})
		return current
	}

	state.Head.Angle = components.NormalizeAngle(state.Head.Angle + delta)
	state.Heading = next

	if next != current {
		d.ctx.PushEvent(engine.EventTurnAccepted, &engine.TurnPayload{From: current, Requested: requested})
	}
	return next
}

// HandleTurn implements engine.TurnHandler
func (d *DirectionSystem) HandleTurn(requested components.Heading) {
	d.RequestTurn(requested)
}
