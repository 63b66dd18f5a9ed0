package systems

import (
	"github.com/Lihanq/snake-game/components"
	"github.com/Lihanq/snake-game/constants"
	"github.com/Lihanq/snake-game/engine"
)

// MovementSystem advances the head and drags the body chain behind it
type MovementSystem struct {
	ctx *engine.GameContext
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(ctx *engine.GameContext) *MovementSystem {
	return &MovementSystem{ctx: ctx}
}

func (m *MovementSystem) Name() string {
	return "movement"
}

// Priority returns the system's priority
func (m *MovementSystem) Priority() int {
	return constants.PriorityMovement
}

// Update runs one movement step per frame
func (m *MovementSystem) Update() {
	m.Advance()
}

// Advance moves the snake one step. Followers are updated before the head moves,
// so segment 0 picks up the head's pre-move placement. No-op after game over
func (m *MovementSystem) Advance() {
	state := m.ctx.State
	if state.GameOver {
		return
	}

	updateFirstSegment(state)
	updateRestSegments(state.Segments)
	moveHead(state, m.ctx.Config.Step)
}

// updateFirstSegment snaps segment 0 onto the head; on frames where its previous angle
// already matched the head's, it is pushed back to sit flush behind the head
func updateFirstSegment(state *engine.GameState) {
	if len(state.Segments) == 0 {
		return
	}

	first := state.Segments[0]
	attached := first.Angle == state.Head.Angle
	first.CopyPlacement(state.Head)
	if attached {
		attachBehind(first, state.Head, state.Heading)
	}
}

// attachBehind offsets seg along the movement axis to the rear of lead
func attachBehind(seg, lead *components.Sprite, heading components.Heading) {
	switch heading {
	case components.HeadingRight:
		seg.X = lead.X - constants.SegmentAttachOffset
	case components.HeadingLeft:
		seg.X = lead.X + constants.SegmentAttachOffset
	case components.HeadingUp:
		seg.Y = lead.Y + constants.SegmentAttachOffset
	case components.HeadingDown:
		seg.Y = lead.Y - constants.SegmentAttachOffset
	}
}

// updateRestSegments shifts placements tail-first so no predecessor is overwritten before it is read
func updateRestSegments(segments []*components.Sprite) {
	for i := len(segments) - 1; i >= 1; i-- {
		segments[i].CopyPlacement(segments[i-1])
	}
}

func moveHead(state *engine.GameState, step float64) {
	dx, dy := state.Heading.Delta()
	state.Head.X += dx * step
	state.Head.Y += dy * step
}
