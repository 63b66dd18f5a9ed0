package systems

import (
	"testing"
	"time"

	"github.com/Lihanq/snake-game/components"
	"github.com/Lihanq/snake-game/engine"
)

// newTestGame creates a 600x600 game with the head at the center heading right
// Initial food lands at (15,15) unless values say otherwise
func newTestGame(t *testing.T, values ...int) (*engine.GameContext, *Game) {
	t.Helper()
	field := engine.NewField(600, 600)
	mock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := engine.NewGameContext(engine.DefaultConfig(), field, engine.NewScriptedRand(values...), mock)
	return ctx, NewGame(ctx)
}

// placeHead moves the head and sets its heading with a consistent angle
func placeHead(ctx *engine.GameContext, x, y float64, heading components.Heading) {
	ctx.State.Head.X = x
	ctx.State.Head.Y = y
	ctx.State.Heading = heading
	ctx.State.Head.Angle = heading.Angle()
}

// addSegmentAt appends a body segment at x, y with the given angle
func addSegmentAt(ctx *engine.GameContext, x, y float64, angle int) *components.Sprite {
	seg := ctx.Scene.CreateImageAt(components.SpriteSegment, x, y)
	seg.Angle = angle
	ctx.State.Segments = append(ctx.State.Segments, seg)
	return seg
}

// eventsOfType drains the queue and returns the events of type et
func eventsOfType(ctx *engine.GameContext, et engine.EventType) []engine.GameEvent {
	var out []engine.GameEvent
	for _, ev := range ctx.Events.Consume() {
		if ev.Type == et {
			out = append(out, ev)
		}
	}
	return out
}
