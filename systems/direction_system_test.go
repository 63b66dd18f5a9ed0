package systems

import (
	"testing"

	"github.com/Lihanq/snake-game/components"
	"github.com/Lihanq/snake-game/engine"
)

func TestTurnRejectsReversal(t *testing.T) {
	for _, h := range components.Headings {
		t.Run(h.String(), func(t *testing.T) {
			next, delta := Turn(h, h.Reverse())
			if next != h {
				t.Errorf("Turn(%v, %v) heading = %v, want %v", h, h.Reverse(), next, h)
			}
			if delta != 0 {
				t.Errorf("Turn(%v, %v) delta = %d, want 0", h, h.Reverse(), delta)
			}
		})
	}
}

func TestTurnAcceptsNonReversal(t *testing.T) {
	for _, from := range components.Headings {
		for _, to := range components.Headings {
			if to == from.Reverse() {
				continue
			}
			next, delta := Turn(from, to)
			if next != to {
				t.Errorf("Turn(%v, %v) heading = %v, want %v", from, to, next, to)
			}
			if delta != components.TurnDelta(from, to) {
				t.Errorf("Turn(%v, %v) delta = %d, want %d", from, to, delta, components.TurnDelta(from, to))
			}
		}
	}
}

func TestRequestTurnAccepted(t *testing.T) {
	ctx, game := newTestGame(t)

	got := game.Direction.RequestTurn(components.HeadingUp)

	if got != components.HeadingUp || ctx.State.Heading != components.HeadingUp {
		t.Fatalf("Expected heading up, got %v (state %v)", got, ctx.State.Heading)
	}
	if ctx.State.Head.Angle != 90 {
		t.Errorf("Expected head angle 90, got %d", ctx.State.Head.Angle)
	}

	accepted := eventsOfType(ctx, engine.EventTurnAccepted)
	if len(accepted) != 1 {
		t.Fatalf("Expected 1 accepted event, got %d", len(accepted))
	}
	payload := accepted[0].Payload.(*engine.TurnPayload)
	if payload.From != components.HeadingRight || payload.Requested != components.HeadingUp {
		t.Errorf("Unexpected payload %+v", payload)
	}
}

func TestRequestTurnRejectsReversal(t *testing.T) {
	ctx, game := newTestGame(t)

	got := game.Direction.RequestTurn(components.HeadingLeft)

	if got != components.HeadingRight || ctx.State.Heading != components.HeadingRight {
		t.Errorf("Expected heading to stay right, got %v", ctx.State.Heading)
	}
	if ctx.State.Head.Angle != 0 {
		t.Errorf("Expected head angle unchanged at 0, got %d", ctx.State.Head.Angle)
	}
	if n := len(eventsOfType(ctx, engine.EventTurnRejected)); n != 1 {
		t.Errorf("Expected 1 rejected event, got %d", n)
	}
}

func TestRequestTurnSameHeadingIsSilent(t *testing.T) {
	ctx, game := newTestGame(t)

	game.Direction.RequestTurn(components.HeadingRight)

	if ctx.State.Head.Angle != 0 {
		t.Errorf("Expected angle 0, got %d", ctx.State.Head.Angle)
	}
	if n := ctx.Events.Len(); n != 0 {
		t.Errorf("Expected no events, got %d", n)
	}
}

// TestRequestTurnAngleTracksHeading walks a full loop of turns and checks the angle after each
func TestRequestTurnAngleTracksHeading(t *testing.T) {
	ctx, game := newTestGame(t)

	sequence := []components.Heading{
		components.HeadingUp,
		components.HeadingLeft,
		components.HeadingDown,
		components.HeadingRight,
		components.HeadingDown,
		components.HeadingLeft,
		components.HeadingUp,
		components.HeadingRight,
	}

	for i, h := range sequence {
		game.Direction.RequestTurn(h)
		if ctx.State.Heading != h {
			t.Fatalf("step %d: heading = %v, want %v", i, ctx.State.Heading, h)
		}
		if ctx.State.Head.Angle != h.Angle() {
			t.Fatalf("step %d: angle = %d, want %d", i, ctx.State.Head.Angle, h.Angle())
		}
	}
}

func TestRequestTurnThroughLoop(t *testing.T) {
	ctx, game := newTestGame(t)

	game.Loop.Turn(components.HeadingDown)

	if ctx.State.Heading != components.HeadingDown {
		t.Errorf("Expected loop turn to reach direction system, heading %v", ctx.State.Heading)
	}
}

func TestRequestTurnAfterGameOver(t *testing.T) {
	ctx, game := newTestGame(t)
	ctx.State.EndGame()
	ctx.Events.Consume()

	got := game.Direction.RequestTurn(components.HeadingUp)

	if got != components.HeadingRight || ctx.State.Heading != components.HeadingRight {
		t.Errorf("Expected heading frozen at right, got %v", ctx.State.Heading)
	}
	if ctx.State.Head.Angle != 0 {
		t.Errorf("Expected angle frozen at 0, got %d", ctx.State.Head.Angle)
	}
	if n := ctx.Events.Len(); n != 0 {
		t.Errorf("Expected no events after game over, got %d", n)
	}
}
