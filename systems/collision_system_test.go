package systems

import (
	"testing"

	"github.com/Lihanq/snake-game/components"
	"github.com/Lihanq/snake-game/constants"
	"github.com/Lihanq/snake-game/engine"
)

func TestHeadHitsWall(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 300, 300, false},
		{"left margin inside", 16, 300, false},
		{"left margin crossed", 15, 300, true},
		{"right margin inside", 584, 300, false},
		{"right margin crossed", 585, 300, true},
		{"top margin crossed", 300, 10, true},
		{"bottom margin crossed", 300, 590, true},
		{"corner", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, game := newTestGame(t)
			placeHead(ctx, tt.x, tt.y, components.HeadingRight)

			if got := game.Collision.HeadHitsWall(); got != tt.want {
				t.Errorf("HeadHitsWall at (%v,%v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	ctx, game := newTestGame(t)
	placeHead(ctx, 15, 300, components.HeadingLeft)

	result := game.Collision.Resolve()

	if !result.Wall || !result.Fatal() {
		t.Fatalf("Expected fatal wall collision, got %+v", result)
	}
	if !ctx.State.GameOver {
		t.Error("Expected game over")
	}
	if ctx.State.GameOverPanel.Text != constants.GameOverText {
		t.Errorf("Expected game-over panel %q, got %q", constants.GameOverText, ctx.State.GameOverPanel.Text)
	}

	events := eventsOfType(ctx, engine.EventGameOver)
	if len(events) != 1 {
		t.Fatalf("Expected 1 game-over event, got %d", len(events))
	}
	p := events[0].Payload.(*engine.GameOverPayload)
	if p.Cause != engine.CauseWall || p.Segment != -1 {
		t.Errorf("Unexpected payload %+v", p)
	}
}

func TestBodyCollisionSkipsLeadingSegments(t *testing.T) {
	ctx, game := newTestGame(t)
	placeHead(ctx, 300, 300, components.HeadingRight)
	addSegmentAt(ctx, 300, 300, 0)
	addSegmentAt(ctx, 300, 300, 0)

	if idx := game.Collision.HeadHitsBody(); idx != -1 {
		t.Errorf("Expected segments 0 and 1 ignored, got index %d", idx)
	}
	if result := game.Collision.Resolve(); result.Fatal() {
		t.Errorf("Expected no fatal collision, got %+v", result)
	}
	if ctx.State.GameOver {
		t.Error("Expected game to continue")
	}
}

func TestBodyCollisionEndsGame(t *testing.T) {
	ctx, game := newTestGame(t)
	placeHead(ctx, 300, 300, components.HeadingRight)
	addSegmentAt(ctx, 286, 300, 0)
	addSegmentAt(ctx, 284, 300, 0)
	addSegmentAt(ctx, 200, 200, 0)
	addSegmentAt(ctx, 305, 295, 90)

	result := game.Collision.Resolve()

	if !result.Body || result.BodyIndex != 3 {
		t.Fatalf("Expected body collision with segment 3, got %+v", result)
	}
	if !ctx.State.GameOver {
		t.Error("Expected game over")
	}

	events := eventsOfType(ctx, engine.EventGameOver)
	if len(events) != 1 {
		t.Fatalf("Expected 1 game-over event, got %d", len(events))
	}
	p := events[0].Payload.(*engine.GameOverPayload)
	if p.Cause != engine.CauseBody || p.Segment != 3 {
		t.Errorf("Unexpected payload %+v", p)
	}
}

func TestFoodCollisionGrows(t *testing.T) {
	ctx, game := newTestGame(t)
	placeHead(ctx, 100, 100, components.HeadingRight)
	ctx.State.Food.X, ctx.State.Food.Y = 110, 105
	ctx.Rand = engine.NewScriptedRand(100, 100)

	result := game.Collision.Resolve()

	if !result.Food || result.Fatal() {
		t.Fatalf("Expected non-fatal food collision, got %+v", result)
	}
	if ctx.State.Score != 1 || len(ctx.State.Segments) != 6 {
		t.Errorf("Expected score 1 and 6 segments, got %d and %d", ctx.State.Score, len(ctx.State.Segments))
	}
	if ctx.State.Food.X != 210 || ctx.State.Food.Y != 205 {
		t.Errorf("Expected food relocated to (210,205), got (%v,%v)", ctx.State.Food.X, ctx.State.Food.Y)
	}
}

func TestFoodTouchingEdgeDoesNotCount(t *testing.T) {
	ctx, game := newTestGame(t)
	placeHead(ctx, 100, 100, components.HeadingRight)
	ctx.State.Food.X, ctx.State.Food.Y = 116, 100

	if game.Collision.HeadHitsFood() {
		t.Error("Expected boxes sharing an edge not to overlap")
	}
}

func TestResolveAfterGameOver(t *testing.T) {
	ctx, game := newTestGame(t)
	placeHead(ctx, 10, 10, components.HeadingLeft)
	ctx.State.Food.X, ctx.State.Food.Y = 10, 10
	ctx.State.EndGame()
	ctx.Events.Consume()

	result := game.Collision.Resolve()

	if result.Food || result.Fatal() {
		t.Errorf("Expected no collisions reported after game over, got %+v", result)
	}
	if ctx.State.Score != 0 {
		t.Errorf("Expected score frozen at 0, got %d", ctx.State.Score)
	}
	if n := ctx.Events.Len(); n != 0 {
		t.Errorf("Expected no events, got %d", n)
	}
}
