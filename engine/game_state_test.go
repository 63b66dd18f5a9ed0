package engine

import (
	"testing"
	"time"

	"github.com/Lihanq/snake-game/components"
	"github.com/Lihanq/snake-game/constants"
)

func newTestContext(t *testing.T, rng Rand) *GameContext {
	t.Helper()
	field := NewField(600, 600)
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewGameContext(DefaultConfig(), field, rng, mock)
}

// TestGameStateInitialization verifies GameState is properly initialized
func TestGameStateInitialization(t *testing.T) {
	ctx := newTestContext(t, NewScriptedRand(200, 400))
	gs := ctx.State

	if gs.Head == nil || gs.Head.Kind != components.SpriteHead {
		t.Fatal("Expected head sprite")
	}
	if gs.Head.X != 300 || gs.Head.Y != 300 {
		t.Errorf("Expected head at field center (300,300), got (%v,%v)", gs.Head.X, gs.Head.Y)
	}
	if gs.Heading != components.HeadingRight {
		t.Errorf("Expected initial heading right, got %v", gs.Heading)
	}
	if gs.Head.Angle != components.HeadingRight.Angle() {
		t.Errorf("Expected head angle %d, got %d", components.HeadingRight.Angle(), gs.Head.Angle)
	}
	if len(gs.Segments) != 0 {
		t.Errorf("Expected empty body, got %d segments", len(gs.Segments))
	}
	if gs.Food.X != 200 || gs.Food.Y != 400 {
		t.Errorf("Expected food at (200,400), got (%v,%v)", gs.Food.X, gs.Food.Y)
	}
	if gs.Score != 0 || gs.GameOver {
		t.Errorf("Expected score 0 and running game, got score=%d over=%v", gs.Score, gs.GameOver)
	}
	if gs.ScorePanel.Text != "Score: 0" {
		t.Errorf("Expected score panel 'Score: 0', got %q", gs.ScorePanel.Text)
	}
	if gs.GameOverPanel.Text != "" {
		t.Errorf("Expected empty game-over panel, got %q", gs.GameOverPanel.Text)
	}
}

// TestInitialFoodInsideMargin verifies extreme random draws stay inside the edge margin
func TestInitialFoodInsideMargin(t *testing.T) {
	tests := []struct {
		name string
		v    int
	}{
		{"Below margin", 0},
		{"Above margin", 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t, NewScriptedRand(tt.v))
			food := ctx.State.Food
			lo := float64(constants.FoodEdgeMargin)
			hi := 600 - lo
			if food.X < lo || food.X > hi || food.Y < lo || food.Y > hi {
				t.Errorf("Food (%v,%v) outside [%v,%v]", food.X, food.Y, lo, hi)
			}
		})
	}
}

func TestGameStateAddScore(t *testing.T) {
	ctx := newTestContext(t, NewScriptedRand())
	gs := ctx.State

	gs.AddScore(1)
	gs.AddScore(1)

	if gs.Score != 2 {
		t.Errorf("Expected score 2, got %d", gs.Score)
	}
	if gs.ScorePanel.Text != "Score: 2" {
		t.Errorf("Expected panel 'Score: 2', got %q", gs.ScorePanel.Text)
	}
}

func TestGameStateEndGameOnce(t *testing.T) {
	ctx := newTestContext(t, NewScriptedRand())
	gs := ctx.State

	if !gs.EndGame() {
		t.Error("Expected first EndGame to report transition")
	}
	if gs.EndGame() {
		t.Error("Expected second EndGame to be a no-op")
	}
	if !gs.GameOver {
		t.Error("Expected GameOver flag set")
	}
	if gs.GameOverPanel.Text != constants.GameOverText {
		t.Errorf("Expected %q, got %q", constants.GameOverText, gs.GameOverPanel.Text)
	}
}

func TestGameContextFrameStamping(t *testing.T) {
	ctx := newTestContext(t, NewScriptedRand())

	ctx.IncrementFrameNumber()
	ctx.IncrementFrameNumber()
	ctx.PushEvent(EventFoodEaten, nil)

	events := ctx.Events.Consume()
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}
	if events[0].Frame != 2 {
		t.Errorf("Expected frame 2, got %d", events[0].Frame)
	}
}
