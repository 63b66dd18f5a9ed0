package engine

import (
	"strconv"

	"github.com/Lihanq/snake-game/components"
	"github.com/Lihanq/snake-game/constants"
)

// GameState is the single mutable aggregate of one game session
// Owned by the main goroutine; systems receive it through GameContext
type GameState struct {
	// Snake
	Head     *components.Sprite
	Heading  components.Heading
	Segments []*components.Sprite // Index 0 nearest the head

	// Exactly one live food sprite, relocated on consumption
	Food *components.Sprite

	Score    int
	GameOver bool

	// Text panels mirrored by the renderer
	ScorePanel    *components.Sprite
	GameOverPanel *components.Sprite
}

// NewGameState creates the session state: head at the spawn point heading right,
// food at a random position inside the edge margin, empty body
func NewGameState(scene Scene, rng Rand) *GameState {
	w, h := scene.Width(), scene.Height()

	head := scene.CreateImage(components.SpriteHead)
	head.Angle = components.HeadingRight.Angle()

	foodX := rng.Range(constants.FoodEdgeMargin, int(w)-constants.FoodEdgeMargin)
	foodY := rng.Range(constants.FoodEdgeMargin, int(h)-constants.FoodEdgeMargin)
	food := scene.CreateImageAt(components.SpriteFood, float64(foodX), float64(foodY))

	return &GameState{
		Head:          head,
		Heading:       components.HeadingRight,
		Segments:      make([]*components.Sprite, 0, constants.SegmentBatchSize*4),
		Food:          food,
		ScorePanel:    scene.CreateText(scoreText(0), w/2, constants.FoodEdgeMargin),
		GameOverPanel: scene.CreateText("", w/2, h/2),
	}
}

// AddScore increments the score and refreshes the score panel
func (s *GameState) AddScore(delta int) {
	s.Score += delta
	s.ScorePanel.Text = scoreText(s.Score)
}

// EndGame sets the terminal flag and raises the game-over panel
// Returns false if the game had already ended
func (s *GameState) EndGame() bool {
	if s.GameOver {
		return false
	}
	s.GameOver = true
	s.GameOverPanel.Text = constants.GameOverText
	return true
}

func scoreText(score int) string {
	return constants.ScorePrefix + strconv.Itoa(score)
}
