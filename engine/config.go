package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/Lihanq/snake-game/constants"
)

// Config is the runtime configuration of one game session
type Config struct {
	FieldWidth    float64
	FieldHeight   float64
	Step          float64 // Head travel per frame
	Seed          uint64  // 0 picks a time based seed
	FrameInterval time.Duration
}

// DefaultConfig returns the configuration used when no flags are given
func DefaultConfig() Config {
	return Config{
		FieldWidth:    constants.DefaultFieldWidth,
		FieldHeight:   constants.DefaultFieldHeight,
		Step:          constants.SnakeStep,
		FrameInterval: constants.FrameUpdateInterval,
	}
}

// Validate rejects configurations the rules cannot run on
func (c Config) Validate() error {
	if !finite(c.FieldWidth) || !finite(c.FieldHeight) {
		return fmt.Errorf("field %vx%v must be finite", c.FieldWidth, c.FieldHeight)
	}
	if !finite(c.Step) {
		return fmt.Errorf("step must be finite, got %v", c.Step)
	}
	// Food needs room for a nudge past the edge margin on both axes
	minDim := float64(2*constants.FoodEdgeMargin + constants.FoodNudgeMax + 1)
	if c.FieldWidth < minDim || c.FieldHeight < minDim {
		return fmt.Errorf("field %vx%v is smaller than %vx%v", c.FieldWidth, c.FieldHeight, minDim, minDim)
	}
	if c.Step <= 0 {
		return fmt.Errorf("step must be positive, got %v", c.Step)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame interval must be positive, got %v", c.FrameInterval)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
