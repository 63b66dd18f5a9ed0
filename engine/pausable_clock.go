package engine

import "time"

// PausableClock measures play time until the game pauses it
type PausableClock struct {
	provider TimeProvider

	startTime      time.Time
	isPaused       bool
	pauseStartTime time.Time
}

// NewPausableClock creates a running clock starting at the provider's current time
func NewPausableClock(provider TimeProvider) *PausableClock {
	return &PausableClock{
		provider:  provider,
		startTime: provider.Now(),
	}
}

// Elapsed returns play time; frozen while paused
func (pc *PausableClock) Elapsed() time.Duration {
	now := pc.provider.Now()
	if pc.isPaused {
		now = pc.pauseStartTime
	}
	return now.Sub(pc.startTime)
}

// Pause stops play time advancement for good. Repeated calls are no-ops
func (pc *PausableClock) Pause() {
	if pc.isPaused {
		return
	}
	pc.isPaused = true
	pc.pauseStartTime = pc.provider.Now()
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused
}

