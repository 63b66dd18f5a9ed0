package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the frame tick interval (~30 FPS, one movement step per tick)
	FrameUpdateInterval = 33 * time.Millisecond

	// MinFramesPerSecond and MaxFramesPerSecond bound the -fps flag
	MinFramesPerSecond = 5
	MaxFramesPerSecond = 240
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 64

	// EventBufferMask is the bitmask for fast modulo operations (64 - 1)
	EventBufferMask = EventQueueSize - 1
)

// System Execution Priorities (lower runs first)
const (
	PriorityMovement  = 10
	PriorityCollision = 20
)
