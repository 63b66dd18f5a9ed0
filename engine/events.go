// Package engine provides the game state, scene, clock and frame loop for snake-game.
//
// Event System
//
// Systems report what happened during a frame by pushing events to the shared
// EventQueue held by GameContext. The process entry drains the queue once per
// frame, logs each event and hands the batch to the renderer. Events never
// drive game logic: the loop's hooks have already run when they are consumed.
//
// Event Flow Pattern:
//  1. Producer system pushes event: ctx.PushEvent(EventFoodEaten, payload)
//  2. Event stored in a fixed ring buffer (capacity: constants.EventQueueSize)
//  3. Consumer drains pending events: events := ctx.Events.Consume()
//
// The queue is owned by the main goroutine; push and consume are not safe for
// concurrent use.
package engine

import (
	"github.com/Lihanq/snake-game/components"
	"github.com/Lihanq/snake-game/constants"
)

// EventType represents the type of game event
type EventType int

const (
	// EventTurnAccepted signals the heading changed.
	// Payload: *TurnPayload
	EventTurnAccepted EventType = iota

	// EventTurnRejected signals a reversal request was dropped.
	// Payload: *TurnPayload
	EventTurnRejected

	// EventFoodEaten signals the head reached the food and the snake grew.
	// Payload: *FoodPayload
	EventFoodEaten

	// EventGameOver signals the terminal transition.
	// Payload: *GameOverPayload
	EventGameOver
)

// String returns the name of the event type for logs
func (e EventType) String() string {
	switch e {
	case EventTurnAccepted:
		return "TurnAccepted"
	case EventTurnRejected:
		return "TurnRejected"
	case EventFoodEaten:
		return "FoodEaten"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// CollisionCause names what ended the game
type CollisionCause int

const (
	CauseWall CollisionCause = iota
	CauseBody
)

func (c CollisionCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseBody:
		return "body"
	default:
		return "unknown"
	}
}

// TurnPayload carries the requested and resulting heading
type TurnPayload struct {
	From      components.Heading
	Requested components.Heading
}

// FoodPayload carries the state right after growth
type FoodPayload struct {
	Score    int
	Segments int
	FoodX    float64
	FoodY    float64
}

// GameOverPayload carries the cause and final score
type GameOverPayload struct {
	Cause   CollisionCause
	Segment int // Colliding segment index, -1 for walls
	Score   int
}

// GameEvent is a single event stamped with the frame it was produced in
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

// EventQueue is a fixed-size ring buffer of game events
// When full, the oldest unread events are overwritten
type EventQueue struct {
	events [constants.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

// NewEventQueue creates an empty event queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds an event, overwriting the oldest one if the buffer is full
func (eq *EventQueue) Push(event GameEvent) {
	eq.events[eq.tail&constants.EventBufferMask] = event
	eq.tail++
	if eq.tail-eq.head > constants.EventQueueSize {
		eq.head = eq.tail - constants.EventQueueSize
	}
}

// Consume returns all pending events in FIFO order and marks them read
// Returns nil when the queue is empty
func (eq *EventQueue) Consume() []GameEvent {
	result := eq.Peek()
	eq.head = eq.tail
	return result
}

// Peek returns all pending events without consuming them
func (eq *EventQueue) Peek() []GameEvent {
	available := eq.tail - eq.head
	if available == 0 {
		return nil
	}

	result := make([]GameEvent, available)
	for i := uint64(0); i < available; i++ {
		result[i] = eq.events[(eq.head+i)&constants.EventBufferMask]
	}
	return result
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}
