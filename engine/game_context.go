package engine

// GameContext bundles the session state with the collaborators systems need
type GameContext struct {
	Config Config

	// Central game state
	State *GameState

	// Collaborators
	Scene  Scene
	Rand   Rand
	Events *EventQueue

	// Play time, paused on game over
	Clock *PausableClock

	frameNumber int64
}

// NewGameContext creates the session state on the given scene
func NewGameContext(cfg Config, scene Scene, rng Rand, timeProvider TimeProvider) *GameContext {
	return &GameContext{
		Config: cfg,
		State:  NewGameState(scene, rng),
		Scene:  scene,
		Rand:   rng,
		Events: NewEventQueue(),
		Clock:  NewPausableClock(timeProvider),
	}
}

// PushEvent queues an event stamped with the current frame
func (g *GameContext) PushEvent(eventType EventType, payload any) {
	g.Events.Push(GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   g.frameNumber,
	})
}

// GetFrameNumber returns the current frame number
func (g *GameContext) GetFrameNumber() int64 {
	return g.frameNumber
}

// IncrementFrameNumber increments and returns the frame number
func (g *GameContext) IncrementFrameNumber() int64 {
	g.frameNumber++
	return g.frameNumber
}
