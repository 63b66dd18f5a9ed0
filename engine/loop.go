package engine

import (
	"github.com/Lihanq/snake-game/components"
)

// System is a per-frame update step
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update()
}

// TurnHandler receives heading requests from key presses
type TurnHandler interface {
	HandleTurn(requested components.Heading)
}

// PauseCondition is evaluated after every frame's systems ran
type PauseCondition func(ctx *GameContext) bool

type systemEntry struct {
	system System
}

type pauseTrigger struct {
	cond PauseCondition
	then func(ctx *GameContext)
}

// Loop runs registered systems once per frame in priority order,
// forwards turn requests, and pauses when a registered condition holds
type Loop struct {
	ctx *GameContext

	systems       []systemEntry
	turnHandlers  []TurnHandler
	pauseTriggers []pauseTrigger

	paused bool
}

// NewLoop creates a loop over the given context
func NewLoop(ctx *GameContext) *Loop {
	return &Loop{
		ctx:     ctx,
		systems: make([]systemEntry, 0, 4),
	}
}

// AddSystem registers a frame system. Maintains sorted order via insertion sort;
// equal priorities keep registration order
func (l *Loop) AddSystem(s System) {
	entry := systemEntry{system: s}

	pos := len(l.systems)
	for i, e := range l.systems {
		if s.Priority() < e.system.Priority() {
			pos = i
			break
		}
	}

	l.systems = append(l.systems, systemEntry{})
	copy(l.systems[pos+1:], l.systems[pos:])
	l.systems[pos] = entry
}

// AddTurnHandler registers a key press handler, called in registration order
func (l *Loop) AddTurnHandler(h TurnHandler) {
	l.turnHandlers = append(l.turnHandlers, h)
}

// PauseWhen registers a condition checked after each frame; the first frame it holds,
// then runs and the loop pauses
func (l *Loop) PauseWhen(cond PauseCondition, then func(ctx *GameContext)) {
	l.pauseTriggers = append(l.pauseTriggers, pauseTrigger{cond: cond, then: then})
}

// Tick runs one frame. Returns false without doing anything when paused
func (l *Loop) Tick() bool {
	if l.paused {
		return false
	}

	l.ctx.IncrementFrameNumber()
	for _, e := range l.systems {
		e.system.Update()
	}

	for _, p := range l.pauseTriggers {
		if p.cond(l.ctx) {
			if p.then != nil {
				p.then(l.ctx)
			}
			l.Pause()
			break
		}
	}
	return true
}

// Turn forwards a heading request to every turn handler
func (l *Loop) Turn(requested components.Heading) {
	for _, h := range l.turnHandlers {
		h.HandleTurn(requested)
	}
}

// Pause halts frame processing and the play clock
func (l *Loop) Pause() {
	l.paused = true
	l.ctx.Clock.Pause()
}

// Paused reports whether frame processing is halted
func (l *Loop) Paused() bool {
	return l.paused
}

// SystemNames returns registered system names in execution order
func (l *Loop) SystemNames() []string {
	names := make([]string, len(l.systems))
	for i, e := range l.systems {
		names[i] = e.system.Name()
	}
	return names
}
