package render

import (
	"github.com/Lihanq/snake-game/engine"
)

// SystemRenderer is implemented by everything with visual output
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// EventObserver is optionally implemented by renderers that react to game events
type EventObserver interface {
	Observe(ev engine.GameEvent)
}
