// Package modes turns terminal events into game actions.
package modes

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Lihanq/snake-game/engine"
)

// InputHandler processes user input events
type InputHandler struct {
	loop     *engine.Loop
	bindings *BindingTable
	onResize func(width, height int)
}

// NewInputHandler creates an input handler forwarding turns to loop
// onResize may be nil
func NewInputHandler(loop *engine.Loop, onResize func(width, height int)) *InputHandler {
	return &InputHandler{
		loop:     loop,
		bindings: DefaultBindings(),
		onResize: onResize,
	}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventResize:
		if h.onResize != nil {
			h.onResize(ev.Size())
		}
	}
	return true
}

// handleKeyEvent processes keyboard events
func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	b := h.bindings.Lookup(ev)
	if b == nil {
		return true
	}

	switch b.Action {
	case ActionQuit:
		return false
	case ActionTurn:
		h.loop.Turn(b.Heading)
	}
	return true
}
