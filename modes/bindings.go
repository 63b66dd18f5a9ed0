package modes

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Lihanq/snake-game/components"
)

// ActionType classifies key behaviors
type ActionType uint8

const (
	ActionNone ActionType = iota
	ActionTurn            // arrows, h/j/k/l, w/a/s/d
	ActionQuit            // q, Esc, Ctrl-C, Ctrl-Q
)

// Binding maps a key to its behavior
type Binding struct {
	Action  ActionType
	Heading components.Heading // For ActionTurn
}

// BindingTable holds all key bindings
type BindingTable struct {
	keys  map[tcell.Key]*Binding
	runes map[rune]*Binding
}

// DefaultBindings returns the default binding table
func DefaultBindings() *BindingTable {
	return &BindingTable{
		keys: map[tcell.Key]*Binding{
			tcell.KeyUp:    {ActionTurn, components.HeadingUp},
			tcell.KeyDown:  {ActionTurn, components.HeadingDown},
			tcell.KeyLeft:  {ActionTurn, components.HeadingLeft},
			tcell.KeyRight: {ActionTurn, components.HeadingRight},

			tcell.KeyEscape: {Action: ActionQuit},
			tcell.KeyCtrlC:  {Action: ActionQuit},
			tcell.KeyCtrlQ:  {Action: ActionQuit},
		},
		runes: map[rune]*Binding{
			// Vi keys
			'h': {ActionTurn, components.HeadingLeft},
			'j': {ActionTurn, components.HeadingDown},
			'k': {ActionTurn, components.HeadingUp},
			'l': {ActionTurn, components.HeadingRight},

			// WASD
			'w': {ActionTurn, components.HeadingUp},
			'a': {ActionTurn, components.HeadingLeft},
			's': {ActionTurn, components.HeadingDown},
			'd': {ActionTurn, components.HeadingRight},

			'q': {Action: ActionQuit},
		},
	}
}

// Lookup returns the binding for a key event, nil if unbound
func (t *BindingTable) Lookup(ev *tcell.EventKey) *Binding {
	if ev.Key() == tcell.KeyRune {
		return t.runes[ev.Rune()]
	}
	return t.keys[ev.Key()]
}
