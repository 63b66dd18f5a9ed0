package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Lihanq/snake-game/engine"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator drawing to screen at its current size
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	width, height := screen.Size()
	return &RenderOrchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(width, height),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	// Insertion sort: find position and insert
	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Dispatch forwards drained game events to renderers that observe them
func (o *RenderOrchestrator) Dispatch(events []engine.GameEvent) {
	for _, ev := range events {
		for _, entry := range o.renderers {
			if obs, ok := entry.renderer.(EventObserver); ok {
				obs.Observe(ev)
			}
		}
	}
}

// Resize updates buffer dimensions and syncs the screen
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// Size returns the current buffer dimensions
func (o *RenderOrchestrator) Size() (int, int) {
	return o.buffer.Bounds()
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.buffer.SetBlank(ctx.ColorMode.Style(RgbBackground, RgbBackground))
	o.buffer.Clear()

	if ctx.TooSmall() {
		o.buffer.SetString(0, 0, "terminal too small", ctx.ColorMode.Style(RgbGameOverFg, RgbBackground))
	} else {
		for _, entry := range o.renderers {
			// Skip if renderer implements VisibilityToggle and is not visible
			if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
				continue
			}
			entry.renderer.Render(ctx, o.buffer)
		}
	}

	o.buffer.FlushToScreen(o.screen)
	o.screen.Show()
}
