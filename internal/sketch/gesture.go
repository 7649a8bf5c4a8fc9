package sketch

import (
	"image/color"

	"SketchPad/internal/state"
)

// Controller translates raw pointer events into gesture calls against the
// factory and the history. Two states: idle (hovering, at most one preview
// showing) and active (a drawable is live and being extended). All calls
// happen on the event goroutine; the controller holds no locks.
type Controller struct {
	factory *Factory
	history *state.History[Drawable]
	tools   *state.Tools

	active  Drawable    // in-progress drawable, nil while idle
	preview Drawable    // at most one transient preview
	last    state.Point // last pointer position seen over the surface
	hovered bool

	// OnChange fires after every preview change. History mutations notify
	// through the history's own OnChange.
	OnChange func()
}

func NewController(factory *Factory, history *state.History[Drawable], tools *state.Tools) *Controller {
	return &Controller{factory: factory, history: history, tools: tools}
}

// PointerDown opens a gesture. The drawable is committed immediately, not at
// release, so even a zero-movement click leaves a mark; later moves mutate
// the already-committed drawable in place. In sticker mode with no sticker
// chosen the event is ignored and the controller stays idle.
func (c *Controller) PointerDown(p state.Point) {
	c.last, c.hovered = p, true
	d, err := c.factory.Begin(p, c.tools)
	if err != nil {
		return
	}
	c.active = d
	c.preview = nil
	c.history.Commit(d) // also discards redo history and notifies
}

// PointerMove extends a live gesture, or refreshes the hover preview while
// idle. Extension does not re-commit: only the history's entry is rendered,
// so mutating it in place is enough.
func (c *Controller) PointerMove(p state.Point) {
	c.last, c.hovered = p, true
	if c.active != nil {
		c.factory.Extend(c.active, p)
		c.emit()
		return
	}
	c.preview = c.factory.Preview(p, c.tools)
	c.emit()
}

// PointerUp ends the gesture and leaves a fresh preview at the release
// point.
func (c *Controller) PointerUp(p state.Point) { c.finish(p) }

// PointerLeave ends any live gesture exactly like PointerUp; the drawable
// committed at pointer-down stays.
func (c *Controller) PointerLeave(p state.Point) { c.finish(p) }

// PointerCancel behaves identically to PointerUp: the mark is not rolled
// back.
func (c *Controller) PointerCancel(p state.Point) { c.finish(p) }

// PointerOut clears the preview once the pointer is no longer over the
// surface. A gesture still live at that point is dropped too.
func (c *Controller) PointerOut() {
	c.hovered = false
	c.active = nil
	c.preview = nil
	c.emit()
}

func (c *Controller) finish(p state.Point) {
	c.last = p
	c.active = nil
	c.preview = c.factory.Preview(p, c.tools)
	c.emit()
}

// Preview returns the transient hover drawable, nil when none. It is
// rendered above every committed mark and never enters history.
func (c *Controller) Preview() Drawable { return c.preview }

// Active reports whether a gesture is in progress.
func (c *Controller) Active() bool { return c.active != nil }

// Tool mutators. Each refreshes the hover preview while idle so the
// feedback matches the new settings immediately.

func (c *Controller) SetMode(m state.Mode) {
	c.tools.Mode = m
	c.refreshPreview()
}

func (c *Controller) SetLineWidth(w float64) {
	c.tools.Width = w
	c.refreshPreview()
}

func (c *Controller) SetColor(col color.Color) {
	c.tools.Color = col
	c.refreshPreview()
}

// SetSticker selects a sticker and switches to sticker mode.
func (c *Controller) SetSticker(glyph string, size float64) {
	c.tools.Sticker = &state.Sticker{Glyph: glyph, Size: size}
	c.tools.Mode = state.ModeSticker
	c.refreshPreview()
}

func (c *Controller) SetRotation(deg float64) {
	c.tools.Rotation = deg
	c.refreshPreview()
}

func (c *Controller) refreshPreview() {
	if c.active != nil || !c.hovered {
		return
	}
	c.preview = c.factory.Preview(c.last, c.tools)
	c.emit()
}

func (c *Controller) emit() {
	if c.OnChange != nil {
		c.OnChange()
	}
}
