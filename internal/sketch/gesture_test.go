package sketch

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SketchPad/internal/state"
)

func newSession(tools *state.Tools) (*Controller, *state.History[Drawable]) {
	h := state.NewHistory[Drawable]()
	c := NewController(&Factory{}, h, tools)
	return c, h
}

func TestPenGestureScenario(t *testing.T) {
	tools := state.DefaultTools() // pen, width 2
	c, h := newSession(tools)

	c.PointerDown(state.Point{X: 10, Y: 10})
	c.PointerMove(state.Point{X: 20, Y: 10})
	c.PointerUp(state.Point{X: 20, Y: 10})

	require.Len(t, h.Committed(), 1)
	stroke := h.Committed()[0].(*FreehandStroke)
	assert.Equal(t, []state.Point{{X: 10, Y: 10}, {X: 20, Y: 10}}, stroke.Points)
	assert.Equal(t, 2.0, stroke.Width)
	assert.Empty(t, h.Undone())

	preview, ok := c.Preview().(*StrokePreview)
	require.True(t, ok, "release leaves a preview at the release point")
	assert.Equal(t, state.Point{X: 20, Y: 10}, preview.At)
}

func TestStickerStampScenario(t *testing.T) {
	c, h := newSession(state.DefaultTools())
	c.SetSticker("🍎", 24)

	c.PointerDown(state.Point{X: 50, Y: 50})
	c.PointerUp(state.Point{X: 50, Y: 50})

	require.Len(t, h.Committed(), 1)
	sticker := h.Committed()[0].(*PlacedSticker)
	assert.Equal(t, state.Point{X: 50, Y: 50}, sticker.Anchor)
	assert.Equal(t, "🍎", sticker.Glyph)

	preview, ok := c.Preview().(*StickerPreview)
	require.True(t, ok)
	assert.Equal(t, state.Point{X: 50, Y: 50}, preview.At)
}

func TestStickerModeWithoutSelectionIgnoresGesture(t *testing.T) {
	c, h := newSession(state.DefaultTools())
	c.SetMode(state.ModeSticker) // no sticker chosen

	c.PointerDown(state.Point{X: 5, Y: 5})
	assert.False(t, c.Active())

	c.PointerMove(state.Point{X: 6, Y: 6})
	c.PointerUp(state.Point{X: 6, Y: 6})

	assert.Empty(t, h.Committed())
	assert.Empty(t, h.Undone())
	assert.Nil(t, c.Preview())
}

func TestCommitHappensAtPointerDown(t *testing.T) {
	c, h := newSession(state.DefaultTools())

	c.PointerDown(state.Point{X: 1, Y: 1})
	require.Len(t, h.Committed(), 1, "an abandoned zero-movement gesture still marks")
	assert.True(t, c.Active())

	// Moves mutate the already-committed drawable in place.
	c.PointerMove(state.Point{X: 2, Y: 2})
	stroke := h.Committed()[0].(*FreehandStroke)
	assert.Len(t, stroke.Points, 2)

	c.PointerUp(state.Point{X: 2, Y: 2})
	assert.Len(t, h.Committed(), 1)
	assert.Len(t, stroke.Points, 2, "points freeze once the gesture ends")
}

func TestPointerDownDiscardsRedoHistory(t *testing.T) {
	c, h := newSession(state.DefaultTools())

	c.PointerDown(state.Point{X: 1, Y: 1})
	c.PointerUp(state.Point{X: 1, Y: 1})
	h.Undo()
	require.Len(t, h.Undone(), 1)

	c.PointerDown(state.Point{X: 2, Y: 2})
	c.PointerUp(state.Point{X: 2, Y: 2})

	assert.Empty(t, h.Undone())
	assert.Len(t, h.Committed(), 1)
}

func TestPointerCancelBehavesLikeUp(t *testing.T) {
	c, h := newSession(state.DefaultTools())

	c.PointerDown(state.Point{X: 1, Y: 1})
	c.PointerMove(state.Point{X: 5, Y: 5})
	c.PointerCancel(state.Point{X: 5, Y: 5})

	assert.False(t, c.Active())
	assert.Len(t, h.Committed(), 1, "cancel does not roll back the committed mark")
	assert.NotNil(t, c.Preview())

	// A later move must start no new extension.
	c.PointerMove(state.Point{X: 9, Y: 9})
	assert.Len(t, h.Committed()[0].(*FreehandStroke).Points, 2)
}

func TestPointerLeaveEndsGesture(t *testing.T) {
	c, h := newSession(state.DefaultTools())

	c.PointerDown(state.Point{X: 1, Y: 1})
	c.PointerLeave(state.Point{X: 3, Y: 3})

	assert.False(t, c.Active())
	assert.Len(t, h.Committed(), 1)
}

func TestPointerOutClearsPreview(t *testing.T) {
	c, _ := newSession(state.DefaultTools())

	c.PointerMove(state.Point{X: 4, Y: 4})
	require.NotNil(t, c.Preview())

	c.PointerOut()
	assert.Nil(t, c.Preview())
}

func TestHoverMoveRefreshesPreview(t *testing.T) {
	c, _ := newSession(state.DefaultTools())

	c.PointerMove(state.Point{X: 4, Y: 4})
	c.PointerMove(state.Point{X: 8, Y: 2})

	preview := c.Preview().(*StrokePreview)
	assert.Equal(t, state.Point{X: 8, Y: 2}, preview.At)
}

func TestToolMutatorsRefreshIdlePreview(t *testing.T) {
	c, _ := newSession(state.DefaultTools())
	c.PointerMove(state.Point{X: 10, Y: 10})

	c.SetLineWidth(8)
	preview := c.Preview().(*StrokePreview)
	assert.Equal(t, 8.0, preview.Width)

	c.SetColor(color.RGBA{B: 255, A: 255})
	preview = c.Preview().(*StrokePreview)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, preview.Color)

	c.SetSticker("🌟", 32)
	sticker := c.Preview().(*StickerPreview)
	assert.Equal(t, "🌟", sticker.Glyph)
	assert.Equal(t, state.Point{X: 10, Y: 10}, sticker.At)

	c.SetRotation(45)
	assert.Equal(t, 45.0, c.Preview().(*StickerPreview).Rotation)

	c.SetMode(state.ModePen)
	_, ok := c.Preview().(*StrokePreview)
	assert.True(t, ok)
}

func TestToolMutatorsSkipPreviewWhenNotHovered(t *testing.T) {
	c, _ := newSession(state.DefaultTools())
	var fired int
	c.OnChange = func() { fired++ }

	c.SetLineWidth(8)
	assert.Nil(t, c.Preview())
	assert.Zero(t, fired)
}

func TestPreviewChangesNotify(t *testing.T) {
	c, h := newSession(state.DefaultTools())
	var previews, edits int
	c.OnChange = func() { previews++ }
	h.OnChange = func() { edits++ }

	c.PointerMove(state.Point{X: 1, Y: 1}) // hover preview
	c.PointerDown(state.Point{X: 1, Y: 1}) // commit via history
	c.PointerMove(state.Point{X: 2, Y: 2}) // in-place extension
	c.PointerUp(state.Point{X: 2, Y: 2})   // release preview

	assert.Equal(t, 3, previews)
	assert.Equal(t, 1, edits)
}
