package sketch

import (
	"errors"

	"github.com/gogpu/gg/text"
	"github.com/google/uuid"

	"SketchPad/internal/state"
)

// ErrNoStickerSelected is returned by Begin when the sticker tool is active
// but no sticker has been chosen. The caller must ignore the gesture.
var ErrNoStickerSelected = errors.New("sketch: sticker mode with no sticker selected")

// Factory builds drawables from the tool settings in effect at the moment of
// the call. Fonts supplies faces for sticker glyphs; with a nil source
// stickers still commit and drag correctly but paint nothing.
type Factory struct {
	Fonts *text.FontSource
}

// Begin constructs the drawable for a gesture starting at p. The current
// width/color (pen) or glyph/size/rotation (sticker) are captured now and
// never re-read, so later toolbar changes cannot alter a finished mark.
func (f *Factory) Begin(p state.Point, tools *state.Tools) (Drawable, error) {
	if tools.Mode == state.ModeSticker {
		if tools.Sticker == nil {
			return nil, ErrNoStickerSelected
		}
		return &PlacedSticker{
			ID:       uuid.NewString(),
			Anchor:   p,
			Glyph:    tools.Sticker.Glyph,
			Face:     f.face(tools.Sticker.Size),
			Rotation: tools.Rotation,
		}, nil
	}
	return &FreehandStroke{
		ID:     uuid.NewString(),
		Points: []state.Point{p},
		Width:  tools.Width,
		Color:  tools.Color,
	}, nil
}

// Extend grows the drawable of a live gesture. Strokes record every pointer
// sample, duplicates included — a repeated point is a real elapsed sample.
// Stickers keep only the latest anchor. Previews are never extended.
func (f *Factory) Extend(d Drawable, p state.Point) {
	switch v := d.(type) {
	case *FreehandStroke:
		v.Points = append(v.Points, p)
	case *PlacedSticker:
		v.Anchor = p
	}
}

// Preview builds the hover feedback drawable for p, or nil when the current
// tool cannot place a mark (sticker mode with nothing selected).
func (f *Factory) Preview(p state.Point, tools *state.Tools) Drawable {
	if tools.Mode == state.ModeSticker {
		if tools.Sticker == nil {
			return nil
		}
		return &StickerPreview{
			At:       p,
			Glyph:    tools.Sticker.Glyph,
			Face:     f.face(tools.Sticker.Size),
			Rotation: tools.Rotation,
		}
	}
	return &StrokePreview{At: p, Width: tools.Width, Color: tools.Color}
}

func (f *Factory) face(size float64) text.Face {
	if f.Fonts == nil {
		return nil
	}
	return f.Fonts.Face(size)
}
