// Package sketch implements the drawing command model: the drawable
// variants, the tool factory that builds them, the pointer gesture state
// machine and the repaint pipeline. It is headless; the ui package feeds it
// events and displays the raster it paints.
package sketch

import (
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"SketchPad/internal/state"
)

// Drawable is one self-contained mark. It paints itself from its own
// captured state only, which makes the committed sequence replayable onto
// any surface — the live canvas or a scaled export context.
type Drawable interface {
	Render(dc *gg.Context)
}

const previewAlpha = 0.5

// FreehandStroke is a pen mark: the ordered pointer samples of one gesture
// with the width and color captured when the gesture started. Points only
// grow while the gesture is live and are frozen afterwards.
type FreehandStroke struct {
	ID     string
	Points []state.Point
	Width  float64
	Color  color.Color
}

func (s *FreehandStroke) Render(dc *gg.Context) {
	if len(s.Points) == 0 {
		return
	}
	dc.SetColor(s.Color)
	if len(s.Points) < 2 {
		// A click with no movement still leaves a visible dot; a
		// zero-length polyline would paint nothing.
		dc.DrawCircle(s.Points[0].X, s.Points[0].Y, dotRadius(s.Width))
		dc.Fill()
		return
	}
	dc.SetLineWidth(s.Width)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.MoveTo(s.Points[0].X, s.Points[0].Y)
	for _, p := range s.Points[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.Stroke()
}

// PlacedSticker is a stamped glyph. Only the latest anchor is kept while the
// gesture is live — dragging repositions the sticker, it does not leave a
// trail. Glyph, face and rotation are fixed at creation.
type PlacedSticker struct {
	ID       string
	Anchor   state.Point
	Glyph    string
	Face     text.Face
	Rotation float64 // degrees, anchor-relative
}

func (st *PlacedSticker) Render(dc *gg.Context) {
	drawGlyph(dc, st.Anchor, st.Glyph, st.Face, st.Rotation, 1)
}

// StrokePreview marks where the next pen stroke would land: a
// semi-transparent dot sized like a single-point stroke.
type StrokePreview struct {
	At    state.Point
	Width float64
	Color color.Color
}

func (p *StrokePreview) Render(dc *gg.Context) {
	r, g, b, _ := p.Color.RGBA()
	dc.SetRGBA(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff, previewAlpha)
	dc.DrawCircle(p.At.X, p.At.Y, dotRadius(p.Width))
	dc.Fill()
}

// StickerPreview shows the selected glyph at the hovered point, rotated like
// the sticker it would place, at reduced opacity.
type StickerPreview struct {
	At       state.Point
	Glyph    string
	Face     text.Face
	Rotation float64
}

func (p *StickerPreview) Render(dc *gg.Context) {
	drawGlyph(dc, p.At, p.Glyph, p.Face, p.Rotation, previewAlpha)
}

// drawGlyph centers the glyph on the anchor, pre-rotated about it: translate
// to the anchor, rotate, draw at origin, so orientation is anchor-relative.
// With no face loaded the draw is a silent no-op.
func drawGlyph(dc *gg.Context, at state.Point, glyph string, face text.Face, rotation, alpha float64) {
	if face == nil {
		return
	}
	dc.Push()
	if rotation != 0 {
		dc.RotateAbout(rotation*math.Pi/180, at.X, at.Y)
	}
	dc.SetFont(face)
	dc.SetRGBA(0, 0, 0, alpha)
	dc.DrawStringAnchored(glyph, at.X, at.Y, 0.5, 0.5)
	dc.Pop()
}

func dotRadius(width float64) float64 {
	return math.Max(1, width/2)
}
