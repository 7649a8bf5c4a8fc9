package state

import "image/color"

// Point is a position in surface-local coordinates, already offset by the
// widget's on-screen position. Points are never mutated once recorded.
type Point struct{ X, Y float64 }

// Mode selects what kind of mark the next gesture produces.
type Mode int

const (
	ModePen Mode = iota
	ModeSticker
)

// Sticker is one stamp the user can place: a glyph and the font size it is
// rendered at.
type Sticker struct {
	Glyph string
	Size  float64
}

// Tools holds the drawing settings for one canvas session. The toolbar
// mutates it, the factory and gesture controller only read it. A nil Sticker
// means no sticker has been chosen yet.
type Tools struct {
	Mode     Mode
	Width    float64
	Color    color.Color
	Sticker  *Sticker
	Rotation float64 // degrees
}

func DefaultTools() *Tools {
	return &Tools{Mode: ModePen, Width: 2, Color: color.Black}
}
