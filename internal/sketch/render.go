package sketch

import "github.com/gogpu/gg"

// Repaint redraws the whole surface: transparent clear, every committed
// drawable oldest first (painter's algorithm, no z-index), then the preview
// on top. Given unchanged state it is idempotent.
func Repaint(dc *gg.Context, committed []Drawable, preview Drawable) {
	dc.Clear()
	Replay(dc, committed)
	if preview != nil {
		preview.Render(dc)
	}
}

// Replay renders drawables in order without clearing first. Export uses it
// directly after prefilling its own background.
func Replay(dc *gg.Context, drawables []Drawable) {
	for _, d := range drawables {
		d.Render(dc)
	}
}
