// Package export replays committed drawables onto off-screen surfaces for
// high-resolution output.
package export

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"

	"SketchPad/internal/sketch"
)

// DefaultScale is the factor used by the toolbar export actions.
const DefaultScale = 4

// PNG replays the committed drawables onto an off-screen surface scaled by
// an integer factor and writes the encoded image. The background is
// prefilled opaque white, unlike the live canvas which is cleared to
// transparent. The caller passes only committed marks; the live preview
// never takes part in an export.
func PNG(w io.Writer, drawables []sketch.Drawable, width, height, scale int) error {
	if scale < 1 {
		return fmt.Errorf("export: scale factor must be at least 1, got %d", scale)
	}
	dc := gg.NewContext(width*scale, height*scale)
	dc.ClearWithColor(gg.White)
	dc.Scale(float64(scale), float64(scale))
	sketch.Replay(dc, drawables)
	return dc.EncodePNG(w)
}
