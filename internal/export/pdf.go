package export

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"SketchPad/internal/sketch"
)

// PDF renders the committed drawables at the given scale and embeds the
// result as a full-width image in a single-page PDF. Going through the
// raster keeps stickers and stroke caps identical to the PNG output.
func PDF(path string, drawables []sketch.Drawable, width, height, scale int) error {
	var buf bytes.Buffer
	if err := PNG(&buf, drawables, width, height, scale); err != nil {
		return err
	}

	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("sketch", opts, &buf)
	pageW, _ := p.GetPageSize()
	p.ImageOptions("sketch", 10, 10, pageW-20, 0, false, opts, 0, "")
	return p.OutputFileAndClose(path)
}
