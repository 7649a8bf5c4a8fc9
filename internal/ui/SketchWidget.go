package ui

import (
	"image/color"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"SketchPad/internal/export"
	"SketchPad/internal/sketch"
	"SketchPad/internal/state"
)

// SketchWidget hosts one canvas session: it owns the tool state, the history
// and the gesture controller, forwards pointer events to them and repaints
// the raster whenever either side notifies.
type SketchWidget struct {
	widget.BaseWidget

	Tools      *state.Tools
	History    *state.History[sketch.Drawable]
	Controller *sketch.Controller

	dc  *gg.Context
	img *canvas.Image

	width, height int
}

var _ fyne.Widget = (*SketchWidget)(nil)
var _ fyne.Draggable = (*SketchWidget)(nil)
var _ desktop.Mouseable = (*SketchWidget)(nil)
var _ desktop.Hoverable = (*SketchWidget)(nil)

func NewSketchWidget(width, height int, fonts *text.FontSource) *SketchWidget {
	w := &SketchWidget{
		Tools:   state.DefaultTools(),
		History: state.NewHistory[sketch.Drawable](),
		dc:      gg.NewContext(width, height),
		width:   width,
		height:  height,
	}
	factory := &sketch.Factory{Fonts: fonts}
	w.Controller = sketch.NewController(factory, w.History, w.Tools)

	// Both notification paths end in the same single repaint.
	w.History.OnChange = w.repaint
	w.Controller.OnChange = w.repaint

	w.img = canvas.NewImageFromImage(w.dc.Image())
	w.img.FillMode = canvas.ImageFillStretch
	w.ExtendBaseWidget(w)
	w.repaint()
	return w
}

// repaint is the only consumer of change notifications: it redraws the
// raster from the committed marks plus the current preview and refreshes the
// on-screen image.
func (w *SketchWidget) repaint() {
	sketch.Repaint(w.dc, w.History.Committed(), w.Controller.Preview())
	w.img.Image = w.dc.Image()
	canvas.Refresh(w.img)
}

func (w *SketchWidget) point(pos fyne.Position) state.Point {
	return state.Point{X: float64(pos.X), Y: float64(pos.Y)}
}

func (w *SketchWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.Controller.PointerDown(w.point(e.Position))
	}
}

func (w *SketchWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.Controller.PointerUp(w.point(e.Position))
	}
}

func (w *SketchWidget) Dragged(e *fyne.DragEvent) {
	w.Controller.PointerMove(w.point(e.Position))
}

func (w *SketchWidget) DragEnd() {}

func (w *SketchWidget) MouseIn(e *desktop.MouseEvent) {
	w.Controller.PointerMove(w.point(e.Position))
}

func (w *SketchWidget) MouseMoved(e *desktop.MouseEvent) {
	w.Controller.PointerMove(w.point(e.Position))
}

func (w *SketchWidget) MouseOut() {
	w.Controller.PointerOut()
}

// ExportPNG writes the committed marks as a PNG scaled by the given factor.
func (w *SketchWidget) ExportPNG(path string, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing %s: %v", path, err)
		}
	}()
	return export.PNG(f, w.History.Committed(), w.width, w.height, scale)
}

// ExportPDF writes the committed marks as a single-page PDF.
func (w *SketchWidget) ExportPDF(path string, scale int) error {
	return export.PDF(path, w.History.Committed(), w.width, w.height, scale)
}

func (w *SketchWidget) CreateRenderer() fyne.WidgetRenderer {
	return &sketchRenderer{
		widget:     w,
		background: canvas.NewRectangle(color.White),
	}
}

type sketchRenderer struct {
	widget     *SketchWidget
	background *canvas.Rectangle
}

func (r *sketchRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.widget.img}
}

func (r *sketchRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.widget.img.Resize(size)
}

func (r *sketchRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(r.widget.width), float32(r.widget.height))
}

func (r *sketchRenderer) Refresh() {
	canvas.Refresh(r.widget.img)
}

func (r *sketchRenderer) Destroy() {}
