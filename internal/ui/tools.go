package ui

import (
	"image/color"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/gogpu/gg"

	"SketchPad/internal/config"
	"SketchPad/internal/state"
)

// Stickers offered before the user adds their own.
var defaultStickers = []string{"🍎", "🌟", "😺"}

// --- Custom widget for color swatches ---

type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// --- The main toolbar ---

func NewToolbar(board *SketchWidget, cfg config.Config) fyne.CanvasObject {
	ctrl := board.Controller

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			ctrl.SetMode(state.ModePen)
		}), // Pen
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), board.History.Undo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), board.History.Redo),
		widget.NewToolbarAction(theme.DeleteIcon(), board.History.Clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DownloadIcon(), func() {
			if err := board.ExportPNG("sketchpad.png", cfg.ExportScale); err != nil {
				log.Printf("PNG export failed: %v", err)
				return
			}
			log.Printf("Exported sketchpad.png at %dx scale", cfg.ExportScale)
		}),
		widget.NewToolbarAction(theme.DocumentIcon(), func() {
			if err := board.ExportPDF("sketchpad.pdf", cfg.ExportScale); err != nil {
				log.Printf("PDF export failed: %v", err)
				return
			}
			log.Println("Exported sketchpad.pdf")
		}),
	)

	// --- Color palette: fixed swatches plus a hue slider ---
	colorBox := container.NewHBox(
		newColorSwatch(color.Black, ctrl.SetColor),
		newColorSwatch(color.NRGBA{R: 255, A: 255}, ctrl.SetColor),
		newColorSwatch(color.NRGBA{G: 255, A: 255}, ctrl.SetColor),
		newColorSwatch(color.NRGBA{B: 255, A: 255}, ctrl.SetColor),
	)
	hueSlider := widget.NewSlider(0, 360)
	hueSlider.OnChanged = func(h float64) {
		ctrl.SetColor(gg.HSL(h, 1, 0.5).Color())
	}

	// --- Stroke width ---
	widthSlider := widget.NewSlider(1, 24)
	widthSlider.SetValue(cfg.LineWidth)
	widthSlider.OnChanged = ctrl.SetLineWidth

	// --- Stickers: built-ins, a custom entry, and rotation ---
	stickerBox := container.NewHBox()
	addSticker := func(glyph string) {
		stickerBox.Add(widget.NewButton(glyph, func() {
			ctrl.SetSticker(glyph, cfg.StickerSize)
		}))
	}
	for _, glyph := range defaultStickers {
		addSticker(glyph)
	}

	customEntry := widget.NewEntry()
	customEntry.SetPlaceHolder("new sticker")
	customButton := widget.NewButton("Add", func() {
		glyph := strings.TrimSpace(customEntry.Text)
		if glyph == "" {
			// Blank input never reaches the core.
			return
		}
		addSticker(glyph)
		stickerBox.Refresh()
		customEntry.SetText("")
		ctrl.SetSticker(glyph, cfg.StickerSize)
	})

	rotationSlider := widget.NewSlider(0, 360)
	rotationSlider.OnChanged = ctrl.SetRotation

	slider := func(s *widget.Slider) fyne.CanvasObject {
		return container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), s)
	}

	return container.NewVBox(
		container.NewHBox(
			tb,
			widget.NewSeparator(),
			widget.NewLabel("Color:"),
			colorBox,
			slider(hueSlider),
			widget.NewSeparator(),
			widget.NewLabel("Size:"),
			slider(widthSlider),
			layout.NewSpacer(),
		),
		container.NewHBox(
			widget.NewLabel("Stickers:"),
			stickerBox,
			container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), customEntry),
			customButton,
			widget.NewSeparator(),
			widget.NewLabel("Rotation:"),
			slider(rotationSlider),
			layout.NewSpacer(),
		),
	)
}
