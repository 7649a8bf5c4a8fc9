package ui

import (
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"github.com/gogpu/gg/text"

	"SketchPad/internal/config"
)

func RunApp(cfg config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow("SketchPad")
	myWindow.Resize(fyne.NewSize(1024, 768))

	board := NewSketchWidget(cfg.CanvasWidth, cfg.CanvasHeight, loadFonts(cfg.FontPath))
	board.Tools.Width = cfg.LineWidth

	toolbar := NewToolbar(board, cfg)

	content := container.NewBorder(toolbar, nil, nil, nil, container.NewCenter(board))
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}

// loadFonts opens the first usable glyph font: the configured path if any,
// then common system emoji fonts. Without one, stickers still place and undo
// correctly but render nothing.
func loadFonts(configured string) *text.FontSource {
	candidates := []string{
		configured,
		"/usr/share/fonts/truetype/noto/NotoColorEmoji.ttf",
		"/System/Library/Fonts/Apple Color Emoji.ttc",
		"C:/Windows/Fonts/seguiemj.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		source, err := text.NewFontSourceFromFile(path)
		if err != nil {
			log.Printf("Skipping font %s: %v", path, err)
			continue
		}
		log.Printf("Using sticker font %s", path)
		return source
	}
	log.Println("No sticker font found; stickers will not be visible")
	return nil
}
