// Package config loads the launch settings for the app. Every field has a
// usable default, so running without a config file just works.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	CanvasWidth  int     `toml:"canvas_width"`
	CanvasHeight int     `toml:"canvas_height"`
	ExportScale  int     `toml:"export_scale"`
	FontPath     string  `toml:"font_path"`
	LineWidth    float64 `toml:"line_width"`
	StickerSize  float64 `toml:"sticker_size"`
}

func Default() Config {
	return Config{
		CanvasWidth:  256,
		CanvasHeight: 256,
		ExportScale:  4,
		LineWidth:    2,
		StickerSize:  24,
	}
}

// Load reads the TOML file at path on top of the defaults. A missing file is
// not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
