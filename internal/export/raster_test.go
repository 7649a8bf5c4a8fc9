package export

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SketchPad/internal/sketch"
	"SketchPad/internal/state"
)

func redDot(x, y float64) sketch.Drawable {
	return &sketch.FreehandStroke{
		Points: []state.Point{{X: x, Y: y}},
		Width:  8,
		Color:  color.RGBA{R: 255, A: 255},
	}
}

func TestPNGScalesAndPrefillsWhite(t *testing.T) {
	var buf bytes.Buffer
	err := PNG(&buf, []sketch.Drawable{redDot(16, 16)}, 64, 48, DefaultScale)
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64*DefaultScale, img.Bounds().Dx())
	assert.Equal(t, 48*DefaultScale, img.Bounds().Dy())

	// Untouched pixels are opaque white, not transparent.
	r, g, b, a := img.At(2, 2).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)

	// The dot lands at the scaled position.
	r, g, _, _ = img.At(16*DefaultScale, 16*DefaultScale).RGBA()
	assert.Greater(t, r, g, "dot pixel should be red")
}

func TestPNGEmptyCanvasIsAllWhite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, nil, 32, 32, 1))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	for _, p := range [][2]int{{0, 0}, {16, 16}, {31, 31}} {
		r, g, b, _ := img.At(p[0], p[1]).RGBA()
		assert.Equal(t, uint32(0xffff), r)
		assert.Equal(t, uint32(0xffff), g)
		assert.Equal(t, uint32(0xffff), b)
	}
}

func TestPNGRejectsBadScale(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, PNG(&buf, nil, 32, 32, 0))
	assert.Error(t, PNG(&buf, nil, 32, 32, -2))
}

func TestPDFWritesDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.pdf")
	err := PDF(path, []sketch.Drawable{redDot(10, 10)}, 64, 64, 2)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}
