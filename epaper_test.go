package epaper

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetSize(t *testing.T) {
	tables := []struct {
		name         string
		w, h         int
		orientation  Orientation
		wantW, wantH int
	}{
		{"wide auto", 1000, 500, OrientAuto, 800, 480},
		{"tall auto", 400, 900, OrientAuto, 480, 800},
		{"square auto", 500, 500, OrientAuto, 480, 800},
		{"forced portrait on wide source", 1000, 500, OrientPortrait, 480, 800},
		{"forced landscape on tall source", 400, 900, OrientLandscape, 800, 480},
	}

	for _, table := range tables {
		w, h := targetSize(table.w, table.h, table.orientation)
		assert.Equal(t, table.wantW, w, table.name)
		assert.Equal(t, table.wantH, h, table.name)
	}
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("some", "dir", "photo_scale_output.bmp"),
		outputPath(filepath.Join("some", "dir", "photo.jpg"), ModeScale))
	assert.Equal(t, "photo_cut_output.bmp", outputPath("photo.png", ModeCut))
}

func TestPalette(t *testing.T) {
	assert.Len(t, Palette, paletteSize)

	black := color.RGBA{0x00, 0x00, 0x00, 0xff}
	assert.Equal(t, black, Palette[0])
	assert.Equal(t, black, Palette[4])

	// Everything past the 7 defined colors is black padding
	for _, c := range Palette[7:] {
		assert.Equal(t, black, c)
	}
}
