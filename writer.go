package epaper

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// outputPath names the BMP after the input file's stem and the fit mode,
// placed alongside the input.
func outputPath(input string, mode Mode) string {
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(filepath.Dir(input), fmt.Sprintf("%s_%s_output.bmp", stem, mode))
}

// writeBMP expands the paletted image back to RGB and writes it as an
// uncompressed 24-bit BMP, replacing any existing file.
func writeBMP(path string, m *image.Paletted) error {
	rgb := image.NewRGBA(m.Bounds())
	draw.Draw(rgb, rgb.Bounds(), m, m.Bounds().Min, draw.Src)

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := bmp.Encode(f, rgb); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
