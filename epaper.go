/*
Package epaper converts photographs into fixed-resolution, fixed-palette
BMP files suitable for 7-color e-paper displays.

Each source image is resized onto an 800 by 480 canvas (or 480 by 800 for
portrait sources), quantized onto the panel's 7-color palette with optional
Floyd-Steinberg dithering, and written as an uncompressed 24-bit BMP next
to the source file.
*/
package epaper

import (
	"fmt"
	"image"
	"io"
	"log"
	"os"

	"github.com/ccoupe/epaper-bmp/dither"
)

// Orientation forces the target canvas orientation. The zero value selects
// the orientation from the source image's aspect ratio.
type Orientation string

const (
	OrientAuto      Orientation = ""
	OrientLandscape Orientation = "landscape"
	OrientPortrait  Orientation = "portrait"
)

// Mode selects how a source image is fitted onto the target canvas.
type Mode string

const (
	// ModeScale scales the source to cover the canvas and crops the overflow.
	ModeScale Mode = "scale"
	// ModeCut scales the source to fit inside the canvas and pads with white.
	ModeCut Mode = "cut"
)

// Target canvas dimensions for the 7.3 inch panel.
const (
	canvasLong  = 800
	canvasShort = 480
)

// Converter holds the settings shared by every conversion in a run.
type Converter struct {
	orientation Orientation
	mode        Mode
	dither      dither.Mode
	out         io.Writer
	logger      *log.Logger
}

// New returns a Converter. Confirmation messages go to out; per-file
// failures go to logger.
func New(orientation Orientation, mode Mode, d dither.Mode, out io.Writer, logger *log.Logger) *Converter {
	return &Converter{
		orientation: orientation,
		mode:        mode,
		dither:      d,
		out:         out,
		logger:      logger,
	}
}

// targetSize resolves the canvas dimensions for a source image. An explicit
// orientation wins; otherwise wider-than-tall sources go to landscape and
// everything else, squares included, to portrait.
func targetSize(w, h int, o Orientation) (int, int) {
	switch o {
	case OrientLandscape:
		return canvasLong, canvasShort
	case OrientPortrait:
		return canvasShort, canvasLong
	}
	if w > h {
		return canvasLong, canvasShort
	}
	return canvasShort, canvasLong
}

// ConvertFile converts a single image file and writes the BMP alongside it,
// returning the output path.
func (c *Converter) ConvertFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("epaper: open: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("epaper: decode: %w", err)
	}

	b := src.Bounds()
	width, height := targetSize(b.Dx(), b.Dy(), c.orientation)

	canvas, err := resample(src, width, height, c.mode)
	if err != nil {
		return "", err
	}

	quantized := dither.Quantize(canvas, Palette, c.dither)

	out := outputPath(path, c.mode)
	if err := writeBMP(out, quantized); err != nil {
		return "", fmt.Errorf("epaper: encode: %w", err)
	}

	return out, nil
}

// Process converts every image file under root. Per-file failures are
// logged and the batch carries on; only an unusable root is returned as an
// error.
func (c *Converter) Process(root string, recursive bool) error {
	files, err := Files(root, recursive)
	if err != nil {
		return err
	}

	for _, file := range files {
		out, err := c.ConvertFile(file)
		if err != nil {
			c.logger.Printf("Error processing %s: %v", file, err)
			continue
		}
		fmt.Fprintf(c.out, "Successfully converted %s to %s\n", file, out)
	}

	return nil
}
