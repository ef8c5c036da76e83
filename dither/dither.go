/*
Package dither maps RGB images onto a fixed palette, optionally diffusing
the quantization error of each pixel onto its unprocessed neighbors.
*/
package dither

import (
	"image"
	"image/color"
	"math"

	mdither "github.com/makeworld-the-better-one/dither/v2"
)

// Mode selects the dithering algorithm. The values match the codes exposed
// on the command line.
type Mode int

const (
	None           Mode = 0
	FloydSteinberg Mode = 3
)

// Quantize maps every pixel of src onto the nearest entry of p, returning a
// paletted image with the same bounds. FloydSteinberg diffuses the rounding
// error in raster order with the classic 7/16, 3/16, 5/16, 1/16 kernel; any
// other mode maps each pixel independently.
func Quantize(src image.Image, p color.Palette, m Mode) *image.Paletted {
	if m == FloydSteinberg {
		d := mdither.NewDitherer([]color.Color(p))
		d.Matrix = mdither.FloydSteinberg
		return d.DitherPaletted(src)
	}
	return nearestOnly(src, p)
}

func nearestOnly(src image.Image, p color.Palette) *image.Paletted {
	b := src.Bounds()
	dst := image.NewPaletted(b, p)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := src.At(x, y).RGBA()
			dst.SetColorIndex(x, y, nearest(p, int32(r>>8), int32(g>>8), int32(bl>>8)))
		}
	}
	return dst
}

// nearest returns the index of the palette entry with the smallest squared
// RGB distance to the given color. Scanning in palette order with a strict
// comparison makes the lowest index win ties.
func nearest(p color.Palette, r, g, b int32) uint8 {
	best := 0
	bestDist := int64(math.MaxInt64)
	for i, c := range p {
		cr, cg, cb, _ := c.RGBA()
		dr := int64(r) - int64(cr>>8)
		dg := int64(g) - int64(cg>>8)
		db := int64(b) - int64(cb>>8)
		dist := dr*dr + dg*dg + db*db
		if dist < bestDist {
			bestDist = dist
			best = i
		}
		if dist == 0 {
			break
		}
	}
	return uint8(best)
}
