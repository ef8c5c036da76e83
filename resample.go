package epaper

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// resample produces an RGB canvas of exactly width by height from src using
// the selected fit strategy.
func resample(src image.Image, width, height int, mode Mode) (*image.NRGBA, error) {
	switch mode {
	case ModeScale:
		return imaging.Fill(src, width, height, imaging.Center, imaging.Lanczos), nil
	case ModeCut:
		b := src.Bounds()
		w, h := containSize(b.Dx(), b.Dy(), width, height)
		scaled := imaging.Resize(src, w, h, imaging.Lanczos)
		return imaging.PasteCenter(imaging.New(width, height, color.White), scaled), nil
	default:
		return nil, fmt.Errorf("epaper: unknown mode %q", mode)
	}
}

// containSize scales (sw, sh) uniformly, up or down, so it just fits inside
// (tw, th). imaging.Fit is not used here because it never upscales.
func containSize(sw, sh, tw, th int) (int, int) {
	if sw*th > sh*tw {
		h := sh * tw / sw
		if h < 1 {
			h = 1
		}
		return tw, h
	}
	w := sw * th / sh
	if w < 1 {
		w = 1
	}
	return w, th
}
