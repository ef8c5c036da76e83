package epaper

import "image/color"

// paletteSize is the size of the indexed color table expected by the panel
// firmware.
const paletteSize = 256

// Palette is the panel's fixed color set. The panel reserves a second black
// slot at index 4; both slots keep their positions so the index mapping
// stays hardware-faithful. The remaining entries pad the table out to 256
// with black.
var Palette = newPalette()

func newPalette() color.Palette {
	p := color.Palette{
		color.RGBA{0x00, 0x00, 0x00, 0xff}, // 0: black
		color.RGBA{0xff, 0xff, 0xff, 0xff}, // 1: white
		color.RGBA{0xff, 0xff, 0x00, 0xff}, // 2: yellow
		color.RGBA{0xff, 0x00, 0x00, 0xff}, // 3: red
		color.RGBA{0x00, 0x00, 0x00, 0xff}, // 4: black (extra)
		color.RGBA{0x00, 0x00, 0xff, 0xff}, // 5: blue
		color.RGBA{0x00, 0xff, 0x00, 0xff}, // 6: green
	}
	for len(p) < paletteSize {
		p = append(p, color.RGBA{0x00, 0x00, 0x00, 0xff})
	}
	return p
}
