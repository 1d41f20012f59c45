package render

import "image/color"

// fillFrameRGBA converts a flat text frame into RGBA pixels in buf, one pixel
// per glyph. The alive glyph maps to on and every other glyph to off.
func fillFrameRGBA(buf []byte, frame string, alive rune, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	i := 0
	for _, r := range frame {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		i++
		if r == alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
