package render

import (
	"image/color"

	"golife/internal/sims/life"
)

// FrameCells converts a rendered text frame back into binary cells (1 for the
// alive glyph), row-major. Newlines separate rows and are not cells.
func FrameCells(frame string, glyphs life.Glyphs, dst []uint8) []uint8 {
	dst = dst[:0]
	for _, r := range frame {
		switch r {
		case '\n':
			continue
		case glyphs.Alive:
			dst = append(dst, 1)
		default:
			dst = append(dst, 0)
		}
	}
	return dst
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
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
