// Package window shows a simulation in a desktop window.
// The window itself needs the ebiten build tag; without it Run reports
// ErrUnavailable and only the pixel conversion is compiled.
package window

import (
	"errors"
	"image/color"

	"github.com/vovakirdan/tui-life/internal/life"
)

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("window: built without the ebiten tag; rebuild with -tags ebiten")

// Options controls the window frontend.
type Options struct {
	Scale int // Pixels per cell edge
	Alive color.Color
	Dead  color.Color
}

// fillBinaryRGBA converts cells into RGBA pixels in buf, four bytes per cell.
func fillBinaryRGBA(buf []byte, cells []life.Cell, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c == life.Alive {
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
