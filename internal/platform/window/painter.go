//go:build ebiten

package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-life/internal/life"
)

// gridPainter uploads an N x N grid into one image and draws it scaled.
type gridPainter struct {
	n   int
	img *ebiten.Image
	buf []byte
}

func newGridPainter(n int) *gridPainter {
	return &gridPainter{n: n, img: ebiten.NewImage(n, n), buf: make([]byte, 4*n*n)}
}

// blit draws cells onto dst. Grids of a different size are ignored.
func (gp *gridPainter) blit(dst *ebiten.Image, cells []life.Cell, on, off color.Color, scale int) {
	if len(cells) != gp.n*gp.n {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
