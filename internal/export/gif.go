// Package export renders simulation runs to animated GIF files.
package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"time"

	"github.com/vovakirdan/tui-life/internal/life"
)

// ErrInvalidOptions is returned when frame count or scale is not positive.
var ErrInvalidOptions = errors.New("export: invalid options")

// Options controls GIF output.
type Options struct {
	Frames int           // Generations recorded, including the starting grid
	Scale  int           // Pixels per cell edge
	Delay  time.Duration // Delay between frames, rounded down to 10ms
	Alive  color.Color
	Dead   color.Color
}

// DefaultOptions returns 100 frames at 4px per cell and 50ms per frame.
func DefaultOptions() Options {
	return Options{
		Frames: 100,
		Scale:  4,
		Delay:  50 * time.Millisecond,
		Alive:  color.RGBA{0x00, 0xff, 0x00, 0xff},
		Dead:   color.Black,
	}
}

// Record steps a copy of start through opts.Frames generations and returns
// one paletted image per generation. start is not modified.
func Record(ctx context.Context, start *life.Grid, opts Options) (*gif.GIF, error) {
	if opts.Frames <= 0 || opts.Scale <= 0 {
		return nil, fmt.Errorf("%w: frames=%d scale=%d", ErrInvalidOptions, opts.Frames, opts.Scale)
	}

	grid := start.Clone()
	stepper := life.NewStepper(grid.Size())
	pal := color.Palette{opts.Dead, opts.Alive}
	delay := int(opts.Delay / (10 * time.Millisecond))

	anim := &gif.GIF{
		Image:     make([]*image.Paletted, 0, opts.Frames),
		Delay:     make([]int, 0, opts.Frames),
		LoopCount: 0,
	}
	for i := 0; i < opts.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("export: recording stopped at frame %d: %w", i, err)
		}
		if i > 0 {
			stepper.Step(grid)
		}
		anim.Image = append(anim.Image, frame(grid, opts.Scale, pal))
		anim.Delay = append(anim.Delay, delay)
	}
	return anim, nil
}

// WriteGIF records a run and encodes it to w.
func WriteGIF(ctx context.Context, w io.Writer, start *life.Grid, opts Options) error {
	anim, err := Record(ctx, start, opts)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("export: encode gif: %w", err)
	}
	return nil
}

// frame draws g as a paletted image; index 1 is alive, 0 is dead.
func frame(g *life.Grid, scale int, pal color.Palette) *image.Paletted {
	n := g.Size()
	img := image.NewPaletted(image.Rect(0, 0, n*scale, n*scale), pal)
	cells := g.Cells()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if cells[r*n+c] != life.Alive {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				row := (r*scale + dy) * img.Stride
				for dx := 0; dx < scale; dx++ {
					img.Pix[row+c*scale+dx] = 1
				}
			}
		}
	}
	return img
}
