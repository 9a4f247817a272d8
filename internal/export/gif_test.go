package export

import (
	"bytes"
	"context"
	"errors"
	"image/gif"
	"testing"
	"time"

	"github.com/vovakirdan/tui-life/internal/life"
)

func gliderGrid(t *testing.T) *life.Grid {
	t.Helper()
	g, err := life.NewEmpty(10)
	if err != nil {
		t.Fatalf("NewEmpty() failed: %v", err)
	}
	if err := g.Stamp(life.Glider, 1, 1); err != nil {
		t.Fatalf("Stamp() failed: %v", err)
	}
	return g
}

func TestRecordFrames(t *testing.T) {
	start := gliderGrid(t)
	before := start.Clone()

	opts := DefaultOptions()
	opts.Frames = 5
	opts.Scale = 3
	anim, err := Record(context.Background(), start, opts)
	if err != nil {
		t.Fatalf("Record() failed: %v", err)
	}

	if len(anim.Image) != 5 || len(anim.Delay) != 5 {
		t.Fatalf("got %d images and %d delays, expected 5", len(anim.Image), len(anim.Delay))
	}
	if anim.Delay[0] != 5 {
		t.Errorf("Delay = %d, expected 5 (50ms)", anim.Delay[0])
	}
	if b := anim.Image[0].Bounds(); b.Dx() != 30 || b.Dy() != 30 {
		t.Errorf("frame bounds = %v, expected 30x30", b)
	}
	if !start.Equal(before) {
		t.Error("Record() must not modify the starting grid")
	}

	// Glider cell (0,2) is grid (1,3): pixels x 9..11, y 3..5 are alive.
	img := anim.Image[0]
	if img.ColorIndexAt(10, 4) != 1 {
		t.Error("expected live pixel inside glider cell")
	}
	if img.ColorIndexAt(0, 0) != 0 {
		t.Error("expected dead pixel at origin")
	}

	// Every frame shows a glider: 5 cells of 9 pixels each.
	for i, frame := range anim.Image {
		lit := 0
		for _, p := range frame.Pix {
			if p == 1 {
				lit++
			}
		}
		if lit != 45 {
			t.Errorf("frame %d has %d lit pixels, expected 45", i, lit)
		}
	}
}

func TestWriteGIFDecodes(t *testing.T) {
	opts := DefaultOptions()
	opts.Frames = 8
	opts.Delay = 100 * time.Millisecond

	var buf bytes.Buffer
	if err := WriteGIF(context.Background(), &buf, gliderGrid(t), opts); err != nil {
		t.Fatalf("WriteGIF() failed: %v", err)
	}

	decoded, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("DecodeAll() failed: %v", err)
	}
	if len(decoded.Image) != 8 {
		t.Errorf("decoded %d frames, expected 8", len(decoded.Image))
	}
	if decoded.Delay[3] != 10 {
		t.Errorf("Delay = %d, expected 10", decoded.Delay[3])
	}
}

func TestRecordInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Scale = 0
	if _, err := Record(context.Background(), gliderGrid(t), opts); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("Record() error = %v, expected ErrInvalidOptions", err)
	}
}

func TestRecordCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Record(ctx, gliderGrid(t), DefaultOptions()); !errors.Is(err, context.Canceled) {
		t.Errorf("Record() error = %v, expected context.Canceled", err)
	}
}
