package viz

import (
	"math"

	"github.com/san-kum/verletsim/internal/vec"
)

const (
	canvasPadX = 2
	canvasPadY = 1
)

// viewport maps world coordinates (y up) to canvas dots (y down). The world
// origin sits at the canvas center.
type viewport struct {
	cw, ch int
	scale  float64
}

// newViewport fits a world square of half-size span into a canvas of w x h
// cells.
func newViewport(w, h int, span float64) viewport {
	cw, ch := w*2, h*4
	return viewport{cw: cw, ch: ch, scale: float64(min(cw, ch)) / 2 / span}
}

func (v viewport) toDot(p vec.Vec2) (int, int) {
	x := v.cw/2 + int(math.Round(p.X*v.scale))
	y := v.ch/2 - int(math.Round(p.Y*v.scale))
	return x, y
}

func (v viewport) length(l float64) int {
	return max(1, int(math.Round(l*v.scale)))
}

// cellToWorld converts a terminal cell under the canvas to the world point
// at the middle of that cell.
func (v viewport) cellToWorld(col, row int) vec.Vec2 {
	dx := (col-canvasPadX)*2 + 1
	dy := (row-canvasPadY)*4 + 2
	return vec.New(
		float64(dx-v.cw/2)/v.scale,
		float64(v.ch/2-dy)/v.scale,
	)
}
