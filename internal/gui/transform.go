package gui

import "github.com/san-kum/verletsim/internal/vec"

// Transform maps world coordinates (y up, origin at the middle of the view)
// to window pixels (y down).
type Transform struct {
	OriginX, OriginY float64
	Scale            float64
}

func NewTransform(w, h int) Transform {
	return Transform{OriginX: float64(w) / 2, OriginY: float64(h) / 2, Scale: 1}
}

func (t Transform) ToScreen(p vec.Vec2) (float64, float64) {
	return t.OriginX + p.X*t.Scale, t.OriginY - p.Y*t.Scale
}

func (t Transform) ToWorld(x, y float64) vec.Vec2 {
	return vec.New((x-t.OriginX)/t.Scale, (t.OriginY-y)/t.Scale)
}
