package storage

import (
	"github.com/san-kum/verletsim/internal/sim"
	"github.com/san-kum/verletsim/internal/vec"
	"github.com/san-kum/verletsim/internal/verlet"
)

// FrameRow is one particle of one recorded frame. A frame without particles
// is stored as a single row with Index -1.
type FrameRow struct {
	Tick           int     `csv:"tick"`
	Time           float64 `csv:"time"`
	CenterX        float64 `csv:"cx"`
	CenterY        float64 `csv:"cy"`
	BoundaryRadius float64 `csv:"boundary_radius"`
	Index          int     `csv:"index"`
	X              float64 `csv:"x"`
	Y              float64 `csv:"y"`
	Radius         float64 `csv:"radius"`
	Tag            uint8   `csv:"tag"`
}

func FrameRows(frames []sim.Frame) []FrameRow {
	rows := make([]FrameRow, 0, len(frames))
	for _, f := range frames {
		base := FrameRow{
			Tick:           f.Tick,
			Time:           f.Time,
			CenterX:        f.Center.X,
			CenterY:        f.Center.Y,
			BoundaryRadius: f.Radius,
			Index:          -1,
		}
		if len(f.Particles) == 0 {
			rows = append(rows, base)
			continue
		}
		for i, p := range f.Particles {
			row := base
			row.Index = i
			row.X, row.Y = p.Pos.X, p.Pos.Y
			row.Radius = p.Radius
			row.Tag = uint8(p.Tag)
			rows = append(rows, row)
		}
	}
	return rows
}

// Frames groups consecutive rows sharing a tick back into frames.
func Frames(rows []FrameRow) []sim.Frame {
	var frames []sim.Frame
	for _, r := range rows {
		if len(frames) == 0 || frames[len(frames)-1].Tick != r.Tick {
			frames = append(frames, sim.Frame{
				Tick:      r.Tick,
				Time:      r.Time,
				Center:    vec.New(r.CenterX, r.CenterY),
				Radius:    r.BoundaryRadius,
				Particles: []verlet.ParticleView{},
			})
		}
		if r.Index < 0 {
			continue
		}
		last := &frames[len(frames)-1]
		last.Particles = append(last.Particles, verlet.ParticleView{
			Pos:    vec.New(r.X, r.Y),
			Radius: r.Radius,
			Tag:    verlet.Tag(r.Tag),
		})
	}
	return frames
}
