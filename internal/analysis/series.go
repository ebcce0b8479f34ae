package analysis

import (
	"math"

	"github.com/san-kum/verletsim/internal/sim"
)

// RadialSeries returns the distance of particle index from the boundary
// center for every frame that contains it.
func RadialSeries(frames []sim.Frame, index int) []float64 {
	out := make([]float64, 0, len(frames))
	for _, f := range frames {
		if index < 0 || index >= len(f.Particles) {
			continue
		}
		out = append(out, f.Center.Dist(f.Particles[index].Pos))
	}
	return out
}

func HeightSeries(frames []sim.Frame, index int) []float64 {
	out := make([]float64, 0, len(frames))
	for _, f := range frames {
		if index < 0 || index >= len(f.Particles) {
			continue
		}
		out = append(out, f.Particles[index].Pos.Y)
	}
	return out
}

// Times returns the frame times matching RadialSeries and HeightSeries.
func Times(frames []sim.Frame, index int) []float64 {
	out := make([]float64, 0, len(frames))
	for _, f := range frames {
		if index < 0 || index >= len(f.Particles) {
			continue
		}
		out = append(out, f.Time)
	}
	return out
}

// SettleIndex returns the first index from which every sample stays within
// eps of target, or -1 if the series never settles.
func SettleIndex(series []float64, target, eps float64) int {
	idx := -1
	for i := len(series) - 1; i >= 0; i-- {
		if math.Abs(series[i]-target) > eps {
			break
		}
		idx = i
	}
	return idx
}
