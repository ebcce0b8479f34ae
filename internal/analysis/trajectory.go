package analysis

import (
	"math"
	"strings"

	"github.com/san-kum/verletsim/internal/sim"
	"github.com/san-kum/verletsim/internal/vec"
)

// Trajectory returns the positions of particle index, one per frame that
// contains it.
func Trajectory(frames []sim.Frame, index int) []vec.Vec2 {
	out := make([]vec.Vec2, 0, len(frames))
	for _, f := range frames {
		if index < 0 || index >= len(f.Particles) {
			continue
		}
		out = append(out, f.Particles[index].Pos)
	}
	return out
}

// TrajectoryToASCII plots points inside the square that bounds the circle
// at center with the given radius.
func TrajectoryToASCII(points []vec.Vec2, center vec.Vec2, radius float64, width, height int) string {
	if len(points) == 0 || width < 2 || height < 2 || radius <= 0 {
		return ""
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	plot := func(p vec.Vec2, r rune) {
		col := int((p.X - center.X + radius) / (2 * radius) * float64(width-1))
		row := height - 1 - int((p.Y-center.Y+radius)/(2*radius)*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = r
		}
	}

	// boundary outline
	steps := 4 * (width + height)
	for i := 0; i < steps; i++ {
		plot(center.Add(unitAt(i, steps).Scale(radius)), '·')
	}
	for _, p := range points {
		plot(p, '•')
	}
	plot(points[len(points)-1], '●')

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteRune('\n')
	}
	return sb.String()
}

func unitAt(i, n int) vec.Vec2 {
	a := 2 * math.Pi * float64(i) / float64(n)
	return vec.New(math.Cos(a), math.Sin(a))
}
