package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/verletsim/internal/sim"
	"github.com/san-kum/verletsim/internal/vec"
)

// Palette colours particles by tag, in the same order as the window view.
var Palette = [8]string{
	"#ef476f", "#ffd166", "#06d6a0", "#118ab2",
	"#9b5de5", "#f15bb5", "#fee440", "#00bbf9",
}

// Options controls the rendered image. Span is the half-size of the world
// square shown around the origin; zero fits the frame's boundary.
type Options struct {
	Size  int
	Span  float64
	Trail []vec.Vec2
}

type svgView struct {
	size  float64
	scale float64
}

func (v svgView) point(p vec.Vec2) (float64, float64) {
	return v.size/2 + p.X*v.scale, v.size/2 - p.Y*v.scale
}

// FrameToSVG writes one recorded frame as an SVG image: the boundary, every
// particle coloured by tag and an optional trail.
func FrameToSVG(w io.Writer, f sim.Frame, opts Options) error {
	if opts.Size <= 0 {
		opts.Size = 640
	}
	span := opts.Span
	if span <= 0 {
		span = (f.Radius + f.Center.Len()) * 1.1
	}
	if span <= 0 {
		return fmt.Errorf("frame %d has no extent", f.Tick)
	}
	v := svgView{size: float64(opts.Size), scale: float64(opts.Size) / 2 / span}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, opts.Size, opts.Size, opts.Size, opts.Size)

	cx, cy := v.point(f.Center)
	fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="#1c1c1c" stroke="#b4b4b4" stroke-width="1.5"/>
`, cx, cy, f.Radius*v.scale)

	if len(opts.Trail) > 1 {
		sb.WriteString(`<path fill="none" stroke="#8c8c8c" stroke-width="1" d="M`)
		for i, p := range opts.Trail {
			x, y := v.point(p)
			if i > 0 {
				sb.WriteString(" L")
			}
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		}
		sb.WriteString("\"/>\n")
	}

	for _, p := range f.Particles {
		x, y := v.point(p.Pos)
		fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, x, y, p.Radius*v.scale, Palette[int(p.Tag)%len(Palette)])
	}

	fmt.Fprintf(&sb, `<text x="8" y="20" fill="#8c8c8c" font-family="monospace" font-size="14">tick %d  t=%.2fs  n=%d</text>
</svg>
`, f.Tick, f.Time, len(f.Particles))

	_, err := io.WriteString(w, sb.String())
	return err
}
