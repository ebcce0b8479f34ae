package storage

import (
	"encoding/json"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/san-kum/verletsim/internal/sim"
)

type ExportData struct {
	Run    RunMetadata   `json:"run"`
	Frames []ExportFrame `json:"frames"`
}

type ExportFrame struct {
	Tick      int              `json:"tick"`
	Time      float64          `json:"time"`
	Center    [2]float64       `json:"center"`
	Radius    float64          `json:"radius"`
	Particles []ExportParticle `json:"particles"`
}

type ExportParticle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Tag    uint8   `json:"tag"`
}

func ExportJSON(w io.Writer, meta RunMetadata, frames []sim.Frame) error {
	data := ExportData{
		Run:    meta,
		Frames: make([]ExportFrame, len(frames)),
	}
	for i, f := range frames {
		ef := ExportFrame{
			Tick:      f.Tick,
			Time:      f.Time,
			Center:    [2]float64{f.Center.X, f.Center.Y},
			Radius:    f.Radius,
			Particles: make([]ExportParticle, len(f.Particles)),
		}
		for j, p := range f.Particles {
			ef.Particles[j] = ExportParticle{X: p.Pos.X, Y: p.Pos.Y, Radius: p.Radius, Tag: uint8(p.Tag)}
		}
		data.Frames[i] = ef
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes frames in the same layout as frames.csv.
func ExportCSV(w io.Writer, frames []sim.Frame) error {
	return gocsv.Marshal(FrameRows(frames), w)
}
