package automation

import (
	"context"
	"fmt"
	"sort"

	"github.com/san-kum/verletsim/internal/config"
	"github.com/san-kum/verletsim/internal/host"
	"github.com/san-kum/verletsim/internal/metrics"
	"github.com/san-kum/verletsim/internal/sim"
)

var sweepParams = map[string]func(c *config.Config, v float64){
	"response":        func(c *config.Config, v float64) { c.Collision.Response = v },
	"padding":         func(c *config.Config, v float64) { c.Collision.Padding = v },
	"gravity_y":       func(c *config.Config, v float64) { c.Gravity.Y = v },
	"boundary_radius": func(c *config.Config, v float64) { c.Boundary.Radius = v },
	"particle_radius": func(c *config.Config, v float64) { c.Particles.Radius = v },
}

// SweepParams lists the parameter names RunSweep accepts.
func SweepParams() []string {
	names := make([]string, 0, len(sweepParams))
	for name := range sweepParams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParameterSweep runs one preset across evenly spaced values of a parameter.
type ParameterSweep struct {
	Base     *config.Config
	Param    string
	Min, Max float64
	NumSteps int
	// Parallel bounds the number of concurrent runs, 0 means unbounded.
	Parallel int
}

type SweepResult struct {
	Value   float64
	Result  *sim.Result
	Metrics map[string]float64
}

func (sw *ParameterSweep) Values() []float64 {
	if sw.NumSteps < 1 {
		return nil
	}
	if sw.NumSteps == 1 {
		return []float64{sw.Min}
	}
	step := (sw.Max - sw.Min) / float64(sw.NumSteps-1)
	vals := make([]float64, sw.NumSteps)
	for i := range vals {
		vals[i] = sw.Min + float64(i)*step
	}
	return vals
}

func RunSweep(ctx context.Context, sw *ParameterSweep) ([]SweepResult, error) {
	set, ok := sweepParams[sw.Param]
	if !ok {
		return nil, fmt.Errorf("unknown sweep parameter: %s", sw.Param)
	}
	if sw.NumSteps < 1 {
		return nil, fmt.Errorf("sweep needs at least one step, got %d", sw.NumSteps)
	}

	values := sw.Values()
	jobs := make([]sim.Job, len(values))
	for i, v := range values {
		cfg := sw.Base.Clone()
		set(cfg, v)
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%s=%g: %w", sw.Param, v, err)
		}
		jobs[i] = sim.Job{
			Name:    fmt.Sprintf("%s=%g", sw.Param, v),
			Config:  cfg.SimConfig(),
			Build:   func() (*host.Host, error) { return cfg.NewHost() },
			Metrics: metrics.Default,
		}
	}

	results, err := sim.NewEnsemble(sw.Parallel, jobs...).Run(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]SweepResult, len(values))
	for i, res := range results {
		out[i] = SweepResult{Value: values[i], Result: res, Metrics: res.Metrics}
	}
	return out, nil
}
