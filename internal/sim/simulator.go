package sim

import (
	"context"
	"log/slog"

	"github.com/san-kum/verletsim/internal/host"
	"github.com/san-kum/verletsim/internal/verlet"
)

// Runner drives a host headlessly for a fixed number of ticks.
type Runner struct {
	host      *host.Host
	metrics   []verlet.Metric
	observers []verlet.Observer
	logger    *slog.Logger
}

func New(h *host.Host) *Runner {
	return &Runner{
		host:      h,
		metrics:   make([]verlet.Metric, 0),
		observers: make([]verlet.Observer, 0),
		logger:    slog.Default(),
	}
}

func (r *Runner) AddMetric(m verlet.Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o verlet.Observer) { r.observers = append(r.observers, o) }

func (r *Runner) WithLogger(l *slog.Logger) *Runner {
	if l != nil {
		r.logger = l
	}
	return r
}

func (r *Runner) Host() *host.Host { return r.host }

func (r *Runner) Run(ctx context.Context, cfg Config, timeline Timeline) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := r.host.Simulation()
	if cfg.Spawn != nil {
		r.host.Spawner().Enabled = *cfg.Spawn
	}

	result := &Result{
		Frames:  make([]Frame, 0, cfg.Ticks/cfg.FrameEvery+2),
		Metrics: make(map[string]float64),
		Series:  make(map[string][]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	dt := cfg.Dt
	elapsed := host.FrameDuration(dt)
	spawnedBefore := r.host.Spawned()
	degenerateBefore := s.Degenerate()

	r.logger.Debug("run started",
		"ticks", cfg.Ticks,
		"dt", dt,
		"max_particles", s.MaxParticles(),
	)

	t := 0.0
	result.Frames = append(result.Frames, snapshot(s, 0, t))

	for i := 0; i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			r.logger.Warn("run canceled", "tick", i, "error", ctx.Err())
			return result, ctx.Err()
		default:
		}

		if timeline != nil {
			for _, a := range timeline.EventsAt(i) {
				if a.Spawn {
					r.host.SpawnNow()
					continue
				}
				r.host.Handle(a.Event)
			}
		}

		r.host.Advance(elapsed, dt)
		t += dt
		result.StepsTaken++
		tick := i + 1

		if cfg.ValidateState {
			if err := s.Validate(); err != nil {
				simErr := SimError{Tick: tick, Time: t, Message: err.Error()}
				result.Errors = append(result.Errors, simErr)
				r.logger.Error("invalid state", "tick", tick, "error", err)
				// keep the failing state for inspection
				result.Frames = append(result.Frames, snapshot(s, tick, t))
				break
			}
		}

		for _, m := range r.metrics {
			m.Observe(s, dt, t)
			result.Series[m.Name()] = append(result.Series[m.Name()], m.Value())
		}
		for _, obs := range r.observers {
			obs.OnStep(s, tick, t)
		}

		if tick%cfg.FrameEvery == 0 || tick == cfg.Ticks {
			result.Frames = append(result.Frames, snapshot(s, tick, t))
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	result.Spawned = r.host.Spawned() - spawnedBefore
	result.Degenerate = s.Degenerate() - degenerateBefore

	r.logger.Info("run finished",
		"steps", result.StepsTaken,
		"particles", s.Len(),
		"spawned", result.Spawned,
		"degenerate", result.Degenerate,
		"frames", len(result.Frames),
	)

	return result, nil
}

func snapshot(s *verlet.Simulation, tick int, t float64) Frame {
	return Frame{
		Tick:      tick,
		Time:      t,
		Center:    s.BoundaryCenter(),
		Radius:    s.BoundaryRadius(),
		Particles: s.Particles(),
	}
}
