package sim

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/verletsim/internal/host"
	"github.com/san-kum/verletsim/internal/verlet"
)

// Job is one member of an ensemble. Build must return a host that no other
// job shares.
type Job struct {
	Name     string
	Config   Config
	Build    func() (*host.Host, error)
	Metrics  func() []verlet.Metric
	Timeline Timeline
}

// Ensemble runs independent simulations concurrently. Each simulation is
// still stepped by a single goroutine.
type Ensemble struct {
	jobs  []Job
	limit int
}

func NewEnsemble(limit int, jobs ...Job) *Ensemble {
	return &Ensemble{jobs: jobs, limit: limit}
}

// Run returns results in job order.
func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, len(e.jobs))

	g, ctx := errgroup.WithContext(ctx)
	if e.limit > 0 {
		g.SetLimit(e.limit)
	}

	for i, job := range e.jobs {
		i, job := i, job
		g.Go(func() error {
			h, err := job.Build()
			if err != nil {
				return fmt.Errorf("%s: %w", job.Name, err)
			}
			r := New(h)
			if job.Metrics != nil {
				for _, m := range job.Metrics() {
					r.AddMetric(m)
				}
			}
			res, err := r.Run(ctx, job.Config, job.Timeline)
			if err != nil {
				return fmt.Errorf("%s: %w", job.Name, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
