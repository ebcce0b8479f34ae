package metrics

import "github.com/san-kum/verletsim/internal/verlet"

// Default returns the metric set recorded for every run.
func Default() []verlet.Metric {
	return []verlet.Metric{
		NewKineticEnergy(),
		NewMeanSpeed(),
		NewContainment(),
		NewPenetration(),
		NewPopulation(),
	}
}
