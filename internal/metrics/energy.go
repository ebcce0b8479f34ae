package metrics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/verletsim/internal/verlet"
)

// KineticEnergy averages the total kinetic energy over all samples. Mass is
// taken proportional to radius, matching the collision mass ratio.
type KineticEnergy struct {
	name    string
	samples []float64
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (k *KineticEnergy) Name() string { return k.name }

func (k *KineticEnergy) Observe(s *verlet.Simulation, dt, t float64) {
	k.samples = append(k.samples, TotalKinetic(s, dt))
}

func (k *KineticEnergy) Value() float64 {
	if len(k.samples) == 0 {
		return 0
	}
	return stat.Mean(k.samples, nil)
}

// Last returns the most recent sample.
func (k *KineticEnergy) Last() float64 {
	if len(k.samples) == 0 {
		return 0
	}
	return k.samples[len(k.samples)-1]
}

func (k *KineticEnergy) Reset() { k.samples = k.samples[:0] }

// TotalKinetic sums ½·r·|v|² over every particle.
func TotalKinetic(s *verlet.Simulation, dt float64) float64 {
	total := 0.0
	for i := 0; i < s.Len(); i++ {
		p := s.Particle(i)
		total += 0.5 * p.Radius * p.Velocity(dt).LenSq()
	}
	return total
}

// MeanSpeed reports the mean particle speed of the latest sample.
type MeanSpeed struct {
	name   string
	speeds []float64
	value  float64
}

func NewMeanSpeed() *MeanSpeed {
	return &MeanSpeed{name: "mean_speed"}
}

func (m *MeanSpeed) Name() string { return m.name }

func (m *MeanSpeed) Observe(s *verlet.Simulation, dt, t float64) {
	m.speeds = m.speeds[:0]
	for i := 0; i < s.Len(); i++ {
		m.speeds = append(m.speeds, s.Particle(i).Velocity(dt).Len())
	}
	if len(m.speeds) == 0 {
		m.value = 0
		return
	}
	m.value = stat.Mean(m.speeds, nil)
}

func (m *MeanSpeed) Value() float64 { return m.value }

func (m *MeanSpeed) Reset() {
	m.speeds = m.speeds[:0]
	m.value = 0
}
