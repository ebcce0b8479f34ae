package host_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/verletsim/internal/host"
	"github.com/san-kum/verletsim/internal/vec"
	"github.com/san-kum/verletsim/internal/verlet"
)

var _ = Describe("Host", func() {
	var (
		sim *verlet.Simulation
		h   *host.Host
	)

	BeforeEach(func() {
		params := verlet.DefaultParams()
		params.MaxParticles = 3
		sim = verlet.MustNew(params)
		h = host.New(sim, host.NewSpawner(100*time.Millisecond, host.DefaultSpawnOffset))
	})

	Describe("pointer events", func() {
		It("ignores motion while the button is up", func() {
			h.Handle(host.Moved(vec.New(50, 60)))
			Expect(sim.BoundaryCenter()).To(Equal(vec.Zero))
		})

		It("drags the boundary while the button is held", func() {
			h.HandleAll([]host.Event{
				host.Down(),
				host.Moved(vec.New(50, 60)),
				host.Moved(vec.New(-5, 8)),
			})
			Expect(h.Pressed()).To(BeTrue())
			Expect(sim.BoundaryCenter()).To(Equal(vec.New(-5, 8)))
		})

		It("stops following after release", func() {
			h.HandleAll([]host.Event{host.Down(), host.Moved(vec.New(1, 1)), host.Up(), host.Moved(vec.New(9, 9))})
			Expect(h.Pressed()).To(BeFalse())
			Expect(sim.BoundaryCenter()).To(Equal(vec.New(1, 1)))
		})

		It("nudges without leaving the button pressed", func() {
			h.Nudge(vec.New(10, 0))
			h.Nudge(vec.New(0, -4))
			Expect(sim.BoundaryCenter()).To(Equal(vec.New(10, -4)))
			Expect(h.Pressed()).To(BeFalse())
		})
	})

	Describe("spawning", func() {
		It("spawns once the interval has elapsed", func() {
			for i := 0; i < 4; i++ {
				h.Advance(20*time.Millisecond, 1.0/60)
			}
			Expect(sim.Len()).To(BeZero())

			h.Advance(20*time.Millisecond, 1.0/60)
			Expect(sim.Len()).To(Equal(1))
		})

		It("places particles at the offset from the current center", func() {
			h.HandleAll([]host.Event{host.Down(), host.Moved(vec.New(10, 20)), host.Up()})
			Expect(h.SpawnNow()).To(BeTrue())
			Expect(sim.Particles()[0].Pos).To(Equal(vec.New(110, 220)))
		})

		It("cycles the visual tag", func() {
			h.SpawnNow()
			h.SpawnNow()
			views := sim.Particles()
			Expect(views[0].Tag).NotTo(Equal(views[1].Tag))
		})

		It("never exceeds the particle cap", func() {
			for i := 0; i < 100; i++ {
				h.Advance(100*time.Millisecond, 1.0/60)
			}
			Expect(sim.Len()).To(Equal(3))
			Expect(h.Spawned()).To(Equal(3))
			Expect(h.SpawnNow()).To(BeFalse())
		})

		It("does nothing when disabled", func() {
			h.Spawner().Enabled = false
			for i := 0; i < 20; i++ {
				h.Advance(100*time.Millisecond, 1.0/60)
			}
			Expect(sim.Len()).To(BeZero())
		})

		It("always steps the simulation", func() {
			h.Advance(0, 1.0/60)
			h.Advance(0, 1.0/60)
			Expect(sim.Tick()).To(Equal(2))
		})
	})

	Describe("EventKind", func() {
		DescribeTable("String",
			func(k host.EventKind, want string) {
				Expect(k.String()).To(Equal(want))
			},
			Entry("moved", host.PointerMoved, "moved"),
			Entry("down", host.PointerDown, "down"),
			Entry("up", host.PointerUp, "up"),
		)
	})

	It("converts step sizes to durations", func() {
		Expect(host.FrameDuration(0.5)).To(Equal(500 * time.Millisecond))
	})
})
