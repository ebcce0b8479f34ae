package automation

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/verletsim/internal/config"
	"github.com/san-kum/verletsim/internal/host"
)

const scenarioYAML = `
name: shove
description: drop two balls and drag the bowl right
preset: drop
ticks: 120
auto_spawn: false
events:
  - {tick: 0, kind: spawn}
  - {tick: 10, kind: move, x: 50, y: 0}
  - {tick: 11, kind: down}
  - {tick: 20, kind: move, x: 80, y: 0}
  - {tick: 30, kind: up}
  - {tick: 40, kind: move, x: -200, y: 0}
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadScenario(t *testing.T) {
	g := NewWithT(t)
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(sc.Name).To(Equal("shove"))
	g.Expect(sc.Events).To(HaveLen(6))
	g.Expect(sc.Events[1]).To(Equal(ScenarioEvent{Tick: 10, Kind: "move", X: 50}))

	tl, err := sc.Timeline()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(tl.EventsAt(0)[0].Spawn).To(BeTrue())
	g.Expect(tl.EventsAt(11)[0].Event.Kind).To(Equal(host.PointerDown))
	g.Expect(tl.EventsAt(5)).To(BeEmpty())
}

func TestTimelineRejectsUnknownKind(t *testing.T) {
	sc := &Scenario{Events: []ScenarioEvent{{Tick: 1, Kind: "jump"}}}
	if _, err := sc.Timeline(); err == nil {
		t.Error("expected error for unknown kind")
	}
	sc = &Scenario{Events: []ScenarioEvent{{Tick: -1, Kind: "up"}}}
	if _, err := sc.Timeline(); err == nil {
		t.Error("expected error for negative tick")
	}
}

func TestScenarioConfig(t *testing.T) {
	sc := &Scenario{Preset: "missing"}
	if _, err := sc.Config(); err == nil {
		t.Error("expected error for unknown preset")
	}

	sc = &Scenario{Ticks: 42}
	cfg, err := sc.Config()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "default" || cfg.Ticks != 42 {
		t.Errorf("unexpected config %s/%d", cfg.Name, cfg.Ticks)
	}
}

func TestRunScenario(t *testing.T) {
	g := NewWithT(t)
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	g.Expect(err).NotTo(HaveOccurred())

	res, err := RunScenario(context.Background(), sc, quietLogger())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(res.StepsTaken).To(Equal(120))
	g.Expect(res.Spawned).To(Equal(1))

	// the move at tick 40 came after release, so the center stayed at (80, 0)
	last := res.Frames[len(res.Frames)-1]
	g.Expect(last.Center.X).To(Equal(80.0))
	g.Expect(last.Particles).To(HaveLen(1))
	g.Expect(res.Metrics).To(HaveKey("kinetic_energy"))
}

func TestRunSweep(t *testing.T) {
	g := NewWithT(t)
	base := config.GetPreset("drop")
	base.Ticks = 60

	sw := &ParameterSweep{Base: base, Param: "response", Min: 0.5, Max: 1.0, NumSteps: 3, Parallel: 2}
	g.Expect(sw.Values()).To(Equal([]float64{0.5, 0.75, 1.0}))

	results, err := RunSweep(context.Background(), sw)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(results).To(HaveLen(3))
	for _, r := range results {
		g.Expect(r.Result.StepsTaken).To(Equal(60))
		g.Expect(r.Metrics).To(HaveKey("max_overshoot"))
	}
	g.Expect(base.Collision.Response).To(Equal(config.GetPreset("drop").Collision.Response))
}

func TestSweepValuesWithoutSteps(t *testing.T) {
	g := NewWithT(t)
	for _, n := range []int{0, -3} {
		sw := &ParameterSweep{Param: "padding", Min: 1, Max: 2, NumSteps: n}
		g.Expect(sw.Values()).To(BeEmpty())
	}
	g.Expect((&ParameterSweep{Min: 4, Max: 9, NumSteps: 1}).Values()).To(Equal([]float64{4}))
}

func TestRunSweepRejectsBadInput(t *testing.T) {
	base := config.GetPreset("default")
	if _, err := RunSweep(context.Background(), &ParameterSweep{Base: base, Param: "mass", NumSteps: 2}); err == nil {
		t.Error("expected error for unknown parameter")
	}
	if _, err := RunSweep(context.Background(), &ParameterSweep{Base: base, Param: "boundary_radius", Min: 0, Max: 0, NumSteps: 1}); err == nil {
		t.Error("expected error for invalid value")
	}
	if _, err := RunSweep(context.Background(), &ParameterSweep{Base: base, Param: "padding", NumSteps: -1}); err == nil {
		t.Error("expected error for negative steps")
	}
}
