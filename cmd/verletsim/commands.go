package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/verletsim/internal/analysis"
	"github.com/san-kum/verletsim/internal/automation"
	"github.com/san-kum/verletsim/internal/config"
	"github.com/san-kum/verletsim/internal/export"
	"github.com/san-kum/verletsim/internal/gui"
	"github.com/san-kum/verletsim/internal/metrics"
	"github.com/san-kum/verletsim/internal/sim"
	"github.com/san-kum/verletsim/internal/storage"
	"github.com/san-kum/verletsim/internal/vec"
	"github.com/san-kum/verletsim/internal/verlet"
	"github.com/san-kum/verletsim/internal/viz"
)

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func openStore() (*storage.Store, error) {
	st := storage.New(dataDir).WithLogger(logger)
	return st, st.Init()
}

func metadataFor(cfg *config.Config) storage.RunMetadata {
	return storage.RunMetadata{
		Name:           cfg.Name,
		Dt:             cfg.Dt,
		Ticks:          cfg.Ticks,
		FrameEvery:     cfg.FrameEvery,
		GravityX:       cfg.Gravity.X,
		GravityY:       cfg.Gravity.Y,
		BoundaryRadius: cfg.Boundary.Radius,
		MaxParticles:   cfg.Particles.Max,
		ParticleRadius: cfg.Particles.Radius,
	}
}

func printResult(res *sim.Result, elapsed time.Duration) {
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("steps: %d\n", res.StepsTaken)
	fmt.Printf("spawned: %d\n", res.Spawned)
	fmt.Printf("frames: %d\n", len(res.Frames))
	if res.Degenerate > 0 {
		fmt.Printf("degenerate corrections: %d\n", res.Degenerate)
	}
	for _, e := range res.Errors {
		fmt.Printf("error: %v\n", e)
	}

	names := make([]string, 0, len(res.Metrics))
	for name := range res.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("\nmetrics:")
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, res.Metrics[name])
	}
}

func saveResult(cfg *config.Config, res *sim.Result) error {
	if noSave {
		return nil
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	runID, err := st.Save(metadataFor(cfg), res)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	h, err := cfg.NewHost()
	if err != nil {
		return err
	}
	runner := sim.New(h).WithLogger(logger)
	for _, m := range metrics.Default() {
		runner.AddMetric(m)
	}

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Printf("running %s for %d ticks...\n", cfg.Name, cfg.Ticks)
	start := time.Now()
	res, err := runner.Run(ctx, cfg.SimConfig(), nil)
	if err != nil {
		return err
	}
	printResult(res, time.Since(start))
	return saveResult(cfg, res)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir).WithLogger(logger)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tTICKS\tDT\tPARTICLES\tFRAMES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4fs\t%d/%d\t%d\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Dt,
			run.Spawned,
			run.MaxParticles,
			run.Frames,
		)
	}
	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, []sim.Frame, error) {
	st := storage.New(dataDir).WithLogger(logger)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	frames, err := st.LoadFrames(runID)
	if err != nil {
		return nil, nil, err
	}
	return meta, frames, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}

	radial := analysis.RadialSeries(frames, particle)
	if len(radial) < 2 {
		return fmt.Errorf("particle %d has no data to plot", particle)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("particle: %d\n", particle)
	fmt.Printf("samples: %d\n\n", len(radial))

	fmt.Println(asciigraph.Plot(radial,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("distance from boundary center"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(analysis.HeightSeries(frames, particle),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("height"),
	))
	fmt.Println()

	last := frames[len(frames)-1]
	fmt.Println(analysis.TrajectoryToASCII(analysis.Trajectory(frames, particle), last.Center, last.Radius, 61, 25))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// output returns stdout or the file named by --out.
func output() (io.WriteCloser, error) {
	if outPath == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(outPath)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func exportCSV(cmd *cobra.Command, args []string) error {
	_, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}
	w, err := output()
	if err != nil {
		return err
	}
	defer w.Close()
	return storage.ExportCSV(w, frames)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}
	w, err := output()
	if err != nil {
		return err
	}
	defer w.Close()
	return storage.ExportJSON(w, *meta, frames)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	_, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("run has no frames")
	}

	i := frameIndex
	if i < 0 {
		i += len(frames)
	}
	if i < 0 || i >= len(frames) {
		return fmt.Errorf("frame %d out of range (%d frames)", frameIndex, len(frames))
	}

	opts := export.Options{Size: svgSize}
	if trailIndex >= 0 {
		opts.Trail = analysis.Trajectory(frames[:i+1], trailIndex)
	}

	w, err := output()
	if err != nil {
		return err
	}
	defer w.Close()
	return export.FrameToSVG(w, frames[i], opts)
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}

	radial := analysis.RadialSeries(frames, particle)
	if len(radial) < 4 {
		return fmt.Errorf("particle %d has too few samples", particle)
	}
	times := analysis.Times(frames, particle)

	rest := target
	if !cmd.Flags().Changed("target") {
		rest = meta.BoundaryRadius - meta.ParticleRadius
	}

	fmt.Printf("analysis: %s\n", meta.ID)
	fmt.Printf("particle: %d, samples: %d\n\n", particle, len(radial))

	if i := analysis.SettleIndex(radial, rest, eps); i >= 0 {
		fmt.Printf("settled at %.3f ± %.2f from t=%.3fs\n", rest, eps, times[i])
	} else {
		fmt.Printf("did not settle at %.3f ± %.2f\n", rest, eps)
	}

	sampleRate := 1 / (meta.Dt * float64(max(1, meta.FrameEvery)))
	ps := analysis.PowerSpectrum(radial)
	fmt.Println(asciigraph.Plot(ps[1:],
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (radial distance)"),
	))
	fmt.Println()

	freq := analysis.DominantFrequency(radial, sampleRate)
	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	if preset == "" && configFile == "" {
		name, err := viz.PickPreset()
		if err != nil {
			return err
		}
		if name == "" {
			return nil
		}
		preset = name
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(cfg)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return gui.Run(cfg)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMAX\tRADIUS\tGRAVITY\tINTERVAL\tTICKS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%g\t(%g, %g)\t%v\t%d\n",
			name, p.Particles.Max, p.Particles.Radius, p.Gravity.X, p.Gravity.Y, p.SpawnInterval(), p.Ticks)
	}
	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	cfg, err := sc.Config()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Printf("running scenario %s (%s)...\n", sc.Name, cfg.Name)
	if sc.Description != "" {
		fmt.Println(sc.Description)
	}
	start := time.Now()
	res, err := automation.RunScenario(ctx, sc, logger)
	if err != nil {
		return err
	}
	printResult(res, time.Since(start))

	if sc.Name != "" {
		cfg.Name = sc.Name
	}
	return saveResult(cfg, res)
}

func compareRuns(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	sw := &automation.ParameterSweep{
		Base:     cfg,
		Param:    sweepParam,
		Min:      sweepMin,
		Max:      sweepMax,
		NumSteps: sweepSteps,
		Parallel: parallel,
	}

	fmt.Printf("sweeping %s over %d values (%s, %d ticks)\n\n", sweepParam, sweepSteps, cfg.Name, cfg.Ticks)
	start := time.Now()
	results, err := automation.RunSweep(ctx, sw)
	if err != nil {
		return fmt.Errorf("%w (parameters: %v)", err, automation.SweepParams())
	}

	names := make([]string, 0)
	for _, m := range metrics.Default() {
		names = append(names, m.Name())
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, sweepParam)
	for _, n := range names {
		fmt.Fprintf(w, "\t%s", n)
	}
	fmt.Fprintln(w)
	for _, r := range results {
		fmt.Fprintf(w, "%g", r.Value)
		for _, n := range names {
			fmt.Fprintf(w, "\t%.4f", r.Metrics[n])
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\ncompleted in %v\n", time.Since(start))
	return nil
}

// benchSolver times full steps with the boundary packed to each count.
func benchSolver(cmd *cobra.Command, args []string) error {
	counts := []int{10, 20, 50, 100, 200}
	const step = 1.0 / 60

	fmt.Printf("benchmarking %d ticks per count\n\n", benchTicks)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARTICLES\tPAIRS\tTIME\tSTEPS/SEC\tDEGENERATE")

	for _, n := range counts {
		p := verlet.DefaultParams()
		p.MaxParticles = n
		p.DefaultRadius = 8
		s, err := verlet.New(p)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			// spiral layout keeps the initial overlap moderate
			r := 10 + float64(i)*250/float64(n)
			a := float64(i) * 2.399963
			s.Spawn(vec.New(r, 0).Rotate(a))
		}

		start := time.Now()
		for i := 0; i < benchTicks; i++ {
			s.Step(step)
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\t%d\n",
			n, n*(n-1)/2, elapsed, float64(benchTicks)/elapsed.Seconds(), s.Degenerate())
	}
	return w.Flush()
}
