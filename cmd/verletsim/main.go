package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/verletsim/internal/config"
	"github.com/san-kum/verletsim/internal/gui"
)

var (
	dataDir  string
	logLevel string
	logJSON  bool

	configFile string
	preset     string
	dt         float64
	ticks      int
	frameEvery int
	maxCount   int
	radius     float64
	gravityY   float64
	response   float64
	padding    float64
	autoSpawn  bool
	noSave     bool

	particle int
	target   float64
	eps      float64
	outPath  string

	frameIndex int
	trailIndex int
	svgSize    int

	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
	parallel   int

	benchTicks int

	logger *slog.Logger
)

// main registers commands and flags and opens the GUI when no subcommand
// is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "verletsim",
		Short: "verlet particles in a movable circular boundary",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(logLevel, logJSON)
			if err != nil {
				return err
			}
			logger = l
			slog.SetDefault(l)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return gui.Run(config.DefaultConfig())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".verletsim", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as JSON")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and save it",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addConfigFlags(runCmd)
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot one particle of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&particle, "particle", 0, "particle index")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export recorded frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and frames to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a recorded frame to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&frameIndex, "frame", -1, "frame index (negative counts from the end)")
	exportSVGCmd.Flags().IntVar(&trailIndex, "trail", -1, "draw the path of this particle (-1 for none)")
	exportSVGCmd.Flags().IntVar(&svgSize, "size", 640, "image size in pixels")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "settling and frequency analysis of one particle",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&particle, "particle", 0, "particle index")
	analyzeCmd.Flags().Float64Var(&target, "target", 0, "resting distance from the center (default boundary radius - particle radius)")
	analyzeCmd.Flags().Float64Var(&eps, "eps", 0.5, "settling tolerance")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the simulation in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addConfigFlags(liveCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the simulation in a window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	addConfigFlags(guiCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the run")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "sweep one parameter across concurrent runs",
		Args:  cobra.NoArgs,
		RunE:  compareRuns,
	}
	addConfigFlags(compareCmd)
	compareCmd.Flags().StringVar(&sweepParam, "param", "response", "parameter to sweep")
	compareCmd.Flags().Float64Var(&sweepMin, "min", 0.2, "first value")
	compareCmd.Flags().Float64Var(&sweepMax, "max", 1.0, "last value")
	compareCmd.Flags().IntVar(&sweepSteps, "steps", 5, "number of values")
	compareCmd.Flags().IntVar(&parallel, "parallel", 0, "concurrent runs (0 = unbounded)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the solver across particle counts",
		Args:  cobra.NoArgs,
		RunE:  benchSolver,
	}
	benchCmd.Flags().IntVar(&benchTicks, "ticks", 1000, "ticks per measurement")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd,
		analyzeCmd, liveCmd, guiCmd, presetsCmd, scenarioCmd, compareCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string, asJSON bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if asJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}

func addConfigFlags(cmd *cobra.Command) {
	d := config.DefaultConfig()
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64Var(&dt, "dt", d.Dt, "timestep in seconds")
	cmd.Flags().IntVar(&ticks, "ticks", d.Ticks, "number of ticks")
	cmd.Flags().IntVar(&frameEvery, "frame-every", d.FrameEvery, "record one frame per this many ticks")
	cmd.Flags().IntVar(&maxCount, "max", d.Particles.Max, "maximum particle count")
	cmd.Flags().Float64Var(&radius, "radius", d.Particles.Radius, "particle radius")
	cmd.Flags().Float64Var(&gravityY, "gravity", d.Gravity.Y, "vertical gravity")
	cmd.Flags().Float64Var(&response, "response", d.Collision.Response, "collision response coefficient")
	cmd.Flags().Float64Var(&padding, "padding", d.Collision.Padding, "collision padding")
	cmd.Flags().BoolVar(&autoSpawn, "spawn", d.Spawn.Enabled, "spawn particles on the timer")
}

// resolveConfig applies preset, then config file, then explicitly set flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(cfg, configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("ticks") {
		cfg.Ticks = ticks
	}
	if flags.Changed("frame-every") {
		cfg.FrameEvery = frameEvery
	}
	if flags.Changed("max") {
		cfg.Particles.Max = maxCount
	}
	if flags.Changed("radius") {
		cfg.Particles.Radius = radius
	}
	if flags.Changed("gravity") {
		cfg.Gravity.Y = gravityY
	}
	if flags.Changed("response") {
		cfg.Collision.Response = response
	}
	if flags.Changed("padding") {
		cfg.Collision.Padding = padding
	}
	if flags.Changed("spawn") {
		cfg.Spawn.Enabled = autoSpawn
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
