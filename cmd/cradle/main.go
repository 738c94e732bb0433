package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/JulianCruzet/Newtons-Cradle/internal/analysis"
	"github.com/JulianCruzet/Newtons-Cradle/internal/config"
	"github.com/JulianCruzet/Newtons-Cradle/internal/cradle"
	"github.com/JulianCruzet/Newtons-Cradle/internal/export"
	"github.com/JulianCruzet/Newtons-Cradle/internal/metrics"
	"github.com/JulianCruzet/Newtons-Cradle/internal/sim"
	"github.com/JulianCruzet/Newtons-Cradle/internal/store"
	"github.com/JulianCruzet/Newtons-Cradle/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string

	balls     int
	radius    float64
	mass      float64
	gravity   float64
	rodLength float64
	damping   float64
	angle     float64
	dt        float64
	duration  float64

	outFile   string
	snapSteps int

	sweepFrom  float64
	sweepTo    float64
	sweepCount int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cradle",
		Short: "newton's cradle simulation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".cradle", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and store the result",
		RunE:  runSimulation,
	}
	addConfigFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot end-ball angles of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id] [file]",
		Short: "export a stored run to a single JSON file",
		Args:  cobra.ExactArgs(2),
		RunE:  exportJSON,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render a frame of the cradle to SVG",
		RunE:  renderSnapshot,
	}
	addConfigFlags(snapshotCmd)
	snapshotCmd.Flags().StringVar(&outFile, "out", "cradle.svg", "output file")
	snapshotCmd.Flags().IntVar(&snapSteps, "steps", 0, "frames to advance before rendering")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run a parallel damping sweep",
		RunE:  runSweep,
	}
	addConfigFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0.99, "damping range start")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 1.0, "damping range end")
	sweepCmd.Flags().IntVar(&sweepCount, "count", 5, "number of sweep points")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s %d balls, damping %.3f, angle %.2f\n", name, p.Balls, p.Damping, p.InitialAngle)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, analyzeCmd, exportJSONCmd, snapshotCmd, sweepCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named preset")
	cmd.Flags().IntVar(&balls, "balls", 5, "number of balls")
	cmd.Flags().Float64Var(&radius, "radius", 20, "ball radius")
	cmd.Flags().Float64Var(&mass, "mass", 1.0, "ball mass")
	cmd.Flags().Float64Var(&gravity, "gravity", 50, "gravity")
	cmd.Flags().Float64Var(&rodLength, "rod", 200, "rod length")
	cmd.Flags().Float64Var(&damping, "damping", 1.0, "damping factor")
	cmd.Flags().Float64Var(&angle, "angle", 0.785, "initial raised angle (radians)")
	cmd.Flags().Float64Var(&dt, "dt", 1.0/60, "timestep")
	cmd.Flags().Float64Var(&duration, "time", 10.0, "duration (seconds)")
}

// resolveConfig merges preset, config file, and explicit flags in
// ascending precedence, then validates the result.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("balls") {
		cfg.Balls = balls
	}
	if flags.Changed("radius") {
		cfg.Radius = radius
	}
	if flags.Changed("mass") {
		cfg.Mass = mass
	}
	if flags.Changed("gravity") {
		cfg.Gravity = gravity
	}
	if flags.Changed("rod") {
		cfg.RodLength = rodLength
	}
	if flags.Changed("damping") {
		cfg.Damping = damping
	}
	if flags.Changed("angle") {
		cfg.InitialAngle = angle
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultMetrics(phys cradle.Config) []sim.Metric {
	return []sim.Metric{
		metrics.NewEnergy(phys),
		metrics.NewEnergyDrift(phys),
		metrics.NewPeakAngle(0),
		metrics.NewStability(50.0),
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	phys := cfg.Physics()
	runner := sim.NewRunner()
	for _, m := range defaultMetrics(phys) {
		runner.AddMetric(m)
	}

	logrus.WithFields(logrus.Fields{
		"balls":    cfg.Balls,
		"damping":  cfg.Damping,
		"duration": cfg.Duration,
	}).Info("running simulation")
	start := time.Now()

	result, err := runner.Run(context.Background(), phys, sim.RunConfig{Duration: cfg.Duration, ValidateState: true})
	if err != nil {
		return err
	}
	for _, e := range result.Errors {
		logrus.Warnf("run error: %v", e)
	}

	runID, err := st.Save(cfg, result)
	if err != nil {
		return err
	}

	logrus.WithField("elapsed", time.Since(start)).Info("completed")
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Printf("collisions: %d\n", result.Collisions)
	fmt.Printf("energy drift: %.6f\n", result.EnergyDrift)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tBALLS\tDAMPING\tCOLLISIONS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.3f\t%d\n",
			run.ID, run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Config.Balls, run.Config.Damping, run.Collisions)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	states, _, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("run %s has no states", args[0])
	}

	n := meta.Config.Balls
	left := make([]float64, len(states))
	right := make([]float64, len(states))
	for i, s := range states {
		left[i] = s[0]
		right[i] = s[n-1]
	}

	for _, trace := range []struct {
		name string
		data []float64
	}{
		{"leftmost ball angle", left},
		{"rightmost ball angle", right},
	} {
		graph := asciigraph.Plot(trace.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(trace.name),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	states, _, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}
	if len(states) < 2 {
		return fmt.Errorf("run %s too short to analyze", args[0])
	}

	n := meta.Config.Balls
	trace := make([]float64, len(states))
	for i, s := range states {
		trace[i] = s[n-1]
	}

	ps := analysis.PowerSpectrum(trace)
	plotLen := len(ps)
	if plotLen > 128 {
		plotLen = 128
	}
	graph := asciigraph.Plot(ps[:plotLen],
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (rightmost ball angle)"),
	)
	fmt.Println(graph)
	fmt.Println()

	measured := analysis.DominantFrequency(trace, meta.Config.Dt)
	predicted := smallAngleFrequency(meta.Config.Gravity, meta.Config.RodLength)
	fmt.Printf("dominant frequency: %.4f Hz\n", measured)
	fmt.Printf("small-angle prediction: %.4f Hz\n", predicted)

	return nil
}

// smallAngleFrequency is sqrt(g/L)/2pi, the natural frequency of one
// pendulum for small swings.
func smallAngleFrequency(g, l float64) float64 {
	return math.Sqrt(g/l) / (2 * math.Pi)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	states, times, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}

	simStates := make([]sim.State, len(states))
	for i, s := range states {
		simStates[i] = s
	}
	result := &sim.Result{
		States:     simStates,
		Times:      times,
		Metrics:    meta.Metrics,
		Collisions: meta.Collisions,
		StepsTaken: len(states) - 1,
	}

	if err := store.ExportJSON(args[1], &meta.Config, result); err != nil {
		return err
	}
	fmt.Printf("exported %s to %s\n", args[0], args[1])
	return nil
}

func renderSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	chain, err := cradle.New(cfg.Physics())
	if err != nil {
		return err
	}

	stepper := cradle.NewStepper()
	for i := 0; i < snapSteps; i++ {
		stepper.Step(chain, cfg.Dt)
	}

	canvas := export.NewCanvas(120, 40)
	export.DrawChain(canvas, chain)
	svg := export.CanvasToSVG(canvas, 4)

	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	logrus.WithField("file", outFile).Info("snapshot written")
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if sweepCount < 2 {
		return fmt.Errorf("sweep count must be >= 2, got %d", sweepCount)
	}

	configs := make([]cradle.Config, sweepCount)
	values := make([]float64, sweepCount)
	for i := range configs {
		frac := float64(i) / float64(sweepCount-1)
		values[i] = sweepFrom + frac*(sweepTo-sweepFrom)
		phys := cfg.Physics()
		phys.Damping = values[i]
		configs[i] = phys
	}

	logrus.WithFields(logrus.Fields{
		"from":  sweepFrom,
		"to":    sweepTo,
		"count": sweepCount,
	}).Info("running damping sweep")

	ens := sim.NewEnsemble(configs, defaultMetrics)
	results, err := ens.Run(context.Background(), sim.RunConfig{Duration: cfg.Duration, ValidateState: true})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DAMPING\tCOLLISIONS\tENERGY DRIFT\tPEAK ANGLE (LEFT)")
	for i, res := range results {
		fmt.Fprintf(w, "%.4f\t%d\t%.4f\t%.4f\n",
			values[i], res.Collisions, res.EnergyDrift, res.Metrics["peak_angle"])
	}
	return w.Flush()
}
