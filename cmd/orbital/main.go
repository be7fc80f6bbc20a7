package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbital/internal/config"
	"github.com/san-kum/orbital/internal/engine"
	"github.com/san-kum/orbital/internal/export"
	"github.com/san-kum/orbital/internal/metrics"
	"github.com/san-kum/orbital/internal/storage"
	"github.com/san-kum/orbital/internal/viz"
)

var (
	dataDir    string
	configFile string
	dt         float64
	duration   float64
	timeScale  float64
	gravity    float64
	softening  float64
	substeps   int
	trail      int
	frameRate  int
	plotField  string
	outFile    string
	svgWidth   int
	svgHeight  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbital",
		Short: "gravitational n-body sandbox",
		RunE:  liveView,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbital", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().Float64Var(&gravity, "g", 0, "gravitational constant (0 = default)")
	rootCmd.PersistentFlags().Float64Var(&softening, "softening", 0, "softening length (0 = default)")
	rootCmd.PersistentFlags().IntVar(&substeps, "substeps", 0, "integration substeps per frame (0 = default)")
	rootCmd.PersistentFlags().IntVar(&trail, "trail", 0, "trail length cap (0 = default)")
	rootCmd.PersistentFlags().Float64Var(&timeScale, "scale", 0, "time scale (0 = config value)")
	rootCmd.Flags().IntVar(&frameRate, "fps", 60, "frame rate for the live view")

	runCmd := &cobra.Command{
		Use:   "run [scene]",
		Short: "run a scene headless and record diagnostics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScene,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "frame delta")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "simulated duration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded diagnostic",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&plotField, "field", "energy", "field to plot (energy|bodies|momentum|angular)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	renderCmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "run a scene headless and write its trails as svg",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderScene,
	}
	renderCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "frame delta")
	renderCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "simulated duration")
	renderCmd.Flags().StringVarP(&outFile, "out", "o", "orbital.svg", "output file")
	renderCmd.Flags().IntVar(&svgWidth, "width", 800, "svg width")
	renderCmd.Flags().IntVar(&svgHeight, "height", 800, "svg height")

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list scene presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListScenes() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, renderCmd, scenesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective config: file, then scene preset, then
// defaults, with tunable flags overriding whatever was loaded.
func loadConfig(args []string) (*config.Config, string, error) {
	scene := "demo"
	if len(args) > 0 {
		scene = args[0]
	}

	var cfg *config.Config
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, "", err
		}
		cfg = loaded
		scene = "custom"
	default:
		cfg = config.GetScene(scene)
		if cfg == nil {
			return nil, "", fmt.Errorf("unknown scene: %q (try 'orbital scenes')", scene)
		}
	}

	if gravity != 0 {
		cfg.G = gravity
	}
	if softening != 0 {
		cfg.Softening = softening
	}
	if substeps != 0 {
		cfg.Substeps = substeps
	}
	if trail != 0 {
		cfg.Trail = trail
	}
	if timeScale != 0 {
		cfg.TimeScale = timeScale
	}
	return cfg, scene, nil
}

func buildEngine(args []string) (*engine.Engine, *config.Config, string, error) {
	cfg, scene, err := loadConfig(args)
	if err != nil {
		return nil, nil, "", err
	}
	eng, err := cfg.Build()
	if err != nil {
		return nil, nil, "", err
	}
	return eng, cfg, scene, nil
}

func liveView(cmd *cobra.Command, args []string) error {
	eng, cfg, _, err := buildEngine(args)
	if err != nil {
		return err
	}
	return viz.Run(eng, frameRate, cfg.TimeScale)
}

// simulate steps the engine for the configured duration at a fixed frame
// delta, observing metrics and collecting one diagnostics sample per frame.
func simulate(eng *engine.Engine, cfg *config.Config, ms []metrics.Metric) []storage.Sample {
	steps := int(duration / dt)
	samples := make([]storage.Sample, 0, steps)
	for i := 0; i < steps; i++ {
		eng.Step(dt, cfg.TimeScale)
		for _, m := range ms {
			m.Observe(eng, eng.Elapsed())
		}
		p := eng.Momentum()
		samples = append(samples, storage.Sample{
			Time:            eng.Elapsed(),
			Bodies:          len(eng.Bodies()),
			Energy:          eng.Energy(),
			Px:              p.X,
			Py:              p.Y,
			AngularMomentum: eng.AngularMomentum(),
		})
	}
	return samples
}

func runScene(cmd *cobra.Command, args []string) error {
	eng, cfg, scene, err := buildEngine(args)
	if err != nil {
		return err
	}

	ms := []metrics.Metric{
		metrics.NewEnergyDrift(),
		metrics.NewMomentumDrift(),
		metrics.NewBodyCount(),
	}
	samples := simulate(eng, cfg, ms)

	results := make(map[string]float64, len(ms))
	for _, m := range ms {
		results[m.Name()] = m.Value()
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(storage.RunMetadata{
		Scene:     scene,
		Dt:        dt,
		Duration:  duration,
		TimeScale: cfg.TimeScale,
		G:         eng.G,
		Softening: eng.Softening,
		Substeps:  eng.Substeps,
		Metrics:   results,
	}, samples)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "run\t%s\n", runID)
	fmt.Fprintf(w, "frames\t%d\n", len(samples))
	fmt.Fprintf(w, "elapsed\t%.2fs\n", eng.Elapsed())
	fmt.Fprintf(w, "bodies\t%d\n", len(eng.Bodies()))
	for _, m := range ms {
		fmt.Fprintf(w, "%s\t%.6g\n", m.Name(), m.Value())
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tTIME\tDURATION\tG")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1fs\t%.0f\n",
			r.ID, r.Scene, r.Timestamp.Format("2006-01-02 15:04"), r.Duration, r.G)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	samples, err := store.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(samples) < 2 {
		return fmt.Errorf("run %s has no samples", args[0])
	}

	series := make([]float64, len(samples))
	for i, s := range samples {
		switch plotField {
		case "energy":
			series[i] = s.Energy
		case "bodies":
			series[i] = float64(s.Bodies)
		case "momentum":
			series[i] = s.Px
		case "angular":
			series[i] = s.AngularMomentum
		default:
			return fmt.Errorf("unknown field: %q", plotField)
		}
	}

	fmt.Println(asciigraph.Plot(series, asciigraph.Height(15), asciigraph.Width(70), asciigraph.Caption(plotField)))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func renderScene(cmd *cobra.Command, args []string) error {
	eng, cfg, _, err := buildEngine(args)
	if err != nil {
		return err
	}
	simulate(eng, cfg, nil)
	svg := export.TrailsToSVG(eng.Bodies(), svgWidth, svgHeight)
	if svg == "" {
		return fmt.Errorf("nothing to render")
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}
