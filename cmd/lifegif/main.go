package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/lifegif/internal/config"
	"github.com/san-kum/lifegif/internal/experiment"
	"github.com/san-kum/lifegif/internal/life"
	"github.com/san-kum/lifegif/internal/logging"
	"github.com/san-kum/lifegif/internal/recorder"
	"github.com/san-kum/lifegif/internal/render"
	"github.com/san-kum/lifegif/internal/storage"
	"github.com/san-kum/lifegif/internal/tui"
	"github.com/san-kum/lifegif/internal/viz"
)

var version = "dev"

var (
	dataDir     string
	verbosity   int
	logHookFile string

	width        int
	height       int
	generations  int
	workers      int
	historyLimit int
	seed         int64
	density      float64
	gridFile     string
	padding      int
	record       bool
	output       string
	delayMs      int
	cellSize     int
	theme        string
	gridLines    bool
	configFile   string
	preset       string
	watch        bool
	frameRate    int

	liveFPS          int
	tickSteps        int
	svgOut           string
	gifOut           string
	benchGenerations int
	benchSeed        int64

	logger  = logr.Discard()
	hookOut io.Closer
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "lifegif",
		Short:             "game of life engine with gif recording",
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if hookOut != nil {
				hookOut.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".lifegif", "data directory")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log verbosity (repeat for more)")
	rootCmd.PersistentFlags().StringVar(&logHookFile, "log-hook-file", "", "also append log lines to this file")

	runCmd := &cobra.Command{
		Use:   "run [pattern]",
		Short: "run a pattern and store the result",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPattern,
	}
	addGridFlags(runCmd)
	runCmd.Flags().IntVarP(&generations, "generations", "n", config.DefaultGenerations, "generations to run")
	runCmd.Flags().BoolVar(&record, "record", false, "record a gif of the run")
	runCmd.Flags().StringVarP(&output, "output", "o", "", "also write the gif to this path")
	runCmd.Flags().BoolVar(&watch, "watch", false, "draw the grid in the terminal while running")
	runCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate for --watch")

	liveCmd := &cobra.Command{
		Use:   "live [pattern]",
		Short: "interactive player and editor",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addGridFlags(liveCmd)
	liveCmd.Flags().IntVar(&liveFPS, "fps", 10, "generations per second while playing")

	tickCmd := &cobra.Command{
		Use:   "tick [file]",
		Short: "advance a text grid read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE:  tickGrid,
	}
	tickCmd.Flags().IntVarP(&tickSteps, "steps", "n", 1, "generations to advance")
	tickCmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (0 = all cpus)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot population over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&gifOut, "gif", "", "copy the run's recording to this path")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
		},
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export the final grid of a run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&svgOut, "output", "o", "", "output path (default stdout)")
	exportSVGCmd.Flags().IntVar(&cellSize, "cell-size", render.DefaultCellSize, "cell size in pixels")
	exportSVGCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPATTERN\tSIZE\tGENS\tTHEME")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%s\n", name, p.Pattern, p.Width, p.Height, p.Generations, p.Record.Theme)
			}
			return w.Flush()
		},
	}

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list built-in patterns",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range experiment.ListPatterns() {
				fmt.Printf("  %s\n", name)
			}
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench [pattern]",
		Short: "benchmark generation throughput",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchPattern,
	}
	benchCmd.Flags().IntVarP(&benchGenerations, "generations", "n", 100, "generations per measurement")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 42, "random seed")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("lifegif " + version)
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, tickCmd, listCmd, plotCmd, exportCmd, exportJSONCmd, exportSVGCmd, presetsCmd, patternsCmd, benchCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "grid width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "grid height")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (0 = all cpus)")
	cmd.Flags().IntVar(&historyLimit, "history", 0, "undo history limit (0 = unbounded)")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().Float64Var(&density, "density", config.DefaultDensity, "live cell density for the random pattern")
	cmd.Flags().StringVar(&gridFile, "file", "", "load the initial grid from a text file")
	cmd.Flags().IntVar(&padding, "padding", 0, "dead border added around the initial grid")
	cmd.Flags().IntVar(&delayMs, "delay", config.DefaultDelayMs, "gif frame delay in milliseconds")
	cmd.Flags().IntVar(&cellSize, "cell-size", config.DefaultCellSize, "gif cell size in pixels")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	cmd.Flags().BoolVar(&gridLines, "grid-lines", false, "draw grid lines in the gif")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	logger = logging.New(os.Stderr, verbosity)
	if logHookFile == "" {
		return nil
	}
	f, err := os.OpenFile(logHookFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log hook file: %w", err)
	}
	hookOut = f
	logger = logging.Forward(logger, logging.WriterHook(f))
	return nil
}

// resolveConfig layers defaults, the preset, the config file and explicitly
// set flags, in that order.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
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
	set := func(name string, apply func()) {
		if f := flags.Lookup(name); f != nil && f.Changed {
			apply()
		}
	}
	set("width", func() { cfg.Width = width })
	set("height", func() { cfg.Height = height })
	set("generations", func() { cfg.Generations = generations })
	set("workers", func() { cfg.Workers = workers })
	set("history", func() { cfg.HistoryLimit = historyLimit })
	set("seed", func() { cfg.Seed = seed })
	set("density", func() { cfg.Density = density })
	set("file", func() { cfg.File = gridFile })
	set("padding", func() { cfg.Padding = padding })
	set("record", func() { cfg.Record.Enabled = record })
	set("output", func() { cfg.Record.Output = output })
	set("delay", func() { cfg.Record.DelayMs = delayMs })
	set("cell-size", func() { cfg.Record.CellSize = cellSize })
	set("theme", func() { cfg.Record.Theme = theme })
	set("grid-lines", func() { cfg.Record.GridLines = gridLines })

	if cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if len(args) > 0 {
		cfg.Pattern = args[0]
	}
	if cfg.Record.Output != "" {
		cfg.Record.Enabled = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func initialGrid(cfg *config.Config) (*life.Grid, error) {
	var g *life.Grid
	if cfg.File != "" {
		data, err := os.ReadFile(cfg.File)
		if err != nil {
			return nil, err
		}
		g, err = life.ParseText(string(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.File, err)
		}
	} else {
		var err error
		g, err = experiment.GetPattern(cfg.Pattern, cfg.Width, cfg.Height, cfg.Seed, cfg.Density)
		if err != nil {
			return nil, err
		}
	}

	if cfg.Padding > 0 {
		g = life.Pad(g, cfg.Padding)
	}
	if w, h := g.Dimensions(); !life.ValidateDimensions(w, h) {
		return nil, fmt.Errorf("%w: %dx%d", life.ErrInvalidDimensions, w, h)
	}
	return g, nil
}

func patternName(cfg *config.Config) string {
	if cfg.File != "" {
		return strings.TrimSuffix(filepath.Base(cfg.File), filepath.Ext(cfg.File))
	}
	return cfg.Pattern
}

func newEngine(cfg *config.Config, g *life.Grid) *life.Engine {
	return life.NewEngine(g, life.Config{
		Workers:      cfg.Workers,
		HistoryLimit: cfg.HistoryLimit,
		Logger:       logger,
	})
}

func runPattern(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	g, err := initialGrid(cfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	engine := newEngine(cfg, g)
	raster := render.NewRasterizer(cfg.Record.CellSize, render.GetTheme(cfg.Record.Theme))
	raster.GridLines = cfg.Record.GridLines

	exp := experiment.New(experiment.Config{
		Generations:  cfg.Generations,
		Record:       cfg.Record.Enabled,
		FrameDelayMs: uint16(cfg.Record.DelayMs),
		Logger:       logger,
	})
	if err := exp.Setup(engine, experiment.DefaultMetrics(), recorder.New(logger), raster); err != nil {
		return err
	}

	name := patternName(cfg)
	if watch {
		lr := tui.NewLiveRenderer(os.Stdout, name, frameRate)
		exp.Engine().AddObserver(lr)
		lr.Start()
		defer lr.Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %s for %d generations...\n", name, cfg.Generations)
	start := time.Now()

	result, err := exp.Run(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) || result == nil {
			return err
		}
		fmt.Printf("interrupted after %d generations\n", result.Steps)
	}
	elapsed := time.Since(start)

	w, h := g.Dimensions()
	runID, saveErr := st.Save(storage.RunParams{
		Pattern:      name,
		Width:        w,
		Height:       h,
		Generations:  cfg.Generations,
		Seed:         cfg.Seed,
		Density:      cfg.Density,
		Workers:      cfg.Workers,
		FrameDelayMs: cfg.Record.DelayMs,
		Theme:        cfg.Record.Theme,
	}, result)
	if saveErr != nil {
		return saveErr
	}

	if cfg.Record.Output != "" && len(result.GIF) > 0 {
		if err := os.WriteFile(cfg.Record.Output, result.GIF, 0644); err != nil {
			return err
		}
		fmt.Printf("gif: %s\n", cfg.Record.Output)
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("generations: %d\n", result.Steps)
	fmt.Printf("live cells: %d\n", result.Final.LiveCount())
	if len(result.GIF) > 0 {
		fmt.Printf("gif bytes: %d\n", len(result.GIF))
	}
	fmt.Println("\nmetrics:")
	for _, m := range experiment.DefaultMetrics() {
		fmt.Printf("  %s: %.4f\n", m.Name(), result.Metrics[m.Name()])
	}

	return err
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	g, err := initialGrid(cfg)
	if err != nil {
		return err
	}

	fps := liveFPS
	if fps <= 0 {
		fps = 10
	}

	m := viz.NewModel(newEngine(cfg, g), recorder.New(logger), viz.Options{
		Title:        patternName(cfg),
		TickRate:     time.Second / time.Duration(fps),
		FrameDelayMs: uint16(cfg.Record.DelayMs),
		CellSize:     cfg.Record.CellSize,
		Theme:        cfg.Record.Theme,
		GridLines:    cfg.Record.GridLines,
		OutDir:       ".",
	})

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(viz.Model); ok {
		for _, path := range fm.Saved() {
			fmt.Printf("saved %s\n", path)
		}
	}
	return nil
}

func tickGrid(cmd *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	g, err := life.ParseText(string(data))
	if err != nil {
		return err
	}
	if w, h := g.Dimensions(); !life.ValidateDimensions(w, h) {
		return fmt.Errorf("%w: %dx%d", life.ErrInvalidDimensions, w, h)
	}

	n := workers
	if n <= 0 {
		n = life.DefaultWorkers()
	}
	for i := 0; i < tickSteps; i++ {
		g = life.Next(g, n)
	}
	fmt.Print(life.FormatText(g))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPATTERN\tTIME\tSIZE\tGENS\tLIVE\tGIF")

	for _, run := range runs {
		gif := "-"
		if run.Recorded {
			gif = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%d\t%s\n",
			run.ID,
			run.Pattern,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width,
			run.Height,
			run.Steps,
			run.FinalLive,
			gif,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	population, err := st.LoadPopulation(runID)
	if err != nil {
		return err
	}
	if len(population) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("pattern: %s\n", meta.Pattern)
	fmt.Printf("samples: %d\n\n", len(population))

	data := make([]float64, len(population))
	for i, p := range population {
		data[i] = float64(p)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("live cells per generation"),
	)
	fmt.Println(graph)

	if len(meta.Metrics) > 0 {
		fmt.Println("\nmetrics:")
		for _, m := range experiment.DefaultMetrics() {
			if v, ok := meta.Metrics[m.Name()]; ok {
				fmt.Printf("  %s: %.4f\n", m.Name(), v)
			}
		}
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	if gifOut != "" {
		path, err := st.RecordingPath(runID)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(gifOut, data, 0644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", gifOut)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	g, err := st.LoadFinal(args[0])
	if err != nil {
		return err
	}

	svg := render.GridToSVG(g, float64(cellSize), render.GetTheme(theme))
	if svgOut == "" {
		fmt.Println(svg)
		return nil
	}
	return os.WriteFile(svgOut, []byte(svg), 0644)
}

func benchPattern(cmd *cobra.Command, args []string) error {
	pattern := "random"
	if len(args) > 0 {
		pattern = args[0]
	}

	sizes := []int{64, 256, 512}
	workerCounts := []int{1, life.DefaultWorkers()}
	if workerCounts[1] == 1 {
		workerCounts = workerCounts[:1]
	}

	fmt.Printf("benchmarking %s, %d generations\n\n", pattern, benchGenerations)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tWORKERS\tTIME\tGENS/SEC\tCELLS/SEC")

	for _, size := range sizes {
		g, err := experiment.GetPattern(pattern, size, size, benchSeed, config.DefaultDensity)
		if err != nil {
			return err
		}
		for _, n := range workerCounts {
			engine := life.NewEngine(g, life.Config{Workers: n, HistoryLimit: 1, Logger: logger})

			start := time.Now()
			for i := 0; i < benchGenerations; i++ {
				engine.Step()
			}
			elapsed := time.Since(start)

			gensPerSec := float64(benchGenerations) / elapsed.Seconds()
			fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.0f\t%.0f\n",
				size, size, n, elapsed, gensPerSec, gensPerSec*float64(size*size))
		}
	}

	return w.Flush()
}
