package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/octatile/hyperbolic"
	"github.com/octatile/hyperbolic/internal/config"
	"github.com/octatile/hyperbolic/internal/logging"
	"github.com/octatile/hyperbolic/internal/metrics"
	"github.com/octatile/hyperbolic/internal/render"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Solve for an octagon and draw its tiling",
	Long: `Searches for a fundamental octagon by gradient descent from random starting
points, generates the octagons around its vertices and writes them as SVG.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		return runGenerate(cmd.Context(), cfg, logging.New(level), cmd.OutOrStdout())
	},
}

// generateFlags holds the values of the generate command's flags. They only
// override the configuration when set explicitly.
var generateFlags struct {
	seed        uint64
	maxAttempts int
	depth       int
	regular     bool
	output      string
	metricsFile string
}

func init() {
	rootCmd.AddCommand(generateCmd)

	f := generateCmd.Flags()
	f.Uint64Var(&generateFlags.seed, "seed", 0, "Seed for the starting points (0 picks one at random)")
	f.IntVar(&generateFlags.maxAttempts, "max-attempts", 0, "Give up after this many descents (0 never gives up)")
	f.IntVar(&generateFlags.depth, "depth", hyperbolic.DefaultDepth, "Number of octagons generated per edge")
	f.BoolVar(&generateFlags.regular, "regular", false, "Tile the regular octagon instead of solving for one")
	f.StringVarP(&generateFlags.output, "output", "o", "tiling.svg", "SVG file to write")
	f.StringVar(&generateFlags.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file")
}

// loadConfig reads the config file named by --config and applies the flags
// that were set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = generateFlags.seed
	}
	if flags.Changed("max-attempts") {
		cfg.MaxAttempts = generateFlags.maxAttempts
	}
	if flags.Changed("depth") {
		cfg.Depth = generateFlags.depth
	}
	if flags.Changed("regular") {
		cfg.Regular = generateFlags.regular
	}
	if flags.Changed("output") {
		cfg.Output = generateFlags.output
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = generateFlags.metricsFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg, cfg.Validate()
}

func runGenerate(ctx context.Context, cfg config.Config, logger *slog.Logger, out io.Writer) error {
	start := time.Now()
	m := metrics.New()

	pairing, err := cfg.PairingValue()
	if err != nil {
		return err
	}

	var (
		base     hyperbolic.Octagon
		failures int
	)
	if cfg.Regular {
		base = hyperbolic.RegularOctagon()
	} else {
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		logger.Debug("searching for an octagon", "seed", seed, "max_attempts", cfg.MaxAttempts)

		sampler := hyperbolic.NewSectorSampler(seed)
		sampler.MinRadius = cfg.Sampler.MinRadius
		sampler.MaxRadius = cfg.Sampler.MaxRadius
		solver := hyperbolic.NewSolver(
			hyperbolic.WithSampler(sampler),
			hyperbolic.WithDescent(cfg.DescentValue()),
			hyperbolic.WithMaxAttempts(cfg.MaxAttempts),
			hyperbolic.WithLogger(logger),
			hyperbolic.WithAttemptHook(m.ObserveAttempt),
		)
		res, err := solver.Solve(ctx)
		if err != nil {
			return fmt.Errorf("solving for an octagon: %w", err)
		}
		m.ObserveSolution(res)
		base = res.Octagon
		failures = res.Failures()
	}

	tiling, err := hyperbolic.Generate(base, pairing, cfg.Depth)
	if err != nil {
		return fmt.Errorf("generating tiling: %w", err)
	}

	n, err := writeSVG(cfg, tiling)
	if err != nil {
		return err
	}
	m.ObserveTiling(tiling, n)

	if cfg.MetricsFile != "" {
		if err := m.WriteFile(cfg.MetricsFile); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}

	elapsed := time.Since(start)
	logger.Info("tiling generated",
		"octagons", tiling.Len(),
		"edges", n,
		"output", cfg.Output,
		"elapsed", elapsed,
		"failed_attempts", failures)
	fmt.Fprintf(out, "Successfully generated a tiling in %.2f seconds; failed attempts: %d.\n", elapsed.Seconds(), failures)
	return nil
}

func writeSVG(cfg config.Config, tiling *hyperbolic.Tiling) (int, error) {
	f, err := os.Create(cfg.Output)
	if err != nil {
		return 0, err
	}
	n, err := render.Render(f, tiling.Edges(), render.Options{
		Scale:       cfg.Render.Scale,
		Offset:      cfg.Render.Offset,
		StrokeWidth: cfg.Render.StrokeWidth,
		Colors:      cfg.Render.Colors,
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("writing %s: %w", cfg.Output, err)
	}
	return n, nil
}
