// Package config loads the settings of the octatile command.
//
// Values come from Default, overlaid by an optional YAML file, overlaid by
// command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/octatile/hyperbolic"
	"gopkg.in/yaml.v3"
)

// Config holds every setting of a tiling run.
type Config struct {
	// Seed seeds the initial guess sampler. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`
	// MaxAttempts caps the solver's retries. Zero retries until success.
	MaxAttempts int `yaml:"max_attempts"`
	// Depth is the number of side pairings composed per starting edge.
	Depth int `yaml:"depth"`
	// Regular skips the solver and tiles the analytic regular octagon.
	Regular bool `yaml:"regular"`
	// Pairing maps every edge to its partner.
	Pairing []int `yaml:"pairing"`

	Sampler SamplerConfig `yaml:"sampler"`
	Descent DescentConfig `yaml:"descent"`
	Render  RenderConfig  `yaml:"render"`

	Output      string `yaml:"output"`
	MetricsFile string `yaml:"metrics_file"`
	LogLevel    string `yaml:"log_level"`
}

type SamplerConfig struct {
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
}

type DescentConfig struct {
	Step       float64 `yaml:"step"`
	Iterations int     `yaml:"iterations"`
	Delta      float64 `yaml:"delta"`
}

type RenderConfig struct {
	Scale       float64  `yaml:"scale"`
	Offset      float64  `yaml:"offset"`
	StrokeWidth float64  `yaml:"stroke_width"`
	Colors      []string `yaml:"colors"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		Depth:   hyperbolic.DefaultDepth,
		Pairing: slices.Clone(hyperbolic.DefaultPairing[:]),
		Sampler: SamplerConfig{
			MinRadius: hyperbolic.DefaultMinRadius,
			MaxRadius: hyperbolic.DefaultMaxRadius,
		},
		Descent: DescentConfig{
			Step:       hyperbolic.DefaultStep,
			Iterations: hyperbolic.DefaultIterations,
			Delta:      hyperbolic.DefaultDelta,
		},
		Render: RenderConfig{
			Scale:       375,
			Offset:      400,
			StrokeWidth: 2,
			Colors:      []string{"red", "green", "red", "green", "blue", "purple", "blue", "purple"},
		},
		Output:   "tiling.svg",
		LogLevel: "info",
	}
}

// Load reads the YAML file at path over Default. An empty path returns
// Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// PairingValue returns the configured pairing.
func (c Config) PairingValue() (hyperbolic.Pairing, error) {
	var p hyperbolic.Pairing
	if len(c.Pairing) != len(p) {
		return p, fmt.Errorf("%w: need %d entries, got %d", hyperbolic.ErrInvalidPairing, len(p), len(c.Pairing))
	}
	copy(p[:], c.Pairing)
	return p, p.Validate()
}

// DescentValue returns the descent parameters with the default objective.
func (c Config) DescentValue() hyperbolic.Descent {
	d := hyperbolic.DefaultDescent()
	d.Step = c.Descent.Step
	d.Iterations = c.Descent.Iterations
	d.Delta = c.Descent.Delta
	return d
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("max_attempts must not be negative, got %d", c.MaxAttempts))
	}
	if c.Depth < 0 {
		errs = append(errs, fmt.Errorf("depth must not be negative, got %d", c.Depth))
	}
	if _, err := c.PairingValue(); err != nil {
		errs = append(errs, err)
	}
	if s := c.Sampler; !(0 < s.MinRadius && s.MinRadius <= s.MaxRadius && s.MaxRadius < 1) {
		errs = append(errs, fmt.Errorf("sampler radii must satisfy 0 < min ≤ max < 1, got %g and %g", s.MinRadius, s.MaxRadius))
	}
	if d := c.Descent; d.Step <= 0 || d.Iterations <= 0 || d.Delta <= 0 {
		errs = append(errs, errors.New("descent step, iterations and delta must be positive"))
	}
	if c.Render.Scale <= 0 {
		errs = append(errs, fmt.Errorf("render scale must be positive, got %g", c.Render.Scale))
	}
	if len(c.Render.Colors) != 8 {
		errs = append(errs, fmt.Errorf("render needs 8 colors, got %d", len(c.Render.Colors)))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output path is empty"))
	}
	return errors.Join(errs...)
}
