package hyperbolic

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/octatile/hyperbolic/internal/logging"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
)

// Default parameters of [Descent].
const (
	DefaultStep       = 1e-3
	DefaultIterations = 200
	DefaultDelta      = 1e-6
)

// Descent is plain fixed-step gradient descent on a function of the 16 octagon
// coordinates, with the gradient approximated by central finite differences.
// There is no line search and no early stop; the only way out before the last
// iteration is the validity guard, which aborts as soon as a vertex leaves the
// open unit disk.
type Descent struct {
	Step       float64
	Iterations int
	// Delta is the finite difference step.
	Delta float64
	// Objective defaults to [ErrorFunction].
	Objective func([]float64) float64
}

// DefaultDescent returns the descent used by [Solver] unless configured
// otherwise.
func DefaultDescent() Descent {
	return Descent{
		Step:       DefaultStep,
		Iterations: DefaultIterations,
		Delta:      DefaultDelta,
		Objective:  ErrorFunction,
	}
}

// DescentResult is the outcome of one descent. A failed descent is an
// expected outcome, not an error.
type DescentResult struct {
	// OK is false when an iterate left the disk.
	OK bool
	// Coords holds the last iterate, which for failed descents is the first
	// invalid one. It always has the length of the input.
	Coords []float64
	// Iterations is the number of steps taken.
	Iterations int
}

// Run descends from x, which is not modified.
func (d Descent) Run(x []float64) DescentResult {
	f := d.Objective
	if f == nil {
		f = ErrorFunction
	}
	settings := &fd.Settings{
		Formula: fd.Central,
		Step:    d.Delta,
	}

	coords := slices.Clone(x)
	grad := make([]float64, len(coords))
	for i := range d.Iterations {
		fd.Gradient(grad, f, coords, settings)
		floats.AddScaled(coords, -d.Step, grad)
		if !insideDisk(coords) {
			return DescentResult{OK: false, Coords: coords, Iterations: i + 1}
		}
	}
	return DescentResult{OK: true, Coords: coords, Iterations: d.Iterations}
}

// insideDisk reports whether every (x, y) pair of coords lies strictly inside
// the unit disk.
func insideDisk(coords []float64) bool {
	for i := 0; i+1 < len(coords); i += 2 {
		if !Pt(coords[i], coords[i+1]).InsideDisk() {
			return false
		}
	}
	return true
}

// Sampler produces initial guesses for [Solver], as flat vectors of
// [OctagonCoordinates] values describing eight points inside the disk.
type Sampler interface {
	Sample() []float64
}

// Radius range of [SectorSampler] unless configured otherwise.
const (
	DefaultMinRadius = 0.65
	DefaultMaxRadius = 0.95
)

// SectorSampler places vertex j at a uniformly random angle within the j-th
// 45° sector and at a uniformly random radius in [MinRadius, MaxRadius], so
// that every guess is roughly octagon-shaped.
type SectorSampler struct {
	MinRadius float64
	MaxRadius float64

	rng *rand.Rand
}

// NewSectorSampler returns a sampler with the default radius range, seeded
// with seed.
func NewSectorSampler(seed uint64) *SectorSampler {
	return &SectorSampler{
		MinRadius: DefaultMinRadius,
		MaxRadius: DefaultMaxRadius,
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *SectorSampler) Sample() []float64 {
	const sector = 2 * math.Pi / 8
	out := make([]float64, 0, OctagonCoordinates)
	for j := range 8 {
		angle := s.rng.Float64()*sector + sector*float64(j)
		radius := s.rng.Float64()*(s.MaxRadius-s.MinRadius) + s.MinRadius
		sin, cos := math.Sincos(angle)
		out = append(out, radius*cos, radius*sin)
	}
	return out
}

// Attempt describes one finished descent of a [Solver].
type Attempt struct {
	// Number counts attempts from 1.
	Number int
	Result DescentResult
}

// SolveResult is the outcome of [Solver.Solve].
type SolveResult struct {
	Octagon Octagon
	// Attempts is the number of descents run, including the successful one.
	Attempts int
	// Objective is the value of the descent's objective at the solution.
	Objective float64
}

// Failures returns the number of unsuccessful attempts.
func (r SolveResult) Failures() int {
	return max(r.Attempts-1, 0)
}

// Option configures a [Solver].
type Option func(*Solver)

// WithSampler sets the source of initial guesses.
func WithSampler(s Sampler) Option {
	return func(sv *Solver) {
		sv.sampler = s
	}
}

// WithDescent replaces the default descent parameters.
func WithDescent(d Descent) Option {
	return func(sv *Solver) {
		sv.descent = d
	}
}

// WithMaxAttempts caps the number of attempts. Zero, the default, retries
// until an attempt succeeds.
func WithMaxAttempts(n int) Option {
	return func(sv *Solver) {
		sv.maxAttempts = n
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(sv *Solver) {
		sv.logger = logger
	}
}

// WithAttemptHook registers a function that is called after every attempt.
func WithAttemptHook(fn func(Attempt)) Option {
	return func(sv *Solver) {
		sv.hook = fn
	}
}

// Solver finds octagons by running [Descent] from fresh initial guesses until
// one attempt completes without leaving the disk.
type Solver struct {
	sampler     Sampler
	descent     Descent
	maxAttempts int
	logger      *slog.Logger
	hook        func(Attempt)
}

// NewSolver returns a solver with a randomly seeded [SectorSampler] and
// [DefaultDescent], modified by opts.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{
		descent: DefaultDescent(),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sampler == nil {
		s.sampler = NewSectorSampler(rand.Uint64())
	}
	return s
}

// Solve runs attempts until one succeeds. It returns an error wrapping
// [ErrMaxAttempts] when a cap was configured and reached, and ctx.Err() when
// ctx is done before an attempt starts.
func (s *Solver) Solve(ctx context.Context) (SolveResult, error) {
	objective := s.descent.Objective
	if objective == nil {
		objective = ErrorFunction
	}
	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return SolveResult{Attempts: n - 1}, err
		}
		if s.maxAttempts > 0 && n > s.maxAttempts {
			return SolveResult{Attempts: n - 1}, fmt.Errorf("%w (%d)", ErrMaxAttempts, s.maxAttempts)
		}

		guess := s.sampler.Sample()
		if len(guess) != OctagonCoordinates {
			return SolveResult{Attempts: n - 1}, fmt.Errorf("sampler returned %d coordinates, want %d", len(guess), OctagonCoordinates)
		}
		res := s.descent.Run(guess)
		if s.hook != nil {
			s.hook(Attempt{Number: n, Result: res})
		}
		if !res.OK {
			s.logger.Debug("descent left the disk", "attempt", n, "iteration", res.Iterations)
			continue
		}

		oct, err := OctagonFromCoordinates(res.Coords)
		if err != nil {
			return SolveResult{Attempts: n}, err
		}
		value := objective(res.Coords)
		s.logger.Info("octagon solved", "attempts", n, "objective", value)
		return SolveResult{Octagon: oct, Attempts: n, Objective: value}, nil
	}
}
