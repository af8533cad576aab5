package hyperbolic

import (
	"context"
	"errors"
	"math"
	"testing"
)

// outward is an objective whose gradient steadily pushes the first vertex
// along the positive x axis.
func outward(x []float64) float64 {
	return -x[0]
}

type fixedSampler struct {
	guesses [][]float64
	n       int
}

func (s *fixedSampler) Sample() []float64 {
	g := s.guesses[min(s.n, len(s.guesses)-1)]
	s.n++
	return append([]float64(nil), g...)
}

func guessWithFirstX(x float64) []float64 {
	g := make([]float64, OctagonCoordinates)
	g[0] = x
	return g
}

func TestDescentRegularOctagon(t *testing.T) {
	start := RegularOctagon().Coordinates()
	res := DefaultDescent().Run(start)
	if !res.OK {
		t.Fatalf("descent from a solution failed after %d iterations", res.Iterations)
	}
	if res.Iterations != DefaultIterations {
		t.Errorf("got %d iterations, want %d", res.Iterations, DefaultIterations)
	}
	for i := range start {
		if d := math.Abs(res.Coords[i] - start[i]); d > 1e-9 {
			t.Errorf("coordinate %d moved by %g", i, d)
		}
	}
	if e := ErrorFunction(res.Coords); e > 1e-12 {
		t.Errorf("objective is %g", e)
	}
}

func TestDescentLeavesDisk(t *testing.T) {
	d := DefaultDescent()
	d.Objective = outward
	start := guessWithFirstX(0.95)
	res := d.Run(start)
	if res.OK {
		t.Fatal("descent succeeded although a vertex left the disk")
	}
	if len(res.Coords) != OctagonCoordinates {
		t.Errorf("got %d coordinates, want %d", len(res.Coords), OctagonCoordinates)
	}
	if res.Coords[0] < 1 {
		t.Errorf("first coordinate is %v, expected it outside the disk", res.Coords[0])
	}
	if res.Iterations < 49 || res.Iterations > 51 {
		t.Errorf("aborted after %d iterations, expected about 50", res.Iterations)
	}
	if start[0] != 0.95 {
		t.Error("descent modified its input")
	}
}

func TestDescentFixedSteps(t *testing.T) {
	d := DefaultDescent()
	d.Objective = outward
	res := d.Run(guessWithFirstX(0))
	if !res.OK {
		t.Fatal("descent failed")
	}
	if want := DefaultIterations * DefaultStep; math.Abs(res.Coords[0]-want) > 1e-9 {
		t.Errorf("got %v, want %v", res.Coords[0], want)
	}
}

func TestSectorSampler(t *testing.T) {
	s := NewSectorSampler(1)
	for range 100 {
		g := s.Sample()
		if len(g) != OctagonCoordinates {
			t.Fatalf("got %d coordinates", len(g))
		}
		for j := range 8 {
			x, y := g[2*j], g[2*j+1]
			r := math.Hypot(x, y)
			if r < DefaultMinRadius-1e-12 || r > DefaultMaxRadius+1e-12 {
				t.Errorf("vertex %d has radius %v", j, r)
			}
			angle := math.Atan2(y, x)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			lo := float64(j) * math.Pi / 4
			if angle < lo-1e-9 || angle > lo+math.Pi/4+1e-9 {
				t.Errorf("vertex %d has angle %v outside its sector", j, angle)
			}
		}
	}

	a, b := NewSectorSampler(42), NewSectorSampler(42)
	diff(t, a.Sample(), b.Sample())
}

func TestSolverRetries(t *testing.T) {
	d := DefaultDescent()
	d.Objective = outward
	sampler := &fixedSampler{guesses: [][]float64{guessWithFirstX(0.95), guessWithFirstX(0)}}
	var attempts []Attempt
	s := NewSolver(
		WithSampler(sampler),
		WithDescent(d),
		WithAttemptHook(func(a Attempt) { attempts = append(attempts, a) }),
	)
	res, err := s.Solve(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Attempts != 2 || res.Failures() != 1 {
		t.Errorf("got %d attempts and %d failures, want 2 and 1", res.Attempts, res.Failures())
	}
	if len(attempts) != 2 || attempts[0].Result.OK || !attempts[1].Result.OK || attempts[1].Number != 2 {
		t.Errorf("unexpected attempts %+v", attempts)
	}
	if math.Abs(res.Octagon[0].X-0.2) > 1e-9 {
		t.Errorf("got first vertex %v", res.Octagon[0])
	}
	if math.Abs(res.Objective+0.2) > 1e-9 {
		t.Errorf("got objective %v, want -0.2", res.Objective)
	}
}

func TestSolverMaxAttempts(t *testing.T) {
	d := DefaultDescent()
	d.Objective = outward
	s := NewSolver(
		WithSampler(&fixedSampler{guesses: [][]float64{guessWithFirstX(0.95)}}),
		WithDescent(d),
		WithMaxAttempts(3),
	)
	res, err := s.Solve(context.Background())
	if !errors.Is(err, ErrMaxAttempts) {
		t.Fatalf("got error %v, want %v", err, ErrMaxAttempts)
	}
	if res.Attempts != 3 {
		t.Errorf("got %d attempts, want 3", res.Attempts)
	}
}

func TestSolverCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := NewSolver().Solve(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got error %v, want %v", err, context.Canceled)
	}
	if res.Attempts != 0 {
		t.Errorf("got %d attempts, want 0", res.Attempts)
	}
}

func TestSolverBadSampler(t *testing.T) {
	s := NewSolver(WithSampler(&fixedSampler{guesses: [][]float64{make([]float64, 4)}}))
	if _, err := s.Solve(context.Background()); err == nil {
		t.Error("expected an error for a short guess")
	}
}

func TestInsideDisk(t *testing.T) {
	coords := RegularOctagon().Coordinates()
	if !insideDisk(coords) {
		t.Fatal("regular octagon reported outside")
	}
	coords[5] = math.NaN()
	if insideDisk(coords) {
		t.Error("NaN coordinate reported inside")
	}
}

func TestSolverConverges(t *testing.T) {
	s := NewSolver(WithSampler(NewSectorSampler(1)), WithMaxAttempts(500))
	res, err := s.Solve(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	o := res.Octagon
	if !o.Inside() {
		t.Fatalf("%v left the disk", o)
	}
	if s := o.AngleSum(); math.Abs(s-2*math.Pi) > 1e-4 {
		t.Errorf("angle sum is %v, want 2π", s)
	}
	sides := o.SideLengths()
	for _, i := range pairedSides {
		if d := math.Abs(sides[i] - sides[i+2]); d > 1e-5 {
			t.Errorf("sides %d and %d differ by %g", i, i+2, d)
		}
	}
	if res.Objective > 1e-8 {
		t.Errorf("objective is %g", res.Objective)
	}

	tiling, err := Generate(o, DefaultPairing, DefaultDepth)
	if err != nil {
		t.Fatal(err)
	}
	for j, chain := range tiling.Chains {
		if n := sharedEdges(o, chain[0]); n != 1 {
			t.Errorf("chain %d: first image shares %d edges with the base, want 1", j, n)
		}
	}
}
