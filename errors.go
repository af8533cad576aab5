package hyperbolic

import "errors"

// ErrDegenerateInput is returned when all coefficients of a generalized circle
// are zero within [Epsilon].
var ErrDegenerateInput = errors.New("degenerate generalized circle coefficients")

// ErrUndefinedForLine is returned when asking a line for its center or radius.
var ErrUndefinedForLine = errors.New("undefined for a line")

// ErrZeroRadiusCircle is returned when reflecting across a point-circle.
var ErrZeroRadiusCircle = errors.New("reflection across a zero-radius circle")

// ErrNoUniqueSolution is returned when a null space does not have the expected
// dimension, which happens for coincident or otherwise dependent inputs.
var ErrNoUniqueSolution = errors.New("no unique solution")

// ErrCoincidentPoints is returned when a construction needs two distinct points.
var ErrCoincidentPoints = errors.New("points coincide")

// ErrLengthMismatch is returned by [FindIsometry] when the two segments have
// different hyperbolic lengths.
var ErrLengthMismatch = errors.New("segments have different lengths")

// ErrNumericalInstability is returned when floating point error breaks an
// invariant that holds in exact arithmetic.
var ErrNumericalInstability = errors.New("numerical instability")

// ErrInvalidPairing is returned for side pairings that are not involutions or
// whose vertex walk is not a single cycle.
var ErrInvalidPairing = errors.New("invalid side pairing")

// ErrMaxAttempts is returned by [Solver.Solve] when the configured maximum
// number of attempts was used up without a successful descent.
var ErrMaxAttempts = errors.New("maximum number of attempts reached")
