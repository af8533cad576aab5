// Package hyperbolic provides primitives and routines for constructing a regular
// octagon in the Poincaré disk model of the hyperbolic plane and for generating
// the neighbouring copies of that octagon that make up the local structure of a
// hyperbolic tiling.
//
// # Generalized circles
//
// Points, circles, and lines are all represented by one type,
// [GeneralizedCircle], which stores the coefficients (a, bx, by, c) of the
// implicit equation
//
//	a(x² + y²) + bx·x + by·y + c = 0
//
// Coefficient vectors that are scalar multiples of each other describe the same
// circle. When a is not negligible, the vector is normalized to a = 1; when it
// is, the vector describes a line. A point is the degenerate circle of radius
// zero, see [Point.Circle].
//
// All of the algebra is expressed through a single symmetric bilinear form Q on
// coefficient vectors, available as [GeneralizedCircle.Pair]. Two generalized
// circles are orthogonal when their pairing is zero, a circle's squared radius
// is its self-pairing divided by 2a, and the reflection (inversion) across a
// circle is the 4×4 matrix returned by [GeneralizedCircle.ReflectionMatrix].
//
// # Isometries
//
// Isometries of the disk are Möbius transformations, represented by [Isometry],
// a 4×4 matrix that acts on coefficient vectors. Points are moved by
// transforming their point-circle and taking the center of the result, see
// [Point.Transform]. Composition follows matrix multiplication: in A.Mul(B), B
// is applied first. [FindIsometry] constructs the unique direct isometry taking
// one segment onto another segment of the same hyperbolic length, as the product
// of two reflections across perpendicular bisectors.
//
// # Geodesics
//
// Hyperbolic lines are generalized circles orthogonal to the [Absolute] circle.
// [Geodesic] returns the line through two points, [Bisector] their perpendicular
// bisector, and [Distance] the hyperbolic distance between them.
//
// # Octagons and tilings
//
// A [Solver] finds an [Octagon] whose opposite sides pair up in length and
// whose interior angles sum to 2π by running a fixed-step gradient [Descent]
// from random initial guesses until one attempt stays inside the disk.
// [Generate] turns a solved octagon into a [Tiling] by composing the
// side-pairing isometries around each vertex. [Tiling.Edges] yields the edges
// in drawing order; each [Edge] knows its own [Edge.Geodesic].
//
// # Tolerances
//
// A single tolerance, [Epsilon], is used for every approximate comparison and
// degeneracy check. String methods round to three decimals for display only.
package hyperbolic
