// Package render draws tilings of the Poincaré disk as SVG.
package render

import (
	"fmt"
	"io"
	"iter"
	"math"

	svg "github.com/ajstarks/svgo/float"
	"github.com/jbeda/geom"
	"github.com/octatile/hyperbolic"
)

const absoluteStyle = "stroke:black;stroke-width:1;fill:none"

// Options control the size and look of the drawing. The disk has radius
// Scale and is centered at (Offset, Offset); the canvas is 2·Offset wide.
type Options struct {
	Scale       float64
	Offset      float64
	StrokeWidth float64
	// Colors is indexed by edge position modulo its length.
	Colors []string
}

func DefaultOptions() Options {
	return Options{
		Scale:       375,
		Offset:      400,
		StrokeWidth: 2,
		Colors:      []string{"red", "green", "red", "green", "blue", "purple", "blue", "purple"},
	}
}

// Canvas maps points of the disk to canvas coordinates. The y axis points
// down on the canvas.
type Canvas struct {
	opts Options
}

func NewCanvas(opts Options) Canvas {
	return Canvas{opts: opts}
}

func (c Canvas) Coord(p hyperbolic.Point) geom.Coord {
	return geom.Coord{
		X: math.Round(c.opts.Scale*p.X) + c.opts.Offset,
		Y: -math.Round(c.opts.Scale*p.Y) + c.opts.Offset,
	}
}

// Bounds returns the area covered by the canvas.
func (c Canvas) Bounds() geom.Rect {
	return geom.Rect{
		Min: geom.Coord{},
		Max: geom.Coord{X: 2 * c.opts.Offset, Y: 2 * c.opts.Offset},
	}
}

func (c Canvas) style(index int) string {
	color := "black"
	if n := len(c.opts.Colors); n > 0 {
		color = c.opts.Colors[((index%n)+n)%n]
	}
	return fmt.Sprintf("stroke:%s;stroke-width:%g;fill:none", color, c.opts.StrokeWidth)
}

// sweep reports whether the shorter arc from p1 to p2 around center runs
// clockwise in the disk. With the y axis flipped that is the SVG sweep flag.
func sweep(p1, p2, center hyperbolic.Point) bool {
	theta1 := math.Atan2(p1.Y-center.Y, p1.X-center.X)
	theta2 := math.Atan2(p2.Y-center.Y, p2.X-center.X)
	from1to2 := theta2 - theta1
	if from1to2 <= 0 {
		from1to2 += 2 * math.Pi
	}
	from2to1 := theta1 - theta2
	if from2to1 <= 0 {
		from2to1 += 2 * math.Pi
	}
	return from1to2 > from2to1
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(b)
	ew.err = err
	return n, err
}

// Render writes an SVG document showing the boundary of the disk and every
// edge as a segment of its geodesic. It returns the number of edges drawn.
func Render(w io.Writer, edges iter.Seq[hyperbolic.Edge], opts Options) (int, error) {
	if opts.Scale <= 0 {
		return 0, fmt.Errorf("render: scale must be positive, got %g", opts.Scale)
	}
	ew := &errWriter{w: w}
	c := NewCanvas(opts)
	canvas := svg.New(ew)

	bounds := c.Bounds()
	canvas.Start(bounds.Width(), bounds.Height())
	canvas.Circle(opts.Offset, opts.Offset, opts.Scale, absoluteStyle)

	var n int
	for e := range edges {
		if err := c.drawEdge(canvas, e); err != nil {
			return n, fmt.Errorf("drawing edge %v: %w", e, err)
		}
		n++
		if ew.err != nil {
			return n, ew.err
		}
	}
	canvas.End()
	return n, ew.err
}

func (c Canvas) drawEdge(canvas *svg.SVG, e hyperbolic.Edge) error {
	g, err := e.Geodesic()
	if err != nil {
		return err
	}
	s, t := c.Coord(e.P0), c.Coord(e.P1)
	style := c.style(e.Index)
	if g.IsLine() {
		canvas.Line(s.X, s.Y, t.X, t.Y, style)
		return nil
	}
	center, err := g.Center()
	if err != nil {
		return err
	}
	radius, err := g.Radius()
	if err != nil {
		return err
	}
	r := math.Round(radius * c.opts.Scale)
	canvas.Arc(s.X, s.Y, r, r, 0, false, sweep(e.P0, e.P1, center), t.X, t.Y, style)
	return nil
}
