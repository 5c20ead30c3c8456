// Package mathx holds the small vector helpers used by the glow animation.
package mathx

import "math"

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Offset subtracts d from both axes.
func (p Point) Offset(d float64) Point {
	return Point{X: p.X - d, Y: p.Y - d}
}

// Lerp moves p toward target by t on each axis independently.
func (p Point) Lerp(target Point, t float64) Point {
	return Point{X: Lerp(p.X, target.X, t), Y: Lerp(p.Y, target.Y, t)}
}

// Lerp returns the weighted average (1-t)*start + t*end.
func Lerp(start, end, t float64) float64 {
	return (1-t)*start + t*end
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Point) float64 {
	dx := (a.X - b.X) * (a.X - b.X)
	dy := (a.Y - b.Y) * (a.Y - b.Y)
	return math.Sqrt(dx + dy)
}

// Clamp bounds v to [lo, hi]. lo wins when lo > hi.
func Clamp(v, lo, hi float64) float64 {
	return math.Max(math.Min(v, hi), lo)
}

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
