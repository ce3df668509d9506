// Package geom provides the small amount of 2D vector math the simulation needs.
package geom

import "math"

// Point represents a 2D point (or vector) in world space
type Point struct {
	X, Y float64
}

// Add returns p+q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both components by s
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Len returns the Euclidean length of p
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Angle returns the direction of p in radians
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Normalize returns the unit vector pointing along p.
// A zero-length vector normalises to the zero vector, never to NaN.
func (p Point) Normalize() Point {
	l := p.Len()
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// ClampBounds clamps both axes to [-limit, limit]
func (p Point) ClampBounds(limit float64) Point {
	return Point{X: Clamp(p.X, -limit, limit), Y: Clamp(p.Y, -limit, limit)}
}

// InBounds reports whether both axes are within [-limit, limit]
func (p Point) InBounds(limit float64) bool {
	return p.X >= -limit && p.X <= limit && p.Y >= -limit && p.Y <= limit
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Polar returns the point at the given angle and radius from the origin
func Polar(angle, radius float64) Point {
	return Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
