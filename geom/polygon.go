package geom

import "math"

// Polygon is a closed ring. The edge from the last point back to the first
// is implicit.
type Polygon []Point

// SignedArea returns the shoelace area of the ring: positive for
// counter-clockwise rings in a y-up space, negative for clockwise ones.
func (p Polygon) SignedArea() float64 {
	var a float64
	for i, pt := range p {
		next := p[(i+1)%len(p)]
		a += Vec2(pt).Cross(Vec2(next))
	}
	return a * 0.5
}

// Area returns the absolute area of the ring.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Perimeter returns the length of the boundary, closing edge included.
func (p Polygon) Perimeter() float64 {
	var l float64
	for i, pt := range p {
		l += pt.Distance(p[(i+1)%len(p)])
	}
	return l
}

// Exterior returns the ring with the first point repeated at the end.
func (p Polygon) Exterior() Polyline {
	out := make(Polyline, 0, len(p)+1)
	out = append(out, p...)
	return append(out, p[0])
}

func (p Polygon) BoundingBox() Rect {
	return BoundingBox(p...)
}

func (p Polygon) Transform(aff Affine) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = pt.Transform(aff)
	}
	return out
}
