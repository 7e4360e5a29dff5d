package geom

import (
	"iter"
	"slices"
)

// Epsilon is the distance below which two points are considered the same.
const Epsilon = 1e-6

// Polyline is an ordered sequence of points joined by straight segments.
//
// Use [NewPolyline] to construct polylines from untrusted input. The methods
// of Polyline assume at least two points and no identical consecutive
// points.
type Polyline []Point

// NewPolyline returns a polyline through pts. It fails if fewer than two
// points are given or if two consecutive points are identical. The points
// are copied.
func NewPolyline(pts ...Point) (Polyline, error) {
	if len(pts) < 2 {
		return nil, opError("polyline", ErrDegenerate, "need at least 2 points, got %d", len(pts))
	}
	for i := 1; i < len(pts); i++ {
		if pts[i] == pts[i-1] {
			return nil, opError("polyline", ErrDegenerate, "points %d and %d are identical %s", i-1, i, pts[i])
		}
	}
	return slices.Clone(Polyline(pts)), nil
}

func (pl Polyline) First() Point { return pl[0] }
func (pl Polyline) Last() Point  { return pl[len(pl)-1] }

// Segment returns the i'th segment, from pl[i] to pl[i+1].
func (pl Polyline) Segment(i int) Line {
	return Line{pl[i], pl[i+1]}
}

// Segments iterates over the segments of the polyline in traversal order.
func (pl Polyline) Segments() iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		for i := 0; i+1 < len(pl); i++ {
			if !yield(i, pl.Segment(i)) {
				return
			}
		}
	}
}

// Length returns the arc length of the polyline.
func (pl Polyline) Length() float64 {
	var l float64
	for _, seg := range pl.Segments() {
		l += seg.Length()
	}
	return l
}

// Reverse returns a copy of pl with the order of points reversed.
func (pl Polyline) Reverse() Polyline {
	out := slices.Clone(pl)
	slices.Reverse(out)
	return out
}

func (pl Polyline) Transform(aff Affine) Polyline {
	out := make(Polyline, len(pl))
	for i, pt := range pl {
		out[i] = pt.Transform(aff)
	}
	return out
}

func (pl Polyline) BoundingBox() Rect {
	return BoundingBox(pl...)
}

// NearestIndex returns the index of the vertex closest to pt. Ties are
// broken in favour of the lowest index.
func (pl Polyline) NearestIndex(pt Point) int {
	best := -1
	var bestDist float64
	for i, v := range pl {
		if d := v.DistanceSquared(pt); best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Locate finds the first segment, in traversal order, that passes within
// [Epsilon] of pt. It returns the segment's index and the parameter of the
// closest point on it.
func (pl Polyline) Locate(pt Point) (seg int, t float64, ok bool) {
	for i, l := range pl.Segments() {
		if d, t := l.Nearest(pt); d <= Epsilon*Epsilon {
			return i, t, true
		}
	}
	return 0, 0, false
}

// Contains reports whether pt lies on the polyline.
func (pl Polyline) Contains(pt Point) bool {
	_, _, ok := pl.Locate(pt)
	return ok
}

// Split splits the polyline at pt, which must lie on it. The returned
// polylines share pt as the last point of before and the first point of
// after.
//
// Splitting at either endpoint fails with [ErrDegenerate], as one of the
// halves would consist of a single point.
func (pl Polyline) Split(pt Point) (before, after Polyline, err error) {
	i, _, ok := pl.Locate(pt)
	if !ok {
		return nil, nil, opError("split", ErrNotOnPolyline, "%s", pt)
	}

	k := -1
	switch {
	case pt.Near(pl[i]):
		k = i
	case pt.Near(pl[i+1]):
		k = i + 1
	}
	if k == 0 || k == len(pl)-1 {
		return nil, nil, opError("split", ErrDegenerate, "%s is an endpoint", pt)
	}

	if k != -1 {
		before = slices.Clone(pl[:k+1])
		after = slices.Clone(pl[k:])
		return before, after, nil
	}

	before = make(Polyline, 0, i+2)
	before = append(before, pl[:i+1]...)
	before = append(before, pt)
	after = make(Polyline, 0, len(pl)-i)
	after = append(after, pt)
	after = append(after, pl[i+1:]...)
	return before, after, nil
}

// Intersect returns every point at which l crosses the polyline, ordered by
// the polyline's traversal order. A crossing at a vertex shared by two
// segments is reported once. Collinear overlaps are not reported.
func (pl Polyline) Intersect(l Line) []Point {
	var out []Point
	for _, seg := range pl.Segments() {
		li, ok := seg.IntersectLine(l)
		if !ok {
			continue
		}
		pt := seg.Eval(min(max(li.SegmentT, 0), 1))
		if len(out) > 0 && out[len(out)-1].Near(pt) {
			continue
		}
		out = append(out, pt)
	}
	return out
}

// FirstIntersection returns the first point, in traversal order, at which l
// crosses the polyline.
func (pl Polyline) FirstIntersection(l Line) (Point, error) {
	pts := pl.Intersect(l)
	if len(pts) == 0 {
		return Point{}, opError("intersect", ErrNoIntersection, "")
	}
	return pts[0], nil
}

// Merge concatenates polylines that share endpoints into one continuous
// polyline, in the order given. A piece that attaches by its last point is
// reversed before being appended. The first piece is reversed if that is
// what it takes to attach the second one.
func Merge(lines ...Polyline) (Polyline, error) {
	if len(lines) == 0 {
		return nil, opError("merge", ErrDegenerate, "nothing to merge")
	}
	out := slices.Clone(lines[0])
	for i, next := range lines[1:] {
		if i == 0 && !out.Last().Near(next.First()) && !out.Last().Near(next.Last()) {
			if out.First().Near(next.First()) || out.First().Near(next.Last()) {
				slices.Reverse(out)
			}
		}
		switch {
		case out.Last().Near(next.First()):
		case out.Last().Near(next.Last()):
			next = next.Reverse()
		default:
			return nil, opError("merge", ErrDisjoint, "piece %d ends at %s, piece %d spans %s to %s",
				i, out.Last(), i+1, next.First(), next.Last())
		}
		out = append(out, next[1:]...)
	}
	return out, nil
}

// Close closes the polyline into a polygon. If the polyline already ends
// where it starts, the duplicate closing point is dropped.
func (pl Polyline) Close() (Polygon, error) {
	ring := slices.Clone(pl)
	if len(ring) > 1 && ring.Last().Near(ring.First()) {
		ring = ring[:len(ring)-1]
	}
	poly := Polygon(ring)
	if len(poly) < 3 {
		return nil, opError("close", ErrDegenerate, "ring has %d distinct points", len(poly))
	}
	if poly.Area() <= Epsilon*Epsilon {
		return nil, opError("close", ErrDegenerate, "ring has no area")
	}
	return poly, nil
}
