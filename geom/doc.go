// Package geom provides the planar primitives used to build runout
// cross-sections: points, vectors, line segments, polylines and polygons,
// together with the handful of operations the builders need on them.
//
// # Polylines
//
// A [Polyline] is an ordered sequence of at least two points with no two
// consecutive points identical. Order is significant: slope profiles run
// from the toe toward the crest, and several operations ([Polyline.Split],
// [Polyline.Intersect], [Merge]) are defined in terms of traversal order.
// Polylines are expected to be simple, but this is not checked.
//
// # Polygons
//
// A [Polygon] is a closed ring obtained from a polyline with
// [Polyline.Close]. The closing edge is implicit. [Polygon.Area] is the
// absolute shoelace area.
//
// # Tolerances
//
// Coordinates fed to this package are normally rounded to one decimal
// place, while intersection points are computed in full precision. Point
// comparisons that decide whether a point lies on a polyline or whether two
// pieces share an endpoint use [Epsilon].
//
// # Errors
//
// Operations that can fail on degenerate input return a [*Error] wrapping
// one of [ErrNotOnPolyline], [ErrNoIntersection], [ErrDisjoint] or
// [ErrDegenerate]. None of these indicate a programming error; callers are
// expected to fall back to something sensible.
package geom
