package geom

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewPolyline(t *testing.T) {
	if _, err := NewPolyline(Pt(0, 0)); !errors.Is(err, ErrDegenerate) {
		t.Errorf("single point: got %v, want ErrDegenerate", err)
	}
	if _, err := NewPolyline(Pt(0, 0), Pt(1, 1), Pt(1, 1)); !errors.Is(err, ErrDegenerate) {
		t.Errorf("repeated point: got %v, want ErrDegenerate", err)
	}

	in := []Point{Pt(0, 0), Pt(1, 1)}
	pl, err := NewPolyline(in...)
	if err != nil {
		t.Fatal(err)
	}
	in[0] = Pt(9, 9)
	diff(t, pl.First(), Pt(0, 0))
}

func TestNearestIndex(t *testing.T) {
	pl := pts(0, 0, 3.5, 5.2, 6.4, 11.6, 7.1, 16.5)
	tests := []struct {
		pt   Point
		want int
	}{
		{Pt(6.4, 11.6), 2},
		{Pt(6.5, 11.7), 2},
		{Pt(-5, -5), 0},
		{Pt(100, 100), 3},
	}
	for _, tt := range tests {
		if got := pl.NearestIndex(tt.pt); got != tt.want {
			t.Errorf("NearestIndex(%s) = %d, want %d", tt.pt, got, tt.want)
		}
	}
}

func TestNearestIndexTieBreak(t *testing.T) {
	// (5, 0) is equidistant from vertices 0, 1 and 3.
	pl := pts(0, 0, 10, 0, 10, 10, 5, 5)
	if got := pl.NearestIndex(Pt(5, 0)); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
	// Equidistant from 1 and 3 only.
	pl = pts(0, 3, 10, 0, 10, 10, 5, 5, 0, 0)
	if got := pl.NearestIndex(Pt(7.5, 2.5)); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestSplit(t *testing.T) {
	pl := pts(0, 0, 10, 0, 10, 10, 0, 10)

	before, after, err := pl.Split(Pt(10, 0))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, before, pts(0, 0, 10, 0))
	diff(t, after, pts(10, 0, 10, 10, 0, 10))

	before, after, err = pl.Split(Pt(10, 4))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, before, pts(0, 0, 10, 0, 10, 4))
	diff(t, after, pts(10, 4, 10, 10, 0, 10))

	// Off by less than epsilon still counts as being on the line.
	before, _, err = pl.Split(Pt(5, Epsilon/10))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, len(before), 2)
}

func TestSplitErrors(t *testing.T) {
	pl := pts(0, 0, 10, 0, 10, 10)
	tests := []struct {
		pt   Point
		want error
	}{
		{Pt(5, 1), ErrNotOnPolyline},
		{Pt(0, 0), ErrDegenerate},
		{Pt(10, 10), ErrDegenerate},
	}
	for _, tt := range tests {
		_, _, err := pl.Split(tt.pt)
		if !errors.Is(err, tt.want) {
			t.Errorf("Split(%s): got %v, want %v", tt.pt, err, tt.want)
		}
		if !IsDegenerate(err) {
			t.Errorf("Split(%s): %v is not a geometry error", tt.pt, err)
		}
	}
}

func TestIntersect(t *testing.T) {
	// A zig-zag crossed by a horizontal line three times.
	pl := pts(0, 0, 2, 10, 4, 0, 6, 10)
	probe := Line{Pt(-1, 5), Pt(10, 5)}
	got := pl.Intersect(probe)
	diff(t, got, []Point{Pt(1, 5), Pt(3, 5), Pt(5, 5)}, cmpopts.EquateApprox(0, 1e-9))

	// Reversing the polyline reverses the order of hits.
	got = pl.Reverse().Intersect(probe)
	diff(t, got, []Point{Pt(5, 5), Pt(3, 5), Pt(1, 5)}, cmpopts.EquateApprox(0, 1e-9))

	if got := pl.Intersect(Line{Pt(-1, 20), Pt(10, 20)}); len(got) != 0 {
		t.Errorf("expected no intersections, got %v", got)
	}
}

func TestIntersectAtVertex(t *testing.T) {
	pl := pts(0, 0, 5, 5, 10, 0)
	got := pl.Intersect(Line{Pt(5, -1), Pt(5, 10)})
	diff(t, got, []Point{Pt(5, 5)}, cmpopts.EquateApprox(0, 1e-9))
}

func TestFirstIntersection(t *testing.T) {
	pl := pts(0, 0, 10, 10)
	pt, err := pl.FirstIntersection(Line{Pt(0, 10), Pt(10, 0)})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, pt, Pt(5, 5), cmpopts.EquateApprox(0, 1e-9))

	if _, err := pl.FirstIntersection(Line{Pt(20, 0), Pt(30, 0)}); !errors.Is(err, ErrNoIntersection) {
		t.Errorf("got %v, want ErrNoIntersection", err)
	}
}

func TestMerge(t *testing.T) {
	a := pts(0, 0, 1, 1)
	b := pts(1, 1, 2, 0)
	c := pts(3, 3, 2, 0)

	got, err := Merge(a, b, c)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, got, pts(0, 0, 1, 1, 2, 0, 3, 3))

	// The first piece is flipped to meet the second.
	got, err = Merge(b.Reverse(), c)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, got, pts(1, 1, 2, 0, 3, 3))

	got, err = Merge(a)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, got, a)

	if _, err := Merge(a, pts(5, 5, 6, 6)); !errors.Is(err, ErrDisjoint) {
		t.Errorf("got %v, want ErrDisjoint", err)
	}
	if _, err := Merge(); !errors.Is(err, ErrDegenerate) {
		t.Errorf("got %v, want ErrDegenerate", err)
	}
}

func TestMergeDoesNotModifyInputs(t *testing.T) {
	a := pts(0, 0, 1, 1)
	b := pts(2, 0, 1, 1)
	if _, err := Merge(a, b); err != nil {
		t.Fatal(err)
	}
	diff(t, b, pts(2, 0, 1, 1))
}

func TestPolylineLength(t *testing.T) {
	pl := pts(0, 0, 3, 4, 3, 10)
	diff(t, pl.Length(), 11.0)
}

func TestPolylineBoundingBox(t *testing.T) {
	pl := pts(0, 5, 3, -4, -3, 10)
	diff(t, pl.BoundingBox(), Rect{-3, -4, 3, 10})
	if !BoundingBox().IsEmpty() {
		t.Error("bounding box of no points should be empty")
	}
}
