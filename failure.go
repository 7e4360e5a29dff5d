package runout

import (
	"fmt"
	"slices"

	"honnef.co/go/runout/geom"
)

// FailureVolume is the failed mass in cross-section.
type FailureVolume struct {
	// Surface is the failure surface with its endpoints snapped to slope
	// vertices, oriented from the lower to the higher slope index.
	Surface geom.Polyline
	// Start and End are the slope indices the failure surface attaches to,
	// Start < End.
	Start, End int
	// Bounding is the section of the slope profile above the failure
	// surface.
	Bounding geom.Polyline
	Region   geom.Polygon
	// InSituArea is the area of Region. Area is InSituArea inflated by the
	// swell factor.
	InSituArea float64
	Area       float64
	// Ground is the slope profile with Bounding replaced by Surface.
	Ground geom.Polyline
}

// SnapFailure moves the endpoints of the failure surface onto their nearest
// slope vertices and returns the snapped copy together with the two vertex
// indices. Snapping an already snapped surface changes nothing.
func SnapFailure(slope, failure geom.Polyline) (geom.Polyline, int, int, error) {
	i0 := slope.NearestIndex(failure.First())
	i1 := slope.NearestIndex(failure.Last())
	if i0 == i1 {
		return nil, 0, 0, &geom.Error{
			Op:  "snap",
			Err: fmt.Errorf("%w: both ends snap to slope vertex %d", geom.ErrDegenerate, i0),
		}
	}

	out := slices.Clone(failure)
	out[0] = slope[i0]
	out[len(out)-1] = slope[i1]
	// Interior points that coincide with a snapped endpoint would leave a
	// zero-length segment behind.
	for len(out) > 2 && out[1] == out[0] {
		out = slices.Delete(out, 1, 2)
	}
	for len(out) > 2 && out[len(out)-2] == out[len(out)-1] {
		out = slices.Delete(out, len(out)-2, len(out)-1)
	}
	return out, i0, i1, nil
}

// BuildFailureVolume snaps the failure surface onto the slope profile and
// encloses the region between them.
func BuildFailureVolume(p Parameters, slope, failure geom.Polyline) (FailureVolume, error) {
	surface, i0, i1, err := SnapFailure(slope, failure)
	if err != nil {
		return FailureVolume{}, err
	}
	lo, hi := i0, i1
	if lo > hi {
		lo, hi = hi, lo
		surface = surface.Reverse()
	}

	var (
		head, bounding, tail geom.Polyline
		last                 = len(slope) - 1
	)
	switch {
	case lo == 0 && hi == last:
		// Nothing of the slope survives; the ground is the failure surface alone.
		bounding = slope
	case lo == 0:
		bounding, tail, err = slope.Split(slope[hi])
	case hi == last:
		head, bounding, err = slope.Split(slope[lo])
	default:
		var rest geom.Polyline
		head, rest, err = slope.Split(slope[lo])
		if err == nil {
			bounding, tail, err = rest.Split(slope[hi])
		}
	}
	if err != nil {
		return FailureVolume{}, err
	}

	ring, err := geom.Merge(surface, bounding)
	if err != nil {
		return FailureVolume{}, err
	}
	region, err := ring.Close()
	if err != nil {
		return FailureVolume{}, err
	}

	pieces := make([]geom.Polyline, 0, 3)
	if head != nil {
		pieces = append(pieces, head)
	}
	pieces = append(pieces, surface)
	if tail != nil {
		pieces = append(pieces, tail)
	}
	ground, err := geom.Merge(pieces...)
	if err != nil {
		return FailureVolume{}, err
	}

	area := region.Area()
	return FailureVolume{
		Surface:    surface,
		Start:      lo,
		End:        hi,
		Bounding:   bounding,
		Region:     region,
		InSituArea: area,
		Area:       area * p.SwellFactor,
		Ground:     ground,
	}, nil
}
