package runout

import (
	"honnef.co/go/runout/geom"
)

// DefaultRayLength is the length of the runout line in metres. It only has
// to exceed the width of any realistic cross-section.
const DefaultRayLength = 1000.0

// CatchCapacity is the space available to catch runout in cross-section.
type CatchCapacity struct {
	Ray geom.Line
	// Hit is where the runout line first meets the ground.
	Hit geom.Point
	// Profile is the ground from its first point up to Hit.
	Profile geom.Polyline
	// Closing runs from the bund heel, if there is a bund, over the
	// reference point to Hit.
	Closing geom.Polyline
	Region  geom.Polygon
	Area    float64
}

// RunoutRay returns the runout line of the given length starting at from.
// It rises at p.RunoutAngle toward the slope: to the right for left-facing
// slopes, to the left for right-facing ones.
func RunoutRay(p Parameters, from geom.Point, length float64) geom.Line {
	dir := geom.VecFromAngle(radians(p.RunoutAngle))
	dir.X *= -p.Direction.sign()
	return geom.Line{P0: from, P1: from.Translate(dir.Mul(length))}
}

// BuildCatchCapacity projects the runout line from the bund onto ground and
// encloses the region below it.
func BuildCatchCapacity(p Parameters, bund Bund, ground geom.Polyline, rayLength float64) (CatchCapacity, error) {
	ray := RunoutRay(p, bund.Ref, rayLength)
	hit, err := ground.FirstIntersection(ray)
	if err != nil {
		return CatchCapacity{}, err
	}

	var profile geom.Polyline
	switch {
	case hit.Near(ground.First()):
		// The line meets the ground at its very first point; only the bund
		// bounds the region.
	case hit.Near(ground.Last()):
		profile = ground
	default:
		profile, _, err = ground.Split(hit)
		if err != nil {
			return CatchCapacity{}, err
		}
	}

	closing := make(geom.Polyline, 0, 3)
	if bund.HasBody() {
		closing = append(closing, bund.Heel())
	}
	closing = append(closing, bund.Ref, hit)

	ring := closing
	if profile != nil {
		ring, err = geom.Merge(profile, closing)
		if err != nil {
			return CatchCapacity{}, err
		}
	}
	region, err := ring.Close()
	if err != nil {
		return CatchCapacity{}, err
	}

	return CatchCapacity{
		Ray:     ray,
		Hit:     hit,
		Profile: profile,
		Closing: closing,
		Region:  region,
		Area:    region.Area(),
	}, nil
}
