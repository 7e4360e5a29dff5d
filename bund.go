package runout

import (
	"math"

	"honnef.co/go/runout/geom"
)

// FrictionAngle is the internal friction angle of bund fill in degrees. The
// bund's side slopes stand at this angle.
const FrictionAngle = 37.0

// Bund is a containment bund in cross-section.
type Bund struct {
	// Outline is the bund's toe alone when it has no height, or its toe,
	// crest and heel.
	Outline []geom.Point `json:"outline"`
	// Ref is the point the runout line starts from: the crest, or the toe
	// when there is no bund.
	Ref    geom.Point `json:"ref"`
	Height float64    `json:"height"`
	Width  float64    `json:"width"`
}

// HasBody reports whether the bund has a height.
func (b Bund) HasBody() bool { return len(b.Outline) == 3 }

// Toe returns the bund's outer foot, at the standoff from the slope toe.
func (b Bund) Toe() geom.Point { return b.Outline[0] }

// Crest returns the top of the bund. It is the toe if the bund has no body.
func (b Bund) Crest() geom.Point { return b.Ref }

// Heel returns the bund's inner foot, facing the slope. It is the toe if
// the bund has no body.
func (b Bund) Heel() geom.Point { return b.Outline[len(b.Outline)-1] }

// BundWidth returns the base width of a bund of the given height whose
// sides stand at frictionAngle degrees.
func BundWidth(height, frictionAngle float64) float64 {
	return 2 * height / math.Tan(radians(frictionAngle))
}

// BuildBund places a bund at p.Standoff from origin, the first point of the
// slope profile, on the side the slope faces.
func BuildBund(p Parameters, origin geom.Point, frictionAngle float64) Bund {
	s := p.Direction.sign()
	toe := geom.Pt(origin.X+s*p.Standoff, origin.Y)
	if p.BundHeight <= 0 {
		return Bund{
			Outline: []geom.Point{toe},
			Ref:     toe,
		}
	}

	w := BundWidth(p.BundHeight, frictionAngle)
	crest := geom.Pt(toe.X-s*0.5*w, origin.Y+p.BundHeight)
	heel := geom.Pt(toe.X-s*w, origin.Y)
	return Bund{
		Outline: []geom.Point{toe, crest, heel},
		Ref:     crest,
		Height:  p.BundHeight,
		Width:   w,
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
