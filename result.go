package runout

import (
	"fmt"

	"honnef.co/go/runout/geom"
)

// Region is a closed cross-section and its area in m³/m.
type Region struct {
	Polygon geom.Polygon `json:"polygon"`
	Area    float64      `json:"area"`
	// InSituArea is the area before swelling, for failure volumes.
	InSituArea float64 `json:"in_situ_area,omitempty"`
}

// Result is the outcome of a runout computation.
type Result struct {
	Parameters Parameters `json:"parameters"`
	Bund       Bund       `json:"bund"`
	// FailureRegion is nil if the failure surface couldn't be attached to
	// the slope profile.
	FailureRegion *Region `json:"failure_region,omitempty"`
	// CatchCapacity is nil if the runout line doesn't meet the ground.
	CatchCapacity *Region `json:"catch_capacity,omitempty"`

	SlopeProfile geom.Polyline `json:"slope_profile"`
	// FailureSurface is the failure surface as used, with its endpoints
	// snapped onto the slope profile.
	FailureSurface geom.Polyline `json:"failure_surface,omitempty"`
	// Surface is the ground the runout line was projected onto.
	Surface geom.Polyline `json:"surface"`
	// Runout runs from the bund's reference point to where it meets the
	// ground, or to its full length if it doesn't.
	Runout geom.Polyline `json:"runout"`

	// Extent encloses the slope profile, the bund and every region.
	Extent geom.Rect `json:"extent"`
	// Warnings explains every optional part that was left out.
	Warnings []string `json:"warnings,omitempty"`
}

func (r *Result) extent() geom.Rect {
	ext := r.SlopeProfile.BoundingBox().
		Union(geom.BoundingBox(r.Bund.Outline...)).
		Union(r.FailureSurface.BoundingBox())
	if r.FailureRegion != nil {
		ext = ext.Union(r.FailureRegion.Polygon.BoundingBox())
	}
	if r.CatchCapacity != nil {
		ext = ext.Union(r.CatchCapacity.Polygon.BoundingBox())
	}
	return ext
}

// Label is a human-readable description of one part of a result.
type Label struct {
	Name string
	Text string
}

// Labels returns descriptions of the bund and of every computed region,
// such as "Failure volume = 12.3 m³/m".
func (r *Result) Labels() []Label {
	var out []Label
	if r.Bund.HasBody() {
		out = append(out, Label{"bund", fmt.Sprintf("Bund = %.1f m", r.Bund.Height)})
	}
	if r.FailureRegion != nil {
		out = append(out, Label{"failure_volume", fmt.Sprintf("Failure volume = %.1f m³/m", r.FailureRegion.Area)})
	}
	if r.CatchCapacity != nil {
		out = append(out, Label{"catch_capacity", fmt.Sprintf("Catch capacity = %.1f m³/m", r.CatchCapacity.Area)})
	}
	return out
}

// Summary returns the text of [Result.Labels].
func (r *Result) Summary() []string {
	labels := r.Labels()
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = l.Text
	}
	return out
}
