// Package runout computes runout geometry for open-pit slope failure
// analysis.
//
// Given a slope profile, a failure surface and a set of design [Parameters],
// [Compute] derives three cross-sections and their areas:
//
//   - the containment bund placed at a standoff from the slope toe,
//   - the failure volume enclosed between the failure surface and the slope
//     profile, inflated by the swell factor,
//   - the catch capacity: the area between the slope, the bund and the
//     runout line projected from the bund crest at the runout angle.
//
// All areas are per metre of slope length (m³/m).
//
// # Facing direction
//
// A left-facing slope rises away from the bund in the positive x direction:
// the bund is placed to the left of the first slope point and the runout
// line travels to the right. A right-facing slope is the mirror image.
//
// # Partial results
//
// Only malformed input makes [Compute] fail. The failure volume and the
// catch capacity are optional: when the geometry doesn't permit them (a
// failure surface that doesn't attach to the slope, a runout line that
// never meets the ground) they are left out of the [Result] and the reason
// is recorded in [Result.Warnings].
//
// # Projecting to the backscarp
//
// With [Parameters.ProjectToBackscarp] set, the runout line is intersected
// with the ground as it is after failure, that is the slope profile with the
// failed section replaced by the failure surface. Otherwise the original
// slope profile is used.
package runout
