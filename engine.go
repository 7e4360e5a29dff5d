package runout

import (
	"errors"
	"fmt"
	"log"

	"honnef.co/go/runout/geom"
)

// Engine computes runout geometry. The zero value is ready to use. An
// Engine is safe for concurrent use; it holds no state between
// computations.
type Engine struct {
	// Logger receives one line for every optional result that had to be
	// left out. If nil, log.Default is used.
	Logger *log.Logger
	// RayLength overrides DefaultRayLength if positive.
	RayLength float64
	// FrictionAngle overrides the FrictionAngle constant if positive.
	FrictionAngle float64
}

func (e *Engine) logger() *log.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return log.Default()
}

func (e *Engine) rayLength() float64 {
	if e.RayLength > 0 {
		return e.RayLength
	}
	return DefaultRayLength
}

func (e *Engine) frictionAngle() float64 {
	if e.FrictionAngle > 0 {
		return e.FrictionAngle
	}
	return FrictionAngle
}

// Compute runs [Engine.Compute] on a zero Engine.
func Compute(p Parameters, slope, failure []geom.Point) (*Result, error) {
	var e Engine
	return e.Compute(p, slope, failure)
}

// Compute builds the bund, the failure volume and the catch capacity, in
// that order.
//
// The slope profile must run from the toe toward the crest. The failure
// surface may be empty, in which case there is no failure volume and the
// runout line is projected onto the slope profile.
//
// Compute only fails if p is out of its domain or if either polyline is
// malformed; such errors are [*ConfigError] values. Geometry that doesn't
// permit a failure volume or a catch capacity results in a partial Result.
func (e *Engine) Compute(p Parameters, slope, failure []geom.Point) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	sp, err := geom.NewPolyline(slope...)
	if err != nil {
		return nil, &ConfigError{Field: "slope_profile", Reason: errReason(err)}
	}
	var fs geom.Polyline
	if len(failure) > 0 {
		fs, err = geom.NewPolyline(failure...)
		if err != nil {
			return nil, &ConfigError{Field: "failure_surface", Reason: errReason(err)}
		}
	}

	res := &Result{
		Parameters:     p,
		SlopeProfile:   sp,
		FailureSurface: fs,
		Surface:        sp,
	}

	res.Bund = BuildBund(p, sp.First(), e.frictionAngle())

	if fs != nil {
		fv, err := BuildFailureVolume(p, sp, fs)
		if err != nil {
			e.warn(res, "failure volume", err)
		} else {
			res.FailureSurface = fv.Surface
			res.FailureRegion = &Region{
				Polygon:    fv.Region,
				Area:       fv.Area,
				InSituArea: fv.InSituArea,
			}
			if p.ProjectToBackscarp {
				res.Surface = fv.Ground
			}
		}
	}

	cc, err := BuildCatchCapacity(p, res.Bund, res.Surface, e.rayLength())
	if err != nil {
		e.warn(res, "catch capacity", err)
		ray := RunoutRay(p, res.Bund.Ref, e.rayLength())
		res.Runout = geom.Polyline{ray.P0, ray.P1}
	} else {
		res.CatchCapacity = &Region{Polygon: cc.Region, Area: cc.Area}
		res.Runout = geom.Polyline{cc.Ray.P0, cc.Hit}
	}

	res.Extent = res.extent()
	return res, nil
}

func (e *Engine) warn(res *Result, what string, err error) {
	msg := fmt.Sprintf("%s omitted: %s", what, err)
	res.Warnings = append(res.Warnings, msg)
	e.logger().Printf("runout: %s", msg)
}

// errReason strips the package prefix from geometry errors so that they read
// well inside a ConfigError.
func errReason(err error) string {
	var gerr *geom.Error
	if errors.As(err, &gerr) {
		return gerr.Err.Error()
	}
	return err.Error()
}
