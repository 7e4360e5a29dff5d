package runout

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Direction is the direction a slope faces, that is the direction failed
// material travels in.
type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
)

// sign returns the sign of the standoff offset from the slope toe.
func (d Direction) sign() float64 {
	if d == Right {
		return 1
	}
	return -1
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d), nil
}

// UnmarshalText accepts "left", "right", "l" and "r" in any case.
func (d *Direction) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "left", "l":
		*d = Left
	case "right", "r":
		*d = Right
	default:
		return &ConfigError{Field: "direction", Value: string(b), Reason: "must be left or right"}
	}
	return nil
}

// Parameters are the design inputs of a runout computation.
type Parameters struct {
	// Standoff is the horizontal distance from the slope toe to the bund, in
	// metres.
	Standoff float64 `json:"standoff" yaml:"standoff" validate:"gt=0"`
	// SwellFactor is the ratio of loose to in-situ volume of failed
	// material.
	SwellFactor float64 `json:"swell_factor" yaml:"swell_factor" validate:"gt=0"`
	// BundHeight is the height of the bund in metres. Zero means no bund.
	BundHeight float64 `json:"bund_height" yaml:"bund_height" validate:"gte=0"`
	// RunoutAngle is the angle of the runout line from horizontal, in
	// degrees.
	RunoutAngle float64 `json:"runout_angle" yaml:"runout_angle" validate:"gt=0,lt=90"`
	Direction   Direction `json:"direction" yaml:"direction" validate:"oneof=left right"`
	// ProjectToBackscarp routes the runout line over the failure surface
	// rather than over the original slope profile.
	ProjectToBackscarp bool `json:"project_to_backscarp" yaml:"project_to_backscarp"`
}

// DefaultParameters returns the parameters of a typical bench-scale
// assessment.
func DefaultParameters() Parameters {
	return Parameters{
		Standoff:           18,
		SwellFactor:        1.3,
		BundHeight:         2,
		RunoutAngle:        37,
		Direction:          Left,
		ProjectToBackscarp: true,
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func paramValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks that every parameter lies in its domain. The returned
// error, if any, wraps one [*ConfigError] per offending parameter.
func (p Parameters) Validate() error {
	err := paramValidator().Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, &ConfigError{
			Field:  fe.Field(),
			Value:  fe.Value(),
			Reason: describeTag(fe.Tag(), fe.Param()),
		})
	}
	return errors.Join(errs...)
}

func describeTag(tag, param string) string {
	switch tag {
	case "gt":
		return "must be greater than " + param
	case "gte":
		return "must not be less than " + param
	case "lt":
		return "must be less than " + param
	case "oneof":
		return "must be one of " + strings.Join(strings.Fields(param), ", ")
	default:
		return fmt.Sprintf("fails %s=%s", tag, param)
	}
}
