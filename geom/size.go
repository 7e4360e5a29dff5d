package geom

import "fmt"

// Size is the extent of a drawing or a rectangle.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// Scale multiplies sz by f.
func (sz Size) Scale(f float64) Size {
	return Size{
		Width:  sz.Width * f,
		Height: sz.Height * f,
	}
}

// IsEmpty reports whether either dimension is zero or negative.
func (sz Size) IsEmpty() bool {
	return sz.Width <= 0 || sz.Height <= 0
}
