package geom

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVGPath] and [WriteSVGPath].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// Close appends a closepath command.
	Close bool
}

// SVGPath converts a sequence of points to a string of SVG path commands.
//
// See [WriteSVGPath] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVGPath(pts []Point, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVGPath(sb, pts, opts)
	return sb.String()
}

// WriteSVGPath converts a sequence of points to a string of SVG path
// commands and writes it to w. The first point is a moveto, every following
// one a lineto.
func WriteSVGPath(w io.Writer, pts []Point, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			if strings.Contains(s, ".") {
				s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
			}
			if s == "-0" {
				s = "0"
			}
			return s
		}
	}
	for i, pt := range pts {
		if i > 0 {
			writef(" ")
		}
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		writef("%s%s,%s", cmd, format(pt.X), format(pt.Y))
	}
	if opts.Close && len(pts) > 0 {
		writef(" Z")
	}
	return err
}
