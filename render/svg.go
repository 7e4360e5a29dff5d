// Package render draws runout results as standalone SVG documents: the
// slope profile and failure surface as lines, the bund and both regions as
// translucent fills, with a legend giving the computed areas.
package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"honnef.co/go/runout"
	"honnef.co/go/runout/geom"
)

// Options control the size and precision of the drawing.
type Options struct {
	// Width of the drawing in pixels. Defaults to 800. The height follows
	// from the aspect ratio of the cross-section; both axes share one scale.
	Width float64
	// Margin around the cross-section, in metres. Defaults to 2.
	Margin float64
	// Precision is the number of decimals in path coordinates. Defaults to 2.
	Precision int
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Margin <= 0 {
		o.Margin = 2
	}
	if o.Precision <= 0 {
		o.Precision = 2
	}
	return o
}

type style struct {
	stroke  string
	fill    string
	opacity float64
}

var (
	slopeStyle   = style{stroke: "black"}
	failureStyle = style{stroke: "red"}
	runoutStyle  = style{stroke: "gray"}
	bundStyle    = style{stroke: "orange", fill: "orange", opacity: 0.2}
	volumeStyle  = style{stroke: "red", fill: "red", opacity: 0.2}
	catchStyle   = style{stroke: "blue", fill: "blue", opacity: 0.2}
)

// Transform returns the mapping from the y-up world coordinates of res to
// the y-down pixel space of the drawing, and the drawing's size.
func Transform(res *runout.Result, opts Options) (geom.Affine, geom.Size) {
	opts = opts.withDefaults()
	ext := res.Extent.Inflate(opts.Margin, opts.Margin)
	s := opts.Width / ext.Width()
	aff := geom.FlipY.Mul(geom.Translate(geom.Vec(-ext.X0, -ext.Y1))).ThenScale(s, s)
	return aff, ext.Size().Scale(s)
}

// WriteSVG draws res to w.
func WriteSVG(w io.Writer, res *runout.Result, opts Options) error {
	opts = opts.withDefaults()
	aff, size := Transform(res, opts)
	if size.IsEmpty() {
		return fmt.Errorf("render: empty extent %v", res.Extent)
	}
	popts := geom.SVGOptions{MaxPrecision: opts.Precision}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		size.Width, size.Height, size.Width, size.Height)
	fmt.Fprintf(&buf, `<rect width="100%%" height="100%%" fill="white"/>`+"\n")

	path := func(pts []geom.Point, st style, closed bool) {
		if len(pts) < 2 {
			return
		}
		mapped := geom.Polyline(pts).Transform(aff)
		popts := popts
		popts.Close = closed
		fill := "none"
		if st.fill != "" {
			fill = st.fill
		}
		fmt.Fprintf(&buf, `<path d="%s" stroke="%s" fill="%s"`, geom.SVGPath(mapped, popts), st.stroke, fill)
		if st.opacity > 0 {
			fmt.Fprintf(&buf, ` fill-opacity="%g"`, st.opacity)
		}
		buf.WriteString("/>\n")
	}

	if r := res.CatchCapacity; r != nil {
		path(r.Polygon, catchStyle, true)
	}
	if r := res.FailureRegion; r != nil {
		path(r.Polygon, volumeStyle, true)
	}
	path(res.Bund.Outline, bundStyle, true)
	path(res.SlopeProfile, slopeStyle, false)
	path(res.FailureSurface, failureStyle, false)
	path(res.Runout, runoutStyle, false)

	for i, l := range res.Labels() {
		fmt.Fprintf(&buf, `<text x="10" y="%d" font-family="Verdana" font-size="12">`, 20+16*i)
		xml.EscapeText(&buf, []byte(l.Text))
		buf.WriteString("</text>\n")
	}
	buf.WriteString("</svg>\n")

	_, err := buf.WriteTo(w)
	return err
}
