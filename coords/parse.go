// Package coords reads the free-text coordinate lists that describe slope
// profiles and failure surfaces.
//
// All values are rounded to [Precision] decimal places on the way in. Every
// downstream computation operates on rounded coordinates, which keeps
// near-duplicate points from producing slivers and makes results
// reproducible across input sources.
package coords

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"

	"honnef.co/go/runout/geom"
)

// Precision is the number of decimal places coordinates are rounded to.
const Precision = 1

var (
	ErrNotNumeric     = errors.New("not a number")
	ErrFieldCount     = errors.New("want exactly two values per row")
	ErrLengthMismatch = errors.New("x and y lists differ in length")
	ErrTooFewPoints   = errors.New("need at least 2 distinct points")
)

// ParseError describes a coordinate list that could not be read.
type ParseError struct {
	// Line is the 1-based line of the offending row, or 0 if the error
	// doesn't concern a single row.
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Token != "":
		return fmt.Sprintf("coords: line %d: %q: %s", e.Line, e.Token, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("coords: line %d: %s", e.Line, e.Err)
	case e.Token != "":
		return fmt.Sprintf("coords: %q: %s", e.Token, e.Err)
	default:
		return "coords: " + e.Err.Error()
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// Round rounds v to [Precision] decimal places, with ties going to the even
// neighbour.
func Round(v float64) float64 {
	return scalar.RoundEven(v, Precision)
}

// Parse reads one coordinate pair per row. Rows are tab-separated if the
// text contains a tab and comma-separated otherwise; a row without either
// separator is split on whitespace. Blank rows and rows starting with '#'
// are ignored.
func Parse(text string) ([]geom.Point, error) {
	return ParseReader(strings.NewReader(text))
}

// ParseReader is like [Parse] but reads from r.
func ParseReader(r io.Reader) ([]geom.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := string(data)

	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = ','
	if strings.ContainsRune(text, '\t') {
		cr.Comma = '\t'
	}
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var pts []geom.Point
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Err: err}
		}
		line, _ := cr.FieldPos(0)
		if len(rec) == 1 {
			rec = strings.Fields(rec[0])
		}
		if len(rec) != 2 {
			return nil, &ParseError{Line: line, Token: strings.Join(rec, string(cr.Comma)), Err: ErrFieldCount}
		}
		x, err := parseValue(rec[0])
		if err != nil {
			return nil, &ParseError{Line: line, Token: rec[0], Err: err}
		}
		y, err := parseValue(rec[1])
		if err != nil {
			return nil, &ParseError{Line: line, Token: rec[1], Err: err}
		}
		pts = append(pts, geom.Pt(x, y))
	}
	return finish(pts)
}

// ParseLists reads two parallel comma-separated lists of x and y values.
func ParseLists(xs, ys string) ([]geom.Point, error) {
	xv, err := parseList(xs)
	if err != nil {
		return nil, err
	}
	yv, err := parseList(ys)
	if err != nil {
		return nil, err
	}
	if len(xv) != len(yv) {
		return nil, &ParseError{Err: fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(xv), len(yv))}
	}
	pts := make([]geom.Point, len(xv))
	for i := range xv {
		pts[i] = geom.Pt(xv[i], yv[i])
	}
	return finish(pts)
}

func parseList(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := parseValue(f)
		if err != nil {
			return nil, &ParseError{Token: f, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrNotNumeric
	}
	return Round(v), nil
}

// finish collapses consecutive points made identical by rounding and
// checks that enough points remain.
func finish(pts []geom.Point) ([]geom.Point, error) {
	out := pts[:0]
	for _, pt := range pts {
		if len(out) > 0 && out[len(out)-1] == pt {
			continue
		}
		out = append(out, pt)
	}
	if len(out) < 2 {
		return nil, &ParseError{Err: fmt.Errorf("%w, got %d", ErrTooFewPoints, len(out))}
	}
	return out, nil
}

// Format writes pts as comma-separated rows at [Precision] decimal places.
// Parsing the output of Format returns the same points.
func Format(pts []geom.Point) string {
	var sb strings.Builder
	for _, pt := range pts {
		sb.WriteString(strconv.FormatFloat(Round(pt.X), 'f', Precision, 64))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(Round(pt.Y), 'f', Precision, 64))
		sb.WriteByte('\n')
	}
	return sb.String()
}
