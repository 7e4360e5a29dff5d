// Package export encodes runout results in exchange formats understood by
// GIS and CAD tools.
package export

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"

	"honnef.co/go/runout"
	"honnef.co/go/runout/geom"
)

// Feature names, used as the "name" property in GeoJSON and as the first
// column of WKT output.
const (
	SlopeProfile   = "slope_profile"
	FailureSurface = "failure_surface"
	Bund           = "bund"
	FailureVolume  = "failure_volume"
	CatchCapacity  = "catch_capacity"
	Runout         = "runout"
)

// Named is a geometry together with the name it is exported under.
type Named struct {
	Name     string
	Geometry orb.Geometry
	// Area is set for regions.
	Area float64
}

func point(pt geom.Point) orb.Point {
	return orb.Point{pt.X, pt.Y}
}

func lineString(pts []geom.Point) orb.LineString {
	ls := make(orb.LineString, len(pts))
	for i, pt := range pts {
		ls[i] = point(pt)
	}
	return ls
}

func polygon(p geom.Polygon) orb.Polygon {
	return orb.Polygon{orb.Ring(lineString(p.Exterior()))}
}

// Geometries returns the parts of res in drawing order: ground first,
// regions last.
func Geometries(res *runout.Result) []Named {
	out := []Named{{Name: SlopeProfile, Geometry: lineString(res.SlopeProfile)}}
	if len(res.FailureSurface) > 0 {
		out = append(out, Named{Name: FailureSurface, Geometry: lineString(res.FailureSurface)})
	}
	if res.Bund.HasBody() {
		out = append(out, Named{Name: Bund, Geometry: polygon(res.Bund.Outline)})
	} else {
		out = append(out, Named{Name: Bund, Geometry: point(res.Bund.Ref)})
	}
	out = append(out, Named{Name: Runout, Geometry: lineString(res.Runout)})
	if r := res.FailureRegion; r != nil {
		out = append(out, Named{Name: FailureVolume, Geometry: polygon(r.Polygon), Area: r.Area})
	}
	if r := res.CatchCapacity; r != nil {
		out = append(out, Named{Name: CatchCapacity, Geometry: polygon(r.Polygon), Area: r.Area})
	}
	return out
}

// FeatureCollection converts res to GeoJSON features. Every feature has a
// "name" property; regions also carry "area" and the bund and regions carry
// a human-readable "label".
func FeatureCollection(res *runout.Result) *geojson.FeatureCollection {
	labels := map[string]string{}
	for _, l := range res.Labels() {
		labels[l.Name] = l.Text
	}

	fc := geojson.NewFeatureCollection()
	for _, n := range Geometries(res) {
		f := geojson.NewFeature(n.Geometry)
		f.Properties["name"] = n.Name
		if n.Area != 0 {
			f.Properties["area"] = n.Area
		}
		if l, ok := labels[n.Name]; ok {
			f.Properties["label"] = l
		}
		fc.Append(f)
	}
	return fc
}

// GeoJSON returns res as a GeoJSON FeatureCollection.
func GeoJSON(res *runout.Result) ([]byte, error) {
	return FeatureCollection(res).MarshalJSON()
}

// WriteWKT writes one line per geometry: its name, a tab and its WKT.
func WriteWKT(w io.Writer, res *runout.Result) error {
	for _, n := range Geometries(res) {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", n.Name, wkt.MarshalString(n.Geometry)); err != nil {
			return err
		}
	}
	return nil
}

// WriteWKB writes one line per geometry: its name, a tab and its
// little-endian WKB in hex, as accepted by PostGIS.
func WriteWKB(w io.Writer, res *runout.Result) error {
	for _, n := range Geometries(res) {
		b, err := wkb.Marshal(n.Geometry)
		if err != nil {
			return fmt.Errorf("export: %s: %w", n.Name, err)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", n.Name, hex.EncodeToString(b)); err != nil {
			return err
		}
	}
	return nil
}
