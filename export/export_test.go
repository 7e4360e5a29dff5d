package export

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"honnef.co/go/runout"
	"honnef.co/go/runout/geom"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func compute(t *testing.T, p runout.Parameters) *runout.Result {
	t.Helper()
	slope := []geom.Point{{X: 0, Y: 0}, {X: 3.5, Y: 5.2}, {X: 6.4, Y: 11.6}, {X: 7.1, Y: 16.5}, {X: 9, Y: 21.6}, {X: 12.4, Y: 27.7}, {X: 16.5, Y: 32.3}, {X: 22.1, Y: 35.6}, {X: 28.8, Y: 36}}
	failure := []geom.Point{{X: 6.4, Y: 11.6}, {X: 14.3, Y: 17.7}, {X: 18.6, Y: 22.9}, {X: 22.1, Y: 35.6}}
	e := &runout.Engine{Logger: log.New(io.Discard, "", 0)}
	res, err := e.Compute(p, slope, failure)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestGeometries(t *testing.T) {
	res := compute(t, runout.DefaultParameters())
	var names []string
	for _, n := range Geometries(res) {
		names = append(names, n.Name)
		if n.Area != 0 {
			diff(t, planar.Area(n.Geometry), map[string]float64{
				FailureVolume: res.FailureRegion.InSituArea,
				CatchCapacity: res.CatchCapacity.Area,
			}[n.Name], cmpopts.EquateApprox(1e-12, 0))
		}
	}
	diff(t, names, []string{SlopeProfile, FailureSurface, Bund, Runout, FailureVolume, CatchCapacity})
}

func TestGeometriesFlatBund(t *testing.T) {
	p := runout.DefaultParameters()
	p.BundHeight = 0
	res := compute(t, p)
	for _, n := range Geometries(res) {
		if n.Name == Bund {
			diff(t, n.Geometry, orb.Geometry(orb.Point{-18, 0}))
		}
	}
}

func TestGeoJSON(t *testing.T) {
	res := compute(t, runout.DefaultParameters())
	b, err := GeoJSON(res)
	if err != nil {
		t.Fatal(err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, len(fc.Features), 6)

	byName := map[string]*geojson.Feature{}
	for _, f := range fc.Features {
		byName[f.Properties.MustString("name")] = f
	}
	cc := byName[CatchCapacity]
	if cc == nil {
		t.Fatal("missing catch capacity feature")
	}
	diff(t, cc.Properties.MustFloat64("area"), res.CatchCapacity.Area, cmpopts.EquateApprox(0, 1e-9))
	diff(t, cc.Properties.MustString("label"), "Catch capacity = 266.7 m³/m")
	if _, ok := cc.Geometry.(orb.Polygon); !ok {
		t.Errorf("catch capacity is a %T, want orb.Polygon", cc.Geometry)
	}
	if _, ok := byName[SlopeProfile].Properties["area"]; ok {
		t.Error("slope profile should have no area")
	}

	// The output is plain JSON.
	var v map[string]any
	if err := json.Unmarshal(b, &v); err != nil {
		t.Fatal(err)
	}
	diff(t, v["type"], "FeatureCollection")
}

func TestWriteWKT(t *testing.T) {
	res := compute(t, runout.DefaultParameters())
	var buf bytes.Buffer
	if err := WriteWKT(&buf, res); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	diff(t, len(lines), 6)
	if !strings.HasPrefix(lines[0], "slope_profile\tLINESTRING(") {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.HasPrefix(lines[5], "catch_capacity\tPOLYGON((") {
		t.Errorf("unexpected last line %q", lines[5])
	}
}

func TestWriteWKB(t *testing.T) {
	res := compute(t, runout.DefaultParameters())
	var buf bytes.Buffer
	if err := WriteWKB(&buf, res); err != nil {
		t.Fatal(err)
	}
	want := Geometries(res)
	sc := bufio.NewScanner(&buf)
	i := 0
	for sc.Scan() {
		name, data, ok := strings.Cut(sc.Text(), "\t")
		if !ok {
			t.Fatalf("malformed line %q", sc.Text())
		}
		b, err := hex.DecodeString(data)
		if err != nil {
			t.Fatal(err)
		}
		g, err := wkb.Unmarshal(b)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, want[i].Name, name)
		diff(t, want[i].Geometry, g)
		i++
	}
	diff(t, len(want), i)
}
