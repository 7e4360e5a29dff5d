package runout

import (
	"io"
	"log"
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/runout/geom"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func pts(xy ...float64) geom.Polyline {
	out := make(geom.Polyline, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, geom.Pt(xy[i], xy[i+1]))
	}
	return out
}

var (
	slopeA   = pts(0, 0, 3.5, 5.2, 6.4, 11.6, 7.1, 16.5, 9.0, 21.6, 12.4, 27.7, 16.5, 32.3, 22.1, 35.6, 28.8, 36.0)
	failureA = pts(6.4, 11.6, 14.3, 17.7, 18.6, 22.9, 22.1, 35.6)
)

func quietEngine() *Engine {
	return &Engine{Logger: log.New(io.Discard, "", 0)}
}
