package runout

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"

	"honnef.co/go/runout/geom"
)

func TestSnapFailureAlreadySnapped(t *testing.T) {
	got, i0, i1, err := SnapFailure(slopeA, failureA)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, got, failureA)
	diff(t, []int{i0, i1}, []int{2, 7})
}

func TestSnapFailureMovesEndpoints(t *testing.T) {
	off := pts(6.5, 11.3, 14.3, 17.7, 18.6, 22.9, 21.8, 35.9)
	got, i0, i1, err := SnapFailure(slopeA, off)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, got, failureA)
	diff(t, []int{i0, i1}, []int{2, 7})
	diff(t, off[0], geom.Pt(6.5, 11.3))
}

func TestSnapFailureIdempotent(t *testing.T) {
	off := pts(6.9, 15.5, 14.3, 17.7, 18.6, 22.9, 20.1, 34)
	once, _, _, err := SnapFailure(slopeA, off)
	if err != nil {
		t.Fatal(err)
	}
	twice, _, _, err := SnapFailure(slopeA, once)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, twice, once)
}

func TestSnapFailureDropsCollapsedPoints(t *testing.T) {
	// The second point coincides with the vertex the first one snaps to.
	fs := pts(6.2, 11.9, 6.4, 11.6, 14.3, 17.7, 22.1, 35.6)
	got, _, _, err := SnapFailure(slopeA, fs)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, got, pts(6.4, 11.6, 14.3, 17.7, 22.1, 35.6))
}

func TestSnapFailureSameVertex(t *testing.T) {
	fs := pts(6.3, 11.5, 7, 13, 6.5, 11.7)
	_, _, _, err := SnapFailure(slopeA, fs)
	if !errors.Is(err, geom.ErrDegenerate) {
		t.Fatalf("got %v, want ErrDegenerate", err)
	}
}

func TestBuildFailureVolume(t *testing.T) {
	p := DefaultParameters()
	fv, err := BuildFailureVolume(p, slopeA, failureA)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, fv.InSituArea, 137.56, cmpopts.EquateApprox(0, 1e-9))
	diff(t, fv.Area, 137.56*1.3, cmpopts.EquateApprox(0, 1e-9))
	diff(t, []int{fv.Start, fv.End}, []int{2, 7})
	diff(t, fv.Bounding, slopeA[2:8])
	diff(t, fv.Ground, pts(0, 0, 3.5, 5.2, 6.4, 11.6, 14.3, 17.7, 18.6, 22.9, 22.1, 35.6, 28.8, 36.0))
}

func TestBuildFailureVolumeBranches(t *testing.T) {
	tests := []struct {
		name     string
		failure  geom.Polyline
		bounding geom.Polyline
		ground   geom.Polyline
	}{
		{
			name:     "starts at toe",
			failure:  pts(0, 0, 6, 8, 9, 21.6),
			bounding: slopeA[:5],
			ground:   pts(0, 0, 6, 8, 9, 21.6, 12.4, 27.7, 16.5, 32.3, 22.1, 35.6, 28.8, 36.0),
		},
		{
			name:     "ends at crest",
			failure:  pts(12.4, 27.7, 20, 30, 28.8, 36),
			bounding: slopeA[5:],
			ground:   pts(0, 0, 3.5, 5.2, 6.4, 11.6, 7.1, 16.5, 9.0, 21.6, 12.4, 27.7, 20, 30, 28.8, 36),
		},
		{
			name:     "spans the slope",
			failure:  pts(0, 0, 15, 10, 28.8, 36),
			bounding: slopeA,
			ground:   pts(0, 0, 15, 10, 28.8, 36),
		},
		{
			name:     "within the slope",
			failure:  failureA,
			bounding: slopeA[2:8],
			ground:   pts(0, 0, 3.5, 5.2, 6.4, 11.6, 14.3, 17.7, 18.6, 22.9, 22.1, 35.6, 28.8, 36.0),
		},
		{
			name:     "drawn crest to toe",
			failure:  failureA.Reverse(),
			bounding: slopeA[2:8],
			ground:   pts(0, 0, 3.5, 5.2, 6.4, 11.6, 14.3, 17.7, 18.6, 22.9, 22.1, 35.6, 28.8, 36.0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fv, err := BuildFailureVolume(DefaultParameters(), slopeA, tt.failure)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, fv.Bounding, tt.bounding)
			diff(t, fv.Ground, tt.ground)
			if fv.Area <= 0 {
				t.Errorf("area %g should be positive", fv.Area)
			}
			diff(t, fv.Surface.First(), tt.bounding.First())
			diff(t, fv.Surface.Last(), tt.bounding.Last())
		})
	}
}

func TestBuildFailureVolumeAlongSlope(t *testing.T) {
	// A failure surface that follows the slope encloses nothing.
	_, err := BuildFailureVolume(DefaultParameters(), slopeA, slopeA[2:5])
	if !errors.Is(err, geom.ErrDegenerate) {
		t.Fatalf("got %v, want ErrDegenerate", err)
	}
}
