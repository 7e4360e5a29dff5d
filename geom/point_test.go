package geom

import (
	"encoding/json"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(0, 0).Lerp(Pt(10, 20), 0.5), Pt(5, 10))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointNear(t *testing.T) {
	if !Pt(1, 1).Near(Pt(1+Epsilon/2, 1)) {
		t.Error("points within epsilon should be near")
	}
	if Pt(1, 1).Near(Pt(1.1, 1)) {
		t.Error("points 0.1 apart should not be near")
	}
}

func TestPointJSON(t *testing.T) {
	b, err := json.Marshal(Pt(3.5, -5.2))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, string(b), "[3.5,-5.2]")

	var pt Point
	if err := json.Unmarshal([]byte("[6.4, 11.6]"), &pt); err != nil {
		t.Fatal(err)
	}
	diff(t, pt, Pt(6.4, 11.6))
}
