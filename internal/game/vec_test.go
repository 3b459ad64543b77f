package game

import (
	"math"
	"testing"
)

var lerpTests = map[Vec3]Vec3{
	{X: 10}:               {X: 6},
	{X: 10, Y: 10, Z: 10}: {X: 6, Y: 6, Z: 6},
	{}:                    {},
	{X: -5, Y: 5}:         {X: -3, Y: 3},
}

func TestLerpSmoothing(t *testing.T) {
	// A smoothing factor of 0.6 moves 60% of the way from the old value
	// to the new sample
	for raw, expected := range lerpTests {
		out := Vec3{}.Lerp(raw, 0.6)
		if math.Abs(out.X-expected.X) > 1e-9 ||
			math.Abs(out.Y-expected.Y) > 1e-9 ||
			math.Abs(out.Z-expected.Z) > 1e-9 {
			t.Log("raw     ", raw)
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestDistanceTo(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 2}
	if d := (Vec3{}).DistanceTo(a); math.Abs(d-3) > 1e-9 {
		t.Log("distance", d)
		t.Fail()
	}
	if d := a.DistanceTo(a); d != 0 {
		t.Log("distance", d)
		t.Fail()
	}
}

func TestLaneAnchorSpacing(t *testing.T) {
	// Adjacent lanes on the circle are a chord of 2r·sin(π/6) = r apart
	a := LaneAnchor(0, 2.2, 1.5, 0)
	b := LaneAnchor(1, 2.2, 1.5, 0)
	if d := a.DistanceTo(b); math.Abs(d-2.2) > 1e-9 {
		t.Log("chord", d)
		t.Fail()
	}
	// Opposite lanes are a diameter apart
	c := LaneAnchor(3, 2.2, 1.5, 0)
	if d := a.DistanceTo(c); math.Abs(d-4.4) > 1e-9 {
		t.Log("diameter", d)
		t.Fail()
	}
}
