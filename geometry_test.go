package battlemap

import (
	"math"
	"testing"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func approxVec(a, b Vec2, eps float64) bool {
	return approxEqual(a.X, b.X, eps) && approxEqual(a.Y, b.Y, eps)
}

func TestDistToSegment(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{100, 0}

	if d := DistToSegment(Vec2{50, 30}, a, b); !approxEqual(d, 30, epsilon) {
		t.Errorf("perpendicular distance = %f, want 30", d)
	}
	// Beyond the segment end, distance is to the endpoint.
	if d := DistToSegment(Vec2{130, 40}, a, b); !approxEqual(d, 50, epsilon) {
		t.Errorf("past-end distance = %f, want 50", d)
	}
	// Degenerate segment reduces to point distance.
	if d := DistToSegment(Vec2{3, 4}, a, a); !approxEqual(d, 5, epsilon) {
		t.Errorf("degenerate segment distance = %f, want 5", d)
	}
}

func TestSegmentHitsCircle(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{300, 0}

	if !SegmentHitsCircle(a, b, Circle{Center: Vec2{150, 10}, Radius: 15}) {
		t.Error("circle 10px off the segment with radius 15 should be hit")
	}
	if SegmentHitsCircle(a, b, Circle{Center: Vec2{150, 40}, Radius: 15}) {
		t.Error("circle 40px off the segment with radius 15 should be missed")
	}
	// Boundary is inclusive.
	if !SegmentHitsCircle(a, b, Circle{Center: Vec2{150, 15}, Radius: 15}) {
		t.Error("tangent circle should be hit")
	}
}

func TestInCone(t *testing.T) {
	origin := Vec2{0, 0}
	aim := Vec2{100, 0}
	reach := 100.0
	half := math.Pi / 4

	if !InCone(Vec2{50, 0}, origin, aim, reach, half) {
		t.Error("point on the cone axis should be inside")
	}
	if !InCone(Vec2{50, 49}, origin, aim, reach, half) {
		t.Error("point just inside the half-angle should be inside")
	}
	if InCone(Vec2{50, 80}, origin, aim, reach, half) {
		t.Error("point past the half-angle should be outside")
	}
	if InCone(Vec2{120, 0}, origin, aim, reach, half) {
		t.Error("point beyond reach should be outside")
	}
	if !InCone(origin, origin, aim, reach, half) {
		t.Error("the origin itself should be inside")
	}
}

func TestRotateAround(t *testing.T) {
	p := RotateAround(Vec2{10, 0}, Vec2{0, 0}, math.Pi/2)
	if !approxVec(p, Vec2{0, 10}, epsilon) {
		t.Errorf("90 degree rotation = %v, want (0,10)", p)
	}
	p = RotateAround(Vec2{15, 5}, Vec2{5, 5}, math.Pi)
	if !approxVec(p, Vec2{-5, 5}, epsilon) {
		t.Errorf("180 degree rotation about (5,5) = %v, want (-5,5)", p)
	}
}

func TestBearing(t *testing.T) {
	if b := Bearing(Vec2{0, 0}, Vec2{10, 0}); !approxEqual(b, 0, epsilon) {
		t.Errorf("bearing +X = %f, want 0", b)
	}
	if b := Bearing(Vec2{0, 0}, Vec2{0, 10}); !approxEqual(b, math.Pi/2, epsilon) {
		t.Errorf("bearing +Y = %f, want pi/2", b)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	if !r.Contains(Vec2{15, 15}) {
		t.Error("interior point should be contained")
	}
	if !r.Contains(Vec2{10, 10}) {
		t.Error("edge point should be contained")
	}
	if r.Contains(Vec2{31, 15}) {
		t.Error("outside point should not be contained")
	}
}

func TestCircleOverlaps(t *testing.T) {
	a := Circle{Center: Vec2{0, 0}, Radius: 10}
	if !a.Overlaps(Circle{Center: Vec2{15, 0}, Radius: 5}) {
		t.Error("tangent circles should overlap")
	}
	if a.Overlaps(Circle{Center: Vec2{20, 0}, Radius: 5}) {
		t.Error("separated circles should not overlap")
	}
}
