package battlemap

import "math"

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Bearing returns the angle in radians of the direction from a to b.
// Zero points along +X; angles increase clockwise (Y grows downward).
func Bearing(a, b Vec2) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// RotateAround rotates p around center by angle radians.
func RotateAround(p, center Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	d := p.Sub(center)
	return Vec2{
		X: center.X + d.X*cos - d.Y*sin,
		Y: center.Y + d.X*sin + d.Y*cos,
	}
}

// DistToSegment returns the distance from p to the segment a-b.
// Degenerate segments (a == b) reduce to point distance.
func DistToSegment(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq < epsilon {
		return Dist(p, a)
	}
	// Project p onto the segment, clamped to its extent.
	t := clamp(((p.X-a.X)*ab.X+(p.Y-a.Y)*ab.Y)/lenSq, 0, 1)
	return Dist(p, a.Add(ab.Mul(t)))
}

// SegmentHitsCircle reports whether the segment a-b passes within c.Radius
// of c.Center (inclusive).
func SegmentHitsCircle(a, b Vec2, c Circle) bool {
	return DistToSegment(c.Center, a, b) <= c.Radius
}

// angleDiff returns the absolute difference between two angles,
// normalized to [0, pi].
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d < -math.Pi {
		d += 2 * math.Pi
	} else if d > math.Pi {
		d -= 2 * math.Pi
	}
	return math.Abs(d)
}

// InCone reports whether p lies within a cone opening from origin toward
// the direction of aim, extending reach units with the given half-angle in
// radians. Points at the origin are inside.
func InCone(p, origin, aim Vec2, reach, halfAngle float64) bool {
	d := Dist(origin, p)
	if d > reach {
		return false
	}
	if d < epsilon {
		return true
	}
	return angleDiff(Bearing(origin, p), Bearing(origin, aim)) <= halfAngle
}

// perpendicular returns the unit vector perpendicular to the direction from
// a to b. Returns the zero vector for degenerate segments.
func perpendicular(a, b Vec2) Vec2 {
	d := b.Sub(a)
	l := d.Len()
	if l < epsilon {
		return Vec2{}
	}
	return Vec2{-d.Y / l, d.X / l}
}
