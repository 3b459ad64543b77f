package game

import "math"

// LaneCount is the number of fixed angular lanes notes travel along.
const LaneCount = 6

// LaneAnchor returns the 3D target point of a lane at a given travel
// depth. Lanes sit evenly spaced on a circle of the given radius around
// a center at height centerY; depth is the Z distance from the hit zone.
func LaneAnchor(lane int, radius, centerY, depth float64) Vec3 {
	a := 2 * math.Pi * float64(lane) / LaneCount
	return Vec3{
		X: math.Cos(a) * radius,
		Y: centerY + math.Sin(a)*radius,
		Z: depth,
	}
}
