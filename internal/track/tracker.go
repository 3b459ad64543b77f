package track

import (
	"github.com/mvlr/beatstrike/internal/game"
)

// DetectedHand is one hand in a raw detector frame: a handedness label
// and the index-tip position in normalized [0,1] image coordinates.
type DetectedHand struct {
	Hand game.Hand
	X, Y float64
}

// Frame is the raw output of the pose-estimation collaborator for a
// single capture frame. Zero, one or two hands may be present.
type Frame struct {
	Hands       []DetectedHand
	TimestampMs float64
}

// Sample is one frame's conditioned output for a tracked hand. Position
// and Velocity are only meaningful while Present; a hand absent from
// detector output is never extrapolated.
type Sample struct {
	Present     bool
	Position    game.Vec3
	Velocity    game.Vec3
	TimestampMs float64
}

// Conditioner turns raw detector frames into stable per-hand samples.
// Publish is called from the detection loop at its own cadence; Latest is
// read from the game tick and always sees the most recent published
// value, last-value-wins.
type Conditioner interface {
	Publish(f Frame)
	Latest(h game.Hand) Sample

	// LastKnown returns the final smoothed position seen before a hand
	// disappeared. Display/trail use only, never collision.
	LastKnown(h game.Hand) (game.Vec3, bool)

	Reset()
}
