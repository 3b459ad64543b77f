package track

import (
	"math"
	"testing"

	"github.com/mvlr/beatstrike/internal/game"
)

func approx(a, b game.Vec3) bool {
	return a.DistanceTo(b) < 1e-9
}

func TestFirstFrameUnsmoothed(t *testing.T) {
	c := NewConditioner(DefaultConfig())
	c.Publish(Frame{
		Hands:       []DetectedHand{{Hand: game.HandLeft, X: 0.2, Y: 0.3}},
		TimestampMs: 0,
	})

	s := c.Latest(game.HandLeft)
	if !s.Present {
		t.Fatal("hand should be present")
	}
	if !approx(s.Position, MapToPlaySpace(0.2, 0.3)) {
		t.Log("position", s.Position)
		t.Fatal("first frame must use the raw mapped position")
	}
	if s.Velocity != (game.Vec3{}) {
		t.Fatal("first frame velocity must be zero")
	}
	if c.Latest(game.HandRight).Present {
		t.Fatal("undetected hand must not be present")
	}
}

func TestSmoothingBlend(t *testing.T) {
	c := NewConditioner(DefaultConfig())
	c.Publish(Frame{Hands: []DetectedHand{{Hand: game.HandLeft, X: 0.2, Y: 0.3}}, TimestampMs: 0})
	c.Publish(Frame{Hands: []DetectedHand{{Hand: game.HandLeft, X: 0.6, Y: 0.7}}, TimestampMs: 33})

	prev := MapToPlaySpace(0.2, 0.3)
	raw := MapToPlaySpace(0.6, 0.7)
	expected := prev.Lerp(raw, 0.6)

	s := c.Latest(game.HandLeft)
	if !approx(s.Position, expected) {
		t.Log("position", s.Position)
		t.Log("expected", expected)
		t.Fail()
	}
}

func TestVelocityEstimate(t *testing.T) {
	c := NewConditioner(DefaultConfig())
	c.Publish(Frame{Hands: []DetectedHand{{Hand: game.HandRight, X: 0.5, Y: 0.5}}, TimestampMs: 0})
	c.Publish(Frame{Hands: []DetectedHand{{Hand: game.HandRight, X: 0.4, Y: 0.5}}, TimestampMs: 100})

	prev := MapToPlaySpace(0.5, 0.5)
	smoothed := prev.Lerp(MapToPlaySpace(0.4, 0.5), 0.6)
	expected := smoothed.Sub(prev).Scale(10) // delta over 0.1s

	s := c.Latest(game.HandRight)
	if !approx(s.Velocity, expected) {
		t.Log("velocity", s.Velocity)
		t.Log("expected", expected)
		t.Fail()
	}
}

func TestVelocityHoldsOnTinyDelta(t *testing.T) {
	c := NewConditioner(DefaultConfig())
	c.Publish(Frame{Hands: []DetectedHand{{Hand: game.HandLeft, X: 0.5, Y: 0.5}}, TimestampMs: 0})
	c.Publish(Frame{Hands: []DetectedHand{{Hand: game.HandLeft, X: 0.4, Y: 0.5}}, TimestampMs: 100})
	held := c.Latest(game.HandLeft).Velocity

	// A sub-threshold frame gap must not blow the division up
	c.Publish(Frame{Hands: []DetectedHand{{Hand: game.HandLeft, X: 0.1, Y: 0.5}}, TimestampMs: 100.5})
	s := c.Latest(game.HandLeft)
	if !approx(s.Velocity, held) {
		t.Log("velocity", s.Velocity)
		t.Log("held    ", held)
		t.Fail()
	}
}

func TestAbsenceClearsPresence(t *testing.T) {
	c := NewConditioner(DefaultConfig())
	c.Publish(Frame{Hands: []DetectedHand{{Hand: game.HandLeft, X: 0.2, Y: 0.3}}, TimestampMs: 0})
	c.Publish(Frame{TimestampMs: 33})

	if c.Latest(game.HandLeft).Present {
		t.Fatal("an absent hand must not be present, no extrapolation")
	}

	// The last known position survives for display only
	known, ok := c.LastKnown(game.HandLeft)
	if !ok || !approx(known, MapToPlaySpace(0.2, 0.3)) {
		t.Log("known", known, ok)
		t.Fail()
	}
}

func TestReappearanceStartsFresh(t *testing.T) {
	c := NewConditioner(DefaultConfig())
	c.Publish(Frame{Hands: []DetectedHand{{Hand: game.HandLeft, X: 0.1, Y: 0.1}}, TimestampMs: 0})
	c.Publish(Frame{TimestampMs: 33})
	c.Publish(Frame{Hands: []DetectedHand{{Hand: game.HandLeft, X: 0.9, Y: 0.9}}, TimestampMs: 66})

	// No blend against the stale pre-gap position
	s := c.Latest(game.HandLeft)
	if !approx(s.Position, MapToPlaySpace(0.9, 0.9)) {
		t.Log("position", s.Position)
		t.Fail()
	}
	if s.Velocity != (game.Vec3{}) {
		t.Fatal("velocity must reset on reappearance")
	}
}

func TestMalformedCoordinatesSwallowed(t *testing.T) {
	c := NewConditioner(DefaultConfig())
	c.Publish(Frame{
		Hands:       []DetectedHand{{Hand: game.HandLeft, X: math.NaN(), Y: 0.5}},
		TimestampMs: 0,
	})
	if c.Latest(game.HandLeft).Present {
		t.Fatal("a malformed detection must read as no hand this frame")
	}
}
