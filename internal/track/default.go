package track

import (
	"math"
	"sync"

	"github.com/mvlr/beatstrike/internal/game"
)

// Play-space extent of the affine camera mapping. The camera image is
// mirrored horizontally and inverted vertically so movement on screen
// matches movement in front of it.
const (
	playWidth   = 6.0
	playHeight  = 4.0
	playYOffset = 1.5
	depthLean   = 0.5 // forward/back lean proportional to height
)

type Config struct {
	Smoothing  float64 // fraction moved toward the new raw sample each frame
	MinDeltaMs float64 // below this frame gap, velocity holds its value
}

func DefaultConfig() Config {
	return Config{
		Smoothing:  0.6,
		MinDeltaMs: 1,
	}
}

// MapToPlaySpace converts a normalized 2D tip coordinate into 3D play
// space. Pure function, no state.
func MapToPlaySpace(x, y float64) game.Vec3 {
	return game.Vec3{
		X: (0.5 - x) * playWidth,
		Y: (0.5-y)*playHeight + playYOffset,
		Z: (0.5 - y) * depthLean,
	}
}

// NormalizeForPlaySpace inverts MapToPlaySpace for the X/Y plane. Used by
// stand-in detectors that want to place a hand at a known play-space
// point.
func NormalizeForPlaySpace(p game.Vec3) (x, y float64) {
	return 0.5 - p.X/playWidth, 0.5 - (p.Y-playYOffset)/playHeight
}

type handState struct {
	present  bool
	tracked  bool // a smoothed value exists from an earlier frame
	smoothed game.Vec3
	velocity game.Vec3
	known    game.Vec3
	hasKnown bool
	lastMs   float64
}

// DefaultConditioner smooths raw detector positions with an exponential
// moving average and differentiates them into velocities. One slot per
// hand, overwritten on every published frame.
type DefaultConditioner struct {
	cfg   Config
	mu    sync.Mutex
	hands [2]handState
}

func NewConditioner(cfg Config) *DefaultConditioner {
	return &DefaultConditioner{cfg: cfg}
}

func (c *DefaultConditioner) Publish(f Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var seen [2]bool
	for _, dh := range f.Hands {
		i := int(dh.Hand)
		if i < 0 || i >= len(c.hands) {
			continue
		}
		// A malformed coordinate is treated as the hand being absent
		if math.IsNaN(dh.X) || math.IsNaN(dh.Y) || math.IsInf(dh.X, 0) || math.IsInf(dh.Y, 0) {
			continue
		}
		seen[i] = true

		raw := MapToPlaySpace(dh.X, dh.Y)
		s := &c.hands[i]
		if s.tracked {
			prev := s.smoothed
			s.smoothed = prev.Lerp(raw, c.cfg.Smoothing)
			dtMs := f.TimestampMs - s.lastMs
			if dtMs > c.cfg.MinDeltaMs {
				s.velocity = s.smoothed.Sub(prev).Scale(1000 / dtMs)
			}
		} else {
			// First frame this hand appears: no previous value, so the
			// raw mapped position is used unsmoothed and velocity is zero
			s.smoothed = raw
			s.velocity = game.Vec3{}
			s.tracked = true
		}
		s.present = true
		s.known = s.smoothed
		s.hasKnown = true
		s.lastMs = f.TimestampMs
	}

	for i := range c.hands {
		if !seen[i] {
			c.hands[i].present = false
			c.hands[i].tracked = false
		}
	}
}

func (c *DefaultConditioner) Latest(h game.Hand) Sample {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.hands[int(h)]
	if !s.present {
		return Sample{}
	}
	return Sample{
		Present:     true,
		Position:    s.smoothed,
		Velocity:    s.velocity,
		TimestampMs: s.lastMs,
	}
}

func (c *DefaultConditioner) LastKnown(h game.Hand) (game.Vec3, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.hands[int(h)]
	return s.known, s.hasKnown
}

func (c *DefaultConditioner) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hands = [2]handState{}
}
