package judge

import (
	"fmt"

	"github.com/mvlr/beatstrike/internal/game"
	"github.com/mvlr/beatstrike/internal/sched"
	"github.com/mvlr/beatstrike/internal/track"
)

type Config struct {
	// The judgement window is asymmetric: it is easier to hit early than
	// late, so the tolerance before the hit zone is the larger one.
	PreWindow  float64 // depth tolerance before the hit zone
	PostWindow float64 // depth tolerance past the hit zone

	HitRadius   float64 // max distance between hand and note anchor
	LaneRadius  float64 // radius of the angular lane circle
	LaneCenterY float64 // height of the lane circle center
}

func DefaultConfig() Config {
	return Config{
		PreWindow:   1.8,
		PostWindow:  0.9,
		HitRadius:   0.8,
		LaneRadius:  2.2,
		LaneCenterY: 1.5,
	}
}

func (c Config) Validate() error {
	if c.PreWindow <= 0 || c.PostWindow <= 0 || c.HitRadius <= 0 || c.LaneRadius <= 0 {
		return fmt.Errorf("window %v/%v radius %v lane %v: %w",
			c.PreWindow, c.PostWindow, c.HitRadius, c.LaneRadius, game.ErrInvalidConfiguration)
	}
	return nil
}

// Sampler is the slice of the hand conditioner the judge reads.
type Sampler interface {
	Latest(h game.Hand) track.Sample
}

type Judge struct {
	cfg Config
}

func New(cfg Config) *Judge {
	return &Judge{cfg: cfg}
}

// Anchor is the 3D target point for a note at a given travel depth.
func (j *Judge) Anchor(n *game.Note, depth float64) game.Vec3 {
	return game.LaneAnchor(n.Lane, j.cfg.LaneRadius, j.cfg.LaneCenterY, depth)
}

// Evaluate checks every unresolved active note against the latest hand
// samples and returns a Hit event for each note struck this tick. The
// first qualifying frame wins; a resolved note is never re-evaluated.
// Each note is checked independently, so one hand sample can satisfy
// several simultaneous notes.
func (j *Judge) Evaluate(now float64, s *sched.Scheduler, hands Sampler) []game.Event {
	var events []game.Event
	for _, n := range s.Active() {
		if n.Resolved() {
			continue
		}
		d := s.DepthOf(n, now)
		if d > j.cfg.PreWindow || d < -j.cfg.PostWindow {
			continue
		}
		sample := hands.Latest(n.Hand)
		if !sample.Present {
			// Absent hand is not an error, the note stays live until it
			// exits the window
			continue
		}
		if sample.Position.DistanceTo(j.Anchor(n, d)) > j.cfg.HitRadius {
			continue
		}
		if n.MarkHit(now) {
			events = append(events, game.Event{Kind: game.EventHit, Note: n, Quality: true})
		}
	}
	return events
}
