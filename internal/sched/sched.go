package sched

import (
	"fmt"

	"github.com/mvlr/beatstrike/internal/game"
)

type Config struct {
	NoteSpeed     float64 // depth units per second toward the hit zone
	SpawnDistance float64 // travel distance from spawn to the hit zone
	MissDistance  float64 // depth past the hit zone at which an unhit note misses
}

func DefaultConfig() Config {
	return Config{
		NoteSpeed:     6,
		SpawnDistance: 18,
		MissDistance:  1.2,
	}
}

func (c Config) Validate() error {
	if c.NoteSpeed <= 0 || c.SpawnDistance <= 0 || c.MissDistance <= 0 {
		return fmt.Errorf("speed %v spawn %v miss %v: %w",
			c.NoteSpeed, c.SpawnDistance, c.MissDistance, game.ErrInvalidConfiguration)
	}
	return nil
}

// SpawnLookahead is the time before a note's hit time at which it must be
// admitted so it can travel the spawn distance at note speed.
func (c Config) SpawnLookahead() float64 {
	return c.SpawnDistance / c.NoteSpeed
}

// Depth is the current travel depth of a note relative to the hit zone:
// positive approaching, zero at the nominal hit time, negative past it.
func (c Config) Depth(n *game.Note, now float64) float64 {
	return (n.Time - now) * c.NoteSpeed
}

// Scheduler maintains the set of notes currently eligible for judgement
// or miss expiry. The read index into the time-sorted chart only ever
// advances, so each note is admitted exactly once.
type Scheduler struct {
	cfg    Config
	chart  *game.Chart
	next   int
	active []*game.Note
}

func New(cfg Config, chart *game.Chart) *Scheduler {
	return &Scheduler{cfg: cfg, chart: chart}
}

// Advance admits newly reachable notes and expires late ones, returning
// a Miss event for every note that expired this tick. Resolved notes
// leave the active set; their debris rendering is not the scheduler's
// concern.
func (s *Scheduler) Advance(now float64) []game.Event {
	lookahead := s.cfg.SpawnLookahead()
	for s.next < len(s.chart.Notes) {
		n := s.chart.Notes[s.next]
		if n.Time-lookahead > now {
			break
		}
		s.active = append(s.active, n)
		s.next++
	}

	var events []game.Event
	kept := s.active[:0]
	for _, n := range s.active {
		if n.Resolved() {
			continue
		}
		if s.cfg.Depth(n, now) < -s.cfg.MissDistance {
			if n.MarkMissed() {
				events = append(events, game.Event{Kind: game.EventMiss, Note: n})
			}
			continue
		}
		kept = append(kept, n)
	}
	s.active = kept
	return events
}

// Active is the current set of unresolved, admitted notes.
func (s *Scheduler) Active() []*game.Note {
	return s.active
}

// Pending is the number of chart notes not yet admitted.
func (s *Scheduler) Pending() int {
	return len(s.chart.Notes) - s.next
}

// DepthOf exposes the depth computation for judgement and rendering.
func (s *Scheduler) DepthOf(n *game.Note, now float64) float64 {
	return s.cfg.Depth(n, now)
}
