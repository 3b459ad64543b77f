package judge

import (
	"testing"

	"github.com/mvlr/beatstrike/internal/game"
	"github.com/mvlr/beatstrike/internal/sched"
	"github.com/mvlr/beatstrike/internal/track"
)

// fixedHands returns the same sample for one hand and absence for the
// other, standing in for the conditioner.
type fixedHands struct {
	hand   game.Hand
	sample track.Sample
}

func (f *fixedHands) Latest(h game.Hand) track.Sample {
	if h == f.hand {
		return f.sample
	}
	return track.Sample{}
}

func atAnchor(j *Judge, n *game.Note, depth float64) *fixedHands {
	return &fixedHands{
		hand:   n.Hand,
		sample: track.Sample{Present: true, Position: j.Anchor(n, depth)},
	}
}

var schedCfg = sched.Config{NoteSpeed: 6, SpawnDistance: 18, MissDistance: 1.2}

func activeNote(t *testing.T, noteTime, now float64, lane int, hand game.Hand) (*sched.Scheduler, *game.Note) {
	t.Helper()
	n := &game.Note{ID: "n", Time: noteTime, Lane: lane, Hand: hand}
	s := sched.New(schedCfg, &game.Chart{Notes: []*game.Note{n}})
	s.Advance(now)
	if len(s.Active()) != 1 {
		t.Fatal("note should be active")
	}
	return s, n
}

func TestHitAtAnchor(t *testing.T) {
	j := New(DefaultConfig())
	s, n := activeNote(t, 5, 5, 2, game.HandLeft)

	events := j.Evaluate(5, s, atAnchor(j, n, 0))
	if len(events) != 1 || events[0].Kind != game.EventHit {
		t.Fatal("coincident hand at the nominal depth must hit")
	}
	if !n.Hit || n.HitTime != 5 || n.Missed {
		t.Fatal("hit state not recorded")
	}

	// First qualifying frame wins, no re-evaluation
	if events := j.Evaluate(5.01, s, atAnchor(j, n, 0)); len(events) != 0 {
		t.Fatal("a note is judged at most once")
	}
}

func TestNoHandEventuallyMisses(t *testing.T) {
	j := New(DefaultConfig())
	s, n := activeNote(t, 5, 5, 2, game.HandLeft)

	if events := j.Evaluate(5, s, &fixedHands{}); len(events) != 0 {
		t.Fatal("no hand present must not hit")
	}

	// Unresolved notes stay live until the scheduler expires them
	events := s.Advance(5.3)
	if len(events) != 1 || events[0].Kind != game.EventMiss || !n.Missed {
		t.Fatal("unstruck note must miss once it passes the boundary")
	}
}

func TestWrongHandDoesNotHit(t *testing.T) {
	j := New(DefaultConfig())
	s, n := activeNote(t, 5, 5, 2, game.HandLeft)

	hands := &fixedHands{
		hand:   game.HandRight,
		sample: track.Sample{Present: true, Position: j.Anchor(n, 0)},
	}
	if events := j.Evaluate(5, s, hands); len(events) != 0 {
		t.Fatal("only the note's required hand may strike it")
	}
}

func TestAsymmetricWindow(t *testing.T) {
	j := New(DefaultConfig())

	// 0.25s early → depth 1.5, inside the 1.8 early tolerance
	s, n := activeNote(t, 5, 4.75, 1, game.HandRight)
	d := 1.5
	if events := j.Evaluate(4.75, s, atAnchor(j, n, d)); len(events) != 1 {
		t.Fatal("early strike inside the pre window must hit")
	}

	// A sixth of a second late → depth -1.0, outside the 0.9 late
	// tolerance but not yet at the miss boundary
	late := 5 + 1.0/6.0
	s, n = activeNote(t, 5, late, 1, game.HandRight)
	d = -1.0
	if events := j.Evaluate(late, s, atAnchor(j, n, d)); len(events) != 0 {
		t.Fatal("late strike past the post window must not hit")
	}
}

func TestOutOfReachStaysLive(t *testing.T) {
	j := New(DefaultConfig())
	s, n := activeNote(t, 5, 5, 0, game.HandLeft)

	far := j.Anchor(n, 0).Add(game.Vec3{X: 2})
	hands := &fixedHands{hand: n.Hand, sample: track.Sample{Present: true, Position: far}}
	if events := j.Evaluate(5, s, hands); len(events) != 0 {
		t.Fatal("hand outside the hit radius must not strike")
	}
	if n.Resolved() {
		t.Fatal("the note stays live for the next tick")
	}
}

func TestChordNotesShareOneSample(t *testing.T) {
	j := New(DefaultConfig())

	// Two simultaneous notes on the same lane and hand: one hand sample
	// within radius awards both
	a := &game.Note{ID: "a", Time: 5, Lane: 3, Hand: game.HandRight}
	b := &game.Note{ID: "b", Time: 5, Lane: 3, Hand: game.HandRight}
	s := sched.New(schedCfg, &game.Chart{Notes: []*game.Note{a, b}})
	s.Advance(5)

	events := j.Evaluate(5, s, atAnchor(j, a, 0))
	if len(events) != 2 {
		t.Fatal("both chord notes must be awarded, got", len(events))
	}
	if !a.Hit || !b.Hit {
		t.Fail()
	}
}
