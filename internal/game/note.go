package game

// Hand identifies which tracked hand a note must be struck with.
type Hand uint8

const (
	HandLeft Hand = iota
	HandRight
)

func (h Hand) String() string {
	if h == HandLeft {
		return "left"
	}
	return "right"
}

// CutDirection is a directional tag on a note. Generated charts currently
// only emit CutAny; the other values are kept for charts that grade
// swing direction.
type CutDirection uint8

const (
	CutUp CutDirection = iota
	CutDown
	CutLeft
	CutRight
	CutAny
)

type Note struct {
	ID   string
	Time float64 // seconds on the song timeline
	Lane int     // angular lane, 0..LaneCount-1
	Hand Hand
	Cut  CutDirection

	// This is state, set at most once
	Hit     bool
	HitTime float64 // only meaningful while Hit
	Missed  bool
}

// Resolved reports whether the note has left the judgeable lifecycle.
func (n *Note) Resolved() bool {
	return n.Hit || n.Missed
}

// MarkHit flags the note as struck at the given song time. Returns false
// if the note was already resolved; a note transitions at most once.
func (n *Note) MarkHit(now float64) bool {
	if n.Hit || n.Missed {
		return false
	}
	n.Hit = true
	n.HitTime = now
	return true
}

// MarkMissed flags the note as expired unhit. Returns false if the note
// was already resolved.
func (n *Note) MarkMissed() bool {
	if n.Hit || n.Missed {
		return false
	}
	n.Missed = true
	return true
}
