package game

type EventKind uint8

const (
	EventHit EventKind = iota
	EventMiss
)

func (k EventKind) String() string {
	if k == EventHit {
		return "hit"
	}
	return "miss"
}

// Event is emitted once when a note resolves.
type Event struct {
	Kind EventKind
	Note *Note

	// Quality is reserved for cut grading. Every qualifying strike is
	// currently a full hit.
	Quality bool
}
