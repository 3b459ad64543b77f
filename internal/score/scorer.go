package score

import (
	"time"

	"github.com/mvlr/beatstrike/internal/game"
	"github.com/mvlr/beatstrike/internal/session"
)

// Result is one finished run of a chart.
type Result struct {
	Outcome  string // terminal status, "victory" or "game_over"
	Score    int
	MaxCombo int
	Hits     int
	Misses   int
	PlayedAt time.Time
}

type Scorer interface {
	Init(path string) error
	Deinit()

	// Save the outcome of a finished session
	Save(chart *game.Chart, snap session.Snapshot) error

	// Load previous results for charts with the same shape
	Load(chart *game.Chart) ([]Result, error)
}
