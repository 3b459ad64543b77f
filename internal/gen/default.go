package gen

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/mvlr/beatstrike/internal/game"
)

type Config struct {
	BPM       float64
	StartBeat float64 // lead-in before the first scorable beat
	EndBeat   float64
	Step      float64 // fractional beats per grid step
}

func DefaultConfig() Config {
	return Config{
		BPM:       128,
		StartBeat: 2,
		EndBeat:   192,
		Step:      0.5,
	}
}

// pattern selects one of the four alternating generation rules. The rule
// switches every 8 beats.
type pattern int

const (
	patternCircleFlow pattern = iota
	patternOpposites
	patternRandomBurst
	patternParallelLines
)

func patternFor(beat float64) pattern {
	return pattern(int(math.Floor(beat/8)) % 4)
}

// DefaultGenerator lays notes on a fixed beat grid, cycling through four
// pattern rules. Rand drives the random-burst pattern; leave it nil for a
// clock-seeded source, set it for reproducible charts.
type DefaultGenerator struct {
	Config Config
	Rand   *rand.Rand
}

func (g *DefaultGenerator) Generate() (*game.Chart, error) {
	cfg := g.Config
	if cfg.BPM <= 0 {
		return nil, fmt.Errorf("bpm %v: %w", cfg.BPM, game.ErrInvalidConfiguration)
	}
	if cfg.Step <= 0 || cfg.EndBeat <= cfg.StartBeat {
		return nil, fmt.Errorf("beat range [%v, %v) step %v: %w",
			cfg.StartBeat, cfg.EndBeat, cfg.Step, game.ErrInvalidConfiguration)
	}

	r := g.Rand
	if nil == r {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	beatTime := 60.0 / cfg.BPM
	notes := []*game.Note{}
	add := func(t float64, lane int, hand game.Hand) {
		notes = append(notes, &game.Note{
			ID:   uuid.NewString(),
			Time: t,
			Lane: lane,
			Hand: hand,
			Cut:  game.CutAny,
		})
	}

	steps := int(math.Ceil((cfg.EndBeat - cfg.StartBeat) / cfg.Step))
	for i := 0; i < steps; i++ {
		beat := cfg.StartBeat + float64(i)*cfg.Step
		if beat >= cfg.EndBeat {
			break
		}
		t := beat * beatTime

		switch patternFor(beat) {
		case patternCircleFlow:
			lane := int(math.Floor(beat)) % game.LaneCount
			hand := game.HandLeft
			if lane >= game.LaneCount/2 {
				hand = game.HandRight
			}
			add(t, lane, hand)

		case patternOpposites:
			if math.Mod(beat, 3) == 0 {
				add(t, 0, game.HandLeft)
				add(t, 3, game.HandRight)
			}

		case patternRandomBurst:
			if math.Mod(beat, 2) == 0 {
				hand := game.HandLeft
				if r.Intn(2) == 1 {
					hand = game.HandRight
				}
				add(t, r.Intn(game.LaneCount), hand)
			}

		case patternParallelLines:
			if math.Mod(beat, 4) == 0 {
				add(t, 1, game.HandLeft)
				add(t, 4, game.HandRight)
			}
		}
	}

	chart := &game.Chart{Notes: notes, BPM: cfg.BPM}
	chart.Sort()
	return chart, nil
}
