package session

import (
	"sync"

	"github.com/mvlr/beatstrike/internal/game"
)

type Status uint8

const (
	StatusLoading Status = iota
	StatusIdle
	StatusPlaying
	StatusPaused
	StatusGameOver
	StatusVictory
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	case StatusVictory:
		return "victory"
	}
	return "unknown"
}

// Terminal reports whether the status can only be left by an explicit
// reset.
func (s Status) Terminal() bool {
	return s == StatusGameOver || s == StatusVictory
}

type Config struct {
	Duration   float64 // session length in seconds
	HitScore   int
	HitHealth  float64 // health restored per hit
	MissHealth float64 // health lost per miss
	MaxHealth  float64
}

func DefaultConfig() Config {
	return Config{
		Duration:   90,
		HitScore:   100,
		HitHealth:  1.5,
		MissHealth: 10,
		MaxHealth:  100,
	}
}

// Snapshot is the UI-facing view of the session.
type Snapshot struct {
	Status        Status
	Score         int
	Combo         int
	MaxCombo      int
	Health        float64
	TimeRemaining float64
	Hits          int
	Misses        int
}

// Session owns score, combo, health and overall status. It is mutated
// only by judgement events and the countdown tick; the mutex covers the
// countdown goroutine running beside the render tick.
type Session struct {
	cfg Config

	mu            sync.Mutex
	status        Status
	score         int
	combo         int
	maxCombo      int
	health        float64
	timeRemaining float64
	hits          int
	misses        int
}

func New(cfg Config) *Session {
	return &Session{cfg: cfg, status: StatusLoading}
}

// Ready moves loading → idle once the tracking collaborator signals
// readiness. No-op in any other state.
func (s *Session) Ready() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == StatusLoading {
		s.status = StatusIdle
	}
}

// Start moves idle → playing and resets all per-run counters. Returns
// false if the session is not idle.
func (s *Session) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusIdle {
		return false
	}
	s.status = StatusPlaying
	s.score = 0
	s.combo = 0
	s.maxCombo = 0
	s.health = s.cfg.MaxHealth
	s.timeRemaining = s.cfg.Duration
	s.hits = 0
	s.misses = 0
	return true
}

// TogglePause flips playing ⇄ paused and returns the resulting status.
func (s *Session) TogglePause() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.status {
	case StatusPlaying:
		s.status = StatusPaused
	case StatusPaused:
		s.status = StatusPlaying
	}
	return s.status
}

// Apply folds one judgement event into the session. Events are only
// processed while playing; a terminal status freezes all effects until
// an explicit reset.
func (s *Session) Apply(ev game.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusPlaying {
		return
	}
	switch ev.Kind {
	case game.EventHit:
		s.score += s.cfg.HitScore
		s.combo++
		if s.combo > s.maxCombo {
			s.maxCombo = s.combo
		}
		s.hits++
		s.health += s.cfg.HitHealth
		if s.health > s.cfg.MaxHealth {
			s.health = s.cfg.MaxHealth
		}
	case game.EventMiss:
		s.combo = 0
		s.misses++
		s.health -= s.cfg.MissHealth
		if s.health <= 0 {
			s.health = 0
			s.status = StatusGameOver
		}
	}
}

// CountdownTick decrements the remaining time by one second. At zero the
// session ends in victory unless already terminal.
func (s *Session) CountdownTick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusPlaying {
		return
	}
	s.timeRemaining -= 1
	if s.timeRemaining <= 0 {
		s.timeRemaining = 0
		s.status = StatusVictory
	}
}

// Reset moves a finished (or idle-adjacent) session back to idle,
// clearing chart-derived runtime state. Only valid from a terminal
// status or idle.
func (s *Session) Reset() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.status.Terminal() && s.status != StatusIdle {
		return false
	}
	s.status = StatusIdle
	s.score = 0
	s.combo = 0
	s.maxCombo = 0
	s.health = s.cfg.MaxHealth
	s.timeRemaining = s.cfg.Duration
	s.hits = 0
	s.misses = 0
	return true
}

func (s *Session) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status == StatusPlaying
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Status:        s.status,
		Score:         s.score,
		Combo:         s.combo,
		MaxCombo:      s.maxCombo,
		Health:        s.health,
		TimeRemaining: s.timeRemaining,
		Hits:          s.hits,
		Misses:        s.misses,
	}
}
