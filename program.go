package main

import (
	"fmt"
	"os"
	"time"

	"github.com/eiannone/keyboard"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/mvlr/beatstrike/internal/clock"
	"github.com/mvlr/beatstrike/internal/config"
	"github.com/mvlr/beatstrike/internal/engine"
	"github.com/mvlr/beatstrike/internal/game"
	"github.com/mvlr/beatstrike/internal/judge"
	"github.com/mvlr/beatstrike/internal/render"
	"github.com/mvlr/beatstrike/internal/score"
	"github.com/mvlr/beatstrike/internal/session"
	"github.com/mvlr/beatstrike/internal/theme"
	"github.com/mvlr/beatstrike/internal/track"
)

// Keys standing in for the hand detector: home-row keys place the left
// or right hand on a lane anchor for one frame.
var laneKeys = map[rune]struct {
	lane int
	hand game.Hand
}{
	's': {0, game.HandLeft},
	'd': {1, game.HandLeft},
	'f': {2, game.HandLeft},
	'j': {3, game.HandRight},
	'k': {4, game.HandRight},
	'l': {5, game.HandRight},
}

const rowsPerDepthUnit = 2.0

type Position struct {
	Row, Col int
}

type Program struct {
	Renderer render.Renderer
	Theme    theme.Theme
	Engine   *engine.Engine
	Scorer   score.Scorer

	log      *zap.SugaredLogger
	keys     <-chan keyboard.KeyEvent
	judgeCfg judge.Config

	// Manual is set when no audio file drives time
	Manual *clock.ManualClock
	play   func() // starts audio playback, once

	width, height int
	laneCols      [game.LaneCount]int
	hitRow        int
	sideCol       int

	drawn []Position // note cells drawn last frame, cleared next frame
	saved bool
}

func (p *Program) Init() error {
	columns, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}
	p.width, p.height = columns, rows
	p.hitRow = rows - 4

	mc := columns >> 1
	spacing := 8
	for i := range p.laneCols {
		p.laneCols[i] = mc + (2*i-game.LaneCount+1)*spacing/2
	}
	p.sideCol = p.laneCols[0] - 36
	if p.sideCol < 2 {
		p.sideCol = 2
	}
	return nil
}

func (p *Program) Run() error {
	if err := p.Init(); nil != err {
		return err
	}
	if err := p.Renderer.Init(); nil != err {
		return err
	}
	defer func() {
		if err := p.Renderer.Deinit(); nil != err {
			p.log.Errorw("unable to restore terminal", "err", err)
		}
	}()

	p.Renderer.RenderLoop(*config.Delay, *config.FramePeriod, p.frame)
	return nil
}

// noteRow maps a travel depth to a terminal row above the hit bar.
func (p *Program) noteRow(depth float64) int {
	return p.hitRow - int(depth*rowsPerDepthUnit)
}

// feedbackRow is where hit/miss feedback lands: just under the hit bar,
// so an expiring decoration never blanks a hit-field cell.
func feedbackRow(hitRow int) int {
	return hitRow + 1
}

func (p *Program) frame(startTime time.Time, duration time.Duration) bool {
	frame := track.Frame{TimestampMs: float64(duration.Milliseconds())}

	for i := 0; i < len(p.keys); i++ {
		key := <-p.keys
		if key.Key == keyboard.KeyEsc || key.Key == keyboard.KeyCtrlC {
			return false
		}
		switch {
		case key.Key == keyboard.KeySpace:
			p.start()
		case key.Rune == 'p':
			p.Engine.TogglePause()
		case key.Rune == 'r':
			p.Engine.Reset()
			p.saved = false
			p.clearField()
		default:
			if lk, ok := laneKeys[key.Rune]; ok {
				anchor := game.LaneAnchor(lk.lane, p.judgeCfg.LaneRadius, p.judgeCfg.LaneCenterY, 0)
				x, y := track.NormalizeForPlaySpace(anchor)
				frame.Hands = append(frame.Hands, track.DetectedHand{Hand: lk.hand, X: x, Y: y})
			}
		}
	}

	// The stand-in detector publishes every frame, so a hand is only
	// present on frames its key arrived in
	p.Engine.Conditioner().Publish(frame)

	// The silent clock only runs while a session is playing, so chart
	// time is not consumed while the player idles
	if nil != p.Manual && p.Engine.Snapshot().Status == session.StatusPlaying {
		p.Manual.Advance(config.FramePeriod.Seconds())
	}

	events := p.Engine.Tick()
	for _, ev := range events {
		col := p.laneCols[ev.Note.Lane]
		row := feedbackRow(p.hitRow)
		if ev.Kind == game.EventHit {
			p.Renderer.AddDecoration(col, row, "\033[1;32m◆\033[0m", 24)
		} else {
			p.Renderer.AddDecoration(col, row, "\033[1;31m✕\033[0m", 24)
		}
	}

	p.renderField()
	p.renderStats()
	return true
}

func (p *Program) start() {
	if err := p.Engine.Start(); nil != err {
		p.log.Errorw("unable to start session", "err", err)
		return
	}
	if nil != p.play {
		p.play()
		p.play = nil
	}
}

func (p *Program) clearField() {
	for _, pos := range p.drawn {
		p.Renderer.Fill(pos.Row, pos.Col, " ")
	}
	p.drawn = p.drawn[:0]
}

func (p *Program) renderField() {
	p.clearField()

	for i := 0; i < game.LaneCount; i++ {
		p.Renderer.Fill(p.hitRow, p.laneCols[i], p.Theme.RenderHitField(i))
	}

	for _, view := range p.Engine.Visible() {
		row := p.noteRow(view.Depth)
		if row <= 1 || row >= p.height || row == p.hitRow {
			continue
		}
		col := p.laneCols[view.Note.Lane]
		p.Renderer.FillColor(row, col,
			p.Theme.NoteColor(view.Note.Hand),
			p.Theme.RenderNote(view.Note.Lane, view.Note.Hand))
		p.drawn = append(p.drawn, Position{Row: row, Col: col})
	}
}

func (p *Program) renderStats() {
	snap := p.Engine.Snapshot()

	p.Renderer.Fill(2, p.sideCol, fmt.Sprintf("     Status:  %9v", snap.Status))
	p.Renderer.Fill(4, p.sideCol, fmt.Sprintf("      Score:  %9v", snap.Score))
	p.Renderer.Fill(5, p.sideCol, fmt.Sprintf("      Combo:  %9v", snap.Combo))
	p.Renderer.Fill(6, p.sideCol, fmt.Sprintf("     Health:  %9.1f", snap.Health))
	p.Renderer.Fill(7, p.sideCol, fmt.Sprintf("       Time:  %8.0fs", snap.TimeRemaining))
	p.Renderer.Fill(9, p.sideCol, fmt.Sprintf("       Hits:  %9v", snap.Hits))
	p.Renderer.Fill(10, p.sideCol, fmt.Sprintf("     Misses:  %9v", snap.Misses))

	switch snap.Status {
	case session.StatusIdle:
		p.Renderer.Fill(12, p.sideCol, "space to start, esc to quit ")
	case session.StatusGameOver, session.StatusVictory:
		p.saveResult(snap)
		p.Renderer.Fill(12, p.sideCol, "r to restart, esc to quit   ")
	default:
		p.Renderer.Fill(12, p.sideCol, "                            ")
	}
}

func (p *Program) saveResult(snap session.Snapshot) {
	if p.saved {
		return
	}
	p.saved = true
	chart := p.Engine.Chart()
	if nil == chart {
		return
	}
	if err := p.Scorer.Save(chart, snap); nil != err {
		p.log.Errorw("unable to save result", "err", err)
		return
	}
	if results, err := p.Scorer.Load(chart); nil == err {
		p.log.Infow("session finished",
			"outcome", snap.Status.String(), "score", snap.Score, "plays", len(results))
	}
}
