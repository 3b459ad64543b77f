package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mvlr/beatstrike/internal/clock"
	"github.com/mvlr/beatstrike/internal/game"
	"github.com/mvlr/beatstrike/internal/gen"
	"github.com/mvlr/beatstrike/internal/judge"
	"github.com/mvlr/beatstrike/internal/sched"
	"github.com/mvlr/beatstrike/internal/session"
	"github.com/mvlr/beatstrike/internal/track"
)

// NoteView is one active note with its resolved 3D pose, for rendering.
type NoteView struct {
	Note  *game.Note
	Pos   game.Vec3
	Depth float64
}

// Engine wires the clock, scheduler, judge, hand conditioner and session
// together. All gameplay state advances on Tick, called once per render
// frame from a single goroutine; the only other goroutine is the 1 s
// countdown ticker, stopped deterministically by Close.
type Engine struct {
	log   *zap.SugaredLogger
	clock clock.Clock
	cond  track.Conditioner
	gen   gen.Generator
	judge *judge.Judge
	sess  *session.Session

	schedCfg sched.Config
	sched    *sched.Scheduler
	chart    *game.Chart

	trackerReady bool
	onEvent      func(game.Event)

	cancel context.CancelFunc
	done   chan struct{}
}

func New(
	log *zap.SugaredLogger,
	clk clock.Clock,
	cond track.Conditioner,
	generator gen.Generator,
	schedCfg sched.Config,
	judgeCfg judge.Config,
	sessCfg session.Config,
) (*Engine, error) {
	if err := schedCfg.Validate(); nil != err {
		return nil, err
	}
	if err := judgeCfg.Validate(); nil != err {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	e := &Engine{
		log:      log,
		clock:    clk,
		cond:     cond,
		gen:      generator,
		judge:    judge.New(judgeCfg),
		sess:     session.New(sessCfg),
		schedCfg: schedCfg,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go e.countdown(ctx)
	return e, nil
}

func (e *Engine) countdown(ctx context.Context) {
	defer close(e.done)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			e.sess.CountdownTick()
		case <-ctx.Done():
			return
		}
	}
}

// Close stops the countdown goroutine and waits for it to exit. Safe on
// every exit path, including a session abandoned mid-tick.
func (e *Engine) Close() {
	e.cancel()
	<-e.done
}

// Conditioner is where the detection loop publishes frames.
func (e *Engine) Conditioner() track.Conditioner {
	return e.cond
}

// SetTrackerReady records the camera/tracker readiness signal and moves
// a loading session to idle.
func (e *Engine) SetTrackerReady() {
	e.trackerReady = true
	e.sess.Ready()
}

// Start generates a fresh chart and begins a run. Blocked while the
// tracking collaborator has not reported readiness.
func (e *Engine) Start() error {
	if !e.trackerReady {
		return game.ErrSensorUnavailable
	}
	chart, err := e.gen.Generate()
	if nil != err {
		return err
	}
	if !e.sess.Start() {
		return nil
	}
	// The fresh chart is timed from 0, so playback must restart with it
	if err := e.clock.Rewind(); nil != err {
		return fmt.Errorf("unable to rewind playback: %w", err)
	}
	e.chart = chart
	e.sched = sched.New(e.schedCfg, chart)
	e.log.Infow("session started", "notes", len(chart.Notes), "bpm", chart.BPM)
	return nil
}

// TogglePause suspends or resumes the run. The clock is paused with it
// so no time advances and no events fire.
func (e *Engine) TogglePause() {
	st := e.sess.TogglePause()
	e.clock.Pause(st == session.StatusPaused)
}

// Reset returns a finished session to idle and drops the run's chart
// state.
func (e *Engine) Reset() {
	if e.sess.Reset() {
		e.sched = nil
		e.chart = nil
		e.cond.Reset()
	}
}

// OnEvent registers a callback fired once per Hit/Miss, after the
// session has absorbed it. Feedback/display use.
func (e *Engine) OnEvent(fn func(game.Event)) {
	e.onEvent = fn
}

// Tick advances one render frame: admit and expire notes, then judge the
// active set against the latest hand samples. Returns the events that
// fired this tick.
func (e *Engine) Tick() []game.Event {
	if nil == e.sched || !e.sess.Playing() {
		return nil
	}
	now := e.clock.Now()

	events := e.sched.Advance(now)
	events = append(events, e.judge.Evaluate(now, e.sched, e.cond)...)

	for _, ev := range events {
		e.sess.Apply(ev)
		e.log.Debugw("note resolved",
			"kind", ev.Kind.String(), "note", ev.Note.ID, "lane", ev.Note.Lane)
		if nil != e.onEvent {
			e.onEvent(ev)
		}
	}
	return events
}

// Visible lists the active notes with their current 3D pose.
func (e *Engine) Visible() []NoteView {
	if nil == e.sched {
		return nil
	}
	now := e.clock.Now()
	active := e.sched.Active()
	views := make([]NoteView, 0, len(active))
	for _, n := range active {
		d := e.sched.DepthOf(n, now)
		views = append(views, NoteView{
			Note:  n,
			Pos:   e.judge.Anchor(n, d),
			Depth: d,
		})
	}
	return views
}

// Chart is the chart of the current run, nil while idle.
func (e *Engine) Chart() *game.Chart {
	return e.chart
}

func (e *Engine) Snapshot() session.Snapshot {
	return e.sess.Snapshot()
}
