package clock

import "sync"

// ManualClock is advanced explicitly by its driver. Used for silent
// sessions (no audio file found) and for tests.
type ManualClock struct {
	mu      sync.Mutex
	elapsed float64
	paused  bool
}

func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Advance moves the clock forward by dt seconds. Ignored while paused.
func (c *ManualClock) Advance(dt float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused && dt > 0 {
		c.elapsed += dt
	}
}

// Rewind returns the clock to the start of the timeline.
func (c *ManualClock) Rewind() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.elapsed = 0
	return nil
}

// Seek sets the elapsed time directly.
func (c *ManualClock) Seek(seconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.elapsed = seconds
}

func (c *ManualClock) Now() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

func (c *ManualClock) Pause(paused bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = paused
}

func (c *ManualClock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}
