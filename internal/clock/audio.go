package clock

import (
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// AudioClock derives song time from the playback position of a beep
// streamer. Pausing the clock pauses playback, which freezes the
// position, so gameplay and audio cannot drift apart.
type AudioClock struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
}

func NewAudioClock(streamer beep.StreamSeekCloser, format beep.Format) *AudioClock {
	return &AudioClock{
		streamer: streamer,
		format:   format,
		ctrl:     &beep.Ctrl{Streamer: streamer},
	}
}

// Streamer is what should be handed to speaker.Play.
func (c *AudioClock) Streamer() beep.Streamer {
	return c.ctrl
}

func (c *AudioClock) Now() float64 {
	speaker.Lock()
	pos := c.streamer.Position()
	speaker.Unlock()
	return c.format.SampleRate.D(pos).Seconds()
}

func (c *AudioClock) Rewind() error {
	speaker.Lock()
	err := c.streamer.Seek(0)
	speaker.Unlock()
	return err
}

func (c *AudioClock) Pause(paused bool) {
	speaker.Lock()
	c.ctrl.Paused = paused
	speaker.Unlock()
}

func (c *AudioClock) Paused() bool {
	speaker.Lock()
	paused := c.ctrl.Paused
	speaker.Unlock()
	return paused
}
