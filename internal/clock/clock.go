package clock

// Clock exposes the current song-elapsed time. Time must be monotonically
// non-decreasing while unpaused and frozen while paused.
type Clock interface {
	// Now returns the song-elapsed time in seconds.
	Now() float64
	Pause(paused bool)
	Paused() bool

	// Rewind returns playback to the start of the timeline. Called when
	// a run starts so a fresh chart is never judged against stale time.
	Rewind() error
}
