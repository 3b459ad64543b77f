package game

import "sort"

type Chart struct {
	Notes []*Note
	BPM   float64
}

// Sort orders the notes non-decreasing by time. The sort is stable so
// simultaneous notes keep their generation order within a run.
func (c *Chart) Sort() {
	sort.SliceStable(c.Notes, func(i, j int) bool {
		return c.Notes[i].Time < c.Notes[j].Time
	})
}

// Duration is the timeline position of the last note, 0 for an empty chart.
func (c *Chart) Duration() float64 {
	if len(c.Notes) == 0 {
		return 0
	}
	return c.Notes[len(c.Notes)-1].Time
}
