package main

import "testing"

func TestFeedbackRowOffHitBar(t *testing.T) {
	// Hit/miss feedback shares a column with the hit field; it must land
	// on its own row or its expiry blanks the hit-field glyph
	for _, hitRow := range []int{10, 24, 50} {
		if feedbackRow(hitRow) == hitRow {
			t.Fatal("feedback must not land on the hit bar row")
		}
	}
}
