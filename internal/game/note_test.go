package game

import "testing"

func TestNoteResolvesAtMostOnce(t *testing.T) {
	n := &Note{ID: "a", Time: 1}

	if !n.MarkHit(0.98) {
		t.Fatal("first hit should resolve the note")
	}
	if n.MarkHit(0.99) || n.MarkMissed() {
		t.Fatal("a resolved note must not transition again")
	}
	if !n.Hit || n.Missed {
		t.Fatal("hit and missed are mutually exclusive")
	}
	if n.HitTime != 0.98 {
		t.Fatal("hit time must record the first qualifying frame")
	}

	m := &Note{ID: "b", Time: 1}
	if !m.MarkMissed() {
		t.Fatal("unresolved note should miss")
	}
	if m.MarkHit(2) {
		t.Fatal("a missed note must not hit")
	}
	if m.Hit || m.HitTime != 0 {
		t.Fatal("hit time is only set on hit notes")
	}
}
