package theme

import (
	"image/color"

	"github.com/mvlr/beatstrike/internal/game"
)

type DefaultTheme struct {
}

// RenderNote returns the bare glyph; NoteColor carries the hand color so
// the hands stay distinguishable on colorless terminals too.
func (t *DefaultTheme) RenderNote(lane int, hand game.Hand) string {
	if hand == game.HandLeft {
		return "●"
	}
	return "◆"
}

func (t *DefaultTheme) RenderHitField(lane int) string {
	return "\033[2;37m◯\033[0m"
}

func (t *DefaultTheme) NoteColor(hand game.Hand) color.RGBA {
	if hand == game.HandLeft {
		return color.RGBA{R: 220, G: 60, B: 60, A: 255}
	}
	return color.RGBA{R: 60, G: 120, B: 220, A: 255}
}
