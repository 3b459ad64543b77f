package theme

import (
	"image/color"

	"github.com/mvlr/beatstrike/internal/game"
)

type Theme interface {
	RenderNote(lane int, hand game.Hand) string
	RenderHitField(lane int) string
	NoteColor(hand game.Hand) color.RGBA
}
