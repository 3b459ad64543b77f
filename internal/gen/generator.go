package gen

import (
	"github.com/mvlr/beatstrike/internal/game"
)

type Generator interface {
	Generate() (*game.Chart, error)
}
