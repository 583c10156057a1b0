package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// MovePointer centers the player paddle on the pointer's vertical position,
// clamped to the field. A NaN position is ignored.
func (s *Session) MovePointer(y float64) {
	if math.IsNaN(y) {
		return
	}
	s.setPlayerY(y - s.Player.Height/2)
}

// NudgePlayer moves the player paddle one keyboard step up (dir < 0) or
// down (dir > 0).
func (s *Session) NudgePlayer(dir int) {
	switch {
	case dir < 0:
		s.setPlayerY(s.Player.Y - s.keyStep)
	case dir > 0:
		s.setPlayerY(s.Player.Y + s.keyStep)
	}
}

func (s *Session) setPlayerY(y float64) {
	s.Player.Y = core.ClampF(y, 0, s.Field.Height-s.Player.Height)
}
