package pong

import (
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Step advances the game by one frame.
func (s *Session) Step() {
	s.Tick++
	s.LastPoint = SideNone

	b := &s.Ball

	// Move ball
	b.X += b.VX
	b.Y += b.VY

	// Bounce off top/bottom walls
	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.VY = -b.VY
	} else if b.Y+b.Radius > s.Field.Height {
		b.Y = s.Field.Height - b.Radius
		b.VY = -b.VY
	}

	// Ball hits left paddle (player). Checked before the opponent.
	if b.X-b.Radius < s.Player.Right() && s.Player.spans(b.Y) {
		b.X = s.Player.Right() + b.Radius
		b.VX = -b.VX
		b.VY = s.spinFor(s.Player)
	}

	// Ball hits right paddle (opponent)
	if b.X+b.Radius > s.Opponent.X && s.Opponent.spans(b.Y) {
		b.X = s.Opponent.X - b.Radius
		b.VX = -b.VX
		b.VY = s.spinFor(s.Opponent)
	}

	// Check scoring (ball fully past an edge)
	if b.X+b.Radius < 0 {
		s.Score.Opponent++
		s.LastPoint = SideOpponent
		s.serve()
	} else if b.X-b.Radius > s.Field.Width {
		s.Score.Player++
		s.LastPoint = SidePlayer
		s.serve()
	}

	s.updateOpponent()
}

// spinFor returns the vertical speed after a hit on p: zero at the paddle
// center, growing linearly to the spin speed at either end.
func (s *Session) spinFor(p Paddle) float64 {
	offset := (s.Ball.Y - p.CenterY()) / (p.Height / 2)
	return s.spin * offset
}

// updateOpponent moves the scripted paddle toward the ball unless the ball
// is within the dead-zone of its center.
func (s *Session) updateOpponent() {
	center := s.Opponent.CenterY()
	if center < s.Ball.Y-s.deadZone {
		s.Opponent.Y += s.cpuSpeed
	} else if center > s.Ball.Y+s.deadZone {
		s.Opponent.Y -= s.cpuSpeed
	}
	s.Opponent.Y = core.ClampF(s.Opponent.Y, 0, s.Field.Height-s.Opponent.Height)
}
