// Package pong implements a two-paddle ball game against a scripted opponent.
// The player controls the left paddle with the pointer, the opponent the right one.
package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
)

// Rand is the random source used when serving the ball.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Session owns every entity of a running game. It is not safe for
// concurrent use; the loop driver serializes all calls.
type Session struct {
	Field    Field
	Player   Paddle
	Opponent Paddle
	Ball     Ball
	Score    Score
	Tick     uint64

	// LastPoint is the side that scored during the most recent Step.
	LastPoint Side

	ballSpeed float64
	spin      float64
	cpuSpeed  float64
	deadZone  float64
	keyStep   float64
	rng       Rand
}

// NewSession creates a session with both paddles centered and the ball served
// from the middle of the field. cfg is expected to have passed config.Validate.
func NewSession(cfg config.PongConfig, rng Rand) *Session {
	field := Field{Width: cfg.Field.Width, Height: cfg.Field.Height}
	paddleY := field.CenterY() - cfg.Paddles.Height/2

	s := &Session{
		Field: field,
		Player: Paddle{
			X:      cfg.Paddles.Offset,
			Y:      paddleY,
			Width:  cfg.Paddles.Width,
			Height: cfg.Paddles.Height,
		},
		Opponent: Paddle{
			X:      field.Width - cfg.Paddles.Width - cfg.Paddles.Offset,
			Y:      paddleY,
			Width:  cfg.Paddles.Width,
			Height: cfg.Paddles.Height,
		},
		Ball:      Ball{Radius: cfg.Ball.Radius},
		ballSpeed: cfg.Ball.Speed,
		spin:      cfg.Ball.Spin,
		cpuSpeed:  cfg.CPU.Speed,
		deadZone:  cfg.CPU.DeadZone,
		keyStep:   cfg.Paddles.KeyStep,
		rng:       rng,
	}
	s.serve()
	return s
}

// BallSpeed returns the horizontal speed the ball is served with.
func (s *Session) BallSpeed() float64 {
	return s.ballSpeed
}

// serve centers the ball with a random direction: left or right at full
// speed, vertical speed uniform in [-speed, speed).
func (s *Session) serve() {
	s.Ball.X = s.Field.CenterX()
	s.Ball.Y = s.Field.CenterY()

	if s.rng.Float64() < 0.5 {
		s.Ball.VX = s.ballSpeed
	} else {
		s.Ball.VX = -s.ballSpeed
	}
	s.Ball.VY = s.ballSpeed * (s.rng.Float64()*2 - 1)
}
