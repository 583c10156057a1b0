package pong

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// seqRand replays a fixed sequence of values, cycling when exhausted.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// newTestSession creates a default session whose serves draw from vals.
// With no values every serve goes right with no vertical speed.
func newTestSession(vals ...float64) *Session {
	if len(vals) == 0 {
		vals = []float64{0.25, 0.5}
	}
	return NewSession(config.DefaultPongConfig(), &seqRand{vals: vals})
}

func TestNewSessionLayout(t *testing.T) {
	s := newTestSession()

	if s.Player.X != 20 || s.Player.Y != 150 {
		t.Errorf("player at (%v, %v), expected (20, 150)", s.Player.X, s.Player.Y)
	}
	if s.Opponent.X != 765 || s.Opponent.Y != 150 {
		t.Errorf("opponent at (%v, %v), expected (765, 150)", s.Opponent.X, s.Opponent.Y)
	}
	if s.Ball.X != 400 || s.Ball.Y != 200 {
		t.Errorf("ball at (%v, %v), expected (400, 200)", s.Ball.X, s.Ball.Y)
	}
	if s.Ball.Radius != 12 {
		t.Errorf("ball radius = %v, expected 12", s.Ball.Radius)
	}
	if s.Score != (Score{}) {
		t.Errorf("score = %+v, expected zero", s.Score)
	}
}

func TestServeDirection(t *testing.T) {
	tests := []struct {
		name   string
		vals   []float64
		vx, vy float64
	}{
		{"right, flat", []float64{0.25, 0.5}, 6, 0},
		{"left, steepest up", []float64{0.75, 0.0}, -6, -6},
		{"boundary goes left", []float64{0.5, 0.75}, -6, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(tc.vals...)
			if s.Ball.VX != tc.vx || s.Ball.VY != tc.vy {
				t.Errorf("velocity = (%v, %v), expected (%v, %v)", s.Ball.VX, s.Ball.VY, tc.vx, tc.vy)
			}
		})
	}
}

func TestSideString(t *testing.T) {
	if SidePlayer.String() != "player" || SideOpponent.String() != "opponent" || SideNone.String() != "none" {
		t.Error("unexpected Side names")
	}
}
