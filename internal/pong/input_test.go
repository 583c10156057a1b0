package pong

import (
	"math"
	"math/rand"
	"testing"
)

func TestMovePointer(t *testing.T) {
	tests := []struct {
		name      string
		pointerY  float64
		expectedY float64
	}{
		{"centered", 200, 150},
		{"top edge", 0, 0},
		{"bottom edge", 400, 300},
		{"above field", -1000, 0},
		{"below field", 1e9, 300},
		{"positive infinity", math.Inf(1), 300},
		{"negative infinity", math.Inf(-1), 0},
		{"NaN keeps position", math.NaN(), 150},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession()
			s.MovePointer(tc.pointerY)
			if s.Player.Y != tc.expectedY {
				t.Errorf("MovePointer(%v): Y = %v, expected %v", tc.pointerY, s.Player.Y, tc.expectedY)
			}
		})
	}
}

func TestMovePointerAlwaysInBounds(t *testing.T) {
	s := newTestSession()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		y := (rng.Float64() - 0.5) * 4000
		s.MovePointer(y)
		if s.Player.Y < 0 || s.Player.Y > s.Field.Height-s.Player.Height {
			t.Fatalf("MovePointer(%v): Y = %v out of bounds", y, s.Player.Y)
		}
	}
}

func TestMovePointerOnlyTouchesPlayer(t *testing.T) {
	s := newTestSession()
	ball, opp := s.Ball, s.Opponent

	s.MovePointer(10)

	if s.Ball != ball || s.Opponent != opp {
		t.Error("MovePointer should only move the player paddle")
	}
}

func TestNudgePlayer(t *testing.T) {
	tests := []struct {
		name      string
		startY    float64
		dir       int
		expectedY float64
	}{
		{"up", 150, -1, 110},
		{"down", 150, 1, 190},
		{"none", 150, 0, 150},
		{"clamped at top", 20, -1, 0},
		{"clamped at bottom", 290, 1, 300},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession()
			s.Player.Y = tc.startY
			s.NudgePlayer(tc.dir)
			if s.Player.Y != tc.expectedY {
				t.Errorf("NudgePlayer(%d) from %v: Y = %v, expected %v", tc.dir, tc.startY, s.Player.Y, tc.expectedY)
			}
		})
	}
}
