package pong

import (
	"strconv"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Layout of the net and the score text, in field units.
const (
	NetDash      = 12
	ScoreOffsetX = 60
	ScoreY       = 50
)

// Surface is the drawing target of Render. Coordinates are field units.
type Surface interface {
	Clear()
	SetColor(c core.Color)
	DashedVLine(x, y0, y1, dash float64)
	FillRect(x, y, w, h float64)
	FillCircle(cx, cy, r float64)
	Text(x, y float64, s string)
}

// Render draws the session onto dst. It only reads the session.
func Render(s *Session, dst Surface) {
	dst.Clear()

	// Net
	dst.SetColor(core.ColorDim)
	dst.DashedVLine(s.Field.CenterX(), 0, s.Field.Height, NetDash)

	dst.SetColor(core.ColorForeground)

	// Paddles
	for _, p := range []Paddle{s.Player, s.Opponent} {
		dst.FillRect(p.X, p.Y, p.Width, p.Height)
	}

	dst.FillCircle(s.Ball.X, s.Ball.Y, s.Ball.Radius)

	// Scores
	dst.Text(s.Field.CenterX()-ScoreOffsetX, ScoreY, strconv.Itoa(s.Score.Player))
	dst.Text(s.Field.CenterX()+ScoreOffsetX, ScoreY, strconv.Itoa(s.Score.Opponent))
}
