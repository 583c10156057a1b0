package pong

// Field is the playfield, origin top-left.
type Field struct {
	Width  float64
	Height float64
}

// CenterX returns the horizontal center of the field.
func (f Field) CenterX() float64 { return f.Width / 2 }

// CenterY returns the vertical center of the field.
func (f Field) CenterY() float64 { return f.Height / 2 }

// Paddle is positioned by its top-left corner.
type Paddle struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x-coordinate of the paddle's right face.
func (p Paddle) Right() float64 { return p.X + p.Width }

// Bottom returns the y-coordinate of the paddle's bottom edge.
func (p Paddle) Bottom() float64 { return p.Y + p.Height }

// CenterY returns the vertical center of the paddle.
func (p Paddle) CenterY() float64 { return p.Y + p.Height/2 }

// spans reports whether y lies strictly inside the paddle's vertical extent.
func (p Paddle) spans(y float64) bool {
	return y > p.Y && y < p.Bottom()
}

// Ball is positioned by its center.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Score holds both running counters.
type Score struct {
	Player   int
	Opponent int
}

// Side identifies who won a point.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideOpponent
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideOpponent:
		return "opponent"
	default:
		return "none"
	}
}
