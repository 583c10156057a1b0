package core

// Color represents a foreground color for a screen cell.
// The platform layer decides how each color is displayed.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorForeground
	ColorDim
)
