package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI 256-color codes.
type Color uint8

// Colors used for world elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorBrightWhite
	ColorGray
)

// Cell is a single character of the screen buffer.
type Cell struct {
	Rune  rune
	Color Color
}
