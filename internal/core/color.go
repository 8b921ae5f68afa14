package core

// Color represents a foreground color for a screen cell.
// Platforms translate it to their own palette (ANSI 256 codes).
type Color uint8

// Colors used by the playfield.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorGray
)

// ANSI returns the 256-color palette index for the color, or -1 for the
// terminal default.
func (c Color) ANSI() int {
	switch c {
	case ColorRed:
		return 1
	case ColorGreen:
		return 2
	case ColorYellow:
		return 3
	case ColorBlue:
		return 4
	case ColorCyan:
		return 6
	case ColorWhite:
		return 7
	case ColorBrightWhite:
		return 15
	case ColorGray:
		return 245
	default:
		return -1
	}
}
