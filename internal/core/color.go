package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes by the platform layer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// PlatformPalette holds the colors cycled through by platform segments.
// A segment keeps the palette entry assigned at spawn for its whole life;
// explosions sparked on it inherit the same color.
var PlatformPalette = []Color{
	ColorBrightCyan,
	ColorBrightMagenta,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorOrange,
	ColorBrightBlue,
}
