package core

// Color is a foreground color for a screen cell, translated by the
// platform renderer to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Semantic colors used by the shooter renderer.
const (
	ColorPlayer  = ColorBrightYellow
	ColorEnemy   = ColorBrightRed
	ColorCloud   = ColorBrightWhite
	ColorHUD     = ColorBrightCyan
	ColorHitBox  = ColorOrange
	ColorWarning = ColorRed
)
