package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI color when presenting the screen.
type Color uint8

// Palette used by the game renderer.
const (
	ColorDefault Color = iota
	ColorGreen         // obstacle body
	ColorBrightGreen   // obstacle cap
	ColorYellow        // player
	ColorRed           // dead player
	ColorCyan          // ground
	ColorWhite         // HUD text
)
