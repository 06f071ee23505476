package core

// Color is a semantic foreground colour for a screen cell.
// The platform layer maps these to terminal styles.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWater
	ColorShip
	ColorHit
	ColorMiss
	ColorCursor
	ColorPreviewOK
	ColorPreviewBad
	ColorLabel
	ColorTitle
	ColorStatus
	ColorError
)
