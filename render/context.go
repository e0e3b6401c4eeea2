package render

import (
	"time"
)

// CellWidth is terminal columns per board cell. Two columns per cell
// compensates the ~2:1 height:width aspect of terminal characters
const CellWidth = 2

// Context provides frame state for renderers, passed by value
type Context struct {
	// Time state
	GameTime  time.Time
	DeltaTime float64
	IsPaused  bool

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Board placement (top-left of the board area in screen coordinates)
	BoardOffsetX int
	BoardOffsetY int

	// Board dimensions in cells
	BoardWidth  int
	BoardHeight int

	// Scene state, filled by the scene before renderers run
	Darkness    float64 // 0-100
	MoonVisible bool
	MoonAlpha   float64
	MoonX       int // Disc center, screen coordinates
	MoonY       int
	MoonRadiusX int
	MoonRadiusY int
}

// CellToScreen converts a board cell to the screen position of its left column
func (rc *Context) CellToScreen(cx, cy int) (int, int) {
	return rc.BoardOffsetX + cx*CellWidth, rc.BoardOffsetY + cy
}

// InBoard reports whether a board cell is within board bounds
func (rc *Context) InBoard(cx, cy int) bool {
	return cx >= 0 && cx < rc.BoardWidth && cy >= 0 && cy < rc.BoardHeight
}

// InMoonDisc reports whether a screen position falls inside the moon's
// drawn radius. Used by the starfield for occlusion
func (rc *Context) InMoonDisc(sx, sy int) bool {
	if !rc.MoonVisible || rc.MoonRadiusX <= 0 || rc.MoonRadiusY <= 0 {
		return false
	}
	dx := float64(sx-rc.MoonX) / float64(rc.MoonRadiusX)
	dy := float64(sy-rc.MoonY) / float64(rc.MoonRadiusY)
	return dx*dx+dy*dy <= 1.0
}
