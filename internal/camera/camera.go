// Package camera owns the affine scroll position that drives both level
// streaming and world-to-screen conversion.
package camera

import (
	"github.com/vovakirdan/tui-platformer/internal/fixed"
	"github.com/vovakirdan/tui-platformer/internal/video"
)

// VisibleHalfCols is the number of 8 px columns spanned by the screen.
const VisibleHalfCols = video.ScreenCols

// MaxScrollY is the lowest the camera may scroll, in pixels.
const MaxScrollY = 100

// Camera is the affine scroll pair in fixed-point pixels.
type Camera struct {
	X fixed.Fixed
	Y fixed.Fixed
}

// Info is a read-only snapshot of the camera for one tick.
type Info struct {
	X        fixed.Fixed
	Y        fixed.Fixed
	ColStart uint16 // first visible 8 px column
}

// ColEnd returns the last visible 8 px column.
func (i Info) ColEnd() uint16 {
	return i.ColStart + VisibleHalfCols
}

// New returns a camera at the world origin.
func New() *Camera {
	return &Camera{}
}

// Reset moves the camera back to the origin.
func (c *Camera) Reset() {
	c.X = 0
	c.Y = 0
}

// Info snapshots the camera.
func (c *Camera) Info() Info {
	start := c.X.Int() / 8
	if start < 0 {
		start = 0
	}
	return Info{
		X:        c.X,
		Y:        c.Y,
		ColStart: uint16(start),
	}
}

// Translate moves the camera. Vertical scroll is clamped to [0, MaxScrollY].
func (c *Camera) Translate(dx, dy fixed.Fixed) {
	c.X = c.X.Add(dx)
	c.Y = fixed.Clamp(c.Y.Add(dy), 0, fixed.FromInt(MaxScrollY))
}

// Commit flushes the scroll position to the background registers.
func (c *Camera) Commit(w video.AffineWriter) {
	w.SetScroll(c.X, c.Y)
}

// TileToScreen converts a tile grid position (8 px row, 16 px world column)
// into sprite screen coordinates, accounting for sub-column scroll.
func TileToScreen(row, col int, info Info) (x, y int) {
	colStart := int(info.ColStart)
	difference := info.X.Add(fixed.Half).Sub(fixed.FromInt(colStart * 8)).Int()
	x = (col*2-colStart)*8 - difference

	rowStart := int(info.Y.Bits() >> 11)
	yDifference := info.Y.Sub(fixed.FromInt(rowStart*8)).Int() - 1
	y = row*8 - rowStart*8 - yDifference
	return x, y
}

// WorldToScreen converts a fixed-point world position to screen pixels.
func WorldToScreen(x, y fixed.Fixed, info Info) (int, int) {
	return x.Sub(info.X).Int(), y.Sub(info.Y).Int()
}
