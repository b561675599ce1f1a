// Package video describes the display capabilities the runtime core writes to
// and provides Memory, an in-process model of that display. The core only ever
// sees the small writer interfaces; the terminal host reads Memory back to draw.
package video

import "github.com/vovakirdan/tui-platformer/internal/fixed"

// Display geometry in pixels and 8x8 cells.
const (
	ScreenW    = 240
	ScreenH    = 160
	ScreenCols = ScreenW / 8
	ScreenRows = ScreenH / 8
)

// Tile map geometry. Each map entry covers one 16 px world column and one 8 px
// row: the affine background stores two 8x8 cell indices per write.
const (
	MapCols = 32
	MapRows = 64
)

// Sprite and affine table sizes.
const (
	SpriteSlots = 128
	AffineSets  = 32
)

// Text layer geometry.
const (
	TextCols = 32
	TextRows = 20
)

// Entry is one tile map write: the 8x8 cell indices for the left (Low) and
// right (High) half of a world column.
type Entry struct {
	Low  uint8
	High uint8
}

// Empty reports whether both halves are blank.
func (e Entry) Empty() bool {
	return e.Low == 0 && e.High == 0
}

// TileWriter is the tile map write capability. Writes are immediate and
// idempotent; the last write to a cell wins.
type TileWriter interface {
	WriteTile(row, col int, e Entry)
}

// TileReader reads back what was written to the tile map.
type TileReader interface {
	ReadTile(row, col int) (Entry, bool)
}

// TileMap combines reading and writing.
type TileMap interface {
	TileWriter
	TileReader
}

// SpriteAttr is a sprite attribute record. The zero value is a hidden sprite.
type SpriteAttr struct {
	X, Y        int
	TileID      uint16
	Size        uint8 // 0 = 8x8, 1 = 16x16
	Priority    uint8
	Palette     uint8
	Affine      bool
	AffineIndex uint8
	HFlip       bool
	Visible     bool
}

// SpriteWriter is the sprite attribute write capability.
type SpriteWriter interface {
	WriteSprite(slot int, a SpriteAttr)
}

// AffineParams is one 2x2 affine matrix.
type AffineParams struct {
	A, B, C, D fixed.Fixed
}

// Identity is the affine matrix that leaves sprites untouched.
var Identity = AffineParams{A: fixed.One, D: fixed.One}

// AffineWriter covers the background scroll registers and the shared sprite
// affine parameter sets.
type AffineWriter interface {
	SetScroll(x, y fixed.Fixed)
	SetAffine(idx int, p AffineParams)
	SetAffineA(idx int, a fixed.Fixed)
}

// TextWriter is the text layer capability used by the HUD.
type TextWriter interface {
	WriteText(row, col int, text string)
}

// Device is every capability of the display.
type Device interface {
	TileMap
	SpriteWriter
	AffineWriter
	TextWriter
}
