package video

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/fixed"
)

// Memory is an in-process display: tile map, sprite table, affine parameter
// sets, scroll registers and a text layer. It implements every writer
// interface in this package.
type Memory struct {
	Tiles   [MapRows][MapCols]Entry
	Sprites [SpriteSlots]SpriteAttr
	Affine  [AffineSets]AffineParams
	ScrollX fixed.Fixed
	ScrollY fixed.Fixed
	Text    [TextRows][TextCols]rune

	// TileWrites counts every tile map write, blank or not.
	TileWrites uint64
}

// NewMemory returns a cleared display.
func NewMemory() *Memory {
	m := &Memory{}
	m.Reset()
	return m
}

// Reset clears every table and restores identity affine parameters.
func (m *Memory) Reset() {
	*m = Memory{}
	for i := range m.Affine {
		m.Affine[i] = Identity
	}
	for r := range m.Text {
		for c := range m.Text[r] {
			m.Text[r][c] = ' '
		}
	}
}

// WriteTile stores e at (row, col). Writing outside the map corrupts video
// memory on real hardware, so it is treated as fatal.
func (m *Memory) WriteTile(row, col int, e Entry) {
	if row < 0 || row >= MapRows || col < 0 || col >= MapCols {
		panic(fmt.Sprintf("video: tile write out of bounds (%d, %d)", row, col))
	}
	m.Tiles[row][col] = e
	m.TileWrites++
}

// ReadTile returns the entry at (row, col).
func (m *Memory) ReadTile(row, col int) (Entry, bool) {
	if row < 0 || row >= MapRows || col < 0 || col >= MapCols {
		return Entry{}, false
	}
	return m.Tiles[row][col], true
}

// WriteSprite stores a sprite attribute record.
func (m *Memory) WriteSprite(slot int, a SpriteAttr) {
	if slot < 0 || slot >= SpriteSlots {
		panic(fmt.Sprintf("video: sprite slot %d out of bounds", slot))
	}
	m.Sprites[slot] = a
}

// SetScroll updates the background scroll registers.
func (m *Memory) SetScroll(x, y fixed.Fixed) {
	m.ScrollX = x
	m.ScrollY = y
}

// SetAffine replaces a whole affine parameter set.
func (m *Memory) SetAffine(idx int, p AffineParams) {
	if idx < 0 || idx >= AffineSets {
		panic(fmt.Sprintf("video: affine set %d out of bounds", idx))
	}
	m.Affine[idx] = p
}

// SetAffineA updates only the A term of a parameter set.
func (m *Memory) SetAffineA(idx int, a fixed.Fixed) {
	if idx < 0 || idx >= AffineSets {
		panic(fmt.Sprintf("video: affine set %d out of bounds", idx))
	}
	m.Affine[idx].A = a
}

// WriteText writes text to the text layer, clipping at the right edge.
func (m *Memory) WriteText(row, col int, text string) {
	if row < 0 || row >= TextRows {
		return
	}
	for i, r := range []rune(text) {
		c := col + i
		if c < 0 || c >= TextCols {
			continue
		}
		m.Text[row][c] = r
	}
}

// TextRow returns one text layer row as a string.
func (m *Memory) TextRow(row int) string {
	if row < 0 || row >= TextRows {
		return ""
	}
	return string(m.Text[row][:])
}

var (
	_ TileMap      = (*Memory)(nil)
	_ SpriteWriter = (*Memory)(nil)
	_ AffineWriter = (*Memory)(nil)
	_ TextWriter   = (*Memory)(nil)
	_ Device       = (*Memory)(nil)
)
