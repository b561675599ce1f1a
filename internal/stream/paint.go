package stream

import (
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/video"
)

// mapCol wraps a world column onto the tile map.
func mapCol(col int) int {
	return col & (video.MapCols - 1)
}

// DrawTile paints tile with its top half on 8 px row and its bottom half on
// row+1 of world column col.
func DrawTile(w video.TileWriter, row, col int, t level.Tile) {
	c := mapCol(col)
	w.WriteTile(row, c, video.Entry{Low: t.TopLeft(), High: t.TopRight()})
	w.WriteTile(row+1, c, video.Entry{Low: t.BottomLeft(), High: t.BottomRight()})
}

// ClearTile blanks both rows a tile drawn at row would occupy.
func ClearTile(w video.TileWriter, row, col int) {
	c := mapCol(col)
	w.WriteTile(row, c, video.Entry{})
	w.WriteTile(row+1, c, video.Entry{})
}

// TileAt returns the named tile whose top half is drawn at row of world
// column col.
func TileAt(r video.TileReader, row, col int) (level.Tile, bool) {
	e, ok := r.ReadTile(row, mapCol(col))
	if !ok || e.Empty() {
		return 0, false
	}
	t, ok := level.CellOwner(e.Low)
	if !ok || t.TopLeft() != e.Low {
		return 0, false
	}
	return t, true
}
