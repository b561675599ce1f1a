package level

// TileColsPerRow is the width of the background tile sheet in 8x8 cells.
const TileColsPerRow = 16

// Tile identifies a 2x2 block of 8x8 cells by the index of its top-left cell.
type Tile uint16

// sheetTile returns the tile whose block sits at (row, col) of the sheet,
// measured in 16x16 blocks. Cell 0 is the transparent cell.
func sheetTile(row, col int) Tile {
	return Tile(row*2*TileColsPerRow + col*2 + 1)
}

// Named background tiles.
var (
	Brick             = sheetTile(0, 0)
	Rock              = sheetTile(0, 1)
	QuestionUnused    = sheetTile(0, 2)
	QuestionUsed      = sheetTile(0, 3)
	PipeTopLeft       = sheetTile(0, 6)
	PipeTopRight      = sheetTile(0, 7)
	PipeBodyLeft      = sheetTile(1, 6)
	PipeBodyRight     = sheetTile(1, 7)
	BushLeft          = sheetTile(1, 2)
	BushMiddle        = sheetTile(1, 3)
	BushRight         = sheetTile(3, 7)
	MountainTop       = sheetTile(3, 3)
	MountainSlopeUp   = sheetTile(4, 3)
	MountainButtons   = sheetTile(4, 4)
	MountainEmpty     = sheetTile(4, 5)
	MountainSlopeDown = sheetTile(4, 7)
)

// TopLeft returns the top-left cell index.
func (t Tile) TopLeft() uint8 { return uint8(t) }

// TopRight returns the top-right cell index.
func (t Tile) TopRight() uint8 { return uint8(t + 1) }

// BottomLeft returns the bottom-left cell index.
func (t Tile) BottomLeft() uint8 { return uint8(t + TileColsPerRow) }

// BottomRight returns the bottom-right cell index.
func (t Tile) BottomRight() uint8 { return uint8(t + TileColsPerRow + 1) }

var tileNames = map[string]Tile{
	"brick":               Brick,
	"rock":                Rock,
	"question":            QuestionUnused,
	"question_used":       QuestionUsed,
	"pipe_top_left":       PipeTopLeft,
	"pipe_top_right":      PipeTopRight,
	"pipe_body_left":      PipeBodyLeft,
	"pipe_body_right":     PipeBodyRight,
	"bush_left":           BushLeft,
	"bush_middle":         BushMiddle,
	"bush_right":          BushRight,
	"mountain_top":        MountainTop,
	"mountain_slope_up":   MountainSlopeUp,
	"mountain_buttons":    MountainButtons,
	"mountain_empty":      MountainEmpty,
	"mountain_slope_down": MountainSlopeDown,
}

// TileByName resolves a tile name as used in level files.
func TileByName(name string) (Tile, bool) {
	t, ok := tileNames[name]
	return t, ok
}

// Name returns the level-file name of a named tile, or "" for anything else.
func (t Tile) Name() string {
	for name, tile := range tileNames {
		if tile == t {
			return name
		}
	}
	return ""
}

var cellOwners [256]Tile

func init() {
	for _, t := range tileNames {
		for _, cell := range [...]uint8{t.TopLeft(), t.TopRight(), t.BottomLeft(), t.BottomRight()} {
			cellOwners[cell] = t
		}
	}
}

// CellOwner maps an 8x8 cell index back to the named tile that contains it.
func CellOwner(cell uint8) (Tile, bool) {
	t := cellOwners[cell]
	return t, t != 0
}
