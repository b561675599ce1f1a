// Package level holds the static level data model: tiles, the ordered item
// stream the renderer consumes, and the floor descriptor.
package level

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("level: invalid")

// MaxRow is the last tile row (16 px) whose collision bits fit in a column mask.
const MaxRow = 15

// Kind tags the variants of Item.
type Kind uint8

const (
	KindTile Kind = iota + 1
	KindPipe
	KindHole
	KindNextCol
)

func (k Kind) String() string {
	switch k {
	case KindTile:
		return "tile"
	case KindPipe:
		return "pipe"
	case KindHole:
		return "hole"
	case KindNextCol:
		return "next"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Item is one instruction of a level's item stream. Which fields are
// meaningful depends on Kind:
//
//	KindTile    Tile, Row, Len
//	KindPipe    Row
//	KindHole    Len
//	KindNextCol Advance
type Item struct {
	Kind    Kind
	Tile    Tile
	Row     int
	Len     int
	Advance int
}

// TileRun places len copies of tile on row.
func TileRun(tile Tile, row, n int) Item {
	return Item{Kind: KindTile, Tile: tile, Row: row, Len: n}
}

// Pipe places a two column pipe whose top sits on row.
func Pipe(row int) Item {
	return Item{Kind: KindPipe, Row: row}
}

// Hole removes the floor for n columns.
func Hole(n int) Item {
	return Item{Kind: KindHole, Len: n}
}

// NextCol advances the column cursor.
func NextCol(n int) Item {
	return Item{Kind: KindNextCol, Advance: n}
}

// Renderable reports whether the item is anchored to a column and drawn.
func (it Item) Renderable() bool {
	return it.Kind == KindTile || it.Kind == KindPipe || it.Kind == KindHole
}

// Floor is the solid ground descriptor. Row is in 16 px tile rows.
type Floor struct {
	Tile Tile
	Row  int
}

// Level is an immutable level definition.
type Level struct {
	ID    string
	Name  string
	Floor Floor
	Items []Item
}

// AboveFloor returns the tile row n rows above the top of the floor.
func (l *Level) AboveFloor(n int) int {
	return max(l.Floor.Row-1-n, 0)
}

// Length returns the column the cursor reaches after the last NextCol.
func (l *Level) Length() int {
	n := 0
	for _, it := range l.Items {
		if it.Kind == KindNextCol {
			n += it.Advance
		}
	}
	return n
}

// Validate checks the level against the limits of the renderer.
func (l *Level) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalid)
	}
	if l.Floor.Row < 1 || l.Floor.Row > MaxRow {
		return fmt.Errorf("%w: %s: floor row %d outside 1..%d", ErrInvalid, l.ID, l.Floor.Row, MaxRow)
	}
	if l.Floor.Tile == 0 {
		return fmt.Errorf("%w: %s: floor tile not set", ErrInvalid, l.ID)
	}

	for i, it := range l.Items {
		switch it.Kind {
		case KindNextCol:
			if it.Advance <= 0 {
				return fmt.Errorf("%w: %s: item %d: advance must be positive, got %d", ErrInvalid, l.ID, i, it.Advance)
			}
		case KindTile:
			if it.Len <= 0 {
				return fmt.Errorf("%w: %s: item %d: tile run length must be positive", ErrInvalid, l.ID, i)
			}
			if it.Row < 0 || it.Row > MaxRow {
				return fmt.Errorf("%w: %s: item %d: row %d outside 0..%d", ErrInvalid, l.ID, i, it.Row, MaxRow)
			}
			if it.Tile == 0 {
				return fmt.Errorf("%w: %s: item %d: tile not set", ErrInvalid, l.ID, i)
			}
		case KindPipe:
			if it.Row < 0 || it.Row >= l.Floor.Row {
				return fmt.Errorf("%w: %s: item %d: pipe row %d must be above floor row %d", ErrInvalid, l.ID, i, it.Row, l.Floor.Row)
			}
		case KindHole:
			if it.Len <= 0 {
				return fmt.Errorf("%w: %s: item %d: hole length must be positive", ErrInvalid, l.ID, i)
			}
		default:
			return fmt.Errorf("%w: %s: item %d: unknown kind %d", ErrInvalid, l.ID, i, it.Kind)
		}
	}
	return nil
}
