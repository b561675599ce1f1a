package level

import (
	"errors"
	"testing"
)

func TestTileCorners(t *testing.T) {
	if Brick != 1 {
		t.Fatalf("Brick = %d, expected 1", Brick)
	}

	tests := []struct {
		name string
		got  uint8
		want uint8
	}{
		{"top left", QuestionUnused.TopLeft(), 5},
		{"top right", QuestionUnused.TopRight(), 6},
		{"bottom left", QuestionUnused.BottomLeft(), 21},
		{"bottom right", QuestionUnused.BottomRight(), 22},
		{"pipe body", PipeBodyLeft.TopLeft(), 45},
	}

	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("%s = %d, expected %d", tc.name, tc.got, tc.want)
		}
	}
}

func TestCellOwner(t *testing.T) {
	for _, tile := range []Tile{Brick, QuestionUsed, PipeTopRight, MountainSlopeDown} {
		for _, cell := range []uint8{tile.TopLeft(), tile.TopRight(), tile.BottomLeft(), tile.BottomRight()} {
			got, ok := CellOwner(cell)
			if !ok || got != tile {
				t.Errorf("CellOwner(%d) = %d, %v, expected %d", cell, got, ok, tile)
			}
		}
	}
	if _, ok := CellOwner(0); ok {
		t.Error("CellOwner(0) should not resolve")
	}
}

func TestTileByName(t *testing.T) {
	tile, ok := TileByName("question")
	if !ok || tile != QuestionUnused {
		t.Errorf("TileByName(question) = %d, %v", tile, ok)
	}
	if QuestionUsed.Name() != "question_used" {
		t.Errorf("Name = %q, expected question_used", QuestionUsed.Name())
	}
	if _, ok := TileByName("lava"); ok {
		t.Error("unknown tile resolved")
	}
}

func TestWorld11(t *testing.T) {
	if err := World11.Validate(); err != nil {
		t.Fatalf("World11.Validate() = %v", err)
	}
	if got := World11.AboveFloor(3); got != 11 {
		t.Errorf("AboveFloor(3) = %d, expected 11", got)
	}
	if got := World11.Length(); got != 69 {
		t.Errorf("Length = %d, expected 69", got)
	}
	l, err := Builtin("1-1")
	if err != nil || l != World11 {
		t.Errorf("Builtin(1-1) = %v, %v", l, err)
	}
	if _, err := Builtin("9-9"); err == nil {
		t.Error("Builtin(9-9) should fail")
	}
}

func TestValidate(t *testing.T) {
	base := func(items ...Item) *Level {
		return &Level{ID: "t", Floor: Floor{Tile: Rock, Row: 15}, Items: items}
	}

	tests := []struct {
		name  string
		level *Level
		ok    bool
	}{
		{"empty", base(), true},
		{"zero advance", base(NextCol(0)), false},
		{"negative advance", base(NextCol(-2)), false},
		{"zero run", base(TileRun(Brick, 3, 0)), false},
		{"row too low", base(TileRun(Brick, 16, 1)), false},
		{"pipe on floor", base(Pipe(15)), false},
		{"pipe above floor", base(Pipe(14)), true},
		{"empty hole", base(Hole(0)), false},
		{"unknown kind", base(Item{}), false},
		{"no id", &Level{Floor: Floor{Tile: Rock, Row: 15}}, false},
		{"floor out of range", &Level{ID: "x", Floor: Floor{Tile: Rock, Row: 20}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.level.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}
