package level

import (
	"fmt"
	"sort"
)

// World11 is the reference layout.
var World11 = newWorld11()

func newWorld11() *Level {
	l := &Level{
		ID:    "1-1",
		Name:  "World 1-1",
		Floor: Floor{Tile: Rock, Row: 15},
	}
	up := l.AboveFloor
	l.Items = []Item{
		NextCol(4),
		TileRun(QuestionUnused, up(3), 4),
		NextCol(12),
		TileRun(QuestionUnused, up(3), 1),
		NextCol(4),
		TileRun(Brick, up(3), 5),
		NextCol(1),
		TileRun(QuestionUnused, up(3), 1),
		NextCol(1),
		TileRun(Brick, up(7), 1),
		NextCol(1),
		TileRun(QuestionUnused, up(3), 1),
		NextCol(5),
		Pipe(up(1)),
		NextCol(10),
		Pipe(up(2)),
		NextCol(8),
		Pipe(up(3)),
		NextCol(11),
		Pipe(up(3)),
		NextCol(12),
		Hole(2),
	}
	return l
}

var builtins = map[string]*Level{
	World11.ID: World11,
}

// Builtin returns a built-in level by id.
func Builtin(id string) (*Level, error) {
	l, ok := builtins[id]
	if !ok {
		return nil, fmt.Errorf("level: unknown level %q", id)
	}
	return l, nil
}

// BuiltinIDs returns the ids of the built-in levels in sorted order.
func BuiltinIDs() []string {
	ids := make([]string, 0, len(builtins))
	for id := range builtins {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
