package level

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlLevel is the on-disk shape of a level file.
type yamlLevel struct {
	ID    string     `yaml:"id"`
	Name  string     `yaml:"name"`
	Floor yamlFloor  `yaml:"floor"`
	Items []yamlItem `yaml:"items"`
}

type yamlFloor struct {
	Tile string `yaml:"tile"`
	Row  int    `yaml:"row"`
}

// yamlItem holds exactly one of Next, Tile, Pipe or Hole. Rows may be given
// absolutely or relative to the floor with above_floor.
type yamlItem struct {
	Next       int    `yaml:"next,omitempty"`
	Tile       string `yaml:"tile,omitempty"`
	Pipe       bool   `yaml:"pipe,omitempty"`
	Hole       int    `yaml:"hole,omitempty"`
	Row        *int   `yaml:"row,omitempty"`
	AboveFloor *int   `yaml:"above_floor,omitempty"`
	Len        int    `yaml:"len,omitempty"`
}

// Parse decodes and validates a YAML level.
func Parse(data []byte) (*Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	floorTile := Rock
	if yl.Floor.Tile != "" {
		t, ok := TileByName(yl.Floor.Tile)
		if !ok {
			return nil, fmt.Errorf("%w: unknown floor tile %q", ErrInvalid, yl.Floor.Tile)
		}
		floorTile = t
	}

	l := &Level{
		ID:    yl.ID,
		Name:  yl.Name,
		Floor: Floor{Tile: floorTile, Row: yl.Floor.Row},
		Items: make([]Item, 0, len(yl.Items)),
	}
	if l.Name == "" {
		l.Name = l.ID
	}

	for i, yi := range yl.Items {
		it, err := yi.toItem(l)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		l.Items = append(l.Items, it)
	}

	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func (yi yamlItem) toItem(l *Level) (Item, error) {
	set := 0
	for _, b := range []bool{yi.Next != 0, yi.Tile != "", yi.Pipe, yi.Hole != 0} {
		if b {
			set++
		}
	}
	if set != 1 {
		return Item{}, fmt.Errorf("%w: expected exactly one of next, tile, pipe, hole", ErrInvalid)
	}

	row := 0
	switch {
	case yi.Row != nil && yi.AboveFloor != nil:
		return Item{}, fmt.Errorf("%w: row and above_floor are exclusive", ErrInvalid)
	case yi.Row != nil:
		row = *yi.Row
	case yi.AboveFloor != nil:
		row = l.AboveFloor(*yi.AboveFloor)
	}

	switch {
	case yi.Next != 0:
		return NextCol(yi.Next), nil
	case yi.Tile != "":
		t, ok := TileByName(yi.Tile)
		if !ok {
			return Item{}, fmt.Errorf("%w: unknown tile %q", ErrInvalid, yi.Tile)
		}
		n := yi.Len
		if n == 0 {
			n = 1
		}
		return TileRun(t, row, n), nil
	case yi.Pipe:
		return Pipe(row), nil
	default:
		return Hole(yi.Hole), nil
	}
}

// LoadFile reads and parses a single level file.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return l, nil
}

// Loader loads every level file under a directory.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at dir.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll walks the root and returns the valid levels sorted by id.
// Files that fail to parse are skipped and reported in the second result.
func (l *Loader) LoadAll() ([]*Level, []error, error) {
	var (
		levels  []*Level
		skipped []error
	)

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
		default:
			return nil
		}

		lvl, err := LoadFile(path)
		if err != nil {
			skipped = append(skipped, err)
			return nil
		}
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, skipped, nil
}

// Resolve returns the built-in level with the given id, or loads path when
// it is set.
func Resolve(id, path string) (*Level, error) {
	if path != "" {
		return LoadFile(path)
	}
	if id == "" {
		id = World11.ID
	}
	return Builtin(id)
}
