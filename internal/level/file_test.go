package level

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleLevel = `
id: "1-2"
name: Steps
floor:
  tile: rock
  row: 15
items:
  - next: 3
  - tile: brick
    above_floor: 3
    len: 2
  - next: 4
  - pipe: true
    row: 12
  - next: 6
  - hole: 3
`

func TestParse(t *testing.T) {
	l, err := Parse([]byte(sampleLevel))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []Item{
		NextCol(3),
		TileRun(Brick, 11, 2),
		NextCol(4),
		Pipe(12),
		NextCol(6),
		Hole(3),
	}
	if len(l.Items) != len(want) {
		t.Fatalf("len(Items) = %d, expected %d", len(l.Items), len(want))
	}
	for i := range want {
		if l.Items[i] != want[i] {
			t.Errorf("Items[%d] = %+v, expected %+v", i, l.Items[i], want[i])
		}
	}
	if l.Name != "Steps" || l.ID != "1-2" {
		t.Errorf("header = %q/%q", l.ID, l.Name)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "id: [\n"},
		{"unknown tile", "id: x\nfloor: {row: 15}\nitems:\n  - tile: lava\n"},
		{"two kinds", "id: x\nfloor: {row: 15}\nitems:\n  - next: 1\n    hole: 2\n"},
		{"both rows", "id: x\nfloor: {row: 15}\nitems:\n  - tile: brick\n    row: 3\n    above_floor: 2\n"},
		{"invalid floor", "id: x\nfloor: {row: 0}\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data)); err == nil {
				t.Error("Parse() expected error")
			}
		})
	}

	_, err := Parse([]byte("id: x\nfloor: {row: 15}\nitems:\n  - next: -1\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("negative advance error = %v, expected ErrInvalid", err)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("b.yaml", sampleLevel)
	write("a.yml", "id: \"0-1\"\nfloor: {row: 14}\n")
	write("broken.yaml", "id: x\nfloor: {row: 99}\n")
	write("notes.txt", "ignored")

	levels, skipped, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("len(levels) = %d, expected 2", len(levels))
	}
	if levels[0].ID != "0-1" || levels[1].ID != "1-2" {
		t.Errorf("ids = %s, %s, expected sorted 0-1, 1-2", levels[0].ID, levels[1].ID)
	}
	if len(skipped) != 1 {
		t.Errorf("len(skipped) = %d, expected 1", len(skipped))
	}
}

func TestResolve(t *testing.T) {
	l, err := Resolve("", "")
	if err != nil || l.ID != "1-1" {
		t.Errorf("Resolve default = %v, %v", l, err)
	}
	if _, err := Resolve("", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Resolve missing file expected error")
	}
}
