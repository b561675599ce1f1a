package video

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/fixed"
)

func TestMemoryTileReadWrite(t *testing.T) {
	m := NewMemory()
	m.WriteTile(3, 4, Entry{Low: 1, High: 2})

	e, ok := m.ReadTile(3, 4)
	if !ok || e.Low != 1 || e.High != 2 {
		t.Errorf("ReadTile(3, 4) = (%+v, %v), expected ({1 2}, true)", e, ok)
	}
	if m.TileWrites != 1 {
		t.Errorf("TileWrites = %d, expected 1", m.TileWrites)
	}
	if _, ok := m.ReadTile(MapRows, 0); ok {
		t.Error("ReadTile out of range should return false")
	}
}

func TestMemoryTileWriteOutOfBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WriteTile out of bounds should panic")
		}
	}()
	NewMemory().WriteTile(0, MapCols, Entry{Low: 1})
}

func TestMemoryResetRestoresIdentity(t *testing.T) {
	m := NewMemory()
	m.SetAffineA(1, fixed.FromInt(4))
	m.WriteSprite(5, SpriteAttr{Visible: true})
	m.Reset()

	if m.Affine[1] != Identity {
		t.Errorf("Affine[1] = %+v, expected identity", m.Affine[1])
	}
	if m.Sprites[5].Visible {
		t.Error("Reset should hide sprites")
	}
}

func TestMemoryWriteTextClips(t *testing.T) {
	m := NewMemory()
	m.WriteText(0, TextCols-2, "abcd")

	row := m.TextRow(0)
	if []rune(row)[TextCols-2] != 'a' || []rune(row)[TextCols-1] != 'b' {
		t.Errorf("TextRow(0) = %q, expected clipped 'ab' at the end", row)
	}
}
