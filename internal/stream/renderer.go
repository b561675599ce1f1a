// Package stream paints the level into the tile map as the camera advances and
// publishes a sliding window of per-column collision masks for the physics.
package stream

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/bounded"
	"github.com/vovakirdan/tui-platformer/internal/camera"
	"github.com/vovakirdan/tui-platformer/internal/fixed"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/video"
)

// ManagedCapacity is the number of level items that may be live at once.
const ManagedCapacity = 8

// reapRows is the number of 8 px map rows blanked for a reaped column.
const reapRows = 35

// decorationPeriod is the width, in world columns, of the background pattern.
const decorationPeriod = 48

// Config tunes the streaming margins, in half-columns.
type Config struct {
	Lookahead  int
	ReapMargin int
	Logger     *log.Logger
}

// DefaultConfig returns the reference margins.
func DefaultConfig() Config {
	return Config{Lookahead: 2, ReapMargin: 8}
}

// managedItem is a level item anchored to the world column where it started.
type managedItem struct {
	item     level.Item
	colStart int
}

// Renderer streams a level into a tile map.
type Renderer struct {
	log   *log.Logger
	tiles video.TileMap
	lvl   *level.Level

	lookahead  uint16
	reapMargin uint16

	renderedCol uint16 // half-columns
	reapedCol   uint16 // half-columns
	itemPtr     int
	colPtr      int // world columns

	managed *bounded.Bag[managedItem]
	window  *Window
	view    camera.Info
}

// New creates a renderer for lvl that paints into tiles.
func New(tiles video.TileMap, lvl *level.Level, cfg Config) *Renderer {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Renderer{
		log:        logger.WithPrefix("stream"),
		tiles:      tiles,
		lvl:        lvl,
		lookahead:  uint16(max(cfg.Lookahead, 0)+1) &^ 1,
		reapMargin: uint16(max(cfg.ReapMargin, 0)+1) &^ 1,
		managed:    bounded.NewBag[managedItem](ManagedCapacity),
		window:     NewWindow(),
	}
}

// Reset rewinds the renderer to the start of lvl. The tile map is not touched.
func (r *Renderer) Reset(lvl *level.Level) {
	if lvl != nil {
		r.lvl = lvl
	}
	r.renderedCol = 0
	r.reapedCol = 0
	r.itemPtr = 0
	r.colPtr = 0
	r.managed.Clear()
	r.window.Reset()
	r.view = camera.Info{}
}

// Level returns the level being streamed.
func (r *Renderer) Level() *level.Level {
	return r.lvl
}

// Window exposes the standability window.
func (r *Renderer) Window() *Window {
	return r.window
}

// Cursor returns the world column cursor and the index of the next item.
func (r *Renderer) Cursor() (col, item int) {
	return r.colPtr, r.itemPtr
}

// Rendered returns the half-column up to which the map has been painted.
func (r *Renderer) Rendered() int {
	return int(r.renderedCol)
}

// Live returns the number of managed items currently anchored.
func (r *Renderer) Live() int {
	return r.managed.Len()
}

// Tick streams new columns for the camera position in view and reaps the
// ones left behind. It returns the number of world columns painted.
func (r *Renderer) Tick(view camera.Info) int {
	r.view = view

	start := view.ColStart
	renderEnd := view.ColEnd() + r.lookahead
	reap := fixed.SatSubU16(start, r.reapMargin)

	// Columns are streamed in pairs; odd starts wait for the next even one.
	if r.renderedCol >= renderEnd || !fixed.DivisibleByPow2(uint32(start), 1) {
		return 0
	}

	// Reap first: the map wraps every 32 world columns.
	for half := r.reapedCol; half < reap; half += 2 {
		col := int(half >> 1)
		for row := range reapRows {
			r.tiles.WriteTile(row, mapCol(col), video.Entry{})
		}
	}
	r.reapedCol = max(r.reapedCol, reap)

	painted := 0
	for half := r.renderedCol; half < renderEnd; half += 2 {
		r.renderColumn(int(half >> 1))
		painted++
	}
	r.renderedCol = renderEnd
	return painted
}

// aboveFloor returns the 8 px map row n tile rows above the floor.
func (r *Renderer) aboveFloor(n int) int {
	return r.lvl.AboveFloor(n) << 1
}

func (r *Renderer) renderColumn(col int) {
	var mask uint32
	floorRow := r.lvl.Floor.Row << 1
	floorVisible := true

	r.drawDecoration(col)
	r.drainItems(col)

	for idx, m := range r.managed.All() {
		inItem := col - m.colStart
		switch m.item.Kind {
		case level.KindTile:
			if inItem >= m.item.Len {
				r.managed.Remove(idx)
				continue
			}
			row := m.item.Row << 1
			mask |= 0b11 << row
			DrawTile(r.tiles, row, col, m.item.Tile)

		case level.KindPipe:
			anchor := inItem == 0
			top, body := level.PipeTopRight, level.PipeBodyRight
			if anchor {
				top, body = level.PipeTopLeft, level.PipeBodyLeft
			}
			row := m.item.Row << 1
			mask |= 0b11 << row
			DrawTile(r.tiles, row, col, top)
			for bodyRow := row + 2; bodyRow < floorRow; bodyRow += 2 {
				mask |= 0b11 << bodyRow
				DrawTile(r.tiles, bodyRow, col, body)
			}
			if !anchor {
				r.managed.Remove(idx)
			}

		case level.KindHole:
			if inItem >= m.item.Len {
				r.managed.Remove(idx)
				continue
			}
			floorVisible = false

		default:
			r.managed.Remove(idx)
		}
	}

	if floorVisible {
		mask |= 0b1111 << floorRow
		DrawTile(r.tiles, floorRow, col, r.lvl.Floor.Tile)
		DrawTile(r.tiles, floorRow+2, col, r.lvl.Floor.Tile)
	}

	// One world column spans two half-columns.
	r.window.Push(mask)
	r.window.Push(mask)
}

// drainItems consumes the item stream up to col, anchoring renderable items.
func (r *Renderer) drainItems(col int) {
	items := r.lvl.Items
	for r.colPtr <= col && r.itemPtr < len(items) {
		it := items[r.itemPtr]
		r.itemPtr++
		if it.Kind == level.KindNextCol {
			r.colPtr += it.Advance
			continue
		}
		if it.Renderable() {
			r.admit(managedItem{item: it, colStart: col})
		}
	}
}

// admit anchors m. When every slot is taken the item with the oldest anchor
// is evicted so streaming can continue.
func (r *Renderer) admit(m managedItem) {
	if _, err := r.managed.Push(m); err == nil {
		return
	}

	oldest, oldestCol := -1, 0
	for idx, live := range r.managed.All() {
		if oldest < 0 || live.colStart < oldestCol {
			oldest, oldestCol = idx, live.colStart
		}
	}
	evicted, _ := r.managed.Take(oldest)
	r.log.Error("managed item overflow, evicting oldest",
		"level", r.lvl.ID,
		"col", m.colStart,
		"evicted_kind", evicted.item.Kind,
		"evicted_col", evicted.colStart,
	)
	if _, err := r.managed.Push(m); err != nil {
		r.log.Error("managed item dropped", "level", r.lvl.ID, "col", m.colStart, "error", err)
	}
}

func (r *Renderer) drawDecoration(col int) {
	up := r.aboveFloor
	switch col % decorationPeriod {
	case 0, 16:
		DrawTile(r.tiles, up(0), col, level.MountainSlopeUp)
	case 1:
		DrawTile(r.tiles, up(1), col, level.MountainSlopeUp)
		DrawTile(r.tiles, up(0), col, level.MountainButtons)
	case 2:
		DrawTile(r.tiles, up(2), col, level.MountainTop)
		DrawTile(r.tiles, up(1), col, level.MountainButtons)
		DrawTile(r.tiles, up(0), col, level.MountainEmpty)
	case 3:
		DrawTile(r.tiles, up(1), col, level.MountainSlopeDown)
		DrawTile(r.tiles, up(0), col, level.MountainButtons)
	case 4, 18:
		DrawTile(r.tiles, up(0), col, level.MountainSlopeDown)
	case 11, 23, 41:
		DrawTile(r.tiles, up(0), col, level.BushLeft)
	case 12, 13, 14, 24, 42, 43:
		DrawTile(r.tiles, up(0), col, level.BushMiddle)
	case 15, 25, 44:
		DrawTile(r.tiles, up(0), col, level.BushRight)
	case 17:
		DrawTile(r.tiles, up(1), col, level.MountainTop)
		DrawTile(r.tiles, up(0), col, level.MountainButtons)
	}
}

// CollisionMask returns the collision mask of half-column col. Queries are
// clamped to the visible span of the last streamed view; columns outside the
// window read as empty.
func (r *Renderer) CollisionMask(col int) uint32 {
	start := int(r.view.ColStart)
	end := int(r.view.ColEnd())
	col = min(max(col, start), end)

	if !r.window.Contains(col) {
		r.log.Debug("collision query outside window", "col", col, "window_start", r.window.Start())
		return 0
	}
	return r.window.At(col)
}

// IsStandable reads the tile map directly: it reports whether 8 px row of
// world column col holds any tile. Columns outside the visible span are
// rejected.
func (r *Renderer) IsStandable(row, col int) bool {
	half := col << 1
	if half < int(r.view.ColStart) || half > int(r.view.ColEnd()) || row < 0 || row >= video.MapRows {
		r.log.Warn("standability query outside visible span",
			"row", row, "col", col,
			"span_start", r.view.ColStart, "span_end", r.view.ColEnd(),
		)
		return false
	}
	e, ok := r.tiles.ReadTile(row, mapCol(col))
	return ok && !e.Empty()
}
