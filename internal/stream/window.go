package stream

import "github.com/vovakirdan/tui-platformer/internal/bounded"

// WindowSize is the number of half-columns the standability window holds.
const WindowSize = 32

// Window is a sliding window of per half-column collision masks. Bit r of a
// mask is set when 8 px row r is solid.
type Window struct {
	masks *bounded.Queue[uint32]
	start int
}

// NewWindow returns an empty window starting at column 0.
func NewWindow() *Window {
	return &Window{masks: bounded.NewQueue[uint32](WindowSize)}
}

// Push appends the mask for the next column. Evicting the oldest column
// advances the window start.
func (w *Window) Push(mask uint32) {
	if _, evicted := w.masks.PushPop(mask); evicted {
		w.start++
	}
}

// At returns the mask for absolute half-column col, or 0 when col is not in
// the window.
func (w *Window) At(col int) uint32 {
	idx := col - w.start
	if idx < 0 {
		return 0
	}
	mask, ok := w.masks.Get(idx)
	if !ok {
		return 0
	}
	return mask
}

// Contains reports whether col has been pushed and not yet evicted.
func (w *Window) Contains(col int) bool {
	idx := col - w.start
	return idx >= 0 && idx < w.masks.Len()
}

// Start returns the absolute column of the oldest mask.
func (w *Window) Start() int {
	return w.start
}

// Len returns the number of masks held.
func (w *Window) Len() int {
	return w.masks.Len()
}

// Reset empties the window and rewinds it to column 0.
func (w *Window) Reset() {
	w.masks.Clear()
	w.start = 0
}
