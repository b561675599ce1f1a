// Package effects schedules and animates short visual effects: a pending
// queue holds delayed starts and a fixed set of active slots animates them.
package effects

import (
	"io"
	"iter"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/bounded"
	"github.com/vovakirdan/tui-platformer/internal/camera"
	"github.com/vovakirdan/tui-platformer/internal/fixed"
	"github.com/vovakirdan/tui-platformer/internal/stream"
	"github.com/vovakirdan/tui-platformer/internal/video"
)

// Capacities of the two stages.
const (
	PendingCapacity = 6
	ActiveCapacity  = 8
)

// SpriteBase is the first sprite slot owned by effects. Active slot i owns
// sprite slots SpriteBase+2i and SpriteBase+2i+1.
const SpriteBase = 1

// WobbleAffine is the shared affine parameter set pulsed while effects run.
const WobbleAffine = 1

// Display is what the effects draw into.
type Display interface {
	video.TileWriter
	video.SpriteWriter
	video.AffineWriter
}

// animation is an effect plus its timing. While pending, start holds the
// remaining delay; once active it holds the tick the effect started.
type animation struct {
	effect  Effect
	start   uint32
	sprites [2]video.SpriteAttr
}

// Manager owns every effect instance.
type Manager struct {
	log     *log.Logger
	display Display
	pending *bounded.Queue[animation]
	active  *bounded.Bag[animation]

	suppressed uint64
	evicted    uint64
}

// New creates a manager drawing into display. A nil logger discards.
func New(display Display, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Manager{
		log:     logger.WithPrefix("effects"),
		display: display,
		pending: bounded.NewQueue[animation](PendingCapacity),
		active:  bounded.NewBag[animation](ActiveCapacity),
	}
	m.Reset()
	return m
}

// Reset drops every effect, hides effect sprites and restores the shared
// affine parameters.
func (m *Manager) Reset() {
	m.pending.Clear()
	m.active.Clear()
	m.suppressed = 0
	m.evicted = 0
	for i := range ActiveCapacity * 2 {
		m.display.WriteSprite(SpriteBase+i, video.SpriteAttr{})
	}
	m.display.SetAffine(WobbleAffine, video.Identity)
}

// Add schedules e to start after delay ticks. When the pending queue is full
// the oldest pending effect is dropped.
func (m *Manager) Add(e Effect, delay uint32) {
	if old, ok := m.pending.PushPop(animation{effect: e, start: delay}); ok {
		m.evicted++
		m.log.Debug("pending queue full, dropped oldest", "kind", old.effect.Kind, "row", old.effect.Row, "col", old.effect.Col)
	}
}

// Tick promotes ready effects and advances the active ones.
func (m *Manager) Tick(tick uint32) {
	// Bounded by the length at entry so requeued effects wait a tick.
	for range m.pending.Len() {
		a, ok := m.pending.Pop()
		if !ok {
			break
		}
		if a.start > 0 {
			a.start--
			m.requeue(a)
			continue
		}
		if m.duplicate(a.effect) {
			m.suppressed++
			m.log.Debug("duplicate effect suppressed", "kind", a.effect.Kind, "row", a.effect.Row, "col", a.effect.Col)
			continue
		}

		a.start = tick
		if _, err := m.active.Push(a); err != nil {
			a.start = 0
			m.requeue(a)
			break
		}
	}

	m.active.Retain(func(slot int, a *animation) bool {
		return m.step(slot, a, fixed.SatSubU32(tick, a.start))
	})
}

func (m *Manager) requeue(a animation) {
	if old, ok := m.pending.PushPop(a); ok {
		m.evicted++
		m.log.Debug("pending queue full, dropped oldest", "kind", old.effect.Kind)
	}
}

func (m *Manager) duplicate(e Effect) bool {
	for _, a := range m.active.All() {
		if a.effect.samePlace(e) {
			return true
		}
	}
	return false
}

// wobble is the shared affine A parameter keyed by tick mod 16. Odd ticks
// leave the parameter alone.
var wobble = [16]struct {
	set bool
	a   fixed.Fixed
}{
	0:  {true, fixed.FromInt(4)},
	2:  {true, fixed.FromInt(2)},
	4:  {true, fixed.FromInt(1)},
	6:  {true, fixed.FromInt(-2)},
	8:  {true, fixed.FromInt(-4)},
	10: {true, fixed.FromInt(-2)},
	12: {true, fixed.FromInt(1)},
	14: {true, fixed.FromInt(2)},
}

// PostTick places every active effect's sprites for the committed camera
// view and pulses the shared wobble while anything is active.
func (m *Manager) PostTick(tick uint32, view camera.Info) {
	placed := false
	for slot, a := range m.active.All() {
		placed = true
		m.place(slot, a, fixed.SatSubU32(tick, a.start), view)
	}
	if !placed {
		return
	}
	if w := wobble[fixed.ModPow2(tick, 4)]; w.set {
		m.display.SetAffineA(WobbleAffine, w.a)
	}
}

// step advances one active effect. Returning false retires it after its
// finalization has run.
func (m *Manager) step(slot int, a *animation, elapsed uint32) bool {
	e := a.effect
	if elapsed >= e.Duration() {
		if e.Kind == KindTileBounce {
			stream.DrawTile(m.display, e.Row, e.Col, e.Bounce.restingTile())
		}
		m.hide(slot)
		return false
	}
	if elapsed != 0 {
		return true
	}

	switch e.Kind {
	case KindTileBounce:
		stream.ClearTile(m.display, e.Row, e.Col)
		a.sprites[0] = video.SpriteAttr{
			TileID:      e.Bounce.spriteTile(),
			Size:        1,
			Affine:      true,
			AffineIndex: WobbleAffine,
			Visible:     true,
		}
	case KindCoinUp:
		a.sprites[0] = video.SpriteAttr{
			TileID:  video.ObjCoin,
			Size:    1,
			Visible: true,
		}
	case KindPoints:
		left, right := e.Amount.tiles()
		a.sprites[0] = video.SpriteAttr{TileID: video.PointsTile(left), Visible: true}
		a.sprites[1] = video.SpriteAttr{TileID: video.PointsTile(right), Visible: true}
	}
	return true
}

func (m *Manager) place(slot int, a *animation, elapsed uint32, view camera.Info) {
	e := a.effect
	x, y := camera.TileToScreen(e.Row, e.Col, view)
	x = min(max(x, -60), video.ScreenW)

	switch e.Kind {
	case KindTileBounce:
		y -= BounceOffset(elapsed)
	default:
		y -= RiseOffset(elapsed)
	}
	y = min(max(y, 0), 256)

	a.sprites[0].X, a.sprites[0].Y = x, y
	m.display.WriteSprite(spriteSlot(slot), a.sprites[0])
	if e.Kind == KindPoints {
		a.sprites[1].X, a.sprites[1].Y = min(x+8, video.ScreenW), y
		m.display.WriteSprite(spriteSlot(slot)+1, a.sprites[1])
	}
}

func (m *Manager) hide(slot int) {
	m.display.WriteSprite(spriteSlot(slot), video.SpriteAttr{})
	m.display.WriteSprite(spriteSlot(slot)+1, video.SpriteAttr{})
}

func spriteSlot(slot int) int {
	return SpriteBase + slot*2
}

// PendingCount returns the number of effects waiting to start.
func (m *Manager) PendingCount() int {
	return m.pending.Len()
}

// ActiveCount returns the number of effects animating.
func (m *Manager) ActiveCount() int {
	return m.active.Len()
}

// Suppressed returns how many effects were dropped as duplicates.
func (m *Manager) Suppressed() uint64 {
	return m.suppressed
}

// Evicted returns how many pending effects were pushed out of a full queue.
func (m *Manager) Evicted() uint64 {
	return m.evicted
}

// Active yields the active effects in slot order.
func (m *Manager) Active() iter.Seq[Effect] {
	return func(yield func(Effect) bool) {
		for _, a := range m.active.All() {
			if !yield(a.effect) {
				return
			}
		}
	}
}
