// Package hud draws the top bar: score, coins, world label and the countdown
// timer.
package hud

import (
	"github.com/vovakirdan/tui-platformer/internal/fixed"
	"github.com/vovakirdan/tui-platformer/internal/video"
)

// MaxScore is the largest score the bar can show.
const MaxScore = 999_999

// Text layout on row 0 of the text layer.
const (
	row       = 0
	scoreCol  = 1
	coinCol   = 10
	worldCol  = 18
	timeCol   = 26
	scoreDigs = 6
)

// Config sets the timer.
type Config struct {
	TimerStart   uint16
	TicksPerStep uint8
}

// DefaultConfig returns the reference timer: 400 steps of 22 ticks.
func DefaultConfig() Config {
	return Config{TimerStart: 400, TicksPerStep: 22}
}

// TopBar is the HUD collaborator. Score changes are staged and committed on
// the next Tick; text is written on Flush.
type TopBar struct {
	text  video.TextWriter
	cfg   Config
	world string

	score      uint32
	pending    uint32
	hasPending bool
	coins      uint8
	time       uint16
	timeTick   uint8

	dirtyScore bool
	dirtyTime  bool
	dirtyCoins bool
	dirtyWorld bool
}

// New creates a top bar for world that writes into text.
func New(text video.TextWriter, world string, cfg Config) *TopBar {
	if cfg.TicksPerStep == 0 {
		cfg.TicksPerStep = DefaultConfig().TicksPerStep
	}
	b := &TopBar{text: text, cfg: cfg, world: world}
	b.Reset(0)
	return b
}

// Reset restarts the timer and sets the score.
func (b *TopBar) Reset(score uint32) {
	b.score = min(score, MaxScore)
	b.pending = 0
	b.hasPending = false
	b.coins = 0
	b.time = b.cfg.TimerStart
	b.timeTick = 0
	b.dirtyScore, b.dirtyTime, b.dirtyCoins, b.dirtyWorld = true, true, true, true
}

// SetWorld changes the world label.
func (b *TopBar) SetWorld(world string) {
	b.world = world
	b.dirtyWorld = true
}

// UpdateScore replaces the score on the next tick.
func (b *TopBar) UpdateScore(score uint32) {
	b.pending = score
	b.hasPending = true
}

// AddToScore adds n to the score on the next tick. Several calls within one
// tick accumulate.
func (b *TopBar) AddToScore(n uint32) {
	base := b.score
	if b.hasPending {
		base = b.pending
	}
	b.pending = base + min(n, MaxScore-min(base, MaxScore))
	b.hasPending = true
}

// AddCoin counts one coin. The counter wraps at 100.
func (b *TopBar) AddCoin() {
	b.coins = (b.coins + 1) % 100
	b.dirtyCoins = true
}

// Tick commits the staged score and advances the timer.
func (b *TopBar) Tick() {
	if b.time > 0 {
		b.timeTick++
		if b.timeTick >= b.cfg.TicksPerStep {
			b.time--
			b.timeTick = 0
			b.dirtyTime = true
		}
	}

	if !b.hasPending {
		return
	}
	b.score = min(b.pending, MaxScore)
	b.hasPending = false
	b.dirtyScore = true
}

// Flush writes whatever changed since the last flush.
func (b *TopBar) Flush() {
	if b.dirtyScore {
		b.text.WriteText(row, scoreCol, fixed.Dec(b.score, scoreDigs))
		b.dirtyScore = false
	}
	if b.dirtyCoins {
		b.text.WriteText(row, coinCol, "Cx"+fixed.Dec(uint32(b.coins), 2))
		b.dirtyCoins = false
	}
	if b.dirtyWorld {
		b.text.WriteText(row, worldCol, b.world)
		b.dirtyWorld = false
	}
	if b.dirtyTime {
		b.text.WriteText(row, timeCol, fixed.Dec(uint32(b.time), 3))
		b.dirtyTime = false
	}
}

// Score returns the committed score.
func (b *TopBar) Score() uint32 { return b.score }

// Coins returns the coin counter.
func (b *TopBar) Coins() uint8 { return b.coins }

// Time returns the remaining timer steps.
func (b *TopBar) Time() uint16 { return b.time }

// Expired reports whether the timer has run out.
func (b *TopBar) Expired() bool { return b.time == 0 }
