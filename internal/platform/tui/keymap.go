package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// GameKeyMap defines the key bindings used while playing.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Jump       key.Binding
	Run        key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Run, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Jump, k.Run, k.Pause},
		{k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "z", "k"),
			key.WithHelp("space/z", "jump"),
		),
		Run: key.NewBinding(
			key.WithKeys("x", "j"),
			key.WithHelp("x", "toggle run"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "enter"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to pad buttons.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a pad button.
// Returns the button (may be KeyNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (k core.Key, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.KeyNone, true
	case key.Matches(msg, km.keys.Left):
		return core.KeyLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.KeyRight, false
	case key.Matches(msg, km.keys.Up):
		return core.KeyUp, false
	case key.Matches(msg, km.keys.Down):
		return core.KeyDown, false
	case key.Matches(msg, km.keys.Jump):
		return core.KeyA, false
	case key.Matches(msg, km.keys.Run):
		return core.KeyB, false
	case key.Matches(msg, km.keys.Pause):
		return core.KeyStart, false
	}
	return core.KeyNone, false
}

// DefaultHoldTicks is how long a key press stays down without a repeat.
// Terminal auto-repeat usually starts within a quarter second.
const DefaultHoldTicks = 15

// HoldInput turns key presses into held buttons. Terminals report presses
// and auto-repeats but never releases, so a press holds its button for a
// number of ticks and every repeat extends the hold.
//
// Only the last key pressed auto-repeats, so the run button is a toggle
// instead of a hold.
type HoldInput struct {
	ticks   int
	left    [16]int
	running bool
}

// NewHoldInput creates a hold latch. ticks <= 0 selects DefaultHoldTicks.
func NewHoldInput(ticks int) *HoldInput {
	if ticks <= 0 {
		ticks = DefaultHoldTicks
	}
	return &HoldInput{ticks: ticks}
}

// Press records a key press or repeat.
func (h *HoldInput) Press(k core.Key) {
	switch k {
	case core.KeyNone:
		return
	case core.KeyB:
		h.running = !h.running
		return
	case core.KeyStart, core.KeySelect:
		// Taps: one tick down gives exactly one edge.
		h.left[bit(k)] = 1
		return
	case core.KeyLeft:
		h.left[bit(core.KeyRight)] = 0
	case core.KeyRight:
		h.left[bit(core.KeyLeft)] = 0
	case core.KeyUp:
		h.left[bit(core.KeyDown)] = 0
	case core.KeyDown:
		h.left[bit(core.KeyUp)] = 0
	}
	h.left[bit(k)] = h.ticks
}

// Running reports whether the run toggle is on.
func (h *HoldInput) Running() bool {
	return h.running
}

// Frame returns the buttons down this tick and ages every hold by one.
func (h *HoldInput) Frame() core.InputFrame {
	var f core.InputFrame
	for i := range h.left {
		if h.left[i] > 0 {
			f.Set(core.Key(1) << i)
			h.left[i]--
		}
	}
	if h.running {
		f.Set(core.KeyB)
	}
	return f
}

// Clear releases everything, including the run toggle.
func (h *HoldInput) Clear() {
	h.left = [16]int{}
	h.running = false
}

// bit returns the index of the lowest set bit of a single key.
func bit(k core.Key) int {
	for i := range 16 {
		if k&(1<<i) != 0 {
			return i
		}
	}
	return 0
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
