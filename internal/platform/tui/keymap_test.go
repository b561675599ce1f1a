package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
		quit bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft, false},
		{"d", runeKey('d'), core.KeyRight, false},
		{"w", runeKey('w'), core.KeyUp, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeyA, false},
		{"z", runeKey('z'), core.KeyA, false},
		{"x", runeKey('x'), core.KeyB, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyStart, false},
		{"q", runeKey('q'), core.KeyNone, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyNone, true},
		{"unbound", runeKey('m'), core.KeyNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), got, quit, tt.want, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func frames(h *HoldInput, n int) []core.Key {
	out := make([]core.Key, n)
	for i := range out {
		out[i] = h.Frame().Keys
	}
	return out
}

func TestHoldInputHoldsForTicks(t *testing.T) {
	h := NewHoldInput(3)
	h.Press(core.KeyRight)

	got := frames(h, 4)
	want := []core.Key{core.KeyRight, core.KeyRight, core.KeyRight, core.KeyNone}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("frame %d = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestHoldInputRepeatExtends(t *testing.T) {
	h := NewHoldInput(2)
	h.Press(core.KeyA)
	h.Frame()
	h.Press(core.KeyA)

	got := frames(h, 3)
	if got[0] != core.KeyA || got[1] != core.KeyA || got[2] != core.KeyNone {
		t.Errorf("frames = %v, expected A A None", got)
	}
}

func TestHoldInputOppositeReleases(t *testing.T) {
	h := NewHoldInput(10)
	h.Press(core.KeyRight)
	h.Press(core.KeyLeft)
	if f := h.Frame(); f.Keys != core.KeyLeft {
		t.Errorf("Frame() = %v, expected Left only", f.Keys)
	}

	h.Press(core.KeyUp)
	h.Press(core.KeyDown)
	if f := h.Frame(); f.Has(core.KeyUp) || !f.Has(core.KeyDown) {
		t.Errorf("Frame() = %v, expected Down without Up", f.Keys)
	}
}

func TestHoldInputStartIsTap(t *testing.T) {
	h := NewHoldInput(10)
	h.Press(core.KeyStart)

	got := frames(h, 2)
	if got[0] != core.KeyStart || got[1] != core.KeyNone {
		t.Errorf("frames = %v, expected Start then None", got)
	}
}

func TestHoldInputRunToggle(t *testing.T) {
	h := NewHoldInput(1)
	h.Press(core.KeyB)
	if !h.Running() {
		t.Fatalf("Running() = false after first press, expected true")
	}
	for i, k := range frames(h, 3) {
		if k != core.KeyB {
			t.Errorf("frame %d = %v, expected B", i, k)
		}
	}

	h.Press(core.KeyB)
	if h.Running() {
		t.Errorf("Running() = true after second press, expected false")
	}
	if f := h.Frame(); f.Has(core.KeyB) {
		t.Errorf("Frame() = %v, expected B released", f.Keys)
	}
}

func TestHoldInputClear(t *testing.T) {
	h := NewHoldInput(0)
	if h.ticks != DefaultHoldTicks {
		t.Errorf("ticks = %d, expected %d", h.ticks, DefaultHoldTicks)
	}
	h.Press(core.KeyRight)
	h.Press(core.KeyB)
	h.Clear()
	if f := h.Frame(); f.Keys != core.KeyNone {
		t.Errorf("Frame() = %v after Clear, expected None", f.Keys)
	}
}
