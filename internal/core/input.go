package core

// Key is one button of the handheld-style pad the game is designed around.
// Bit positions follow the order the hardware reports them in.
type Key uint16

const (
	KeyA Key = 1 << iota
	KeyB
	KeySelect
	KeyStart
	KeyRight
	KeyLeft
	KeyUp
	KeyDown
	KeyR
	KeyL
)

// KeyNone is the empty key set.
const KeyNone Key = 0

// String returns a human-readable name for a single key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyA:
		return "A"
	case KeyB:
		return "B"
	case KeySelect:
		return "Select"
	case KeyStart:
		return "Start"
	case KeyRight:
		return "Right"
	case KeyLeft:
		return "Left"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyR:
		return "R"
	case KeyL:
		return "L"
	default:
		return "Keys"
	}
}

// InputFrame is the set of keys down during one simulation tick.
type InputFrame struct {
	Keys Key
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks keys as down for this frame.
func (f *InputFrame) Set(k Key) {
	f.Keys |= k
}

// Has returns true if every key in k is down.
func (f InputFrame) Has(k Key) bool {
	return f.Keys&k == k
}

// Clear releases all keys.
func (f *InputFrame) Clear() {
	f.Keys = KeyNone
}

// KeyState pairs the current and previous frame so edges can be queried.
type KeyState struct {
	Cur  Key
	Prev Key
}

// IsDown reports whether every key in k is down this frame.
func (s KeyState) IsDown(k Key) bool {
	return s.Cur&k == k
}

// IsUp reports whether every key in k is up this frame.
func (s KeyState) IsUp(k Key) bool {
	return s.Cur&k == KeyNone
}

// IsJustPressed reports a release-to-press edge.
func (s KeyState) IsJustPressed(k Key) bool {
	return s.Cur&k == k && s.Prev&k == KeyNone
}

// IsJustReleased reports a press-to-release edge.
func (s KeyState) IsJustReleased(k Key) bool {
	return s.Cur&k == KeyNone && s.Prev&k == k
}

// IsHeld reports that k is down now and was down last frame.
func (s KeyState) IsHeld(k Key) bool {
	return s.Cur&k == s.Prev&k && s.Cur&k != KeyNone
}

// Convenience accessors for the current frame.
func (s KeyState) Left() bool { return s.IsDown(KeyLeft) }
func (s KeyState) Right() bool { return s.IsDown(KeyRight) }
func (s KeyState) Up() bool { return s.IsDown(KeyUp) }
func (s KeyState) Down() bool { return s.IsDown(KeyDown) }
func (s KeyState) A() bool { return s.IsDown(KeyA) }
func (s KeyState) B() bool { return s.IsDown(KeyB) }
func (s KeyState) Start() bool { return s.IsDown(KeyStart) }
func (s KeyState) Select() bool { return s.IsDown(KeySelect) }

// KeyLatch keeps the previous sample so each tick sees both frames.
type KeyLatch struct {
	state KeyState
}

// Latch records this tick's sample and returns the edge-queryable state.
func (l *KeyLatch) Latch(in InputFrame) KeyState {
	l.state.Prev = l.state.Cur
	l.state.Cur = in.Keys
	return l.state
}

// State returns the last latched state without sampling.
func (l *KeyLatch) State() KeyState {
	return l.state
}

// Reset forgets both frames.
func (l *KeyLatch) Reset() {
	l.state = KeyState{}
}
