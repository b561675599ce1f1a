package platformer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"hash/fnv"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/player"
)

// Summary is the outcome of a session. Two runs of the same level, config
// and frames produce equal summaries.
type Summary struct {
	Level   string
	Frames  int
	Ticks   uint32
	Score   uint32
	Coins   uint8
	X, Y    int // player position in pixels
	Deaths  int
	Cleared bool
	Digest  uint64
}

// Summary describes the session so far.
func (g *Game) Summary() Summary {
	g.ready()
	st := g.player.State()
	return Summary{
		Level:   g.lvl.ID,
		Frames:  len(g.frames),
		Ticks:   g.tick,
		Score:   g.hud.Score(),
		Coins:   g.hud.Coins(),
		X:       st.X.Int(),
		Y:       st.Y.Int(),
		Deaths:  g.deaths,
		Cleared: g.cleared,
		Digest:  g.digest.sum(),
	}
}

// Replay runs frames through a fresh game without a display.
func Replay(lvl *level.Level, cfg config.PlatformerConfig, frames []core.Key) Summary {
	g := New(Options{Level: lvl, Config: &cfg})
	g.Reset(core.DefaultConfig())
	for _, k := range frames {
		g.Step(core.InputFrame{Keys: k})
	}
	return g.Summary()
}

// digest folds the per-tick player state into an FNV-1a hash.
type digest struct {
	h   hash.Hash64
	buf [28]byte
}

func newDigest() digest {
	return digest{h: fnv.New64a()}
}

func (d *digest) add(tick uint32, st player.State, score uint32) {
	b := d.buf[:0]
	b = binary.LittleEndian.AppendUint32(b, tick)
	b = binary.LittleEndian.AppendUint32(b, uint32(st.X.Bits()))
	b = binary.LittleEndian.AppendUint32(b, uint32(st.Y.Bits()))
	b = binary.LittleEndian.AppendUint32(b, uint32(st.VelX.Bits()))
	b = binary.LittleEndian.AppendUint32(b, uint32(st.VelY.Bits()))
	b = binary.LittleEndian.AppendUint32(b, score)
	flags := uint16(st.Anim)
	if st.FacingLeft {
		flags |= 1 << 8
	}
	if st.Grounded {
		flags |= 1 << 9
	}
	b = binary.LittleEndian.AppendUint16(b, flags)
	d.h.Write(b)
}

func (d *digest) sum() uint64 {
	return d.h.Sum64()
}

// maxFrames bounds a decoded recording, about three days at 60 ticks a
// second.
const maxFrames = 1 << 24

// framesMagic prefixes an encoded recording.
var framesMagic = [4]byte{'P', 'F', 'R', '1'}

// ErrBadRecording is returned when a recording cannot be decoded.
var ErrBadRecording = errors.New("platformer: bad recording")

// EncodeFrames run-length encodes a recording: runs of identical button
// words become (uvarint length, uint16 word) pairs.
func EncodeFrames(frames []core.Key) []byte {
	out := append([]byte(nil), framesMagic[:]...)
	for i := 0; i < len(frames); {
		j := i + 1
		for j < len(frames) && frames[j] == frames[i] {
			j++
		}
		out = binary.AppendUvarint(out, uint64(j-i))
		out = binary.LittleEndian.AppendUint16(out, uint16(frames[i]))
		i = j
	}
	return out
}

// DecodeFrames reverses EncodeFrames.
func DecodeFrames(data []byte) ([]core.Key, error) {
	if len(data) < len(framesMagic) || [4]byte(data[:4]) != framesMagic {
		return nil, fmt.Errorf("%w: missing header", ErrBadRecording)
	}
	data = data[len(framesMagic):]

	var frames []core.Key
	for len(data) > 0 {
		run, n := binary.Uvarint(data)
		if n <= 0 || run == 0 {
			return nil, fmt.Errorf("%w: bad run length", ErrBadRecording)
		}
		if run > maxFrames-uint64(len(frames)) {
			return nil, fmt.Errorf("%w: longer than %d frames", ErrBadRecording, maxFrames)
		}
		data = data[n:]
		if len(data) < 2 {
			return nil, fmt.Errorf("%w: truncated", ErrBadRecording)
		}
		k := core.Key(binary.LittleEndian.Uint16(data))
		data = data[2:]
		for range run {
			frames = append(frames, k)
		}
	}
	return frames, nil
}
