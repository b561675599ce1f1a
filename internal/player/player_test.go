package player

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/camera"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/effects"
	"github.com/vovakirdan/tui-platformer/internal/fixed"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/stream"
	"github.com/vovakirdan/tui-platformer/internal/video"
)

const floorMask = uint32(0b11) << 30

type fakeCollider struct {
	floor uint32
	extra map[int]uint32
}

func (c fakeCollider) CollisionMask(col int) uint32 {
	return c.floor | c.extra[col]
}

type addedEffect struct {
	effect effects.Effect
	delay  uint32
}

type effectLog struct {
	added []addedEffect
}

func (l *effectLog) Add(e effects.Effect, delay uint32) {
	l.added = append(l.added, addedEffect{e, delay})
}

type scoreLog struct {
	score uint32
	coins int
}

func (s *scoreLog) AddToScore(n uint32) { s.score += n }
func (s *scoreLog) AddCoin()            { s.coins++ }

func keys(cur, prev core.Key) core.TickContext {
	return core.TickContext{Keys: core.KeyState{Cur: cur, Prev: prev}}
}

func newPlayer(c Collider) (*Player, *effectLog, *scoreLog) {
	fx := &effectLog{}
	score := &scoreLog{}
	p := New(DefaultConfig(), Deps{
		Collider: c,
		Effects:  fx,
		Score:    score,
		Camera:   camera.New(),
	})
	return p, fx, score
}

// landAt places the player on the floor at x and lets it settle.
func landAt(t *testing.T, p *Player, x int) {
	t.Helper()
	p.x = fixed.FromInt(x)
	p.y = fixed.FromInt(224)
	p.Tick(keys(0, 0))
	if !p.grounded || p.y != fixed.FromInt(224) {
		t.Fatalf("player did not land: y = %d, grounded = %v", p.y.Int(), p.grounded)
	}
}

func TestJumpImpulse(t *testing.T) {
	tests := []struct {
		name      string
		velX      fixed.Fixed
		cur, prev core.Key
		want      fixed.Fixed
	}{
		{"fast run", 640, core.KeyA | core.KeyB | core.KeyRight, core.KeyB | core.KeyRight, -1200},
		{"no run button", 640, core.KeyA | core.KeyRight, core.KeyRight, -1100},
		{"below threshold", 256, core.KeyA | core.KeyB | core.KeyRight, core.KeyB | core.KeyRight, -1100},
		{"at threshold", 512, core.KeyA | core.KeyB | core.KeyRight, core.KeyB | core.KeyRight, -1100},
		{"against motion", 640, core.KeyA | core.KeyB | core.KeyLeft, core.KeyB | core.KeyLeft, -1100},
		{"standing", 0, core.KeyA, 0, -1100},
		{"held, not pressed", 640, core.KeyA | core.KeyB | core.KeyRight, core.KeyA | core.KeyB | core.KeyRight, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, _, _ := newPlayer(fakeCollider{floor: floorMask})
			landAt(t, p, 60)
			p.velX = tc.velX

			p.Tick(keys(tc.cur, tc.prev))
			if p.velY != tc.want {
				t.Errorf("velY = %d, expected %d", p.velY, tc.want)
			}
			if tc.want != 0 && p.anim != Jumping {
				t.Errorf("anim = %v, expected jumping", p.anim)
			}
		})
	}
}

func TestJumpHoldReachesHigher(t *testing.T) {
	apex := func(hold bool) int {
		p, _, _ := newPlayer(fakeCollider{floor: floorMask})
		landAt(t, p, 60)
		p.Tick(keys(core.KeyA, 0))
		top := p.y
		for range 60 {
			cur := core.Key(0)
			if hold {
				cur = core.KeyA
			}
			p.Tick(keys(cur, cur))
			top = min(top, p.y)
		}
		return top.Int()
	}

	held, tapped := apex(true), apex(false)
	if held >= tapped {
		t.Errorf("held apex y = %d, tapped apex y = %d, expected held to go higher", held, tapped)
	}
}

func TestBlockHit(t *testing.T) {
	mem := video.NewMemory()
	lvl := &level.Level{
		ID:    "block",
		Floor: level.Floor{Tile: level.Rock, Row: 15},
		Items: []level.Item{level.NextCol(1), level.TileRun(level.QuestionUnused, 11, 1)},
	}
	r := stream.New(mem, lvl, stream.DefaultConfig())
	cam := camera.New()
	r.Tick(cam.Info())

	fx := &effectLog{}
	score := &scoreLog{}
	p := New(DefaultConfig(), Deps{Collider: r, Tiles: mem, Effects: fx, Score: score, Camera: cam})
	landAt(t, p, 16)

	p.Tick(keys(core.KeyA, 0))
	for i := 0; i < 30 && len(fx.added) == 0; i++ {
		p.Tick(keys(core.KeyA, core.KeyA))
	}

	want := []addedEffect{
		{effects.TileBounce(22, 1, effects.BounceUsedBlock), 0},
		{effects.CoinUp(20, 1), 0},
		{effects.Points(20, 1, effects.Score200), 16},
	}
	if len(fx.added) != len(want) {
		t.Fatalf("effects added = %+v, expected %d", fx.added, len(want))
	}
	for i := range want {
		if fx.added[i] != want[i] {
			t.Errorf("effect %d = %+v, expected %+v", i, fx.added[i], want[i])
		}
	}
	if score.score != 200 || score.coins != 1 {
		t.Errorf("score = %d, coins = %d, expected 200 and 1", score.score, score.coins)
	}
	if p.y != fixed.FromInt(192) || p.velY != 0 {
		t.Errorf("after impact y = %d, velY = %d, expected 192 and 0", p.y.Int(), p.velY)
	}
	if p.Bumps() != 1 {
		t.Errorf("Bumps() = %d, expected 1", p.Bumps())
	}
}

func TestBrickAndUsedBlock(t *testing.T) {
	tests := []struct {
		name  string
		tile  level.Tile
		count int
	}{
		{"brick", level.Brick, 1},
		{"used block", level.QuestionUsed, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mem := video.NewMemory()
			stream.DrawTile(mem, 22, 1, tc.tile)
			fx := &effectLog{}
			p := New(DefaultConfig(), Deps{
				Collider: fakeCollider{floor: floorMask, extra: map[int]uint32{2: 0b11 << 22, 3: 0b11 << 22}},
				Tiles:    mem,
				Effects:  fx,
				Score:    &scoreLog{},
				Camera:   camera.New(),
			})
			landAt(t, p, 16)
			p.Tick(keys(core.KeyA, 0))
			for range 30 {
				p.Tick(keys(core.KeyA, core.KeyA))
			}

			if len(fx.added) != tc.count {
				t.Errorf("effects added = %d, expected %d", len(fx.added), tc.count)
			}
		})
	}
}

func TestDieAndRespawn(t *testing.T) {
	p, _, _ := newPlayer(fakeCollider{})
	p.x = fixed.FromInt(80)
	p.y = fixed.FromInt(250)
	p.velX = 300
	p.facingLeft = true

	for i := 0; i < 20 && p.anim != Die; i++ {
		p.Tick(keys(0, 0))
	}
	if p.anim != Die {
		t.Fatalf("anim = %v after falling out, expected die", p.anim)
	}

	p.Tick(keys(0, 0))
	if p.velY != DefaultConfig().DeathLaunch {
		t.Errorf("launch velY = %d, expected %d", p.velY, DefaultConfig().DeathLaunch)
	}

	rose := false
	for i := 0; i < 1000 && !p.Respawned(); i++ {
		if p.velY < 0 {
			rose = true
		}
		p.Tick(keys(core.KeyRight, 0))
	}
	if !p.Respawned() {
		t.Fatal("player never respawned")
	}
	if !rose {
		t.Error("death curve never moved upward")
	}

	got := p.State()
	want := State{X: fixed.FromInt(32), Y: fixed.FromInt(32), Anim: Standing}
	if got != want {
		t.Errorf("state after respawn = %+v, expected %+v", got, want)
	}
}

func TestKill(t *testing.T) {
	p, _, _ := newPlayer(fakeCollider{floor: floorMask})
	landAt(t, p, 60)
	p.Kill()
	if p.anim != Die {
		t.Fatalf("anim = %v, expected die", p.anim)
	}
	p.Tick(keys(core.KeyRight, 0))
	if p.velY != DefaultConfig().DeathLaunch || p.velX != 0 {
		t.Errorf("vel = (%d, %d), expected launch with no horizontal speed", p.velX, p.velY)
	}
}

func TestCadence(t *testing.T) {
	tests := []struct {
		velX fixed.Fixed
		want int
	}{
		{100, 10},
		{384, 7},
		{-640, 4},
		{fixed.FromInt(4), 2},
	}
	for _, tc := range tests {
		p, _, _ := newPlayer(fakeCollider{})
		p.velX = tc.velX
		if got := p.cadence(); got != tc.want {
			t.Errorf("cadence(%d) = %d, expected %d", tc.velX, got, tc.want)
		}
	}
}

func TestWalkCycleAndSkid(t *testing.T) {
	p, _, _ := newPlayer(fakeCollider{floor: floorMask})
	landAt(t, p, 40)

	seen := map[Anim]bool{}
	for range 60 {
		p.Tick(keys(core.KeyRight, core.KeyRight))
		seen[p.anim] = true
	}
	for _, a := range []Anim{Walking1, Walking2, Walking3} {
		if !seen[a] {
			t.Errorf("walk cycle never showed %v", a)
		}
	}
	if p.velX != DefaultConfig().WalkMax {
		t.Errorf("velX = %d, expected walk max %d", p.velX, DefaultConfig().WalkMax)
	}

	p.Tick(keys(core.KeyLeft, core.KeyRight))
	if p.anim != Stopping {
		t.Errorf("anim = %v on reversal, expected stopping", p.anim)
	}
	if p.facingLeft {
		t.Error("facing flipped before the skid finished")
	}

	for range 120 {
		p.Tick(keys(0, 0))
	}
	if p.anim != Standing || p.velX != 0 {
		t.Errorf("anim = %v, velX = %d after release, expected standing still", p.anim, p.velX)
	}
}

func TestWallStopsPlayer(t *testing.T) {
	wall := map[int]uint32{20: 0b11 << 28}
	p, _, _ := newPlayer(fakeCollider{floor: floorMask, extra: wall})
	landAt(t, p, 130)

	for range 60 {
		p.Tick(keys(core.KeyRight, core.KeyRight))
	}
	if p.x != fixed.FromInt(144) {
		t.Errorf("x = %d, expected to stop at 144", p.x.Int())
	}
}

func TestCameraFollow(t *testing.T) {
	p, _, _ := newPlayer(fakeCollider{floor: floorMask})
	cam := p.deps.Camera
	landAt(t, p, 200)

	if cam.X != fixed.FromInt(200-112) {
		t.Errorf("camera x = %d, expected %d", cam.X.Int(), 200-112)
	}
	if cam.Y != fixed.FromInt(camera.MaxScrollY) {
		t.Errorf("camera y = %d, expected clamp to %d", cam.Y.Int(), camera.MaxScrollY)
	}

	before := cam.X
	for range 30 {
		p.Tick(keys(core.KeyLeft, core.KeyLeft))
	}
	if cam.X != before {
		t.Errorf("camera scrolled back to %d", cam.X.Int())
	}
}

func TestLeftEdge(t *testing.T) {
	p, _, _ := newPlayer(fakeCollider{floor: floorMask})
	cam := p.deps.Camera
	cam.X = fixed.FromInt(100)
	landAt(t, p, 101)

	for range 30 {
		p.Tick(keys(core.KeyLeft, core.KeyLeft))
	}
	if p.x != cam.X {
		t.Errorf("x = %d, expected pinned to camera edge %d", p.x.Int(), cam.X.Int())
	}
}

func TestPostTickSprite(t *testing.T) {
	mem := video.NewMemory()
	p, _, _ := newPlayer(fakeCollider{floor: floorMask})
	landAt(t, p, 60)
	p.facingLeft = true
	p.PostTick(mem, p.deps.Camera.Info())

	s := mem.Sprites[SpriteSlot]
	if !s.Visible || !s.HFlip || s.TileID != video.PlayerFrame(int(Standing)) {
		t.Errorf("sprite = %+v", s)
	}
	if s.X != 60 || s.Y != 224-camera.MaxScrollY {
		t.Errorf("sprite at (%d, %d), expected (60, %d)", s.X, s.Y, 224-camera.MaxScrollY)
	}
}
