// Package player implements the player's fixed-point physics and animation
// state machine. The player reads collision masks from the level stream,
// bumps blocks, and keeps itself framed by the camera.
package player

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/camera"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/effects"
	"github.com/vovakirdan/tui-platformer/internal/fixed"
	"github.com/vovakirdan/tui-platformer/internal/video"
)

// SpriteSlot is the sprite attribute slot mirrored from the player.
const SpriteSlot = 0

// size is the sprite edge in pixels.
const size = 16

// Anim is the animation state. Exactly one is active at a time.
type Anim uint8

const (
	Standing Anim = iota
	Walking1
	Walking2
	Walking3
	Stopping
	Jumping
	Die
	SlidePole
)

var animNames = [...]string{"standing", "walking1", "walking2", "walking3", "stopping", "jumping", "die", "slide_pole"}

func (a Anim) String() string {
	if int(a) < len(animNames) {
		return animNames[a]
	}
	return "unknown"
}

func (a Anim) walking() bool {
	return a == Walking1 || a == Walking2 || a == Walking3
}

// Collider answers collision mask queries by 8 px half-column.
type Collider interface {
	CollisionMask(col int) uint32
}

// EffectSink receives visual effects.
type EffectSink interface {
	Add(e effects.Effect, delay uint32)
}

// ScoreSink receives score and coin awards.
type ScoreSink interface {
	AddToScore(n uint32)
	AddCoin()
}

// Deps are the collaborators the player talks to during a tick.
type Deps struct {
	Collider Collider
	Tiles    video.TileReader
	Effects  EffectSink
	Score    ScoreSink
	Camera   *camera.Camera
	Logger   *log.Logger
}

// State is a snapshot of the player's kinematic and animation state.
type State struct {
	X, Y       fixed.Fixed
	VelX, VelY fixed.Fixed
	Anim       Anim
	FacingLeft bool
	Grounded   bool
}

// Player is the player entity.
type Player struct {
	cfg  Config
	deps Deps
	log  *log.Logger

	x, y       fixed.Fixed
	velX, velY fixed.Fixed
	anim       Anim
	facingLeft bool
	grounded   bool
	skidding   bool

	countdown int // ticks until the next walking frame
	jumpHold  int // ticks of reduced gravity left in this jump
	dieTick   int
	respawned bool
	bumps     uint32

	sprite video.SpriteAttr
}

// New creates a player at the spawn point.
func New(cfg Config, deps Deps) *Player {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{
		cfg:  cfg,
		deps: deps,
		log:  logger.WithPrefix("player"),
	}
	p.Reset()
	return p
}

// Reset puts the player back at the spawn point, standing and facing right.
func (p *Player) Reset() {
	p.x = p.cfg.SpawnX
	p.y = p.cfg.SpawnY
	p.velX = 0
	p.velY = 0
	p.anim = Standing
	p.facingLeft = false
	p.grounded = false
	p.skidding = false
	p.countdown = 0
	p.jumpHold = 0
	p.dieTick = 0
	p.sprite = video.SpriteAttr{}
}

// State returns a snapshot of the player.
func (p *Player) State() State {
	return State{
		X: p.x, Y: p.y,
		VelX: p.velX, VelY: p.velY,
		Anim:       p.anim,
		FacingLeft: p.facingLeft,
		Grounded:   p.grounded,
	}
}

// Respawned reports whether the last Tick finished a death and reset the
// player.
func (p *Player) Respawned() bool {
	return p.respawned
}

// Bumps returns how many blocks the player has hit from below.
func (p *Player) Bumps() uint32 {
	return p.bumps
}

// Kill starts the death sequence unless it is already running.
func (p *Player) Kill() {
	if p.anim == Die {
		return
	}
	p.log.Debug("player killed", "x", p.x.Int(), "y", p.y.Int())
	p.anim = Die
	p.dieTick = 0
	p.velX = 0
	p.velY = 0
	p.grounded = false
}

// Tick advances the player by one frame.
func (p *Player) Tick(ctx core.TickContext) {
	p.respawned = false
	if p.anim == Die {
		p.tickDie()
		return
	}

	keys := ctx.Keys
	fast := p.fastRun(keys)

	p.horizontal(keys)
	p.moveX()
	p.vertical(keys, fast)
	p.moveY()

	if p.y.Int()>>3 > p.cfg.BottomRow {
		p.Kill()
		return
	}

	p.animate()
	p.follow()
}

// fastRun reports the fast-run condition: run held, moving in the held
// direction, faster than the threshold.
func (p *Player) fastRun(keys core.KeyState) bool {
	if !keys.B() || p.velX.Abs() <= p.cfg.FastRunThreshold {
		return false
	}
	if p.velX > 0 {
		return keys.Right() && !keys.Left()
	}
	return keys.Left() && !keys.Right()
}

func heldDirection(keys core.KeyState) int {
	switch {
	case keys.Right() && !keys.Left():
		return 1
	case keys.Left() && !keys.Right():
		return -1
	}
	return 0
}

func (p *Player) horizontal(keys core.KeyState) {
	dir := heldDirection(keys)
	p.skidding = false

	maxSpeed, accel := p.cfg.WalkMax, p.cfg.WalkAccel
	if keys.B() {
		maxSpeed, accel = p.cfg.RunMax, p.cfg.RunAccel
	}

	switch {
	case dir == 0:
		p.velX = fixed.MoveToward(p.velX, 0, p.cfg.ReleaseDecel)
	case p.velX != 0 && p.velX.Sign() != dir:
		p.velX = fixed.MoveToward(p.velX, 0, p.cfg.SkidDecel)
		p.skidding = p.grounded
	default:
		target := maxSpeed.Mul(int32(dir))
		step := accel
		if p.velX.Abs() > maxSpeed {
			step = p.cfg.ReleaseDecel
		}
		p.velX = fixed.MoveToward(p.velX, target, step)
		if p.grounded {
			p.facingLeft = dir < 0
		}
	}
}

// span returns the first and last 8 px cells covered by a sprite edge at pos.
func span(pos fixed.Fixed) (first, last int) {
	bits := pos.Bits()
	return int(bits >> 11), int((bits + size<<fixed.FracBits - 1) >> 11)
}

// rowBits returns the mask bits for rows first..last that fit in a mask.
func rowBits(first, last int) uint32 {
	var bits uint32
	for r := max(first, 0); r <= min(last, 31); r++ {
		bits |= 1 << r
	}
	return bits
}

// solidColumn reports whether half-column col is solid anywhere in rows.
func (p *Player) solidColumn(col int, rows uint32) bool {
	return p.deps.Collider.CollisionMask(col)&rows != 0
}

// solidRow reports whether row is solid under any column the sprite covers.
func (p *Player) solidRow(row int) bool {
	if row < 0 || row > 31 {
		return false
	}
	first, last := span(p.x)
	for col := first; col <= last; col++ {
		if p.solidColumn(col, 1<<row) {
			return true
		}
	}
	return false
}

func (p *Player) moveX() {
	if p.velX == 0 {
		return
	}
	nx := p.x.Add(p.velX)
	rows := rowBits(span(p.y))

	if left := p.deps.Camera.X; nx < left {
		nx = left
		p.velX = 0
	}

	switch {
	case p.velX > 0:
		_, last := span(nx)
		if p.solidColumn(last, rows) {
			nx = fixed.FromInt(last*8 - size)
			p.velX = 0
		}
	case p.velX < 0:
		first, _ := span(nx)
		if p.solidColumn(first, rows) {
			nx = fixed.FromInt((first + 1) * 8)
			p.velX = 0
		}
	}
	p.x = nx
}

func (p *Player) vertical(keys core.KeyState, fast bool) {
	if p.grounded && p.velY == 0 && keys.IsJustPressed(core.KeyA) {
		p.velY, p.jumpHold = p.cfg.JumpImpulse, p.cfg.JumpHold
		if fast {
			p.velY, p.jumpHold = p.cfg.FastJumpImpulse, p.cfg.FastJumpHold
		}
		p.grounded = false
		p.anim = Jumping
		return
	}

	if p.velY < 0 {
		if !keys.A() {
			p.jumpHold = 0
		}
		if p.jumpHold > 0 {
			p.jumpHold--
			// Gravity is skipped on every other tick while the jump is held.
			if p.jumpHold%2 == 0 {
				return
			}
		}
		p.velY = p.velY.Add(p.cfg.GravityUp)
		return
	}
	p.velY = fixed.Clamp(p.velY.Add(p.cfg.GravityDown), 0, p.cfg.MaxFall)
}

func (p *Player) moveY() {
	ny := p.y.Add(p.velY)

	switch {
	case p.velY > 0:
		_, last := span(ny)
		if p.solidRow(last) {
			ny = fixed.FromInt(last*8 - size)
			p.velY = 0
			p.grounded = true
		} else {
			p.grounded = false
		}
	case p.velY < 0:
		p.grounded = false
		first, _ := span(ny)
		if p.solidRow(first) {
			ny = fixed.FromInt((first + 1) * 8)
			p.velY = 0
			p.jumpHold = 0
			p.y = ny
			p.hitBlock(first)
			return
		}
	}
	p.y = ny
}

func (p *Player) animate() {
	if !p.grounded {
		return
	}
	switch {
	case p.skidding:
		p.anim = Stopping
	case p.velX == 0:
		p.anim = Standing
	case !p.anim.walking():
		p.anim = Walking1
		p.countdown = p.cadence()
	default:
		p.countdown--
		if p.countdown <= 0 {
			p.anim = nextWalk(p.anim)
			p.countdown = p.cadence()
		}
	}
}

// cadence is the number of ticks a walking frame is shown: faster movement
// cycles faster.
func (p *Player) cadence() int {
	return max(2, 10-3*p.velX.Abs().Int())
}

func nextWalk(a Anim) Anim {
	switch a {
	case Walking1:
		return Walking2
	case Walking2:
		return Walking3
	default:
		return Walking1
	}
}

// follow keeps the player framed: the camera scrolls right past FollowX and
// vertically outside the dead zone.
func (p *Player) follow() {
	cam := p.deps.Camera
	var dx, dy fixed.Fixed

	if sx := p.x.Sub(cam.X); sx > fixed.FromInt(p.cfg.FollowX) {
		dx = sx.Sub(fixed.FromInt(p.cfg.FollowX))
	}

	sy := p.y.Sub(cam.Y)
	switch {
	case sy < fixed.FromInt(p.cfg.DeadZoneTop):
		dy = sy.Sub(fixed.FromInt(p.cfg.DeadZoneTop))
	case sy > fixed.FromInt(p.cfg.DeadZoneBottom):
		dy = sy.Sub(fixed.FromInt(p.cfg.DeadZoneBottom))
	}

	if dx != 0 || dy != 0 {
		cam.Translate(dx, dy)
	}
}

// tickDie runs the death curve: a launch on the first frame, then
// asymmetric gravity until the player falls past the death row.
func (p *Player) tickDie() {
	if p.dieTick == 0 {
		p.velY = p.cfg.DeathLaunch
	} else if p.velY < 0 {
		p.velY = p.velY.Add(p.cfg.DeathGravityUp)
	} else {
		p.velY = p.velY.Add(p.cfg.DeathGravityDown)
	}
	p.dieTick++
	p.y = p.y.Add(p.velY)

	if p.y.Int()>>3 > p.cfg.DeathRow {
		p.log.Debug("respawning", "ticks", p.dieTick)
		p.Reset()
		p.respawned = true
	}
}

// PostTick mirrors the player into its sprite slot for the committed view.
func (p *Player) PostTick(w video.SpriteWriter, view camera.Info) {
	x, y := camera.WorldToScreen(p.x, p.y, view)
	p.sprite = video.SpriteAttr{
		X:       x,
		Y:       y,
		TileID:  video.PlayerFrame(int(p.anim)),
		Size:    1,
		HFlip:   p.facingLeft,
		Visible: true,
	}
	w.WriteSprite(SpriteSlot, p.sprite)
}

// Sprite returns the last sprite record written.
func (p *Player) Sprite() video.SpriteAttr {
	return p.sprite
}
