package player

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/fixed"
)

// Config holds the movement constants. Speeds and accelerations are raw
// fixed-point values (1/256 px per tick); rows are 8 px map rows and the
// camera values are screen pixels.
type Config struct {
	WalkMax          fixed.Fixed `yaml:"walk_max"`
	RunMax           fixed.Fixed `yaml:"run_max"`
	WalkAccel        fixed.Fixed `yaml:"walk_accel"`
	RunAccel         fixed.Fixed `yaml:"run_accel"`
	ReleaseDecel     fixed.Fixed `yaml:"release_decel"`
	SkidDecel        fixed.Fixed `yaml:"skid_decel"`
	FastRunThreshold fixed.Fixed `yaml:"fast_run_threshold"`

	JumpImpulse     fixed.Fixed `yaml:"jump_impulse"`
	FastJumpImpulse fixed.Fixed `yaml:"fast_jump_impulse"`
	GravityUp       fixed.Fixed `yaml:"gravity_up"`
	GravityDown     fixed.Fixed `yaml:"gravity_down"`
	MaxFall         fixed.Fixed `yaml:"max_fall"`
	JumpHold        int         `yaml:"jump_hold"`
	FastJumpHold    int         `yaml:"fast_jump_hold"`

	DeathLaunch      fixed.Fixed `yaml:"death_launch"`
	DeathGravityUp   fixed.Fixed `yaml:"death_gravity_up"`
	DeathGravityDown fixed.Fixed `yaml:"death_gravity_down"`
	BottomRow        int         `yaml:"bottom_row"`
	DeathRow         int         `yaml:"death_row"`

	SpawnX fixed.Fixed `yaml:"spawn_x"`
	SpawnY fixed.Fixed `yaml:"spawn_y"`

	// Camera framing is configured in its own section.
	FollowX        int `yaml:"-"`
	DeadZoneTop    int `yaml:"-"`
	DeadZoneBottom int `yaml:"-"`
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		WalkMax:          384,
		RunMax:           640,
		WalkAccel:        14,
		RunAccel:         20,
		ReleaseDecel:     12,
		SkidDecel:        36,
		FastRunThreshold: 512,

		JumpImpulse:     -1100,
		FastJumpImpulse: -1200,
		GravityUp:       40,
		GravityDown:     96,
		MaxFall:         1152,
		JumpHold:        12,
		FastJumpHold:    20,

		DeathLaunch:      -1024,
		DeathGravityUp:   24,
		DeathGravityDown: 56,
		BottomRow:        32,
		DeathRow:         48,

		SpawnX: fixed.FromInt(32),
		SpawnY: fixed.FromInt(32),

		FollowX:        112,
		DeadZoneTop:    32,
		DeadZoneBottom: 112,
	}
}

// Validate rejects tunings the physics cannot run with.
func (c Config) Validate() error {
	switch {
	case c.WalkMax <= 0 || c.RunMax < c.WalkMax:
		return fmt.Errorf("player: run max %d must be >= walk max %d > 0", c.RunMax, c.WalkMax)
	case c.WalkAccel <= 0 || c.RunAccel <= 0 || c.ReleaseDecel <= 0 || c.SkidDecel <= 0:
		return fmt.Errorf("player: accelerations must be positive")
	case c.JumpImpulse >= 0 || c.FastJumpImpulse >= 0 || c.DeathLaunch >= 0:
		return fmt.Errorf("player: jump impulses must be negative")
	case c.JumpImpulse <= -fixed.FromInt(8) || c.FastJumpImpulse <= -fixed.FromInt(8):
		return fmt.Errorf("player: jump impulses %d, %d must be weaker than 8 px", c.JumpImpulse, c.FastJumpImpulse)
	case c.GravityUp <= 0 || c.GravityDown <= 0 || c.DeathGravityUp <= 0 || c.DeathGravityDown <= 0:
		return fmt.Errorf("player: gravity must be positive")
	case c.MaxFall <= 0 || c.MaxFall >= fixed.FromInt(8):
		return fmt.Errorf("player: max fall %d must be in (0, 8 px)", c.MaxFall)
	case c.JumpHold < 0 || c.FastJumpHold < 0:
		return fmt.Errorf("player: jump hold must not be negative")
	case c.DeathRow <= c.BottomRow:
		return fmt.Errorf("player: death row %d must be below bottom row %d", c.DeathRow, c.BottomRow)
	case c.DeadZoneTop >= c.DeadZoneBottom:
		return fmt.Errorf("player: dead zone top %d must be above bottom %d", c.DeadZoneTop, c.DeadZoneBottom)
	}
	return nil
}
