// Package config provides YAML-based configuration loading and difficulty
// presets for the platformer.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/hud"
	"github.com/vovakirdan/tui-platformer/internal/player"
	"github.com/vovakirdan/tui-platformer/internal/stream"
)

// PlatformerConfig contains all configuration for a platformer session.
type PlatformerConfig struct {
	Physics player.Config `yaml:"physics"`
	Camera  CameraConfig  `yaml:"camera"`
	HUD     HUDConfig     `yaml:"hud"`
	Render  RenderConfig  `yaml:"render"`
	Goal    GoalConfig    `yaml:"goal"`
}

// CameraConfig frames the player. Values are screen pixels.
type CameraConfig struct {
	FollowX        int `yaml:"follow_x"`        // Player x the camera scrolls to keep
	DeadZoneTop    int `yaml:"dead_zone_top"`   // Camera moves up above this y
	DeadZoneBottom int `yaml:"dead_zone_bottom"` // Camera moves down below this y
}

// HUDConfig defines the countdown timer.
type HUDConfig struct {
	TimerStart   uint16 `yaml:"timer_start"`
	TicksPerStep uint8  `yaml:"ticks_per_step"`
}

// RenderConfig defines the level streaming margins, in 8 px half-columns.
type RenderConfig struct {
	Lookahead  int `yaml:"lookahead"`
	ReapMargin int `yaml:"reap_margin"`
}

// GoalConfig defines when a level counts as cleared.
type GoalConfig struct {
	ExtraColumns int    `yaml:"extra_columns"` // World columns past the last level item
	TimeBonus    uint32 `yaml:"time_bonus"`    // Points per remaining timer step
}

// Player returns the physics tuning with the camera framing folded in.
func (c PlatformerConfig) Player() player.Config {
	p := c.Physics
	p.FollowX = c.Camera.FollowX
	p.DeadZoneTop = c.Camera.DeadZoneTop
	p.DeadZoneBottom = c.Camera.DeadZoneBottom
	return p
}

// Timer returns the HUD timer settings.
func (c PlatformerConfig) Timer() hud.Config {
	return hud.Config{TimerStart: c.HUD.TimerStart, TicksPerStep: c.HUD.TicksPerStep}
}

// Stream returns the renderer margins. The caller sets the logger.
func (c PlatformerConfig) Stream() stream.Config {
	return stream.Config{Lookahead: c.Render.Lookahead, ReapMargin: c.Render.ReapMargin}
}

// Validate checks that the configuration can drive a session.
func (c PlatformerConfig) Validate() error {
	if err := c.Player().Validate(); err != nil {
		return fmt.Errorf("config: physics: %w", err)
	}
	if c.HUD.TimerStart == 0 || c.HUD.TicksPerStep == 0 {
		return fmt.Errorf("config: hud: timer_start and ticks_per_step must be positive")
	}
	if c.Render.Lookahead < 0 || c.Render.ReapMargin < 0 {
		return fmt.Errorf("config: render: margins must not be negative")
	}
	if c.Goal.ExtraColumns < 0 {
		return fmt.Errorf("config: goal: extra_columns must not be negative")
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a flag value to a preset. The empty string is normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}
