package player

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/fixed"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"positive jump", func(c *Config) { c.JumpImpulse = 10 }, false},
		{"jump just under 8 px", func(c *Config) { c.JumpImpulse = -fixed.FromInt(8) + 1 }, true},
		{"jump of 8 px", func(c *Config) { c.JumpImpulse = -fixed.FromInt(8) }, false},
		{"fast jump past 8 px", func(c *Config) { c.FastJumpImpulse = -4096 }, false},
		{"max fall of 8 px", func(c *Config) { c.MaxFall = fixed.FromInt(8) }, false},
		{"run below walk", func(c *Config) { c.RunMax = c.WalkMax - 1 }, false},
		{"death row above bottom", func(c *Config) { c.DeathRow = c.BottomRow }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)
			err := c.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, expected ok = %v", err, tt.ok)
			}
		})
	}
}
