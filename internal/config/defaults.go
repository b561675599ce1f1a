package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-platformer/internal/hud"
	"github.com/vovakirdan/tui-platformer/internal/player"
	"github.com/vovakirdan/tui-platformer/internal/stream"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the reference tuning.
func DefaultPlatformerConfig() PlatformerConfig {
	p := player.DefaultConfig()
	h := hud.DefaultConfig()
	s := stream.DefaultConfig()
	return PlatformerConfig{
		Physics: p,
		Camera: CameraConfig{
			FollowX:        p.FollowX,
			DeadZoneTop:    p.DeadZoneTop,
			DeadZoneBottom: p.DeadZoneBottom,
		},
		HUD: HUDConfig{
			TimerStart:   h.TimerStart,
			TicksPerStep: h.TicksPerStep,
		},
		Render: RenderConfig{
			Lookahead:  s.Lookahead,
			ReapMargin: s.ReapMargin,
		},
		Goal: GoalConfig{
			ExtraColumns: 4,
			TimeBonus:    50,
		},
	}
}
