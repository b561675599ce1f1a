package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "platformer.yaml"

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default. Keys missing from a file
// keep their default values.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// A broken user or local file falls through to the next candidate.
	candidates := []string{userConfigPath(fileName), filepath.Join("configs", fileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if c, ok := tryFile(path); ok {
			return c, nil
		}
	}

	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryFile(path string) (PlatformerConfig, bool) {
	cfg := DefaultPlatformerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}

// ApplyPreset adjusts the timer and speed caps for a difficulty preset.
func ApplyPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.HUD.TimerStart = 500
		cfg.Physics.RunMax = cfg.Physics.RunMax * 9 / 10
		cfg.Physics.JumpHold += 4
		cfg.Physics.FastJumpHold += 4
	case DifficultyHard:
		cfg.HUD.TimerStart = 300
		cfg.HUD.TicksPerStep = uint8(max(int(cfg.HUD.TicksPerStep)*3/4, 1))
		cfg.Physics.RunMax = cfg.Physics.RunMax * 11 / 10
		cfg.Physics.JumpHold = max(cfg.Physics.JumpHold-4, 0)
		cfg.Physics.FastJumpHold = max(cfg.Physics.FastJumpHold-4, 0)
	}
	if cfg.Physics.RunMax < cfg.Physics.WalkMax {
		cfg.Physics.RunMax = cfg.Physics.WalkMax
	}
}
