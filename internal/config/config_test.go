package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg PlatformerConfig
	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	want := DefaultPlatformerConfig()

	if cfg.Player() != want.Player() {
		t.Errorf("Player() = %+v, expected %+v", cfg.Player(), want.Player())
	}
	if cfg.Camera != want.Camera {
		t.Errorf("Camera = %+v, expected %+v", cfg.Camera, want.Camera)
	}
	if cfg.HUD != want.HUD {
		t.Errorf("HUD = %+v, expected %+v", cfg.HUD, want.HUD)
	}
	if cfg.Render != want.Render {
		t.Errorf("Render = %+v, expected %+v", cfg.Render, want.Render)
	}
	if cfg.Goal != want.Goal {
		t.Errorf("Goal = %+v, expected %+v", cfg.Goal, want.Goal)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "hud:\n  timer_start: 250\nphysics:\n  run_max: 700\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer: %v", err)
	}
	if cfg.HUD.TimerStart != 250 {
		t.Errorf("TimerStart = %d, expected 250", cfg.HUD.TimerStart)
	}
	if cfg.Physics.RunMax != 700 {
		t.Errorf("RunMax = %d, expected 700", cfg.Physics.RunMax)
	}
	def := DefaultPlatformerConfig()
	if cfg.HUD.TicksPerStep != def.HUD.TicksPerStep {
		t.Errorf("TicksPerStep = %d, expected default %d", cfg.HUD.TicksPerStep, def.HUD.TicksPerStep)
	}
	if cfg.Physics.WalkMax != def.Physics.WalkMax {
		t.Errorf("WalkMax = %d, expected default %d", cfg.Physics.WalkMax, def.Physics.WalkMax)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(bad, []byte("hud: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(invalid, []byte("hud:\n  timer_start: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "nope.yaml")},
		{"malformed", bad},
		{"invalid", invalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadPlatformer(tt.path); err == nil {
				t.Errorf("LoadPlatformer(%s) = nil error, expected failure", tt.name)
			}
		})
	}
}

func TestLoadSearchOrderUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfgDir := filepath.Join(home, ".platformer", "configs")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, fileName), []byte("goal:\n  time_bonus: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer: %v", err)
	}
	if cfg.Goal.TimeBonus != 10 {
		t.Errorf("TimeBonus = %d, expected 10 from user config", cfg.Goal.TimeBonus)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer: %v", err)
	}
	if cfg.Player() != DefaultPlatformerConfig().Player() {
		t.Errorf("Player() = %+v, expected defaults", cfg.Player())
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, expected error %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	def := DefaultPlatformerConfig()

	easy := DefaultPlatformerConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.HUD.TimerStart <= def.HUD.TimerStart {
		t.Errorf("easy TimerStart = %d, expected more than %d", easy.HUD.TimerStart, def.HUD.TimerStart)
	}
	if easy.Physics.JumpHold <= def.Physics.JumpHold {
		t.Errorf("easy JumpHold = %d, expected more than %d", easy.Physics.JumpHold, def.Physics.JumpHold)
	}

	hard := DefaultPlatformerConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.HUD.TimerStart >= def.HUD.TimerStart {
		t.Errorf("hard TimerStart = %d, expected less than %d", hard.HUD.TimerStart, def.HUD.TimerStart)
	}
	if hard.Physics.RunMax <= def.Physics.RunMax {
		t.Errorf("hard RunMax = %d, expected more than %d", hard.Physics.RunMax, def.Physics.RunMax)
	}

	normal := DefaultPlatformerConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if normal.Player() != def.Player() || normal.HUD != def.HUD {
		t.Errorf("normal preset changed the config")
	}

	for _, c := range []PlatformerConfig{easy, hard} {
		if err := c.Validate(); err != nil {
			t.Errorf("Validate() after preset = %v, expected nil", err)
		}
	}
}
