package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg := DefaultEvasionConfig()
	var fromYAML EvasionConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, fromYAML) {
		t.Errorf("embedded yaml = %+v\nbuiltin = %+v", fromYAML, cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Simulation.TickRate != 60 {
		t.Errorf("embedded tick rate = %d, expected 60", cfg.Simulation.TickRate)
	}

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", fileName), []byte("simulation:\n  max_enemies: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Simulation.MaxEnemies != 7 {
		t.Errorf("local max_enemies = %d, expected 7", cfg.Simulation.MaxEnemies)
	}
	if cfg.Simulation.TickRate != 60 {
		t.Errorf("partial file should keep defaults, tick rate = %d", cfg.Simulation.TickRate)
	}

	userDir := filepath.Join(home, ".evasion", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, fileName), []byte("simulation:\n  max_enemies: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Simulation.MaxEnemies != 9 {
		t.Errorf("user config should win over local, got %d", cfg.Simulation.MaxEnemies)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("playfield: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() with malformed yaml should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EvasionConfig)
	}{
		{"zero playfield", func(c *EvasionConfig) { c.Playfield.Width = 0 }},
		{"zero tick rate", func(c *EvasionConfig) { c.Simulation.TickRate = 0 }},
		{"no spawn attempts", func(c *EvasionConfig) { c.Simulation.SpawnAttempts = 0 }},
		{"negative growth", func(c *EvasionConfig) { c.Simulation.Growth = -0.1 }},
		{"player too big", func(c *EvasionConfig) { c.Player.Width = 2000 }},
		{"unknown preset", func(c *EvasionConfig) { c.Difficulty.Preset = "nightmare" }},
		{"projectile not lethal", func(c *EvasionConfig) { c.Projectile.Damage = c.Enemy.Health }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultEvasionConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	cfg := DefaultEvasionConfig()
	cfg.Simulation.TickRate = 0
	cfg.Projectile.Damage = 10
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	for _, want := range []string{"tick_rate", "projectile.damage"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q does not mention %s", err, want)
		}
	}
}

func TestPresets(t *testing.T) {
	dc := DefaultEvasionConfig().Difficulty
	tests := []struct {
		name string
		want float64
	}{
		{"", 1.1},
		{"easy", 1.1},
		{"Normal", 2.2},
		{"hard", 3.3},
		{"insane", 4.4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParsePreset(tc.name)
			if err != nil {
				t.Fatalf("ParsePreset(%q) error = %v", tc.name, err)
			}
			if got := dc.InitialDifficulty(p); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("InitialDifficulty(%s) = %v, expected %v", p, got, tc.want)
			}
		})
	}
}

func TestDifficultyAfter(t *testing.T) {
	if got := DifficultyAfter(2, 0.5, 2); got != 4.5 {
		t.Errorf("DifficultyAfter(2, 0.5, 2) = %v, expected 4.5", got)
	}
	if got := DifficultyAfter(3, 0.1, 0); got != 3 {
		t.Errorf("DifficultyAfter with zero ticks = %v", got)
	}
}

func TestRuntime(t *testing.T) {
	cfg := DefaultEvasionConfig()
	cfg.Render.FrameRate = 24
	rt := cfg.Runtime(DifficultyNormal, 42)
	if rt.Width != 1024 || rt.Height != 768 {
		t.Errorf("playfield = %gx%g", rt.Width, rt.Height)
	}
	if rt.TickRate != 60 || rt.InputRate != 60 || rt.FrameRate != 24 {
		t.Errorf("rates = %d/%d/%d", rt.TickRate, rt.InputRate, rt.FrameRate)
	}
	if math.Abs(rt.Difficulty-2.2) > 1e-9 {
		t.Errorf("Difficulty = %v, expected 2.2", rt.Difficulty)
	}
	if rt.Seed != 42 {
		t.Errorf("Seed = %d", rt.Seed)
	}
}
