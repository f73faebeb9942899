// Package config provides YAML-based game configuration loading and
// difficulty presets for space-evasion.
package config

import (
	"errors"
	"fmt"
)

// EvasionConfig contains all tunables of a session.
type EvasionConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Simulation SimulationConfig `yaml:"simulation"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Corpse     CorpseConfig     `yaml:"corpse"`
	Audio      AudioConfig      `yaml:"audio"`
	Render     RenderConfig     `yaml:"render"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayfieldConfig is the world rectangle in world units.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SimulationConfig defines the fixed-tick loop and the spawner.
type SimulationConfig struct {
	TickRate       int     `yaml:"tick_rate"`       // Ticks per second
	InputRate      int     `yaml:"input_rate"`      // Input samples per second
	MaxEnemies     int     `yaml:"max_enemies"`     // Live enemy cap
	BaseSpawnRate  float64 `yaml:"base_spawn_rate"` // Spawn probability per tick at difficulty 1
	Growth         float64 `yaml:"growth"`          // Per-tick fractional difficulty increase
	SpawnExclusion float64 `yaml:"spawn_exclusion"` // Half-size of the no-spawn box around the player
	SpawnAttempts  int     `yaml:"spawn_attempts"`  // Rejection sampling bound
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Health            float64 `yaml:"health"`
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	Step              float64 `yaml:"step"`          // Orthogonal move per input cycle
	DiagonalStep      float64 `yaml:"diagonal_step"` // Per-axis move for diagonals
	FireCooldownTicks int     `yaml:"fire_cooldown_ticks"`
}

// EnemyConfig defines homing enemies.
type EnemyConfig struct {
	Health     float64 `yaml:"health"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	SpeedBase  float64 `yaml:"speed_base"`  // Speed scale at difficulty 0
	SpeedScale float64 `yaml:"speed_scale"` // Speed scale added per difficulty unit
	BaseDamage float64 `yaml:"base_damage"` // Damage per contact tick at difficulty 1
	ScoreBonus int     `yaml:"score_bonus"`
}

// ProjectileConfig defines player projectiles.
type ProjectileConfig struct {
	Speed  float64 `yaml:"speed"`
	Damage float64 `yaml:"damage"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CorpseConfig defines how destroyed enemies fade out.
type CorpseConfig struct {
	Fade      float64 `yaml:"fade"`      // Opacity lost per tick
	Threshold float64 `yaml:"threshold"` // Removed below this opacity
}

// AudioConfig defines the synthesized audio.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	SampleRate  int     `yaml:"sample_rate"`
	MusicVolume float64 `yaml:"music_volume"` // 0..1
	SoundVolume float64 `yaml:"sound_volume"` // 0..1
	SongSeconds int     `yaml:"song_seconds"`
}

// RenderConfig defines the render loop.
type RenderConfig struct {
	FrameRate int `yaml:"frame_rate"`
	Stars     int `yaml:"stars"`
}

// DifficultyConfig selects the starting difficulty.
type DifficultyConfig struct {
	Preset         string  `yaml:"preset"`
	EffectiveScale float64 `yaml:"effective_scale"` // Preset level is multiplied by this
}

// Validate reports every setting that cannot produce a playable session.
func (c EvasionConfig) Validate() error {
	var errs []error
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must be positive, got %vx%v", c.Playfield.Width, c.Playfield.Height))
	}
	if c.Simulation.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("simulation.tick_rate must be positive, got %d", c.Simulation.TickRate))
	}
	if c.Simulation.InputRate <= 0 {
		errs = append(errs, fmt.Errorf("simulation.input_rate must be positive, got %d", c.Simulation.InputRate))
	}
	if c.Simulation.MaxEnemies < 0 {
		errs = append(errs, fmt.Errorf("simulation.max_enemies must not be negative, got %d", c.Simulation.MaxEnemies))
	}
	if c.Simulation.Growth < 0 {
		errs = append(errs, fmt.Errorf("simulation.growth must not be negative, got %v", c.Simulation.Growth))
	}
	if c.Simulation.SpawnAttempts <= 0 {
		errs = append(errs, fmt.Errorf("simulation.spawn_attempts must be positive, got %d", c.Simulation.SpawnAttempts))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 || c.Enemy.Width <= 0 || c.Enemy.Height <= 0 ||
		c.Projectile.Width <= 0 || c.Projectile.Height <= 0 {
		errs = append(errs, errors.New("sprite sizes must be positive"))
	}
	if c.Player.Width > c.Playfield.Width || c.Player.Height > c.Playfield.Height {
		errs = append(errs, errors.New("player does not fit in the playfield"))
	}
	if c.Projectile.Damage <= c.Enemy.Health {
		errs = append(errs, fmt.Errorf("projectile.damage must exceed enemy.health so one hit kills, got %v <= %v",
			c.Projectile.Damage, c.Enemy.Health))
	}
	if c.Corpse.Fade <= 0 {
		errs = append(errs, fmt.Errorf("corpse.fade must be positive, got %v", c.Corpse.Fade))
	}
	if c.Render.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("render.frame_rate must be positive, got %d", c.Render.FrameRate))
	}
	if _, err := ParsePreset(c.Difficulty.Preset); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
