package config

import (
	_ "embed"
)

//go:embed defaults/evasion.yaml
var defaultEvasionYAML []byte

// DefaultEvasionConfig returns the built-in configuration. It matches the
// embedded defaults/evasion.yaml and is used if that file fails to parse.
func DefaultEvasionConfig() EvasionConfig {
	return EvasionConfig{
		Playfield: PlayfieldConfig{Width: 1024, Height: 768},
		Simulation: SimulationConfig{
			TickRate:       60,
			InputRate:      60,
			MaxEnemies:     100,
			BaseSpawnRate:  0.007,
			Growth:         0.0005,
			SpawnExclusion: 128,
			SpawnAttempts:  32,
		},
		Player: PlayerConfig{
			Health:            1000,
			Width:             64,
			Height:            64,
			Step:              5,
			DiagonalStep:      3,
			FireCooldownTicks: 12,
		},
		Enemy: EnemyConfig{
			Health:     1000,
			Width:      64,
			Height:     64,
			Speed:      0.9,
			SpeedBase:  0.9,
			SpeedScale: 0.1,
			BaseDamage: 0.75,
			ScoreBonus: 55,
		},
		Projectile: ProjectileConfig{Speed: 8, Damage: 1001, Width: 32, Height: 32},
		Corpse:     CorpseConfig{Fade: 0.05, Threshold: 0.05},
		Audio: AudioConfig{
			Enabled:     true,
			SampleRate:  44100,
			MusicVolume: 0.3,
			SoundVolume: 0.6,
			SongSeconds: 60,
		},
		Render:     RenderConfig{FrameRate: 30, Stars: 60},
		Difficulty: DifficultyConfig{Preset: string(DifficultyEasy), EffectiveScale: 1.1},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultEvasionYAML
}
