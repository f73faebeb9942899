package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/space-evasion/internal/core"
)

// DifficultyPreset represents a named starting difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyInsane DifficultyPreset = "insane"
)

// Presets lists the presets from easiest to hardest.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyInsane}

// ParsePreset resolves a preset name. An empty name selects easy.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyEasy, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or insane)", name)
}

// Level returns the preset's base level, 1 for easy up to 4 for insane.
func (p DifficultyPreset) Level() float64 {
	switch p {
	case DifficultyNormal:
		return 2
	case DifficultyHard:
		return 3
	case DifficultyInsane:
		return 4
	default:
		return 1
	}
}

// InitialDifficulty returns the effective difficulty a session starts with.
func (c DifficultyConfig) InitialDifficulty(p DifficultyPreset) float64 {
	scale := c.EffectiveScale
	if scale <= 0 {
		scale = 1
	}
	return p.Level() * scale
}

// DifficultyAfter returns the difficulty reached after ticks of compound
// growth at rate k per tick.
func DifficultyAfter(initial, k float64, ticks int) float64 {
	return initial * math.Pow(1+k, float64(ticks))
}

// Runtime resolves the session parameters for a preset. A zero seed is
// kept as zero; the caller picks a time-based one.
func (c EvasionConfig) Runtime(p DifficultyPreset, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Width:      c.Playfield.Width,
		Height:     c.Playfield.Height,
		TickRate:   c.Simulation.TickRate,
		FrameRate:  c.Render.FrameRate,
		InputRate:  c.Simulation.InputRate,
		Difficulty: c.Difficulty.InitialDifficulty(p),
		Seed:       seed,
	}
}
