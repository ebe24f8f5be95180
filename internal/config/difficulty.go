package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Ball.SpeedPerLevel = 0
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 80
		cfg.Ball.Speed = 2
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 48
		cfg.Ball.Speed = 3.5
	}
}

// BallSpeedForLevel returns the launch speed for a level (1-based).
// Speed grows by SpeedPerLevel each level and never exceeds MaxSpeed.
func BallSpeedForLevel(ball BreakoutBall, level int) float64 {
	if level < 1 {
		level = 1
	}
	speed := ball.Speed + float64(level-1)*ball.SpeedPerLevel
	if ball.MaxSpeed > 0 {
		speed = clampF(speed, 0, math.Max(ball.MaxSpeed, ball.Speed))
	}
	return speed
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
