package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
// Mirrors defaults/breakout.yaml and is used when the embedded file cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Area: BreakoutArea{
			Width:  320,
			Height: 240,
		},
		Ball: BreakoutBall{
			Size:          6,
			Speed:         2.5,
			SpeedPerLevel: 0.25,
			MaxSpeed:      5,
			MaxDeflection: 3.5,
			FallMargin:    6,
		},
		Paddle: BreakoutPaddle{
			Width:         64,
			Height:        6,
			BottomOffset:  20,
			HitBand:       6,
			Speed:         6,
			ExpandFactor:  1.5,
			MaxWidthRatio: 0.4,
		},
		Bricks: BreakoutBricks{
			Rows:          6,
			Cols:          8,
			Height:        8,
			Gap:           4,
			TopOffset:     30,
			PowerUpChance: 15,
			RowHits:       []int{4, 3, 3, 2, 1, 1},
			RowMaxHits:    []int{4, 4, 4, 3, 2, 2},
		},
		PowerUps: BreakoutPowerUps{
			Size:           10,
			FallSpeed:      1.2,
			ExpandSeconds:  10,
			LaserSeconds:   10,
			SlowSeconds:    8,
			SlowFactor:     0.6,
			MultiballCount: 2,
		},
		Laser: BreakoutLaser{
			Width:  2,
			Height: 8,
			Speed:  6,
		},
		Scoring: BreakoutScoring{
			BallMultiplier:  10,
			LaserMultiplier: 15,
		},
		Gameplay: BreakoutGameplay{
			Lives:      3,
			ServeDelay: 60,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout":
		return defaultBreakoutYAML
	default:
		return nil
	}
}
