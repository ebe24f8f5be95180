// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all configuration for the Breakout game.
// Lengths are in game-area units, speeds in units per tick.
type BreakoutConfig struct {
	Area     BreakoutArea     `yaml:"area"`
	Ball     BreakoutBall     `yaml:"ball"`
	Paddle   BreakoutPaddle   `yaml:"paddle"`
	Bricks   BreakoutBricks   `yaml:"bricks"`
	PowerUps BreakoutPowerUps `yaml:"powerups"`
	Laser    BreakoutLaser    `yaml:"laser"`
	Scoring  BreakoutScoring  `yaml:"scoring"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
}

// BreakoutArea defines the logical play field.
type BreakoutArea struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutBall defines ball size and speed.
type BreakoutBall struct {
	Size          float64 `yaml:"size"`
	Speed         float64 `yaml:"speed"`           // Launch speed at level 1
	SpeedPerLevel float64 `yaml:"speed_per_level"` // Added to launch speed per level
	MaxSpeed      float64 `yaml:"max_speed"`       // Cap for level scaling
	MaxDeflection float64 `yaml:"max_deflection"`  // Horizontal speed at the paddle edge
	FallMargin    float64 `yaml:"fall_margin"`     // Distance below the area before a ball is lost
}

// BreakoutPaddle defines the paddle.
type BreakoutPaddle struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	BottomOffset  float64 `yaml:"bottom_offset"`   // Distance from area bottom to paddle top
	HitBand       float64 `yaml:"hit_band"`        // Vertical tolerance for ball contact
	Speed         float64 `yaml:"speed"`           // Keyboard movement per tick
	ExpandFactor  float64 `yaml:"expand_factor"`   // Width multiplier for expand power-up
	MaxWidthRatio float64 `yaml:"max_width_ratio"` // Expanded width cap as a share of area width
}

// BreakoutBricks defines the brick grid layout.
type BreakoutBricks struct {
	Rows          int     `yaml:"rows"`
	Cols          int     `yaml:"cols"`
	Height        float64 `yaml:"height"`
	Gap           float64 `yaml:"gap"`
	TopOffset     float64 `yaml:"top_offset"`
	PowerUpChance int     `yaml:"powerup_chance"` // Percent of bricks carrying a power-up
	RowHits       []int   `yaml:"row_hits"`       // Hits needed at level 1, top row first
	RowMaxHits    []int   `yaml:"row_max_hits"`   // Toughness cap per row as levels rise
}

// BreakoutPowerUps defines falling power-ups and their effects.
type BreakoutPowerUps struct {
	Size           float64 `yaml:"size"`
	FallSpeed      float64 `yaml:"fall_speed"`
	ExpandSeconds  float64 `yaml:"expand_seconds"`
	LaserSeconds   float64 `yaml:"laser_seconds"`
	SlowSeconds    float64 `yaml:"slow_seconds"`
	SlowFactor     float64 `yaml:"slow_factor"`
	MultiballCount int     `yaml:"multiball_count"`
}

// BreakoutLaser defines laser projectiles.
type BreakoutLaser struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// BreakoutScoring defines score multipliers.
// A destroyed brick awards (row+1) * multiplier * level.
type BreakoutScoring struct {
	BallMultiplier  int `yaml:"ball_multiplier"`
	LaserMultiplier int `yaml:"laser_multiplier"`
}

// BreakoutGameplay defines lives and pacing.
type BreakoutGameplay struct {
	Lives      int `yaml:"lives"`
	ServeDelay int `yaml:"serve_delay"` // Frames to wait after losing a ball
}

// PaddleY returns the fixed vertical slot of the paddle.
func (c BreakoutConfig) PaddleY() float64 {
	return c.Area.Height - c.Paddle.BottomOffset
}

// Validate reports every setting that would make the simulation degenerate.
func (c BreakoutConfig) Validate() error {
	var errs []error

	positive := map[string]float64{
		"area.width":          c.Area.Width,
		"area.height":         c.Area.Height,
		"ball.size":           c.Ball.Size,
		"ball.speed":          c.Ball.Speed,
		"paddle.width":        c.Paddle.Width,
		"paddle.height":       c.Paddle.Height,
		"bricks.height":       c.Bricks.Height,
		"powerups.size":       c.PowerUps.Size,
		"powerups.fall_speed": c.PowerUps.FallSpeed,
		"laser.speed":         c.Laser.Speed,
	}
	for name, v := range positive {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	if c.Bricks.Rows <= 0 || c.Bricks.Cols <= 0 {
		errs = append(errs, fmt.Errorf("bricks grid must be at least 1x1, got %dx%d", c.Bricks.Rows, c.Bricks.Cols))
	}
	if len(c.Bricks.RowHits) < c.Bricks.Rows {
		errs = append(errs, fmt.Errorf("bricks.row_hits has %d entries, need %d", len(c.Bricks.RowHits), c.Bricks.Rows))
	}
	if len(c.Bricks.RowMaxHits) < c.Bricks.Rows {
		errs = append(errs, fmt.Errorf("bricks.row_max_hits has %d entries, need %d", len(c.Bricks.RowMaxHits), c.Bricks.Rows))
	}
	for i := 0; i < c.Bricks.Rows && i < len(c.Bricks.RowHits) && i < len(c.Bricks.RowMaxHits); i++ {
		if c.Bricks.RowHits[i] < 1 || c.Bricks.RowHits[i] > c.Bricks.RowMaxHits[i] {
			errs = append(errs, fmt.Errorf("bricks row %d: hits %d outside [1, %d]", i, c.Bricks.RowHits[i], c.Bricks.RowMaxHits[i]))
		}
	}
	if c.Bricks.PowerUpChance < 0 || c.Bricks.PowerUpChance > 100 {
		errs = append(errs, fmt.Errorf("bricks.powerup_chance must be in [0, 100], got %d", c.Bricks.PowerUpChance))
	}
	if c.Paddle.Width > c.Area.Width {
		errs = append(errs, fmt.Errorf("paddle.width %v exceeds area.width %v", c.Paddle.Width, c.Area.Width))
	}
	if c.PaddleY() <= c.Bricks.TopOffset {
		errs = append(errs, errors.New("paddle.bottom_offset places the paddle above the bricks"))
	}
	if c.PowerUps.SlowFactor <= 0 {
		errs = append(errs, fmt.Errorf("powerups.slow_factor must be positive, got %v", c.PowerUps.SlowFactor))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives))
	}

	return errors.Join(errs...)
}
