package breakout

import (
	"github.com/vovakirdan/study-breakout/internal/core"
)

// Ball is a ball in play. X/Y is the top-left corner of its square,
// DX/DY the velocity per tick, all in game-area units.
type Ball struct {
	ID     int
	X, Y   float64
	DX, DY float64

	prevX, prevY float64 // Position before the last StepBall
}

// Box returns the ball's bounding box.
func (b Ball) Box(size float64) core.Box {
	return core.NewBox(b.X, b.Y, size, size)
}

// prevBox returns the bounding box the ball had before its last move.
func (b Ball) prevBox(size float64) core.Box {
	return core.NewBox(b.prevX, b.prevY, size, size)
}

// Paddle is the player's paddle. Y is fixed for the whole session.
type Paddle struct {
	X, Y          float64
	Width, Height float64
}

// Box returns the paddle's bounding box.
func (p Paddle) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// CenterX returns the horizontal center of the paddle.
func (p Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// clamp keeps the paddle within [0, areaW-Width].
func (p *Paddle) clamp(areaW float64) {
	p.X = core.Clamp(p.X, 0, max(0, areaW-p.Width))
}

// BrickType classifies bricks by toughness.
type BrickType int

const (
	BrickNormal  BrickType = iota // One hit
	BrickHard                     // Two or three hits
	BrickArmored                  // Four hits
)

// String returns the name of the brick type.
func (t BrickType) String() string {
	switch t {
	case BrickNormal:
		return "normal"
	case BrickHard:
		return "hard"
	case BrickArmored:
		return "armored"
	default:
		return "?"
	}
}

// brickTypeFor derives the type from the hits a brick needs.
func brickTypeFor(maxHits int) BrickType {
	switch {
	case maxHits >= 4:
		return BrickArmored
	case maxHits >= 2:
		return BrickHard
	default:
		return BrickNormal
	}
}

// Brick is one cell of the brick grid.
// Invariant: 0 <= Hits <= MaxHits. A brick is destroyed exactly when Hits == MaxHits.
type Brick struct {
	ID      int
	Row     int
	Col     int
	Hits    int
	MaxHits int
	Color   core.Color
	Type    BrickType
	PowerUp PowerUpKind // PowerUpNone when the brick drops nothing
}

// Destroyed reports whether the brick has taken all its hits.
func (b Brick) Destroyed() bool {
	return b.Hits >= b.MaxHits
}

// HitsLeft returns how many more hits destroy the brick.
func (b Brick) HitsLeft() int {
	return b.MaxHits - b.Hits
}

// PowerUp is a falling collectible. X/Y is the top-left corner.
type PowerUp struct {
	ID   int
	Kind PowerUpKind
	X, Y float64
}

// Laser is a projectile fired from the paddle. X/Y is the top-left corner.
type Laser struct {
	ID   int
	X, Y float64
}

// Stats is the session-level game state.
type Stats struct {
	Score    int
	Lives    int
	Level    int
	Paused   bool
	GameOver bool
	Won      bool
	HasLaser bool
}

// idSeq hands out entity IDs. IDs are unique within a session.
type idSeq int

func (s *idSeq) next() int {
	*s++
	return int(*s)
}
