package breakout

import (
	"math"

	"github.com/vovakirdan/study-breakout/internal/core"
)

// Geometry holds the play-field constants the physics kernel needs.
type Geometry struct {
	AreaW, AreaH  float64
	BallSize      float64
	HitBand       float64 // Vertical tolerance below the paddle top for contact
	MaxDeflection float64 // |DX| after a hit on the very edge of the paddle
	FallMargin    float64 // A ball is lost once Y exceeds AreaH + FallMargin
}

// Axis is the axis a collision reflects on.
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
	AxisBoth
)

// StepBall advances a ball by one tick: integrate, bounce off walls and the
// paddle. It reports whether the ball fell off the bottom of the area.
func StepBall(b *Ball, p Paddle, g Geometry) (fell bool) {
	b.prevX, b.prevY = b.X, b.Y
	b.X += b.DX
	b.Y += b.DY

	reflectWalls(b, g)

	if paddleContact(*b, p, g) {
		bounceOffPaddle(b, p, g)
	}

	return b.Y > g.AreaH+g.FallMargin
}

// reflectWalls bounces the ball off the left, right and top walls.
// Velocity is pointed away from the wall rather than negated, so a ball that
// is still on the boundary next tick does not flip back out of the area.
func reflectWalls(b *Ball, g Geometry) {
	maxX := g.AreaW - g.BallSize
	switch {
	case b.X <= 0:
		b.X = 0
		b.DX = math.Abs(b.DX)
	case b.X >= maxX:
		b.X = maxX
		b.DX = -math.Abs(b.DX)
	}

	if b.Y <= 0 {
		b.Y = 0
		b.DY = math.Abs(b.DY)
	}
}

// paddleContact reports whether the ball's bottom edge is inside the paddle
// band and the ball overlaps the paddle horizontally.
func paddleContact(b Ball, p Paddle, g Geometry) bool {
	bottom := b.Y + g.BallSize
	if bottom < p.Y || bottom > p.Y+g.HitBand {
		return false
	}
	return b.X < p.X+p.Width && b.X+g.BallSize > p.X
}

// bounceOffPaddle sends the ball upward with a horizontal speed proportional
// to where it struck: center goes straight up, edges give MaxDeflection.
func bounceOffPaddle(b *Ball, p Paddle, g Geometry) {
	b.DY = -math.Abs(b.DY)
	b.DX = PaddleDeflection(b.X+g.BallSize/2, p) * g.MaxDeflection
	b.Y = p.Y - g.BallSize
}

// PaddleDeflection returns the normalized contact offset in [-1, 1].
func PaddleDeflection(contactX float64, p Paddle) float64 {
	half := p.Width / 2
	if half <= 0 {
		return 0
	}
	return core.Clamp((contactX-p.CenterX())/half, -1, 1)
}

// BrickOverlap tests a ball box against a brick box. The reflection axis is
// taken from the side the ball came in through, judged by its box before the
// move: over or under the brick reflects Y, beside it reflects X, diagonally
// past a corner reflects both. A ball that already overlapped before the move
// reflects on both axes so it is pushed out rather than drilling through.
func BrickOverlap(prev, ball, brick core.Box) (bool, Axis) {
	if !ball.Intersects(brick) {
		return false, AxisNone
	}
	fromSide := prev.Right() <= brick.X || prev.X >= brick.Right()
	fromEnd := prev.Bottom() <= brick.Y || prev.Y >= brick.Bottom()
	switch {
	case fromSide && fromEnd:
		return true, AxisBoth
	case fromEnd:
		return true, AxisY
	case fromSide:
		return true, AxisX
	}
	return true, AxisBoth
}

// ReflectOffBrick points the ball's velocity away from the brick on the given axis.
func ReflectOffBrick(b *Ball, size float64, axis Axis, brick core.Box) {
	if axis == AxisX || axis == AxisBoth {
		if b.X+size/2 < brick.CenterX() {
			b.DX = -math.Abs(b.DX)
		} else {
			b.DX = math.Abs(b.DX)
		}
	}
	if axis == AxisY || axis == AxisBoth {
		if b.Y+size/2 < brick.CenterY() {
			b.DY = -math.Abs(b.DY)
		} else {
			b.DY = math.Abs(b.DY)
		}
	}
}

// Speed returns the magnitude of the ball's velocity.
func (b Ball) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}
