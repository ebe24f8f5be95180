package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/study-breakout/internal/core"
)

// Tick runs one step of the simulation. It is a no-op unless the session is
// Playing. The order of the steps is fixed:
//
//  1. advance balls and drop the ones that fell
//  2. if no ball is left, lose a life and end the tick
//  3. fire due timers, move and collect power-ups, apply queued commands
//  4. move lasers and resolve laser hits
//  5. resolve ball hits on bricks
//  6. check for a cleared grid
func (s *Session) Tick() {
	if s.closed || s.state != StatePlaying {
		return
	}
	s.tick++

	s.advanceBalls()

	if len(s.balls) == 0 {
		s.loseBall()
		return
	}

	for _, cmd := range s.timers.Advance(s.tick) {
		s.commands.push(cmd)
	}
	s.powerups.Advance()
	for _, kind := range s.powerups.Collect(s.paddle.Box()) {
		s.commands.push(applyPowerUp{Kind: kind})
	}
	for _, cmd := range s.commands.drain() {
		s.apply(cmd)
	}

	s.lasers.Advance()
	for _, hit := range s.lasers.Resolve(s.grid) {
		s.scoreHit(hit, s.cfg.Scoring.LaserMultiplier)
	}

	s.resolveBallBricks()

	if s.grid.AllDestroyed() {
		s.state = StateLevelComplete
		s.timers.CancelAll()
	}
}

// advanceBalls moves every ball through the physics kernel and keeps the
// ones still in the area.
func (s *Session) advanceBalls() {
	kept := s.balls[:0]
	for _, b := range s.balls {
		if StepBall(&b, s.paddle, s.geom) {
			continue
		}
		kept = append(kept, b)
	}
	s.balls = kept
}

// loseBall handles an empty ball set: one life less, then either game over
// or a fresh ball after the serve delay.
func (s *Session) loseBall() {
	if s.lives > 0 {
		s.lives--
	}
	s.powerups.Clear()
	s.lasers.Clear()

	if s.lives == 0 {
		s.state = StateGameOver
		s.timers.CancelAll()
		s.report(core.CompletionGameOver)
		return
	}

	s.serveBall()
	s.serveCountdown = s.cfg.Gameplay.ServeDelay
	s.state = StateRoundLost
	if s.serveCountdown <= 0 {
		s.state = StateIdle
	}
}

// resolveBallBricks lets every ball hit at most one brick this tick.
// Several balls may hit the same brick in one tick and each hit counts.
func (s *Session) resolveBallBricks() {
	size := s.geom.BallSize
	for i := range s.balls {
		b := &s.balls[i]
		brick, rect, ok := s.grid.FirstOverlap(b.Box(size))
		if !ok {
			continue
		}
		if _, axis := BrickOverlap(b.prevBox(size), b.Box(size), rect); axis != AxisNone {
			ReflectOffBrick(b, size, axis, rect)
		}
		s.scoreHit(s.grid.ApplyHit(brick.ID), s.cfg.Scoring.BallMultiplier)
	}
}

// scoreHit awards points for a destroyed brick and drops its power-up.
func (s *Session) scoreHit(hit HitResult, multiplier int) {
	if !hit.Destroyed {
		return
	}
	s.score += Points(hit.Brick.Row, multiplier, s.level)
	if hit.Dropped != PowerUpNone {
		r := s.grid.Rect(hit.Brick)
		s.powerups.Spawn(s.ids.next(), hit.Dropped, r.CenterX(), r.CenterY())
	}
}

// apply executes one queued command against the current state.
func (s *Session) apply(cmd Command) {
	switch c := cmd.(type) {
	case applyPowerUp:
		s.applyEffect(c.Kind)
	case revertPaddle:
		s.setPaddleWidth(s.cfg.Paddle.Width)
	case revertLaser:
		s.hasLaser = false
	case revertSlow:
		s.revertSlow(c.BallIDs, c.Factor)
	default:
		panic(fmt.Sprintf("breakout: unknown command %T", cmd))
	}
}

// applyEffect applies a collected power-up. Every kind must be handled here.
func (s *Session) applyEffect(kind PowerUpKind) {
	pu := s.cfg.PowerUps
	switch kind {
	case PowerUpMultiball:
		s.spawnMultiball(pu.MultiballCount)

	case PowerUpExpand:
		width := min(s.cfg.Paddle.Width*s.cfg.Paddle.ExpandFactor, s.geom.AreaW*s.cfg.Paddle.MaxWidthRatio)
		s.setPaddleWidth(max(width, s.cfg.Paddle.Width))
		s.timers.Schedule(timerExpand, kind, s.dueIn(pu.ExpandSeconds), revertPaddle{})

	case PowerUpLaser:
		s.hasLaser = true
		s.timers.Schedule(timerLaser, kind, s.dueIn(pu.LaserSeconds), revertLaser{})

	case PowerUpSlowBall:
		ids := make([]int, 0, len(s.balls))
		for i := range s.balls {
			s.balls[i].DX *= pu.SlowFactor
			s.balls[i].DY *= pu.SlowFactor
			ids = append(ids, s.balls[i].ID)
		}
		s.timers.Schedule("", kind, s.dueIn(pu.SlowSeconds), revertSlow{BallIDs: ids, Factor: pu.SlowFactor})

	case PowerUpLife:
		s.lives++

	default:
		panic(fmt.Sprintf("breakout: unhandled power-up kind %d", kind))
	}
}

// dueIn converts a duration in seconds into an absolute tick.
func (s *Session) dueIn(seconds float64) uint64 {
	ticks := uint64(math.Round(seconds * float64(s.opts.TickRate)))
	return s.tick + max(ticks, 1)
}

// setPaddleWidth resizes the paddle around its center.
func (s *Session) setPaddleWidth(width float64) {
	center := s.paddle.CenterX()
	s.paddle.Width = width
	s.paddle.X = center - width/2
	s.paddle.clamp(s.geom.AreaW)
}

// spawnMultiball adds balls at the first active ball, flying up on
// symmetric diagonals at that ball's speed.
func (s *Session) spawnMultiball(count int) {
	if len(s.balls) == 0 || count <= 0 {
		return
	}
	src := s.balls[0]
	speed := src.Speed()
	if speed == 0 {
		speed = s.ballSpeed
	}
	d := speed / math.Sqrt2

	for i := range count {
		dx := d
		if i%2 == 0 {
			dx = -d
		}
		s.balls = append(s.balls, Ball{
			ID:    s.ids.next(),
			X:     src.X,
			Y:     src.Y,
			DX:    dx,
			DY:    -d,
			prevX: src.prevX,
			prevY: src.prevY,
		})
	}
}

// revertSlow restores the speed of the balls a slowball slowed. Balls that
// are gone are skipped; balls created since are left alone.
func (s *Session) revertSlow(ids []int, factor float64) {
	if factor == 0 {
		return
	}
	slowed := make(map[int]bool, len(ids))
	for _, id := range ids {
		slowed[id] = true
	}
	for i := range s.balls {
		if slowed[s.balls[i].ID] {
			s.balls[i].DX /= factor
			s.balls[i].DY /= factor
		}
	}
}
