package breakout

import (
	"math"

	"github.com/vovakirdan/study-breakout/internal/core"
)

// BrickState is a brick together with the area it occupies.
type BrickState struct {
	Brick
	Box core.Box
}

// Snapshot is a deep copy of everything the renderer needs for one frame.
// Mutating it never affects the session.
type Snapshot struct {
	Tick           uint64
	State          SessionState
	Stats          Stats
	ServeCountdown int

	AreaW, AreaH float64
	BallSize     float64
	PowerUpSize  float64
	LaserW       float64
	LaserH       float64

	Paddle   Paddle
	Balls    []Ball
	Bricks   []BrickState
	PowerUps []PowerUp
	Lasers   []Laser
	Effects  []ActiveEffect

	BricksRemaining int
	RNGState        uint64
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	balls := make([]Ball, len(s.balls))
	copy(balls, s.balls)

	bricks := make([]BrickState, 0, s.grid.Len())
	for _, b := range s.grid.Bricks() {
		bricks = append(bricks, BrickState{Brick: b, Box: s.grid.Rect(b)})
	}

	return Snapshot{
		Tick:            s.tick,
		State:           s.state,
		Stats:           s.Stats(),
		ServeCountdown:  s.serveCountdown,
		AreaW:           s.geom.AreaW,
		AreaH:           s.geom.AreaH,
		BallSize:        s.geom.BallSize,
		PowerUpSize:     s.cfg.PowerUps.Size,
		LaserW:          s.cfg.Laser.Width,
		LaserH:          s.cfg.Laser.Height,
		Paddle:          s.paddle,
		Balls:           balls,
		Bricks:          bricks,
		PowerUps:        s.powerups.Items(),
		Lasers:          s.lasers.Shots(),
		Effects:         s.timers.Active(s.tick),
		BricksRemaining: s.grid.Remaining(),
		RNGState:        s.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stats.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stats.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stats.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ServeCountdown)  //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Paddle.X)
	h = h*31 + math.Float64bits(snap.Paddle.Width)
	if snap.Stats.HasLaser {
		h = h*31 + 1
	}

	for _, b := range snap.Balls {
		h = h*31 + uint64(b.ID) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
		h = h*31 + math.Float64bits(b.DX)
		h = h*31 + math.Float64bits(b.DY)
	}

	for _, b := range snap.Bricks {
		h = h*31 + uint64(b.ID)      //#nosec G115 -- hash computation
		h = h*31 + uint64(b.Hits)    //#nosec G115 -- hash computation
		h = h*31 + uint64(b.PowerUp) //#nosec G115 -- hash computation
	}

	for _, p := range snap.PowerUps {
		h = h*31 + uint64(p.Kind) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(p.X)
		h = h*31 + math.Float64bits(p.Y)
	}

	for _, l := range snap.Lasers {
		h = h*31 + math.Float64bits(l.X)
		h = h*31 + math.Float64bits(l.Y)
	}

	for _, e := range snap.Effects {
		h = h*31 + uint64(e.Kind) //#nosec G115 -- hash computation
		h = h*31 + e.TicksLeft
	}

	h = h*31 + snap.RNGState

	return h
}
