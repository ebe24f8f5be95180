// Package breakout implements a brick breaker with multiple balls, timed
// power-ups and lasers. Session is the engine; Game adapts it to the arcade
// platform.
package breakout

import (
	"github.com/vovakirdan/study-breakout/internal/config"
	"github.com/vovakirdan/study-breakout/internal/core"
)

// SessionState is the top-level state of a session.
type SessionState int

const (
	StateIdle          SessionState = iota // Ball rides the paddle until launch
	StatePlaying                           // Loop is running
	StatePaused                            // Loop frozen by the player
	StateRoundLost                         // Last ball fell, waiting out the serve delay
	StateGameOver                          // No lives left, terminal until restart
	StateLevelComplete                     // All bricks destroyed, waiting for next level
)

// String returns the name of the state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateRoundLost:
		return "roundlost"
	case StateGameOver:
		return "gameover"
	case StateLevelComplete:
		return "levelcomplete"
	default:
		return "unknown"
	}
}

// Options configures a session beyond the game config.
type Options struct {
	GameID   string                  // Reported with the completion
	TickRate int                     // Ticks per second, for effect durations
	Seed     int64                   // Seed for grid generation and launch direction
	Reporter core.CompletionReporter // Receives the final score, may be nil
}

// Session owns every entity of one play attempt and the state machine
// around the loop. It is not safe for concurrent use.
type Session struct {
	cfg  config.BreakoutConfig
	opts Options
	geom Geometry

	state          SessionState
	serveCountdown int
	tick           uint64

	score     int
	lives     int
	level     int
	hasLaser  bool
	ballSpeed float64
	launched  bool // Ball launched at least once since the last restart

	paddle   Paddle
	balls    []Ball
	grid     *Grid
	powerups *PowerUps
	lasers   *Lasers
	timers   *Timers
	commands commandQueue

	ids idSeq
	rng *SimpleRNG

	reported bool
	closed   bool
}

// NewSession creates a session at level 1 in the Idle state.
func NewSession(cfg config.BreakoutConfig, opts Options) *Session {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.GameID == "" {
		opts.GameID = "breakout"
	}

	s := &Session{
		cfg:  cfg,
		opts: opts,
		geom: Geometry{
			AreaW:         cfg.Area.Width,
			AreaH:         cfg.Area.Height,
			BallSize:      cfg.Ball.Size,
			HitBand:       cfg.Paddle.HitBand,
			MaxDeflection: cfg.Ball.MaxDeflection,
			FallMargin:    cfg.Ball.FallMargin,
		},
		powerups: NewPowerUps(cfg.PowerUps.Size, cfg.PowerUps.FallSpeed, cfg.Area.Height),
		lasers:   NewLasers(cfg.Laser.Width, cfg.Laser.Height, cfg.Laser.Speed),
		timers:   NewTimers(),
		rng:      NewSimpleRNG(opts.Seed),
	}
	s.reset()
	return s
}

// reset starts a new attempt: score, lives and level go back to their start values.
// The RNG keeps its stream, so each attempt gets a different grid.
func (s *Session) reset() {
	s.ids = 0
	s.tick = 0
	s.score = 0
	s.lives = s.cfg.Gameplay.Lives
	s.level = 1
	s.launched = false
	s.reported = false
	s.ballSpeed = config.BallSpeedForLevel(s.cfg.Ball, s.level)
	s.startRound()
}

// startRound regenerates the grid and clears every transient entity.
func (s *Session) startRound() {
	s.timers.CancelAll()
	s.commands.clear()
	s.powerups.Clear()
	s.lasers.Clear()
	s.hasLaser = false

	s.paddle = Paddle{
		Y:      s.cfg.PaddleY(),
		Width:  s.cfg.Paddle.Width,
		Height: s.cfg.Paddle.Height,
	}
	s.paddle.X = (s.geom.AreaW - s.paddle.Width) / 2
	s.paddle.clamp(s.geom.AreaW)

	s.grid = GenerateGrid(s.cfg, s.level, s.rng, &s.ids)
	s.serveBall()
	s.serveCountdown = 0
	s.state = StateIdle
}

// serveBall replaces the ball set with one ball resting on the paddle.
func (s *Session) serveBall() {
	s.balls = s.balls[:0]
	s.balls = append(s.balls, Ball{ID: s.ids.next()})
	s.rideBall()
}

// rideBall keeps the serve ball centered on top of the paddle.
func (s *Session) rideBall() {
	if len(s.balls) == 0 {
		return
	}
	b := &s.balls[0]
	b.X = s.paddle.CenterX() - s.geom.BallSize/2
	b.Y = s.paddle.Y - s.geom.BallSize
	b.DX, b.DY = 0, 0
}

// State returns the current session state.
func (s *Session) State() SessionState {
	return s.state
}

// Stats returns the session-level game state.
func (s *Session) Stats() Stats {
	return Stats{
		Score:    s.score,
		Lives:    s.lives,
		Level:    s.level,
		Paused:   s.state == StatePaused,
		GameOver: s.state == StateGameOver,
		Won:      s.state == StateLevelComplete,
		HasLaser: s.hasLaser,
	}
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	return s.closed
}

// Launch sends the serve ball upward. Only valid in Idle.
func (s *Session) Launch() {
	if s.closed || s.state != StateIdle || len(s.balls) == 0 {
		return
	}
	dir := 1.0
	if s.rng.Intn(2) == 0 {
		dir = -1
	}
	b := &s.balls[0]
	b.DX = dir * s.ballSpeed / 2
	b.DY = -s.ballSpeed
	s.launched = true
	s.state = StatePlaying
}

// TogglePause switches between Playing and Paused.
func (s *Session) TogglePause() {
	if s.closed {
		return
	}
	switch s.state {
	case StatePlaying:
		s.state = StatePaused
	case StatePaused:
		s.state = StatePlaying
	}
}

// Restart abandons the current attempt and starts over at level 1.
// An attempt that was launched but never reported is reported as an exit
// first, since the restart ends it.
func (s *Session) Restart() {
	if s.closed {
		return
	}
	if s.launched {
		s.report(core.CompletionExit)
	}
	s.reset()
}

// NextLevel advances to the next level after a clear, keeping score and lives.
// It is a no-op in any other state.
func (s *Session) NextLevel() {
	if s.closed || s.state != StateLevelComplete {
		return
	}
	s.level++
	s.ballSpeed = config.BallSpeedForLevel(s.cfg.Ball, s.level)
	s.startRound()
}

// Close ends the session, cancels pending timers and reports the score
// unless it was already reported.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.timers.CancelAll()
	s.commands.clear()
	s.report(core.CompletionExit)
	s.closed = true
}

// MovePaddle moves the paddle horizontally by dx game units, clamped to the area.
// While Idle the serve ball rides along.
func (s *Session) MovePaddle(dx float64) {
	if s.closed || dx == 0 {
		return
	}
	if s.state != StateIdle && s.state != StatePlaying {
		return
	}
	s.paddle.X += dx
	s.paddle.clamp(s.geom.AreaW)
	if s.state == StateIdle {
		s.rideBall()
	}
}

// Fire shoots one laser from the paddle when the laser is active and the
// session is playing.
func (s *Session) Fire() {
	if s.closed || !s.hasLaser || s.state != StatePlaying {
		return
	}
	s.lasers.Fire(s.ids.next(), s.paddle)
}

// Update runs one animation frame: the serve-delay countdown while a round
// is lost, or one loop tick while playing.
func (s *Session) Update() {
	if s.closed {
		return
	}
	switch s.state {
	case StateRoundLost:
		if s.serveCountdown > 0 {
			s.serveCountdown--
		}
		if s.serveCountdown <= 0 {
			s.state = StateIdle
		}
	case StatePlaying:
		s.Tick()
	}
}

// ServeCountdown returns the frames left before a lost round returns to Idle.
func (s *Session) ServeCountdown() int {
	return s.serveCountdown
}

// report sends the completion once per attempt.
func (s *Session) report(reason core.CompletionReason) {
	if s.reported {
		return
	}
	s.reported = true
	if s.opts.Reporter == nil {
		return
	}
	s.opts.Reporter.ReportCompletion(core.Completion{
		GameID: s.opts.GameID,
		Score:  s.score,
		Level:  s.level,
		Reason: reason,
	})
}
