package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/study-breakout/internal/config"
	"github.com/vovakirdan/study-breakout/internal/core"
)

// recorder collects completion reports.
type recorder struct {
	got []core.Completion
}

func (r *recorder) ReportCompletion(c core.Completion) {
	r.got = append(r.got, c)
}

// newTestSession builds a session without random power-ups.
func newTestSession(t *testing.T, mutate func(*config.BreakoutConfig)) (*Session, *recorder) {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	cfg.Bricks.PowerUpChance = 0
	if mutate != nil {
		mutate(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	rec := &recorder{}
	s := NewSession(cfg, Options{TickRate: 60, Seed: 42, Reporter: rec})
	return s, rec
}

// singleBrick is a 1x1 grid with a 4-hit brick at (4, 30, 312, 8).
func singleBrick(cfg *config.BreakoutConfig) {
	cfg.Bricks.Rows, cfg.Bricks.Cols = 1, 1
}

// parkBall puts one ball in the middle of the field, clear of everything.
func parkBall(s *Session) {
	s.balls = []Ball{{ID: s.ids.next(), X: 150, Y: 150, DX: 0, DY: -0.5}}
}

func TestNewSessionStartsIdle(t *testing.T) {
	s, _ := newTestSession(t, nil)

	if s.State() != StateIdle {
		t.Errorf("state = %s, want idle", s.State())
	}
	st := s.Stats()
	if st.Score != 0 || st.Lives != 3 || st.Level != 1 {
		t.Errorf("stats = %+v", st)
	}
	if len(s.balls) != 1 {
		t.Fatalf("want one serve ball, got %d", len(s.balls))
	}
	b := s.balls[0]
	if b.Y+s.geom.BallSize != s.paddle.Y {
		t.Errorf("serve ball should rest on the paddle, bottom at %v", b.Y+s.geom.BallSize)
	}
}

func TestTickOnlyWhilePlaying(t *testing.T) {
	s, _ := newTestSession(t, nil)
	before := s.Snapshot().Hash()

	s.Tick()
	if s.Snapshot().Hash() != before {
		t.Error("Tick changed state while idle")
	}

	s.Launch()
	s.TogglePause()
	paused := s.Snapshot().Hash()
	for range 10 {
		s.Update()
	}
	if s.Snapshot().Hash() != paused {
		t.Error("Update changed state while paused")
	}

	s.TogglePause()
	s.Update()
	if s.tick != 1 {
		t.Errorf("tick = %d after resuming, want 1", s.tick)
	}
}

func TestLaunch(t *testing.T) {
	s, _ := newTestSession(t, nil)
	s.Launch()

	if s.State() != StatePlaying {
		t.Fatalf("state = %s, want playing", s.State())
	}
	b := s.balls[0]
	if b.DY != -s.cfg.Ball.Speed || math.Abs(b.DX) != s.cfg.Ball.Speed/2 {
		t.Errorf("launch velocity = (%v, %v)", b.DX, b.DY)
	}

	// Second launch is a no-op
	s.Launch()
	if s.balls[0] != b {
		t.Error("launch while playing changed the ball")
	}
}

func TestMovePaddleClamps(t *testing.T) {
	s, _ := newTestSession(t, func(cfg *config.BreakoutConfig) {
		cfg.Paddle.Width = 80
	})
	s.paddle.X = 0

	s.MovePaddle(-50)
	if s.paddle.X != 0 {
		t.Errorf("paddle.X = %v after dragging left of the wall, want 0", s.paddle.X)
	}

	s.MovePaddle(1000)
	if want := s.geom.AreaW - 80; s.paddle.X != want {
		t.Errorf("paddle.X = %v, want %v", s.paddle.X, want)
	}

	// Serve ball follows while idle
	b := s.balls[0]
	if b.X+s.geom.BallSize/2 != s.paddle.CenterX() {
		t.Errorf("serve ball center %v, paddle center %v", b.X+s.geom.BallSize/2, s.paddle.CenterX())
	}
}

func TestMovePaddleIgnoredWhenPausedOrOver(t *testing.T) {
	s, _ := newTestSession(t, nil)
	s.Launch()
	s.TogglePause()

	x := s.paddle.X
	s.MovePaddle(20)
	if s.paddle.X != x {
		t.Error("paddle moved while paused")
	}
}

func TestFourHitsDestroyTopBrick(t *testing.T) {
	s, _ := newTestSession(t, singleBrick)
	s.state = StatePlaying

	for hit := 1; hit <= 4; hit++ {
		// Just below the brick, moving up: overlaps after this tick's move
		s.balls = []Ball{{ID: 99, X: 100, Y: 38.5, DX: 0, DY: -1}}
		before := s.score
		s.Tick()

		gained := s.score - before
		if hit < 4 && gained != 0 {
			t.Errorf("hit %d: score +%d, want +0", hit, gained)
		}
		if hit == 4 && gained != 10 {
			t.Errorf("hit %d: score +%d, want +10", hit, gained)
		}
		if got := s.grid.Bricks()[0].Hits; got != hit {
			t.Errorf("after hit %d brick has %d hits", hit, got)
		}
		if s.balls[0].DY <= 0 {
			t.Errorf("hit %d: ball should bounce down, DY = %v", hit, s.balls[0].DY)
		}
	}

	if s.State() != StateLevelComplete || !s.Stats().Won {
		t.Errorf("state = %s, want levelcomplete", s.State())
	}
}

func TestCornerGrazeHitsOnce(t *testing.T) {
	// One brick at (20, 30, 280, 8)
	s, _ := newTestSession(t, func(cfg *config.BreakoutConfig) {
		singleBrick(cfg)
		cfg.Bricks.Gap = 20
	})
	s.state = StatePlaying

	// Nearly vertical, clipping the lower-left corner on the way up
	s.balls = []Ball{{ID: 99, X: 14.5, Y: 39, DX: 0.05, DY: -2.5}}

	for range 10 {
		s.Tick()
	}

	if got := s.grid.Bricks()[0].Hits; got != 1 {
		t.Errorf("brick took %d hits from one graze, want 1", got)
	}
	if s.score != 0 {
		t.Errorf("score = %d, brick should still stand", s.score)
	}
	if len(s.balls) != 1 || s.balls[0].DY <= 0 {
		t.Errorf("ball should bounce down off the brick, balls = %+v", s.balls)
	}
}

func TestSimultaneousBallHitsBothCount(t *testing.T) {
	s, _ := newTestSession(t, singleBrick)
	s.state = StatePlaying
	s.balls = []Ball{
		{ID: 90, X: 100, Y: 38.5, DY: -1},
		{ID: 91, X: 200, Y: 38.5, DY: -1},
	}

	s.Tick()
	if got := s.grid.Bricks()[0].Hits; got != 2 {
		t.Errorf("brick hits = %d, want 2", got)
	}
}

func TestLoseBallRoundLostThenIdle(t *testing.T) {
	s, rec := newTestSession(t, nil)
	s.state = StatePlaying
	s.balls = []Ball{{ID: 99, X: 10, Y: 240, DY: 10}}

	s.Tick()
	if s.Stats().Lives != 2 {
		t.Errorf("lives = %d, want 2", s.Stats().Lives)
	}
	if s.State() != StateRoundLost {
		t.Fatalf("state = %s, want roundlost", s.State())
	}
	if len(s.balls) != 1 {
		t.Errorf("want a fresh serve ball, got %d balls", len(s.balls))
	}

	for range s.cfg.Gameplay.ServeDelay - 1 {
		s.Update()
	}
	if s.State() != StateRoundLost {
		t.Errorf("state = %s before the serve delay ran out", s.State())
	}
	s.Update()
	if s.State() != StateIdle {
		t.Errorf("state = %s after the serve delay, want idle", s.State())
	}
	if s.Stats().Lives != 2 {
		t.Errorf("lives changed during serve delay: %d", s.Stats().Lives)
	}
	if len(rec.got) != 0 {
		t.Errorf("no completion expected yet, got %v", rec.got)
	}
}

func TestGameOverReportsOnce(t *testing.T) {
	s, rec := newTestSession(t, nil)
	s.state = StatePlaying
	s.lives = 1
	s.score = 120
	s.balls = []Ball{{ID: 99, X: 10, Y: 240, DY: 10}}

	s.Tick()
	if s.State() != StateGameOver || !s.Stats().GameOver {
		t.Fatalf("state = %s, want gameover", s.State())
	}
	if s.Stats().Lives != 0 {
		t.Errorf("lives = %d, want 0", s.Stats().Lives)
	}

	// Terminal: further ticks and input do nothing
	s.Tick()
	s.Launch()
	s.Close()

	if len(rec.got) != 1 {
		t.Fatalf("got %d reports, want 1", len(rec.got))
	}
	want := core.Completion{GameID: "breakout", Score: 120, Level: 1, Reason: core.CompletionGameOver}
	if rec.got[0] != want {
		t.Errorf("report = %+v, want %+v", rec.got[0], want)
	}
}

func TestCloseMidRoundReportsOnce(t *testing.T) {
	s, rec := newTestSession(t, nil)
	s.Launch()
	s.score = 50

	s.Close()
	s.Close()
	s.Tick()

	if len(rec.got) != 1 || rec.got[0].Reason != core.CompletionExit || rec.got[0].Score != 50 {
		t.Errorf("reports = %+v", rec.got)
	}
	if !s.Closed() {
		t.Error("session should be closed")
	}
}

func TestRestartResetsAttempt(t *testing.T) {
	s, rec := newTestSession(t, nil)
	s.Launch()
	s.score = 300
	s.lives = 1
	s.level = 4

	s.Restart()

	st := s.Stats()
	if st.Score != 0 || st.Lives != 3 || st.Level != 1 {
		t.Errorf("stats after restart = %+v", st)
	}
	if s.State() != StateIdle {
		t.Errorf("state = %s, want idle", s.State())
	}
	if s.grid.Remaining() != s.grid.Len() {
		t.Error("restart should regenerate the grid")
	}
	if len(rec.got) != 1 || rec.got[0].Score != 300 {
		t.Errorf("abandoned attempt should be reported once, got %+v", rec.got)
	}

	// A new attempt gets its own report
	s.Close()
	if len(rec.got) != 2 {
		t.Errorf("want a second report for the new attempt, got %d", len(rec.got))
	}
}

func TestRestartBeforeLaunchDoesNotReport(t *testing.T) {
	s, rec := newTestSession(t, nil)
	s.Restart()
	if len(rec.got) != 0 {
		t.Errorf("unlaunched attempt reported: %+v", rec.got)
	}
}

func TestNextLevel(t *testing.T) {
	s, _ := newTestSession(t, singleBrick)

	// Not complete yet: no-op
	s.NextLevel()
	if s.Stats().Level != 1 {
		t.Fatal("next level should be a no-op before the level is cleared")
	}

	s.state = StatePlaying
	s.hasLaser = true
	s.timers.Schedule(timerLaser, PowerUpLaser, 1000, revertLaser{})
	s.score = 70
	s.lives = 2
	s.grid.ApplyHit(s.grid.Bricks()[0].ID)
	s.grid.ApplyHit(s.grid.Bricks()[0].ID)
	s.grid.ApplyHit(s.grid.Bricks()[0].ID)
	s.grid.ApplyHit(s.grid.Bricks()[0].ID)
	parkBall(s)
	s.Tick()
	if s.State() != StateLevelComplete {
		t.Fatalf("state = %s, want levelcomplete", s.State())
	}

	s.NextLevel()
	st := s.Stats()
	if st.Level != 2 || st.Score != 70 || st.Lives != 2 {
		t.Errorf("stats = %+v, want level 2 with score and lives kept", st)
	}
	if st.HasLaser || s.timers.Pending() != 0 {
		t.Error("laser state should be reset")
	}
	if s.State() != StateIdle || s.grid.AllDestroyed() {
		t.Error("next level should start idle with a fresh grid")
	}
	want := s.cfg.Ball.Speed + s.cfg.Ball.SpeedPerLevel
	if s.ballSpeed != want {
		t.Errorf("ball speed = %v, want %v", s.ballSpeed, want)
	}
}

func TestLifePowerUpImmediate(t *testing.T) {
	s, _ := newTestSession(t, nil)
	s.state = StatePlaying
	s.lives = 2
	parkBall(s)
	s.powerups.Spawn(s.ids.next(), PowerUpLife, s.paddle.CenterX(), s.paddle.Y)

	s.Tick()
	if s.Stats().Lives != 3 {
		t.Errorf("lives = %d, want 3", s.Stats().Lives)
	}
	if s.timers.Pending() != 0 {
		t.Error("life power-up should not schedule a timer")
	}
	if s.powerups.Len() != 0 {
		t.Error("collected power-up should be removed")
	}
}

func TestExpandPaddleRevertsAfterDuration(t *testing.T) {
	s, _ := newTestSession(t, nil)
	s.state = StatePlaying
	parkBall(s)
	base := s.paddle.Width

	s.applyEffect(PowerUpExpand)
	want := min(base*1.5, s.geom.AreaW*0.4)
	if s.paddle.Width != want {
		t.Fatalf("expanded width = %v, want %v", s.paddle.Width, want)
	}

	// Re-collecting does not compound
	s.applyEffect(PowerUpExpand)
	if s.paddle.Width != want {
		t.Errorf("width after second expand = %v, want %v", s.paddle.Width, want)
	}

	duration := uint64(s.cfg.PowerUps.ExpandSeconds * 60)
	for range duration - 1 {
		s.balls[0].Y, s.balls[0].DY = 150, -0.5 // Keep the ball in play
		s.Tick()
	}
	if s.paddle.Width != want {
		t.Fatal("paddle reverted early")
	}
	s.Tick()
	if s.paddle.Width != base {
		t.Errorf("width = %v after the timer, want %v", s.paddle.Width, base)
	}
}

func TestExpandThenRestartDoesNotLeak(t *testing.T) {
	s, _ := newTestSession(t, nil)
	s.Launch()
	base := s.paddle.Width

	s.applyEffect(PowerUpExpand)
	s.Restart()

	if s.paddle.Width != base {
		t.Fatalf("width after restart = %v, want %v", s.paddle.Width, base)
	}
	if s.timers.Pending() != 0 {
		t.Fatal("restart should cancel pending timers")
	}

	// Expand later in the new attempt, then run past the old timer's deadline
	s.Launch()
	parkBall(s)
	keepInPlay := func(n int) {
		for range n {
			s.balls[0].Y, s.balls[0].DY = 150, -0.5
			s.Tick()
		}
	}
	keepInPlay(100)
	s.applyEffect(PowerUpExpand)
	expanded := s.paddle.Width
	keepInPlay(550)

	if s.paddle.Width != expanded {
		t.Errorf("stale timer touched the new paddle: width %v, want %v", s.paddle.Width, expanded)
	}
}

func TestLaserPowerUpAndFire(t *testing.T) {
	s, _ := newTestSession(t, nil)

	s.Fire()
	if s.lasers.Len() != 0 {
		t.Fatal("fire without laser should be a no-op")
	}

	s.applyEffect(PowerUpLaser)
	s.Fire()
	if s.lasers.Len() != 0 {
		t.Fatal("fire while idle should be a no-op")
	}

	s.Launch()
	s.Fire()
	s.Fire()
	if s.lasers.Len() != 2 {
		t.Errorf("want one laser per fire, got %d", s.lasers.Len())
	}

	// Revert fires after the laser duration
	parkBall(s)
	for range uint64(s.cfg.PowerUps.LaserSeconds * 60) {
		s.balls[0].Y, s.balls[0].DY = 150, -0.5
		s.Tick()
	}
	if s.Stats().HasLaser {
		t.Error("laser should have reverted")
	}
}

func TestPauseFreezesEffects(t *testing.T) {
	s, _ := newTestSession(t, nil)
	s.Launch()
	s.applyEffect(PowerUpLaser)
	left := s.timers.Active(s.tick)[0].TicksLeft

	s.TogglePause()
	for range 2000 {
		s.Update()
	}
	s.TogglePause()

	if !s.Stats().HasLaser {
		t.Fatal("laser expired while paused")
	}
	if got := s.timers.Active(s.tick)[0].TicksLeft; got != left {
		t.Errorf("ticks left = %d after pause, want %d", got, left)
	}
}

func TestSlowBallRevertsOnlySlowedBalls(t *testing.T) {
	s, _ := newTestSession(t, nil)
	s.state = StatePlaying
	s.balls = []Ball{
		{ID: 100, X: 50, Y: 150, DX: 2, DY: -3},
		{ID: 101, X: 80, Y: 150, DX: -1, DY: -2},
	}

	s.applyEffect(PowerUpSlowBall)
	near := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
	if !near(s.balls[0].DX, 1.2) || !near(s.balls[0].DY, -1.8) {
		t.Errorf("ball 0 velocity after slow = (%v, %v)", s.balls[0].DX, s.balls[0].DY)
	}

	// A ball created after the slowball is not affected by its reversion,
	// and a ball that is gone is simply skipped
	s.balls = append(s.balls[1:], Ball{ID: 102, X: 120, Y: 150, DX: 1, DY: -1})

	for _, cmd := range s.timers.Advance(math.MaxUint64) {
		s.apply(cmd)
	}

	if b := s.balls[0]; !near(b.DX, -1) || !near(b.DY, -2) {
		t.Errorf("slowed ball not restored: (%v, %v)", b.DX, b.DY)
	}
	if b := s.balls[1]; b.DX != 1 || b.DY != -1 {
		t.Errorf("new ball should be untouched: (%v, %v)", b.DX, b.DY)
	}
}

func TestMultiball(t *testing.T) {
	s, _ := newTestSession(t, nil)
	s.state = StatePlaying
	s.balls = []Ball{{ID: 100, X: 50, Y: 150, DX: 3, DY: -4}}

	s.applyEffect(PowerUpMultiball)
	if len(s.balls) != 3 {
		t.Fatalf("want 3 balls, got %d", len(s.balls))
	}
	if s.balls[0] != (Ball{ID: 100, X: 50, Y: 150, DX: 3, DY: -4}) {
		t.Error("multiball should not alter the existing ball")
	}

	a, b := s.balls[1], s.balls[2]
	if a.X != 50 || a.Y != 150 || b.X != 50 || b.Y != 150 {
		t.Error("new balls should spawn at the source ball")
	}
	if a.DX != -b.DX || a.DY != b.DY || a.DY >= 0 {
		t.Errorf("velocities not symmetric diagonals: (%v, %v) and (%v, %v)", a.DX, a.DY, b.DX, b.DY)
	}
	if math.Abs(a.Speed()-5) > 1e-9 {
		t.Errorf("new ball speed = %v, want 5", a.Speed())
	}
	if a.ID == b.ID || a.ID == 100 {
		t.Error("new balls need fresh IDs")
	}
}

func TestUnknownPowerUpPanics(t *testing.T) {
	s, _ := newTestSession(t, nil)
	defer func() {
		if recover() == nil {
			t.Error("unknown power-up kind should panic")
		}
	}()
	s.applyEffect(PowerUpKind(99))
}

func TestCollectedPowerUpAppliedThroughQueue(t *testing.T) {
	s, _ := newTestSession(t, nil)
	s.state = StatePlaying
	parkBall(s)
	s.powerups.Spawn(s.ids.next(), PowerUpMultiball, s.paddle.CenterX(), s.paddle.Y)

	s.Tick()
	if len(s.balls) != 3 {
		t.Errorf("want 3 balls after collecting multiball, got %d", len(s.balls))
	}
	if s.commands.size() != 0 {
		t.Error("command queue should be drained every tick")
	}
}

func TestLaserDestructionScoresLaserMultiplier(t *testing.T) {
	s, _ := newTestSession(t, func(cfg *config.BreakoutConfig) {
		singleBrick(cfg)
		cfg.Bricks.RowHits = []int{1}
	})
	s.state = StatePlaying
	parkBall(s)
	s.lasers.Fire(s.ids.next(), Paddle{X: 100, Y: 51, Width: 64}) // Laser at 43..51, reaches the brick after one move

	s.Tick()
	if s.score != 15 {
		t.Errorf("score = %d, want 15", s.score)
	}
}

func TestInvariantsOverLongRun(t *testing.T) {
	s, _ := newTestSession(t, func(cfg *config.BreakoutConfig) {
		cfg.Bricks.PowerUpChance = 50
	})
	rng := NewSimpleRNG(99)
	limit := s.geom.AreaH + s.geom.FallMargin

	lastScore := 0
	for i := range 20000 {
		switch s.State() {
		case StateIdle:
			s.Launch()
		case StateGameOver:
			s.Restart()
			lastScore = 0
		case StateLevelComplete:
			s.NextLevel()
		}
		s.MovePaddle(float64(rng.Intn(41) - 20))
		if i%7 == 0 {
			s.Fire()
		}
		livesBefore := s.lives

		s.Update()

		if s.paddle.X < 0 || s.paddle.X > s.geom.AreaW-s.paddle.Width {
			t.Fatalf("tick %d: paddle.X = %v out of range", i, s.paddle.X)
		}
		for _, b := range s.grid.Bricks() {
			if b.Hits < 0 || b.Hits > b.MaxHits {
				t.Fatalf("tick %d: brick %d hits %d/%d", i, b.ID, b.Hits, b.MaxHits)
			}
		}
		for _, b := range s.balls {
			if b.Y > limit {
				t.Fatalf("tick %d: fallen ball %d still active at Y=%v", i, b.ID, b.Y)
			}
		}
		if s.score < lastScore {
			t.Fatalf("tick %d: score went down from %d to %d", i, lastScore, s.score)
		}
		lastScore = s.score
		if s.lives < 0 {
			t.Fatalf("tick %d: negative lives", i)
		}
		if s.lives < livesBefore && s.lives != livesBefore-1 {
			t.Fatalf("tick %d: lives %d -> %d", i, livesBefore, s.lives)
		}
		if (s.lives == 0) != (s.State() == StateGameOver) {
			t.Fatalf("tick %d: lives %d in state %s", i, s.lives, s.State())
		}
	}
}
