package breakout

import (
	"github.com/vovakirdan/study-breakout/internal/config"
	"github.com/vovakirdan/study-breakout/internal/core"
	"github.com/vovakirdan/study-breakout/internal/registry"
)

// GameID is the registry ID of the game.
const GameID = "breakout"

// Screen rows reserved outside the play field.
const (
	hudRows    = 2 // Score line and effects line
	footerRows = 1 // Hint line
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game adapts a Session to the arcade platform: it maps input frames to
// session operations and draws snapshots into the screen buffer.
type Game struct {
	runtime  core.RuntimeConfig
	cfg      config.BreakoutConfig
	session  *Session
	reporter core.CompletionReporter

	// Layout (computed from screen size)
	fieldW, fieldH int     // Play field size in cells
	scaleX, scaleY float64 // Game units per cell
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{
		minScreenW: 30,
		minScreenH: 15,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// SetReporter sets the collaborator that receives the final score.
// Must be called before Reset to take effect on the current session.
func (g *Game) SetReporter(r core.CompletionReporter) {
	g.reporter = r
	if g.session != nil {
		g.session.opts.Reporter = r
	}
}

// Reset initializes the game for the given screen. An existing session is
// restarted, which reports a launched but unfinished attempt as an exit.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.session == nil {
		cfg, err := config.LoadBreakout(configPath)
		if err != nil {
			// Commands validate the config before starting; Reset cannot fail.
			cfg = config.DefaultBreakoutConfig()
		}
		if difficultyPreset != "" {
			config.ApplyBreakoutPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.calculateLayout()

	if g.session == nil {
		g.session = NewSession(g.cfg, Options{
			GameID:   GameID,
			TickRate: runtime.TickRate,
			Seed:     runtime.Seed,
			Reporter: g.reporter,
		})
		return
	}
	g.session.rng = NewSimpleRNG(runtime.Seed)
	g.session.Restart()
}

// Resize recomputes the layout without touching the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.calculateLayout()
}

// calculateLayout maps the game area onto the screen.
func (g *Game) calculateLayout() {
	g.screenTooSmall = g.runtime.ScreenW < g.minScreenW || g.runtime.ScreenH < g.minScreenH

	g.fieldW = max(1, g.runtime.ScreenW)
	g.fieldH = max(1, g.runtime.ScreenH-hudRows-footerRows)
	g.scaleX = g.cfg.Area.Width / float64(g.fieldW)
	g.scaleY = g.cfg.Area.Height / float64(g.fieldH)
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Step applies one frame of input and advances the session.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall || g.session == nil {
		return core.StepResult{State: g.State()}
	}
	s := g.session

	if in.Has(core.ActionRestart) {
		s.Restart()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		s.TogglePause()
	}
	if in.Has(core.ActionNextLevel) || (in.Has(core.ActionConfirm) && s.State() == StateLevelComplete) {
		s.NextLevel()
	}

	// Keyboard movement
	if in.Has(core.ActionLeft) {
		s.MovePaddle(-g.cfg.Paddle.Speed)
	}
	if in.Has(core.ActionRight) {
		s.MovePaddle(g.cfg.Paddle.Speed)
	}

	// Pointer drag moves the paddle and launches a waiting ball
	if in.DragX != 0 {
		s.MovePaddle(float64(in.DragX) * g.scaleX)
		s.Launch()
	}

	if in.Has(core.ActionLaunch) {
		s.Launch()
	}
	if in.Has(core.ActionFire) {
		s.Fire()
	}

	s.Update()

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := g.session.Stats()
	return core.GameState{
		Score:    st.Score,
		Level:    st.Level,
		Lives:    st.Lives,
		GameOver: st.GameOver,
		Paused:   st.Paused,
	}
}

// Close ends the session and reports the score if it has not been reported.
func (g *Game) Close() {
	if g.session != nil {
		g.session.Close()
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
