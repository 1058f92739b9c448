package blockfall

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// GameID is the identifier used by the CLI and logs.
const GameID = "blockfall"

// actionCommands lists the per-frame command order: horizontal moves, then
// soft drop, then rotation. The fall tick always runs last.
var actionCommands = []struct {
	action core.Action
	cmd    Command
}{
	{core.ActionMoveLeft, MoveLeft},
	{core.ActionMoveRight, MoveRight},
	{core.ActionSoftDrop, SoftDrop},
	{core.ActionRotate, Rotate},
}

// Game adapts a Session to the platform's fixed-tick core.Game interface.
// Pause and the window-size check live here; the Session never sees them.
type Game struct {
	cfg     config.BlockfallConfig
	session *Session
	seed    int64
	tick    uint64
	tickMs  int

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool

	// Last line clear, shown briefly in the HUD
	lastPoints int
	flashTicks int
}

// New creates a game using the given configuration. Call Reset before Step.
func New(cfg config.BlockfallConfig) *Game {
	cfg.FillDefaults()
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blockfall"
}

// Reset starts a brand-new session. The previous session is discarded.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	field := NewPlayfield(g.cfg.Field.Width, g.cfg.Field.Height)
	rules := Rules{FallIntervalMs: g.cfg.Timing.FallIntervalMs}

	g.session = NewSession(field, NewRandSource(cfg.Seed), rules)
	g.seed = cfg.Seed
	g.tick = 0
	g.tickMs = cfg.TickMillis()
	g.paused = false
	g.lastPoints = 0
	g.flashTicks = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minScreenSize()
	g.tooSmall = w < minW || h < minH
}

// Step advances the game by one tick: commands first, then gravity.
// A game that was never Reset starts on a default screen with a
// time-based seed.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		cfg := core.DefaultConfig()
		cfg.Seed = time.Now().UnixNano()
		g.Reset(cfg)
	}
	g.tick++
	if g.flashTicks > 0 {
		g.flashTicks--
	}

	if g.session.GameOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, ac := range actionCommands {
		if in.Has(ac.action) {
			g.session.Command(ac.cmd)
		}
	}

	res := g.session.Tick(g.tickMs)
	return core.StepResult{State: g.State(), Events: g.events(res)}
}

// events turns a tick result into loggable events.
func (g *Game) events(res TickResult) []core.Event {
	if !res.Locked {
		return nil
	}

	events := []core.Event{{
		Kind:   "lock",
		Fields: []any{"tick", g.tick, "pieces", g.session.Pieces()},
	}}
	if res.Lines > 0 {
		g.lastPoints = res.Points
		g.flashTicks = 60
		events = append(events, core.Event{
			Kind:   "clear",
			Fields: []any{"lines", res.Lines, "points", res.Points, "score", g.session.Score()},
		})
	}
	if res.GameOver {
		events = append(events, core.Event{
			Kind:   "game_over",
			Fields: []any{"score", g.session.Score(), "lines", g.session.Lines(), "seed", g.seed},
		})
	}
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Snapshot returns the session snapshot for rendering and tests.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}
