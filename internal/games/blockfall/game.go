// Package blockfall plugs the falling-block engine into the platform.
// The engine owns the rules; this package owns the clock, maps platform
// actions to engine intents, and draws the session.
package blockfall

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// GameID is the registry identifier.
const GameID = "blockfall"

// Package-level settings applied to games created by the registry.
var (
	rules  = config.DefaultBlockfallConfig()
	logger *log.Logger
)

// SetConfig sets the rules used by games created after this call.
func SetConfig(cfg config.BlockfallConfig) {
	rules = cfg
}

// SetLogger sets the logger handed to new sessions.
func SetLogger(l *log.Logger) {
	logger = l
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game adapts an engine.Session to the platform's frame loop.
type Game struct {
	cfg     config.BlockfallConfig
	logger  *log.Logger
	session *engine.Session
	runtime core.RuntimeConfig

	frame   time.Duration // Length of one platform frame
	elapsed time.Duration // Time accumulated toward the next gravity step
	tick    uint64

	paused   bool
	tooSmall bool

	flash      string // HUD message after clears and level-ups
	flashTicks int

	wipe        []*engine.Block // Blocks removed on restart, cleared bottom-up
	wipeElapsed time.Duration
}

// wipeDuration is how long the board takes to empty before a restart.
const wipeDuration = 400 * time.Millisecond

// New creates a game with the package-level rules and logger.
func New() *Game {
	return NewWithConfig(rules, logger)
}

// NewWithConfig creates a game with explicit rules. A nil logger discards output.
func NewWithConfig(cfg config.BlockfallConfig, l *log.Logger) *Game {
	return &Game{cfg: cfg, logger: l}
}

// EngineConfig converts the rules file into engine settings.
func EngineConfig(cfg config.BlockfallConfig) engine.Config {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	return engine.Config{
		Columns:    cfg.Board.Columns,
		Rows:       cfg.Board.Rows,
		BufferRows: cfg.Board.BufferRows,
		Rules: engine.Rules{
			LinePoints:      append([]int(nil), cfg.Scoring.LinePoints...),
			HardDropPerCell: cfg.Scoring.HardDropPerCell,
			LinesPerLevel:   cfg.Scoring.LinesPerLevel,
			InitialTick:     ms(cfg.Timing.InitialMs),
			TickStep:        ms(cfg.Timing.StepMs),
			MinTick:         ms(cfg.Timing.MinMs),
		},
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Blockfall"
}

// Reset starts a new session seeded from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	rate := runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	g.frame = time.Second / time.Duration(rate)

	g.session = engine.NewSession(EngineConfig(g.cfg),
		engine.WithSeed(runtime.Seed),
		engine.WithLogger(g.logger),
	)
	g.tick = 0
	g.wipe = nil
	g.checkScreenSize()
	g.begin()
}

// begin starts a game on the current session.
func (g *Game) begin() {
	g.session.BeginGame()
	g.elapsed = 0
	g.paused = false
	g.handleEvents(g.session.Events())
}

// restart reuses the session. The removed blocks are wiped off row by row
// from the bottom, then a new game begins.
func (g *Game) restart() {
	removed := g.session.RemoveAllBlocks()
	if len(removed) == 0 {
		g.begin()
		return
	}
	g.wipe = removed
	g.wipeElapsed = 0
}

// advanceWipe runs one frame of the restart wipe.
func (g *Game) advanceWipe() {
	g.wipeElapsed += g.frame
	if g.wipeElapsed >= wipeDuration {
		g.wipe = nil
		g.begin()
	}
}

// wipeCut returns the first grid row already cleared by the wipe.
func (g *Game) wipeCut() int {
	rows := g.session.Grid().Rows()
	return rows - int(int64(rows)*int64(g.wipeElapsed)/int64(wipeDuration))
}

// Resize adapts to a new screen size. The session is left untouched.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime.ScreenW = runtime.ScreenW
	g.runtime.ScreenH = runtime.ScreenH
	g.checkScreenSize()
}

// checkScreenSize checks if the screen fits the well and the side panel.
func (g *Game) checkScreenSize() {
	minW, minH := g.layoutSize()
	g.tooSmall = g.runtime.ScreenW < minW || g.runtime.ScreenH < minH
}

// Step applies this frame's input, then runs gravity for the elapsed time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.decayFlash()

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.wipe != nil {
		g.advanceWipe()
		return core.StepResult{State: g.State()}
	}

	if g.session.GameOver() {
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		if g.session.GameOver() {
			break
		}
		g.apply(a)
	}

	steps := g.gravity()
	g.handleEvents(g.session.Events())

	return core.StepResult{State: g.State(), Gravity: steps}
}

// apply forwards one action to the session as an intent.
func (g *Game) apply(a core.Action) {
	s := g.session
	switch a {
	case core.ActionLeft:
		s.MoveShapeLeft()
	case core.ActionRight:
		s.MoveShapeRight()
	case core.ActionRotate:
		s.RotateShape()
	case core.ActionRotateCC:
		s.RotateShapeCounterClockwise()
	case core.ActionSoftDrop:
		if s.AdvanceOneStep() {
			g.elapsed = 0
		}
	case core.ActionHardDrop:
		if s.DropShape() {
			g.elapsed = 0
		}
	}
}

// gravity converts accumulated frame time into AdvanceOneStep calls.
// The interval is re-read each step so a level-up takes effect at once.
func (g *Game) gravity() int {
	g.elapsed += g.frame
	steps := 0
	for !g.session.GameOver() {
		interval := g.session.TickInterval()
		if g.elapsed < interval {
			break
		}
		g.elapsed -= interval
		g.session.AdvanceOneStep()
		steps++
	}
	if g.session.GameOver() {
		g.elapsed = 0
	}
	return steps
}

// handleEvents turns engine notifications into HUD feedback.
func (g *Game) handleEvents(events []engine.Event) {
	for _, e := range events {
		switch e.Type {
		case engine.EventGameDidBegin:
			g.flash, g.flashTicks = "", 0
		case engine.EventShapeDidLand:
			if n := e.LinesRemoved(); n > 0 {
				g.setFlash(clearName(n))
			}
			if g.session.BufferBlocks() > 0 {
				g.setFlash("TOP OUT")
			}
		case engine.EventGameDidLevelUp:
			g.setFlash(fmt.Sprintf("LEVEL %d", e.Level))
		case engine.EventGameDidEnd:
			g.flash, g.flashTicks = "", 0
		}
	}
}

// setFlash shows msg for about one second.
func (g *Game) setFlash(msg string) {
	g.flash = msg
	g.flashTicks = int(time.Second / max(g.frame, time.Millisecond))
}

func (g *Game) decayFlash() {
	if g.flashTicks == 0 {
		return
	}
	g.flashTicks--
	if g.flashTicks == 0 {
		g.flash = ""
	}
}

// clearName labels a clear by how many lines it removed.
func clearName(lines int) string {
	switch lines {
	case 1:
		return "SINGLE"
	case 2:
		return "DOUBLE"
	case 3:
		return "TRIPLE"
	case 4:
		return "BLOCKFALL!"
	default:
		return fmt.Sprintf("%d LINES", lines)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		Lines:    g.session.Lines(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Snapshot returns the engine snapshot for determinism checks.
func (g *Game) Snapshot() engine.Snapshot {
	return g.session.Snapshot()
}
