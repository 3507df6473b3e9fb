package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// helpHeight is the number of rows reserved below the game for the help bar.
const helpHeight = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	screenH := max(cfg.ScreenH-helpHeight, 1)
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, screenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
	}
}

// Init starts the tick loop. The game must already be Reset.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		}
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	// Actions queue until the next tick so the game sees them in order
	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events.
// A running game keeps its board; a finished one starts over at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
	m.help.Width = msg.Width

	cfg := m.config
	cfg.ScreenH = m.screen.Height()
	if m.gameState.GameOver {
		m.game.Reset(cfg)
	} else {
		m.game.Resize(cfg)
	}
	m.gameState = m.game.State()
	return m, nil
}

// handleTick runs one platform frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver && !wasOver {
		m.logger.Info("game over",
			"game", m.game.ID(),
			"score", m.gameState.Score,
			"level", m.gameState.Level,
			"lines", m.gameState.Lines,
		)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to ~/.blockfall/screenshots.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".blockfall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	rows := make([]string, m.screen.Height())
	for y := range rows {
		rows[y] = strings.TrimRight(m.screen.Row(y), " ")
	}
	if err := os.WriteFile(path, []byte(strings.Join(rows, "\n")+"\n"), 0o600); err != nil {
		return err
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	helpView := m.help.View(m.keys)

	// The full help is taller than the reserved row; it covers the bottom of the screen
	lines := strings.Split(RenderScreen(m.screen), "\n")
	if extra := strings.Count(helpView, "\n") + 1 - helpHeight; extra > 0 && extra < len(lines) {
		lines = lines[:len(lines)-extra]
	}
	return strings.Join(lines, "\n") + "\n" + helpView
}

// Run resets the game and starts the Bubble Tea program.
// Returns the final game state.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	model := NewModel(game, cfg, logger)

	gameCfg := model.config
	gameCfg.ScreenH = model.screen.Height()
	game.Reset(gameCfg)
	model.gameState = game.State()

	model.logger.Info("starting", "game", game.Title(), "fps", cfg.TickRate, "seed", model.config.Seed)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return model.gameState, nil
}
