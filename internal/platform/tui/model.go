package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slingshot/internal/core"
	"github.com/vovakirdan/slingshot/internal/registry"
	"github.com/vovakirdan/slingshot/internal/storage"
)

// GameModel is the Bubble Tea model that drives one game: it feeds key
// presses to the game as per-tick actions and records every finished round.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger // Optional; set for SSH sessions
	sessionID  string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	standalone bool // Back quits the program instead of returning to a parent model
	quitting   bool
	backToMenu bool
	saved      bool // Whether the current finished round has been recorded
}

// NewGameModel creates a game model. The game must already be on the level
// to play.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keyMapper:  NewKeyMapper(),
	}
}

// WithLogger returns a copy of the model that logs finished rounds.
func (m GameModel) WithLogger(logger *log.Logger, sessionID string) GameModel {
	m.logger = logger
	m.sessionID = sessionID
	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The renderer scales the field to the screen, so the round keeps going.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.inputFrame.Clear()
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.recordResult()
	} else {
		m.saved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordResult saves the finished round once.
func (m *GameModel) recordResult() {
	if m.saved {
		return
	}
	m.saved = true

	run := storage.RunResult{
		LevelID: m.gameState.LevelID,
		Score:   m.gameState.Score,
		Result:  storage.ResultLost,
		Shots:   m.gameState.Shots,
	}
	if m.gameState.Won {
		run.Result = storage.ResultWon
	}

	if m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveResult(run)
	}
	if m.logger != nil {
		m.logger.Info("round finished",
			"session", m.sessionID,
			"level", run.LevelID,
			"result", run.Result,
			"score", run.Score,
			"shots", run.Shots,
		)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".slingshot", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s_%s.txt", m.game.ID(), m.gameState.LevelID, timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays the game until the user quits or goes back. It reports whether
// the user asked to return to the level picker.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
