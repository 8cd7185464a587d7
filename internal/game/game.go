// Package game adapts the slingshot simulation to the arcade platform: it
// maps input actions to the aiming gesture, launches and abilities, cycles
// through the campaign and renders the world into a terminal screen buffer.
package game

import (
	"fmt"

	"github.com/vovakirdan/slingshot/internal/config"
	"github.com/vovakirdan/slingshot/internal/core"
	"github.com/vovakirdan/slingshot/internal/levels"
	"github.com/vovakirdan/slingshot/internal/registry"
	"github.com/vovakirdan/slingshot/internal/sim"
)

// ID is the registry identifier of the game.
const ID = "slingshot"

// Options configures a Game.
type Options struct {
	Config     config.SlingshotConfig
	Levels     []levels.Level
	StartLevel string // Level ID to start on; empty starts on the first
}

// defaultOptions are used by games created through the registry.
var defaultOptions *Options

// Configure sets the options for games created through the registry.
func Configure(opts Options) {
	defaultOptions = &opts
}

func init() {
	registry.Register(ID, func() (registry.Game, error) {
		if defaultOptions != nil {
			return NewWithOptions(*defaultOptions)
		}
		return New()
	})
}

// Game implements the slingshot game for the arcade platform.
type Game struct {
	cfg        config.SlingshotConfig
	tuning     sim.Tuning
	levels     []levels.Level
	levelIndex int

	world   *sim.World
	aim     Aim
	runtime core.RuntimeConfig
	paused  bool

	// Smallest screen the renderer draws the field on
	minScreenW int
	minScreenH int
}

// New creates a game with the default configuration and the builtin campaign.
func New() (*Game, error) {
	lvls, err := levels.Builtin().LoadAll()
	if err != nil {
		return nil, fmt.Errorf("game: loading builtin levels: %w", err)
	}
	return NewWithOptions(Options{Config: config.DefaultSlingshotConfig(), Levels: lvls})
}

// NewWithOptions creates a game from explicit options.
func NewWithOptions(opts Options) (*Game, error) {
	tuning, err := opts.Config.Tuning()
	if err != nil {
		return nil, err
	}
	if len(opts.Levels) == 0 {
		return nil, fmt.Errorf("game: no levels")
	}

	g := &Game{
		cfg:        opts.Config,
		tuning:     tuning,
		levels:     opts.Levels,
		minScreenW: 40,
		minScreenH: 12,
	}
	g.runtime = core.DefaultConfig()
	if opts.StartLevel != "" {
		if err := g.SelectLevel(opts.StartLevel); err != nil {
			return nil, err
		}
		return g, nil
	}
	g.loadLevel(0)
	return g, nil
}

// SelectLevel starts a fresh round of the level with the given ID.
func (g *Game) SelectLevel(id string) error {
	i := levels.Index(g.levels, id)
	if i < 0 {
		return fmt.Errorf("game: level not found: %s", id)
	}
	g.loadLevel(i)
	return nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Slingshot"
}

// Reset restarts the current level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.loadLevel(g.levelIndex)
}

// loadLevel builds a fresh world for the level at index, wrapping around.
func (g *Game) loadLevel(index int) {
	n := len(g.levels)
	g.levelIndex = ((index % n) + n) % n
	g.world = sim.NewWorld(g.levels[g.levelIndex].Level, g.tuning)
	g.aim = NewAim(g.cfg.Aim, g.cfg.Difficulty.PowerScale)
	g.paused = false
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch {
	case in.Has(core.ActionRestart):
		g.loadLevel(g.levelIndex)
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionNextLevel):
		g.loadLevel(g.levelIndex + 1)
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionPrevLevel):
		g.loadLevel(g.levelIndex - 1)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.world.Result() == sim.ResultPlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch g.world.Result() {
	case sim.ResultWon:
		if in.Has(core.ActionLaunch) {
			g.loadLevel(g.levelIndex + 1)
		}
		return core.StepResult{State: g.State()}
	case sim.ResultLost:
		if in.Has(core.ActionLaunch) {
			g.loadLevel(g.levelIndex)
		}
		return core.StepResult{State: g.State()}
	}

	g.handleAim(in)
	if in.Has(core.ActionAbility) {
		g.world.TriggerAbility()
	}

	g.world.Step(g.runtime.TickSeconds())
	return core.StepResult{State: g.State()}
}

// handleAim moves the drag point and releases the slingshot. Up aims
// higher by pulling the drag point down; left pulls further back.
func (g *Game) handleAim(in core.InputFrame) {
	if !g.aiming() {
		return
	}
	dx, dy := 0, 0
	if in.Has(core.ActionLeft) {
		dx--
	}
	if in.Has(core.ActionRight) {
		dx++
	}
	if in.Has(core.ActionUp) {
		dy++
	}
	if in.Has(core.ActionDown) {
		dy--
	}
	if dx != 0 || dy != 0 {
		g.aim.Move(dx, dy)
	}
	if in.Has(core.ActionLaunch) {
		g.world.Launch(g.aim.Velocity())
	}
}

// aiming reports whether a bird sits on the slingshot waiting for launch.
func (g *Game) aiming() bool {
	b := g.world.ActiveBird()
	return b != nil && !b.Launched && g.world.Result() == sim.ResultPlaying
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	r := g.world.Result()
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: r != sim.ResultPlaying,
		Won:      r == sim.ResultWon,
		Paused:   g.paused,
		LevelID:  g.Level().ID,
		Shots:    g.world.Shots(),
	}
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.levels[g.levelIndex]
}

// LevelIndex returns the position of the current level in the campaign.
func (g *Game) LevelIndex() int {
	return g.levelIndex
}

// LevelCount returns the number of campaign levels.
func (g *Game) LevelCount() int {
	return len(g.levels)
}

// World returns the simulation of the current round.
func (g *Game) World() *sim.World {
	return g.world
}

// Aim returns the current slingshot pull.
func (g *Game) Aim() Aim {
	return g.aim
}
