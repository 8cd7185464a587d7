// slingshot is a terminal slingshot game: launch birds at pig fortresses
// built from wood, glass and stone.
//
// Usage:
//
//	slingshot play [level]     - Pick a level (or start one) and play
//	slingshot levels           - List campaign levels
//	slingshot scores <level>   - Show the best rounds of a level
//	slingshot run <level>      - Play scripted shots headless
//	slingshot serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--db <path>            - Set database path (default: ~/.slingshot/scores.db)
//	--config <path>        - Use a custom slingshot.yaml
//	--levels <dir>         - Add or override levels from a directory
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/slingshot/internal/config"
	"github.com/vovakirdan/slingshot/internal/game"
	"github.com/vovakirdan/slingshot/internal/levels"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagLevels     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slingshot",
	Short: "Slingshot - knock down pig fortresses in your terminal",
	Long: `Slingshot is a terminal game about launching birds at pigs hiding in
fortresses of wood, glass and stone.

Available commands:
  play     - Pick a level and play
  levels   - Show the campaign
  scores   - View the best rounds of a level
  run      - Play scripted shots without a terminal UI
  serve    - Start SSH server for remote play

Examples:
  slingshot play
  slingshot play 03-stone-keep --difficulty easy
  slingshot levels --levels ./my-levels
  slingshot scores 01-warmup
  slingshot run 01-warmup --shot 520,-380 --shot 480,-300,0.6
  slingshot serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slingshot/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom slingshot.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory with extra level files")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger creates the stderr logger used by the non-interactive commands.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// setup loads the configuration and the campaign, applies the difficulty
// preset and configures the registered game with both.
func setup() (config.SlingshotConfig, []levels.Level, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.SlingshotConfig{}, nil, err
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return config.SlingshotConfig{}, nil, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		if !config.IsFixedPreset(preset) {
			config.ApplyPreset(&cfg, preset)
		}
	}

	campaign, err := levels.Campaign(flagLevels)
	if err != nil {
		return config.SlingshotConfig{}, nil, err
	}
	if len(campaign) == 0 {
		return config.SlingshotConfig{}, nil, fmt.Errorf("no levels found")
	}

	game.Configure(game.Options{Config: cfg, Levels: campaign})
	return cfg, campaign, nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
