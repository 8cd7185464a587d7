package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/slingshot/internal/core"
	"github.com/vovakirdan/slingshot/internal/game"
	"github.com/vovakirdan/slingshot/internal/levels"
	"github.com/vovakirdan/slingshot/internal/platform/tui"
	"github.com/vovakirdan/slingshot/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the campaign",
	Long: `Start the level picker, or jump straight into a level.

Every finished round is stored in the scores database. Going back from a
level returns to the picker.

Controls:
  Arrows/WASD  - Move the drag point (Up aims higher, Left pulls harder)
  Space/Enter  - Release the bird; after a round, next level or retry
  E/X          - Trigger the flying bird's ability
  R            - Restart the level
  N / Shift+N  - Next / previous level
  P            - Pause
  Ctrl+S       - Save a screenshot
  B/Esc        - Back to the level picker
  Q/Ctrl+C     - Quit

Examples:
  slingshot play
  slingshot play 02-glasshouse
  slingshot play --difficulty hard --levels ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	_, campaign, err := setup()
	if err != nil {
		fail("%v", err)
	}

	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
		if _, err := levels.Find(campaign, levelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
			fmt.Fprintln(os.Stderr, "Run 'slingshot levels' to see available levels.")
			os.Exit(1)
		}
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	playLoop(campaign, store, cfg, levelID)

	if store != nil {
		store.Close()
	}
}

// playLoop alternates between the level picker, the scoreboard and the game
// until the user quits. A non-empty levelID skips the first picker.
func playLoop(campaign []levels.Level, store *storage.Store, cfg core.RuntimeConfig, levelID string) {
	for {
		if levelID == "" {
			menuResult, err := tui.RunMenu(campaign, store, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			cfg = menuResult.Config

			if menuResult.Quit {
				return
			}

			if menuResult.WantsScoreboard {
				goBack, sbErr := tui.RunScoreboard(campaign, store, cfg.ScreenW, cfg.ScreenH)
				if sbErr != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
				}
				if goBack {
					continue // Back to menu
				}
				return // User quit from scoreboard
			}

			levelID = menuResult.LevelID
		}

		g, err := tui.NewGame(game.ID, levelID, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			return
		}
		levelID = ""

		backToMenu, err := tui.Run(g, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !backToMenu {
			return
		}
	}
}
