package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/slingshot/internal/levels"
	"github.com/vovakirdan/slingshot/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show the best rounds of a level",
	Long: `Display the best recorded rounds for the specified level.

Examples:
  slingshot scores 01-warmup
  slingshot scores 05-fortress --limit 20`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
}

func runScores(_ *cobra.Command, args []string) {
	levelID := args[0]

	_, campaign, err := setup()
	if err != nil {
		fail("%v", err)
	}
	lvl, err := levels.Find(campaign, levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'slingshot levels' to see available levels.")
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores(levelID, flagScoresLimit)
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s (%s)\n", lvl.Name, lvl.ID)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'slingshot play %s' to set the first high score!\n", levelID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-6s  %s\n", "Rank", "Score", "Shots", "Result", "When")
	fmt.Printf("  %-4s  %-10s  %-5s  %-6s  %s\n", "----", "-----", "-----", "------", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10s  %-5d  %-6s  %s\n",
			i+1, humanize.Comma(int64(entry.Score)), entry.Shots, entry.Result, humanize.Time(entry.CreatedAt))
	}

	stats, err := store.LevelStats()
	if err != nil {
		return
	}
	for _, st := range stats {
		if st.LevelID != levelID {
			continue
		}
		fmt.Println()
		fmt.Printf("Best: %s  Played: %d  Cleared: %d\n", humanize.Comma(int64(st.Best)), st.Runs, st.Wins)
	}
}
