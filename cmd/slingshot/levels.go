package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/slingshot/internal/levels"
	"github.com/vovakirdan/slingshot/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels",
	Long: `Shows the builtin campaign merged with the levels from --levels, with
each level's bird deck, pig and block counts and best recorded score.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	_, campaign, err := setup()
	if err != nil {
		fail("%v", err)
	}

	// Best scores are optional
	best := make(map[string]int)
	if store, openErr := storage.Open(flagDBPath); openErr == nil {
		if stats, statsErr := store.LevelStats(); statsErr == nil {
			for _, st := range stats {
				best[st.LevelID] = st.Best
			}
		}
		store.Close()
	}

	fmt.Println("Campaign levels:")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tName\tBirds\tPigs\tBlocks\tBest")
	fmt.Fprintln(w, "  --\t----\t-----\t----\t------\t----")
	for _, lvl := range campaign {
		birds := make([]string, len(lvl.Deck))
		for i, b := range lvl.Deck {
			birds[i] = b.String()
		}
		bestStr := "-"
		if score, ok := best[lvl.ID]; ok {
			bestStr = humanize.Comma(int64(score))
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%d\t%d\t%s\n",
			lvl.ID, lvl.Name, strings.Join(birds, " "), len(lvl.Pigs), len(lvl.Blocks), bestStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Printf("Bird decks for level files: %s\n", strings.Join(levels.DeckNames(), ", "))
	fmt.Println("Run 'slingshot play <id>' to play a level.")
}
