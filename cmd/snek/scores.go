package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/plus3/snek/config"
	"github.com/plus3/snek/scores"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top recorded runs",
	Long: `Display the ten best runs from the scores database.

Examples:
  snek scores
  snek scores --config ./my-snek.yaml`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snek",
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}

	store, err := scores.Open(cfg.DatabasePath())
	if err != nil {
		logger.Fatal("could not open scores database", "error", err)
	}
	defer store.Close()

	top, err := store.Top(10)
	if err != nil {
		logger.Fatal("could not read scores", "error", err)
	}

	fmt.Println("Top Runs - Snake!")
	fmt.Println()

	if len(top) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snek' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %-9s  %s\n", "Rank", "Points", "Length", "Duration", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-9s  %s\n", "----", "------", "------", "--------", "----")

	for i, entry := range top {
		fmt.Printf("  %-4d  %-8d  %-7d  %-9s  %s\n",
			i+1,
			entry.Points,
			entry.Length,
			entry.Duration.Round(time.Second),
			entry.PlayedAt.Format("2006-01-02 15:04"),
		)
	}

	if best, bestErr := store.Best(); bestErr == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
}
