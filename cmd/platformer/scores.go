package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show high scores for a level",
	Long: `Display the best runs of the given level.

Examples:
  platformer scores 1-1
  platformer scores 1-1 --limit 3`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	levelID := args[0]

	game, err := registry.Create(levelID)
	if err != nil {
		return fmt.Errorf("unknown level %q, run 'platformer list' to see available levels", levelID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(levelID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'platformer play %s' to set the first high score!\n", levelID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-5s  %-5s  %s\n", "Rank", "Score", "Time", "Coins", "Clear", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-5s  %-5s  %s\n", "----", "-----", "----", "-----", "-----", "----")
	for i, e := range scores {
		cleared := "no"
		if e.Cleared {
			cleared = "yes"
		}
		fmt.Printf("  %-4d  %-8d  %-8s  %-5d  %-5s  %s\n",
			i+1, e.Score, seconds(e.Ticks), e.Coins, cleared, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.AllLevelStats()
	if err == nil {
		if s, ok := stats[levelID]; ok {
			fmt.Println()
			fmt.Printf("Runs: %d  Clears: %d  Best: %d\n", s.Runs, s.Clears, s.HighScore)
			if s.BestTicks > 0 {
				fmt.Printf("Fastest clear: %s\n", seconds(s.BestTicks))
			}
		}
	}
	return nil
}

// seconds formats a tick count at the default tick rate.
func seconds(ticks int) string {
	return fmt.Sprintf("%.1fs", float64(ticks)/60)
}
