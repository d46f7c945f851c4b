package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rollcube/rollcube/internal/storage"
)

var resultsLimit int

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "List finished games",
	RunE:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&resultsLimit, "limit", 20, "Maximum number of results to show")
	rootCmd.AddCommand(resultsCmd)
}

func runResults(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	results, err := storage.NewResultRepository(db).List(resultsLimit)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No finished games yet.")
		return nil
	}

	fmt.Printf("%-20s %-6s %-7s %-10s %s\n", "LEVEL", "SIDE", "MOVES", "TIME", "FINISHED")
	for _, r := range results {
		dur := time.Duration(r.DurationMs) * time.Millisecond
		fmt.Printf("%-20s %-6d %-7d %-10s %s\n",
			r.LevelName, r.Side, r.Moves, dur.Round(100*time.Millisecond),
			r.FinishedAt.Local().Format(time.DateTime))
	}
	return nil
}
