package cmd

import (
	"fmt"
	"os"

	"github.com/getpassgen/passgen/pkg/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded generation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath := historyPath()
		if dbPath == "" {
			return fmt.Errorf("no history database path available")
		}
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Println("No runs recorded yet")
			return nil
		}

		s, err := store.New(dbPath)
		if err != nil {
			return fmt.Errorf("opening history db: %w", err)
		}
		defer s.Close()

		runs, err := s.ListRuns(limit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded yet")
			return nil
		}

		for _, r := range runs {
			output := r.OutputPath
			if output == "" {
				output = "(stdout)"
			}
			fmt.Printf("%s  %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"), r.ID)
			fmt.Printf("  sources: %s\n", r.Sources)
			fmt.Printf("  output:  %s (%d candidates, %d filtered, %s)\n",
				output, r.Total, r.Filtered, r.Duration)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Int("limit", 20, "Maximum runs to list")
}
