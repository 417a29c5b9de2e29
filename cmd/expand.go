package cmd

import (
	"fmt"

	"github.com/getpassgen/passgen/pkg/wordgen"
	"github.com/spf13/cobra"
)

var expandCmd = &cobra.Command{
	Use:   "expand [mask]...",
	Short: "Expand pattern masks into concrete candidates",
	Long: `Expand one or more pattern masks without running the full pipeline.

Note that the wildcard letters d, l, u and s expand even in the middle
of a word; there is no way to escape them.

Examples:
  passgen expand "root%%"
  passgen expand "pw^" "root%%%" --limit 50`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		results := wordgen.NewSet()
		for _, mask := range args {
			results.Merge(wordgen.ExpandPattern(mask, limit))
		}

		for _, candidate := range results.Sorted() {
			fmt.Println(candidate)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(expandCmd)
	expandCmd.Flags().Int("limit", wordgen.DefaultPatternLimit, "Maximum expansions per mask")
}
