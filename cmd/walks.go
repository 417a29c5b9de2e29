package cmd

import (
	"fmt"

	"github.com/getpassgen/passgen/pkg/wordgen"
	"github.com/spf13/cobra"
)

var walksCmd = &cobra.Command{
	Use:   "walks",
	Short: "Print the keyboard walk patterns",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, walk := range wordgen.KeyboardWalks().Sorted() {
			fmt.Println(walk)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(walksCmd)
}
