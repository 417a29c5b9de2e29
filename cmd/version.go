package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set via ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("passgen %s\n", Version)
		if Commit != "unknown" && Commit != "" {
			fmt.Printf("  commit:  %s\n", Commit)
		}
		if BuildDate != "unknown" && BuildDate != "" {
			fmt.Printf("  built:   %s\n", BuildDate)
		}
		fmt.Printf("  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
