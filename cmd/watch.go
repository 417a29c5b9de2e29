package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/getpassgen/passgen/pkg/config"
	"github.com/getpassgen/passgen/pkg/wordgen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var watchCmd = &cobra.Command{
	Use:   "watch [seed-file]",
	Short: "Regenerate the wordlist whenever a seed file changes",
	Long: `Watch a seed-word file and re-run generation each time it changes.
Generation options come from the config file; the output path is fixed
for the lifetime of the watch.

Example:
  passgen watch seeds.txt -o wordlist.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seedFile := args[0]
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			return fmt.Errorf("watch requires an output file (-o)")
		}

		cfg, err := config.Load(viper.ConfigFileUsed())
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		regenerate := func() {
			seeds := wordgen.NewSet()
			if err := seedsFromFile(seeds, seedFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: reading %s: %v\n", seedFile, err)
				return
			}

			gen := wordgen.New(cfg.Generation)
			start := time.Now()
			result := gen.Generate(seeds)
			if err := writeWordlist(result, output); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: writing %s: %v\n", output, err)
				return
			}
			fmt.Printf("%s: %d seeds -> %d candidates (%s)\n",
				time.Now().Format("15:04:05"), seeds.Len(), len(result),
				time.Since(start).Round(time.Millisecond))
		}

		regenerate()

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		defer watcher.Close()

		// Watch the directory: editors often replace the file on save,
		// which drops a watch set on the file itself.
		if err := watcher.Add(filepath.Dir(seedFile)); err != nil {
			return fmt.Errorf("watching %s: %w", seedFile, err)
		}

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		fmt.Printf("Watching %s (Ctrl-C to stop)\n", seedFile)
		target := filepath.Clean(seedFile)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					regenerate()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				fmt.Fprintf(os.Stderr, "Warning: watch error: %v\n", err)
			case <-sigCh:
				fmt.Println("\nStopping watch")
				return nil
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringP("output", "o", "", "Output file rewritten on each change")
}
