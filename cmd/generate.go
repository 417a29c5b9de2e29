package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/getpassgen/passgen/pkg/scrape"
	"github.com/getpassgen/passgen/pkg/store"
	"github.com/getpassgen/passgen/pkg/wordgen"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a wordlist from seed words and patterns",
	Long: `Generate a candidate wordlist from one or more input sources.

Examples:
  passgen generate -w admin root password -o wordlist.txt
  passgen generate -u https://example.com --leet -o wordlist.txt
  passgen generate --first john jane --last doe smith --company acme -o wordlist.txt
  passgen generate -p "root%%" --smart -o wordlist.txt

Pattern syntax:
  @ lowercase   , uppercase   % digit   ^ special
  ? letter      d digit       l lowercase
  u uppercase   s special`,
	RunE: func(cmd *cobra.Command, args []string) error {
		words, _ := cmd.Flags().GetStringSlice("words")
		inputFile, _ := cmd.Flags().GetString("input")
		urls, _ := cmd.Flags().GetStringSlice("url")
		depth, _ := cmd.Flags().GetInt("depth")
		threads, _ := cmd.Flags().GetInt("threads")
		patterns, _ := cmd.Flags().GetStringSlice("pattern")
		firstNames, _ := cmd.Flags().GetStringSlice("first")
		lastNames, _ := cmd.Flags().GetStringSlice("last")
		company, _ := cmd.Flags().GetString("company")
		noCombo, _ := cmd.Flags().GetBool("no-combo")
		output, _ := cmd.Flags().GetString("output")
		saveStats, _ := cmd.Flags().GetBool("stats")
		verbose, _ := cmd.Flags().GetBool("verbose")

		cfg := generationConfig()
		cfg.Combinations = !noCombo
		cfg.Patterns = patterns
		cfg.FirstNames = firstNames
		cfg.LastNames = lastNames
		cfg.Company = company

		hasInput := len(words) > 0 || inputFile != "" || len(urls) > 0 ||
			len(patterns) > 0 || cfg.KeyboardWalks ||
			(len(firstNames) > 0 && len(lastNames) > 0)
		if !hasInput {
			return fmt.Errorf("no input source specified: use -w, -i, -u, -p, --keyboard or --first/--last")
		}

		seeds := wordgen.NewSet()
		for _, w := range words {
			wordgen.AddSeed(seeds, w)
		}
		for _, n := range firstNames {
			wordgen.AddSeed(seeds, n)
		}
		for _, n := range lastNames {
			wordgen.AddSeed(seeds, n)
		}
		if company != "" {
			wordgen.AddSeed(seeds, company)
		}

		if inputFile != "" {
			if err := seedsFromFile(seeds, inputFile); err != nil {
				// An unreadable file means zero seed words from that
				// source, not a failed run.
				fmt.Fprintf(os.Stderr, "Warning: reading %s: %v\n", inputFile, err)
			}
		}

		if len(urls) > 0 {
			fmt.Println("Scraping websites...")
			scraper := scrape.New(threads)
			if verbose {
				scraper.SetLogger(hclog.New(&hclog.LoggerOptions{
					Name:  "scrape",
					Level: hclog.Debug,
				}))
			}
			seeds.Merge(scraper.ScrapeAll(context.Background(), urls, depth))
		}

		fmt.Printf("Collected %d seed words\n", seeds.Len())

		gen := wordgen.New(cfg)
		start := time.Now()
		result := gen.Generate(seeds)
		elapsed := time.Since(start)

		if len(result) == 0 {
			return fmt.Errorf("no candidates generated")
		}

		if err := writeWordlist(result, output); err != nil {
			return fmt.Errorf("failed to write wordlist: %w", err)
		}

		stats := gen.Stats()
		fmt.Printf("Generated %d unique candidates in %s\n", stats.Total, elapsed.Round(time.Millisecond))
		if output != "" {
			fmt.Printf("Saved to %s\n", output)
		}

		if saveStats || verbose {
			printStats(stats)
		}
		if saveStats && output != "" {
			if err := writeStatsSidecar(stats, output); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: writing stats: %v\n", err)
			}
		}

		recordRun(stats, elapsed, output, runSources(words, inputFile, urls, patterns, firstNames, lastNames))
		return nil
	},
}

// generationConfig assembles the core config from viper, which layers
// flag values over the config file over the built-in defaults.
func generationConfig() wordgen.Config {
	cfg := wordgen.DefaultConfig()
	cfg.MutationLevel = viper.GetInt("generation.mutation_level")
	cfg.Leet = viper.GetBool("generation.leet")
	cfg.MaxCombinationLength = viper.GetInt("generation.max_combination_length")
	cfg.MinLength = viper.GetInt("generation.min_length")
	cfg.MaxLength = viper.GetInt("generation.max_length")
	cfg.RequireUpper = viper.GetBool("generation.require_upper")
	cfg.RequireLower = viper.GetBool("generation.require_lower")
	cfg.RequireDigit = viper.GetBool("generation.require_digit")
	cfg.RequireSpecial = viper.GetBool("generation.require_special")
	cfg.SmartOrder = viper.GetBool("generation.smart_order")
	cfg.Dates = viper.GetBool("generation.dates")
	cfg.KeyboardWalks = viper.GetBool("generation.keyboard_walks")
	cfg.PatternLimit = viper.GetInt("generation.pattern_limit")
	cfg.StartYear = viper.GetInt("generation.start_year")
	cfg.EndYear = viper.GetInt("generation.end_year")
	return cfg
}

func seedsFromFile(seeds wordgen.Set, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		wordgen.AddBulkSeed(seeds, scanner.Text())
	}
	return scanner.Err()
}

func writeWordlist(candidates []string, output string) error {
	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	for _, c := range candidates {
		fmt.Fprintln(w, c)
	}
	return w.Flush()
}

func printStats(stats wordgen.Stats) {
	fmt.Println(strings.Repeat("=", 40))
	fmt.Println("GENERATION STATISTICS")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("Base words:   %d\n", stats.BaseWords)
	fmt.Printf("Mutations:    %d\n", stats.Mutations)
	fmt.Printf("Combinations: %d\n", stats.Combinations)
	fmt.Printf("Filtered out: %d\n", stats.Filtered)
	fmt.Printf("Total:        %d\n", stats.Total)
}

func writeStatsSidecar(stats wordgen.Stats, output string) error {
	path := strings.TrimSuffix(output, filepath.Ext(output)) + "_stats.json"
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func runSources(words []string, inputFile string, urls, patterns, firstNames, lastNames []string) string {
	parts := []string{}
	if len(words) > 0 {
		parts = append(parts, fmt.Sprintf("words=%d", len(words)))
	}
	if inputFile != "" {
		parts = append(parts, "file="+inputFile)
	}
	if len(urls) > 0 {
		parts = append(parts, fmt.Sprintf("urls=%d", len(urls)))
	}
	if len(patterns) > 0 {
		parts = append(parts, fmt.Sprintf("patterns=%d", len(patterns)))
	}
	if len(firstNames) > 0 || len(lastNames) > 0 {
		parts = append(parts, fmt.Sprintf("names=%d", len(firstNames)+len(lastNames)))
	}
	return strings.Join(parts, " ")
}

// recordRun appends the run to the local history database. History is
// best-effort: a storage failure warns and never fails the run.
func recordRun(stats wordgen.Stats, elapsed time.Duration, output, sources string) {
	dbPath := historyPath()
	if dbPath == "" {
		return
	}
	os.MkdirAll(filepath.Dir(dbPath), 0o700)

	s, err := store.New(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: opening history db: %v\n", err)
		return
	}
	defer s.Close()

	_, err = s.SaveRun(store.Run{
		Sources:      sources,
		OutputPath:   output,
		BaseWords:    stats.BaseWords,
		Mutations:    stats.Mutations,
		Combinations: stats.Combinations,
		Filtered:     stats.Filtered,
		Total:        stats.Total,
		Duration:     elapsed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: recording run: %v\n", err)
	}
}

func historyPath() string {
	if p := viper.GetString("database.path"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".passgen", "passgen.db")
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringSliceP("words", "w", nil, "Base words for generation")
	generateCmd.Flags().StringP("input", "i", "", "File containing base words (one per line)")
	generateCmd.Flags().StringSliceP("url", "u", nil, "URLs to scrape for words")
	generateCmd.Flags().IntP("depth", "d", 1, "Web scraping depth")
	generateCmd.Flags().Int("threads", 4, "Workers for web scraping")

	generateCmd.Flags().StringSlice("first", nil, "First names for combinations")
	generateCmd.Flags().StringSlice("last", nil, "Last names for combinations")
	generateCmd.Flags().String("company", "", "Company name")

	generateCmd.Flags().StringSliceP("pattern", "p", nil, "Pattern masks for generation")
	generateCmd.Flags().Int("level", 1, "Mutation level (1=basic, 2=advanced, 3=extreme)")
	generateCmd.Flags().Bool("leet", false, "Apply leetspeak transformations")
	generateCmd.Flags().Bool("dates", false, "Include date patterns (years, birthdays)")
	generateCmd.Flags().Bool("keyboard", false, "Include keyboard walk patterns")
	generateCmd.Flags().Bool("no-combo", false, "Disable word combinations")
	generateCmd.Flags().Int("max-combo", 32, "Maximum combination length")
	generateCmd.Flags().Int("pattern-limit", wordgen.DefaultPatternLimit, "Maximum expansions per pattern mask")
	generateCmd.Flags().Int("start-year", 2015, "Start year for date generation")
	generateCmd.Flags().Int("end-year", 0, "End year for date generation (default: current year + 2)")

	generateCmd.Flags().Int("min", 1, "Minimum candidate length")
	generateCmd.Flags().Int("max", 128, "Maximum candidate length")
	generateCmd.Flags().Bool("upper", false, "Require uppercase letters")
	generateCmd.Flags().Bool("lower", false, "Require lowercase letters")
	generateCmd.Flags().Bool("digit", false, "Require digits")
	generateCmd.Flags().Bool("special", false, "Require special characters")

	generateCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	generateCmd.Flags().Bool("smart", false, "Sort by likelihood")
	generateCmd.Flags().Bool("stats", false, "Print statistics and save a stats sidecar")
	generateCmd.Flags().BoolP("verbose", "v", false, "Verbose output")

	viper.BindPFlag("generation.mutation_level", generateCmd.Flags().Lookup("level"))
	viper.BindPFlag("generation.leet", generateCmd.Flags().Lookup("leet"))
	viper.BindPFlag("generation.max_combination_length", generateCmd.Flags().Lookup("max-combo"))
	viper.BindPFlag("generation.min_length", generateCmd.Flags().Lookup("min"))
	viper.BindPFlag("generation.max_length", generateCmd.Flags().Lookup("max"))
	viper.BindPFlag("generation.require_upper", generateCmd.Flags().Lookup("upper"))
	viper.BindPFlag("generation.require_lower", generateCmd.Flags().Lookup("lower"))
	viper.BindPFlag("generation.require_digit", generateCmd.Flags().Lookup("digit"))
	viper.BindPFlag("generation.require_special", generateCmd.Flags().Lookup("special"))
	viper.BindPFlag("generation.smart_order", generateCmd.Flags().Lookup("smart"))
	viper.BindPFlag("generation.dates", generateCmd.Flags().Lookup("dates"))
	viper.BindPFlag("generation.keyboard_walks", generateCmd.Flags().Lookup("keyboard"))
	viper.BindPFlag("generation.pattern_limit", generateCmd.Flags().Lookup("pattern-limit"))
	viper.BindPFlag("generation.start_year", generateCmd.Flags().Lookup("start-year"))
	viper.BindPFlag("generation.end_year", generateCmd.Flags().Lookup("end-year"))
}
