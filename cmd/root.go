package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "passgen",
	Short: "Intelligent wordlist generator for authorized security testing",
	Long: `Passgen derives candidate password lists from seed words by applying
case, suffix, leetspeak and structural mutations, word combinations,
pattern masks, keyboard walks and date patterns, then filters and
ranks the result by likelihood.

Use it only against systems you are authorized to test.`,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/passgen/config.yaml)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home + "/.config/passgen")
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("PASSGEN")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}
