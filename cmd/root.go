// Package cmd implements the command-line interface for cardcrawl.
// It provides the root command and subcommands for collecting Canadian
// credit-card data and maintaining the remote store.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cmdaudit "github.com/jonesrussell/cardcrawl/cmd/audit"
	cmdcleanup "github.com/jonesrussell/cardcrawl/cmd/cleanup"
	cmdscrape "github.com/jonesrussell/cardcrawl/cmd/scrape"
	cmdseed "github.com/jonesrussell/cardcrawl/cmd/seed"
	"github.com/jonesrussell/cardcrawl/internal/scraper"
)

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// debug enables debug logging for all commands.
	debug bool

	// rootCmd represents the root command for the cardcrawl CLI.
	rootCmd = &cobra.Command{
		Use:   "cardcrawl",
		Short: "Canadian credit-card data collector",
		Long: `Collects Canadian credit-card attributes (fees, reward rates,
signup bonuses) from public comparison sites and a curated dataset, and
writes them to the hosted store.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command.
func Execute() error {
	// Load .env early so store credentials are available to viper.
	_ = godotenv.Load()

	_ = rootCmd.ParseFlags(os.Args[1:])

	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cardcrawl version %s\n", "1.0.0")
		},
	})

	rootCmd.AddCommand(cmdseed.Command())
	rootCmd.AddCommand(cmdscrape.Command())
	rootCmd.AddCommand(cmdaudit.Command())
	rootCmd.AddCommand(cmdcleanup.Command())
}

// initConfig reads the optional config file and environment variables.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional: environment variables and defaults are a
	// complete configuration on their own.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config file not found: %v (using defaults and environment variables)\n", err)
	}

	if err := bindEnvVars(); err != nil {
		return err
	}

	if debug || viper.GetBool("app.debug") {
		viper.Set("logger.level", "debug")
	}

	return nil
}

// bindEnvVars maps environment variables to config keys.
func bindEnvVars() error {
	if err := viper.BindEnv("supabase.url", "SUPABASE_URL"); err != nil {
		return fmt.Errorf("failed to bind SUPABASE_URL: %w", err)
	}
	if err := viper.BindEnv("supabase.key", "SUPABASE_KEY"); err != nil {
		return fmt.Errorf("failed to bind SUPABASE_KEY: %w", err)
	}
	if err := viper.BindEnv("logger.level", "LOG_LEVEL"); err != nil {
		return fmt.Errorf("failed to bind LOG_LEVEL: %w", err)
	}
	if err := viper.BindEnv("app.debug", "APP_DEBUG"); err != nil {
		return fmt.Errorf("failed to bind APP_DEBUG: %w", err)
	}
	return nil
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("logger", map[string]any{
		"level":       "info",
		"development": false,
	})

	viper.SetDefault("supabase", map[string]any{
		"request_timeout": "15s",
	})

	viper.SetDefault("scraper", map[string]any{
		"user_agent":      scraper.DefaultUserAgent,
		"request_timeout": "30s",
		"delay":           "2s",
		"sources": []string{
			"https://www.ratehub.ca/credit-cards/cash-back",
			"https://www.ratehub.ca/credit-cards/travel",
			"https://www.ratehub.ca/credit-cards/rewards",
			"https://www.ratehub.ca/credit-cards/no-fee",
		},
	})
}
