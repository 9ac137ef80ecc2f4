// Package cli implements the termtheme command line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ajramos/termtheme/internal/config"
	"github.com/ajramos/termtheme/internal/version"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "termtheme",
	Short: "Derive UI themes from terminal color schemes",
	Long: `termtheme parses terminal color schemes (iTerm2 .itermcolors,
Gogh YAML, base16 YAML) and derives a complete, contrast-checked UI
theme from each palette.`,
	Version:       version.GetVersionString(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(loadConfig())
	},
}

// setupLogging applies the verbosity flag and, when log_file is
// configured, duplicates log output to that file for the lifetime of
// the process.
func setupLogging(cfg *config.Config) {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	if cfg.LogFile == "" {
		return
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Warn("could not open log file", "path", cfg.LogFile, "err", err)
		return
	}
	log.SetOutput(io.MultiWriter(os.Stderr, f))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to JSON configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig returns the active configuration: the --config file if
// given, the default config file if it exists, otherwise defaults.
func loadConfig() *config.Config {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
		if _, err := os.Stat(path); err != nil {
			return config.DefaultConfig()
		}
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Warn("could not load configuration, using defaults", "path", path, "err", err)
		return config.DefaultConfig()
	}
	log.Debug("loaded configuration", "path", path)
	return cfg
}
