// Package cli implements the htmltext command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/htmltext/internal/config"
	"github.com/tsawler/htmltext/internal/logger"
)

var (
	configPath string
	verbose    bool
	jobs       int

	// cfg is the effective configuration, set before any command runs.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "htmltext",
	Short: "Extract text, metadata and links from HTML",
	Long: `htmltext converts HTML pages to plain text, reads their title and
meta information, and lists their hyperlinks resolved to absolute URLs.

Files ending in .gz or .z are decompressed first. Use "-" to read standard input.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $HOME/"+config.DefaultFileName+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug information to stderr")
	rootCmd.PersistentFlags().IntVarP(&jobs, "jobs", "j", 0, "number of files processed concurrently")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config file and applies global flag overrides.
func loadConfig(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	var (
		loaded config.Config
		err    error
	)
	if configPath != "" {
		loaded, err = config.Load(configPath)
	} else {
		loaded, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("jobs") {
		loaded.Jobs = jobs
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid --jobs: %w", err)
	}

	cfg = loaded
	logger.Debug("config: %+v", cfg)
	return nil
}
