package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-magi/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the tunables the game would run with, as key=value lines.

The output is a valid config.ini, so it can be used as a starting point:
  magi config > config.ini`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, origin, reason := config.Load(config.DefaultPath)
	if reason != nil {
		logger.Info("using built-in configuration", "reason", reason)
	}

	fmt.Printf("# source: %s\n", origin)
	if err := cfg.Table().Encode(os.Stdout); err != nil {
		logger.Fatal("cannot print configuration", "error", err)
	}
}
