// magi is Flappy Magi, played in the terminal.
//
// Usage:
//
//	magi           - Play
//	magi play      - Play
//	magi config    - Print the effective configuration
//	magi assets    - List the loaded textures and fonts
//
// The game reads config.ini from the working directory when present.
//
// Environment:
//
//	MAGI_LOG_LEVEL  - debug, info, warn or error (default: info)
//	MAGI_DEBUG      - when set, log at debug level to ~/.magi/magi.log while playing
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var logger = newLogger()

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "magi",
	Short: "Flappy Magi - flap through the pipes in your terminal",
	Long: `Flappy Magi is an endless side-scroller: keep the Magi in the air and
thread it through the gaps between pipes while day turns to night.

Available commands:
  play     - Play the game (the default)
  config   - Print the effective configuration
  assets   - List the loaded textures and fonts

Examples:
  magi
  magi config > config.ini`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(assetsCmd)
}

func newLogger() *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "magi",
	})

	if name := os.Getenv("MAGI_LOG_LEVEL"); name != "" {
		level, err := log.ParseLevel(name)
		if err != nil {
			l.Warn("unknown log level, using info", "level", name)
		} else {
			l.SetLevel(level)
		}
	}
	return l
}
