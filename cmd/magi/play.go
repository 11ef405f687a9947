package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-magi/internal/config"
	"github.com/vovakirdan/flappy-magi/internal/core"
	"github.com/vovakirdan/flappy-magi/internal/games/magi"
	"github.com/vovakirdan/flappy-magi/internal/platform/tui"
	"github.com/vovakirdan/flappy-magi/internal/resource"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flappy Magi",
	Long: `Start playing Flappy Magi.

Controls:
  Space/Up/W - Flap
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot to ~/.magi/screenshots
  Q/Ctrl+C   - Quit

Tunables are read from config.ini in the working directory. If the file is
missing or any value is unusable, the built-in defaults are used instead.`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, origin, reason := config.Load(config.DefaultPath)
	if reason != nil {
		logger.Debug("using built-in configuration", "reason", reason)
	}
	logger.Debug("configuration", "source", origin)

	res, err := resource.LoadAll()
	if err != nil {
		logger.Fatal("cannot load resources", "error", err)
	}

	game, err := magi.New(&cfg, res)
	if err != nil {
		logger.Fatal("cannot create game", "error", err)
	}

	rc := core.DefaultConfig()
	checkTerminalSize(rc)

	restore := redirectLog()
	runErr := tui.Run(game, rc, logger)
	restore()

	if runErr != nil {
		logger.Fatal("game stopped", "error", runErr)
	}
}

// checkTerminalSize warns when the terminal cannot show the whole world plus
// the help line.
func checkTerminalSize(rc core.RuntimeConfig) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	if w < rc.ScreenW || h < rc.ScreenH+1 {
		logger.Warn("terminal is smaller than the game view",
			"have", fmt.Sprintf("%dx%d", w, h),
			"need", fmt.Sprintf("%dx%d", rc.ScreenW, rc.ScreenH+1))
	}
}

// redirectLog moves logging off the terminal while the game owns it.
// With MAGI_DEBUG set, logs go to ~/.magi/magi.log; otherwise they are
// dropped. The returned func restores stderr.
func redirectLog() func() {
	restore := func() { logger.SetOutput(os.Stderr) }

	if os.Getenv("MAGI_DEBUG") == "" {
		logger.SetOutput(io.Discard)
		return restore
	}

	f, err := openLogFile()
	if err != nil {
		logger.Warn("cannot open log file, logging disabled while playing", "error", err)
		logger.SetOutput(io.Discard)
		return restore
	}

	logger.SetOutput(f)
	logger.SetLevel(log.DebugLevel)
	return func() {
		restore()
		f.Close()
	}
}

func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".magi")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "magi.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
