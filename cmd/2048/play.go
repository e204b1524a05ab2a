package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, args []string) {
	// Pre-launch logger on stderr; once the TUI starts it owns the
	// terminal, so in-game logging goes to --log or nowhere.
	stderrLog := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "2048",
	})

	gameLog := log.New(io.Discard)
	if flagLog != "" {
		f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			stderrLog.Error("could not open log file", "path", flagLog, "error", err)
			os.Exit(1)
		}
		defer f.Close()

		gameLog = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "2048",
		})
		gameLog.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		stderrLog.Warn("could not load config, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	width, height := 80, 24 // Defaults when size detection fails
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	gameLog.Info("starting game", "seed", seed, "width", width, "height", height)

	engine := game.NewEngine(seed)
	if err := tui.Run(engine, cfg, gameLog, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
