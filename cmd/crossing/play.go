package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/levels"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
	"github.com/vovakirdan/tui-crossing/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [pack]",
	Short: "Play a level pack",
	Long: `Start playing the specified level pack. Without an argument the
configured default pack is used.

Controls:
  WASD/Arrows  - Hop one tile
  H            - Spend a life for a dropped stepping stone
  P/Esc        - Pause
  Enter/Space  - Confirm character / leave end screens
  Q            - Abandon the run (back to character select)
  Ctrl+C       - Quit

Difficulty presets:
  easy   - 5 lives, slow traffic
  normal - Config values as-is
  hard   - 2 lives, fast traffic

Examples:
  crossing play
  crossing play classic
  crossing play rapids --difficulty easy
  crossing play gauntlet --seed 42
  crossing play classic --config ./my-crossing.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	cfg, rules, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	packID := cfg.UI.DefaultPack
	if len(args) > 0 {
		packID = args[0]
	}

	pack, ok := levels.Get(packID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown pack %q\n", packID)
		fmt.Fprintln(os.Stderr, "Run 'crossing packs' to see available packs.")
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	width, height := termSize()
	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(cfg),
		Seed:     flagSeed,
	}

	_, runErr := tui.Run(pack, rules, store, rcfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
