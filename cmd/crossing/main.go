// crossing is a terminal road-and-river crossing arcade game.
//
// Usage:
//
//	crossing                 - Open the interactive pack picker
//	crossing menu            - Same as the bare command
//	crossing play [pack]     - Play a pack directly
//	crossing packs           - List available level packs
//	crossing scores [pack]   - Show recorded runs
//	crossing serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Override the configured tick rate
//	--seed <value>     - RNG seed for reproducible runs
//	--db <path>        - Runs database path (default: ~/.crossing/runs.db)
//	--packs-dir <dir>  - Load extra level packs from YAML files
//	--config <path>    - Custom gameplay config YAML
//	--difficulty <p>   - Difficulty preset: easy, normal, hard
//	--mono             - Monochrome theme for plain terminals
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/game"
	"github.com/vovakirdan/tui-crossing/internal/levels"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagPacksDir   string
	flagConfig     string
	flagDifficulty string
	flagMono       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "crossing",
	Version: version,
	Short:   "Crossing - a road-and-river arcade game for your terminal",
	Long: `Crossing is a terminal arcade game: guide your character across
roads patrolled by enemies and rivers that demand stepping stones,
grab the items that help you, and clear every level of a pack.

Running crossing without a command opens the interactive pack picker.

Available commands:
  menu     - Interactive pack picker
  play     - Play a specific pack directly
  packs    - Show all available level packs
  scores   - View recorded runs
  serve    - Start SSH server for remote play

Examples:
  crossing
  crossing play classic
  crossing play rapids --difficulty hard
  crossing packs --packs-dir ./mypacks
  crossing scores classic
  crossing serve --ssh :2222`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crossing/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagPacksDir, "packs-dir", "", "Directory with extra level pack YAML files")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagMono, "mono", false, "Use the monochrome theme")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(packsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads the gameplay config and applies the global flags that
// matter to every command: difficulty preset, theme, extra packs.
func setup() (config.Config, game.Rules, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, game.Rules{}, err
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return config.Config{}, game.Rules{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	if flagMono {
		tui.SetTheme(tui.MonochromeTheme())
	}

	if flagPacksDir != "" {
		packs, err := levels.LoadDir(flagPacksDir)
		if err != nil {
			return config.Config{}, game.Rules{}, fmt.Errorf("loading packs from %s: %w", flagPacksDir, err)
		}
		for _, p := range packs {
			if !levels.Exists(p.ID) {
				levels.Register(p)
			}
		}
	}

	return cfg, gameRules(cfg), nil
}

// gameRules maps the loaded configuration onto the core rule set.
func gameRules(cfg config.Config) game.Rules {
	return game.Rules{
		MaxLives:        cfg.Game.MaxLives,
		MinEnemySpeed:   cfg.Game.MinEnemySpeed,
		MaxEnemySpeed:   cfg.Game.MaxEnemySpeed,
		StarSeconds:     cfg.Effects.StarSeconds,
		RockSeconds:     cfg.Effects.RockSeconds,
		BlueGemSeconds:  cfg.Effects.BlueGemSeconds,
		GreenGemSeconds: cfg.Effects.GreenGemSeconds,
	}
}

// tickRate picks the flag override when set, the config value otherwise.
func tickRate(cfg config.Config) int {
	if flagFPS > 0 {
		return flagFPS
	}
	return cfg.UI.TickRate
}

// termSize returns the terminal dimensions, with sane fallbacks.
func termSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
