package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/levels"
)

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List all available level packs",
	Long: `Shows every registered level pack, built-in and external.

Use --packs-dir to include packs loaded from YAML files.`,
	Run: runPacks,
}

var packsValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a level pack YAML file",
	Long: `Parse and validate a level pack file without playing it.

Reports the first problem found: a malformed descriptor, a road index
outside the board, a bottom row that is not safe grass, or a top row
with no goal tile.

Examples:
  crossing packs validate ./mypacks/night.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPacksValidate,
}

func init() {
	packsCmd.AddCommand(packsValidateCmd)
}

func runPacks(_ *cobra.Command, _ []string) {
	if _, _, err := setup(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	packs := levels.List()

	if len(packs) == 0 {
		fmt.Println("No packs available.")
		return
	}

	fmt.Println("Available packs:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Levels", "Title")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "------", "-----")

	// Print packs
	for _, p := range packs {
		fmt.Printf("  %-*s  %-7d  %s\n", maxIDLen, p.ID, p.Levels, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'crossing play <id>' to play a pack.")
}

func runPacksValidate(_ *cobra.Command, args []string) {
	pack, err := levels.LoadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid pack: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s (%s): %d levels, all valid\n", pack.Title, pack.ID, len(pack.Levels))
	for i, lvl := range pack.Levels {
		name := lvl.Name
		if name == "" {
			name = fmt.Sprintf("Level %d", i+1)
		}
		fmt.Printf("  %2d. %-24s %dx%d, %d roads\n", i+1, name, lvl.Width, lvl.Height, len(lvl.Roads))
	}
}
