package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skyleap-game/skyleap/internal/level"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a level file",
	Long: `Parse a level file (JSON or YAML) the way the game would and report
what it contains. Malformed entries are dropped by the parser, so the
report shows what actually survives, not what the file claims.

Examples:
  skyleap validate level.json
  skyleap validate level.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func runValidate(_ *cobra.Command, args []string) {
	path := args[0]

	lvl, err := level.ParseFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !lvl.Playable() {
		fmt.Printf("%s: no playable platforms\n", path)
		os.Exit(1)
	}

	counts := make(map[level.Variant]int)
	for _, p := range lvl.Platforms {
		counts[p.Variant]++
	}

	fmt.Printf("%s: %d platforms\n", path, len(lvl.Platforms))
	for v := level.VariantStatic; v <= level.VariantBreakable; v++ {
		if counts[v] > 0 {
			fmt.Printf("  %-10s %d\n", v.String(), counts[v])
		}
	}
	last := lvl.Last()
	fmt.Printf("  goal: x=%.1f y=%.1f width=%.1f (%s)\n",
		last.X, last.Y, last.Width, last.Variant)
}
