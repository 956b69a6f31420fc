// skyleap is a terminal platformer whose levels come from a text generator.
//
// Usage:
//
//	skyleap play [file]      - Play a generated campaign or a level file
//	skyleap generate         - Emit a level payload without playing it
//	skyleap validate <file>  - Parse a level file and report what it contains
//	skyleap serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible levels
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyleap",
	Short: "Skyleap - a terminal platformer with generated levels",
	Long: `Skyleap is a terminal platformer. Every level is produced by a text
generator and parsed into platforms on the fly, so no two runs have to
look the same.

Available commands:
  play      - Play a generated campaign, or a specific level file
  generate  - Emit a level payload to stdout or a file
  validate  - Parse a level file and report what it contains
  serve     - Start SSH server for remote play

Examples:
  skyleap play
  skyleap play my-level.json
  skyleap play --difficulty hard
  skyleap generate --out level.json
  skyleap validate level.json
  skyleap serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
}
