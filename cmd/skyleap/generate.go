package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/skyleap-game/skyleap/internal/config"
	"github.com/skyleap-game/skyleap/internal/gen"
)

var (
	flagGenConfig     string
	flagGenDifficulty string
	flagGenProgress   int
	flagGenOut        string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a level payload",
	Long: `Generate a level payload with the built-in generator and print it,
without starting the game. The output is the same text the game would
parse, so it can be saved and replayed with 'skyleap play <file>'.

Examples:
  skyleap generate
  skyleap generate --seed 42
  skyleap generate --difficulty hard --progress 5
  skyleap generate --out level.json`,
	Run: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagGenConfig, "config", "", "Path to custom game config YAML")
	generateCmd.Flags().StringVar(&flagGenDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	generateCmd.Flags().IntVar(&flagGenProgress, "progress", 0, "Number of cleared levels to scale difficulty by")
	generateCmd.Flags().StringVar(&flagGenOut, "out", "", "Write the payload to a file instead of stdout")
}

func runGenerate(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagGenConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagGenDifficulty != "" {
		config.ApplyPreset(&cfg, config.ParsePreset(flagGenDifficulty))
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	dm := config.NewDifficultyManager(cfg.Difficulty)
	params := gen.DeriveParams(cfg, dm, flagGenProgress, seed)

	payload, err := gen.NewGenerator(seed).Generate(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating level: %v\n", err)
		os.Exit(1)
	}

	if flagGenOut != "" {
		if writeErr := os.WriteFile(flagGenOut, []byte(payload+"\n"), 0o644); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", flagGenOut, writeErr)
			os.Exit(1)
		}
		fmt.Printf("Wrote level to %s (seed %d)\n", flagGenOut, seed)
		return
	}

	fmt.Println(payload)
}
