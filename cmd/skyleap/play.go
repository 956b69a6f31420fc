package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/skyleap-game/skyleap/internal/config"
	"github.com/skyleap-game/skyleap/internal/core"
	"github.com/skyleap-game/skyleap/internal/gen"
	"github.com/skyleap-game/skyleap/internal/level"
	"github.com/skyleap-game/skyleap/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagService    string
)

var playCmd = &cobra.Command{
	Use:   "play [file]",
	Short: "Play skyleap",
	Long: `Start a campaign of generated levels, or play a single level file.

With no arguments each cleared level is followed by a freshly generated
one. With a file argument (JSON or YAML) that level is played on its own.

Controls:
  A/D, Left/Right - Move
  Space/W/Up      - Jump
  S/Down          - Crouch
  P               - Pause
  R               - Restart level
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  skyleap play
  skyleap play --difficulty easy
  skyleap play my-level.json
  skyleap play --config ./my-skyleap.yaml
  skyleap play --service http://localhost:8080`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagService, "service", "", "Level generation service URL (empty = built-in generator)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&gameCfg, config.ParsePreset(flagDifficulty))
	}
	if flagService != "" {
		gameCfg.Generation.ServiceURL = flagService
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var m tui.Model
	if len(args) == 1 {
		lvl, parseErr := level.ParseFile(args[0])
		if parseErr != nil {
			fmt.Fprintf(os.Stderr, "Error reading level %q: %v\n", args[0], parseErr)
			os.Exit(1)
		}
		if !lvl.Playable() {
			fmt.Fprintf(os.Stderr, "Error: %q contains no playable platforms\n", args[0])
			os.Exit(1)
		}
		m = tui.NewFixedModel(lvl, gameCfg, runtime)
	} else {
		m = tui.NewModel(playSource(gameCfg, runtime.Seed), gameCfg, runtime)
	}

	if runErr := tui.Run(m); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playSource picks the remote service when configured, the local generator
// otherwise.
func playSource(cfg config.Config, seed int64) gen.Source {
	if url := cfg.Generation.ServiceURL; url != "" {
		timeout := time.Duration(cfg.Generation.ServiceTimeout) * time.Second
		return gen.RemoteSource(gen.NewClient(url, timeout, log.Default()))
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return gen.LocalSource(seed)
}
