// cubefall is an endless vertical platformer played in the terminal.
//
// Usage:
//
//	cubefall                 - Play the game
//	cubefall serve           - Start SSH server for remote play
//	cubefall scores          - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.cubefall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cubefall/internal/audio"
	"github.com/vovakirdan/cubefall/internal/config"
	"github.com/vovakirdan/cubefall/internal/core"
	"github.com/vovakirdan/cubefall/internal/platform/tui"
	"github.com/vovakirdan/cubefall/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string

	// Play flags
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cubefall",
	Short: "Cubefall - endless platform hopping in your terminal",
	Long: `Cubefall is an endless vertical platformer. Bounce up an infinite
tower of crumbling platforms; every platform falls away once touched,
so there is no way but up.

Controls:
  ←/a, →/d    - Move
  Space       - Double jump (one charge, restored on landing)
  Enter/Space - Start a run
  P/Esc       - Pause
  M           - Mute
  Q/Ctrl+C    - Quit

Difficulty presets:
  easy   - Gentler curve
  normal - Default curve
  hard   - Steeper curve, starts partway up
  fixed  - No progression at all

Examples:
  cubefall
  cubefall --difficulty hard
  cubefall --seed 42               # Reproducible platform layout
  cubefall --config ./my.yaml
  cubefall serve --ssh :2222
  cubefall scores`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cubefall/scores.db", "Path to scores database")

	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with audio muted")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	sound := audio.New(cfg.Audio)
	if err := sound.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", err)
	}
	if flagMute {
		sound.ToggleMute()
	}

	runErr := tui.Run(cfg, rt, store, sound)

	sound.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
