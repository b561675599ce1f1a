package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var flagLevelFile string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the given level, World 1-1 by default.

Controls:
  Left/Right, A/D  - Walk
  Up/Down, W/S     - Look up / crouch
  Space/Z          - Jump (hold for a higher jump)
  X                - Toggle run
  P/Enter          - Pause
  R                - Restart the level
  Ctrl+S           - Screenshot
  Q/Esc            - Quit

Terminals only report key presses, so a press is held for --hold ticks and
key repeat keeps it down.

Difficulty options:
  easy   - More time, lower top speed, floatier jumps
  normal - Values from the config file
  hard   - Less time, faster clock, higher top speed

Examples:
  platformer play
  platformer play 1-1 --difficulty hard
  platformer play --level-file ./levels/castle.yaml
  platformer play --config ./my-physics.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevelFile, "level-file", "", "Play a level from a YAML file")
}

func runPlay(_ *cobra.Command, args []string) error {
	levelID := level.World11.ID
	if len(args) == 1 {
		levelID = args[0]
	}

	if flagLevelFile != "" {
		lvl, err := level.LoadFile(flagLevelFile)
		if err != nil {
			return err
		}
		if !registry.Exists(lvl.ID) {
			if err := platformer.RegisterLevel(lvl); err != nil {
				return err
			}
		}
		levelID = lvl.ID
	}

	if !registry.Exists(levelID) {
		return fmt.Errorf("unknown level %q, run 'platformer list' to see available levels", levelID)
	}

	game, err := registry.Create(levelID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, tui.Options{
		Store:     store,
		Runtime:   runtimeConfig(),
		HoldTicks: flagHoldTicks,
		Logger:    logger,
	})
}

// runtimeConfig sizes the session to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

// openStore opens the scores database. The game runs without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("running without scores database", "err", err)
		return nil
	}
	return store
}
